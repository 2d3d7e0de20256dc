package state

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskman/internal/domain"
	"taskman/internal/testutil"
)

func strPtr(s string) *string { return &s }

func statusPtr(s domain.Status) *domain.Status { return &s }

func newLoggedInState(t *testing.T, svc *testutil.MockTaskService) *TaskListState {
	t.Helper()
	store := testutil.NewMemStore()
	session := NewSessionState(svc, store, nil)
	svc.LoginResult = domain.Session{Token: "fake-jwt-token", Username: "test"}
	require.NoError(t, session.Login(context.Background(), "test", "test123"))
	return NewTaskListState(svc, session, nil)
}

func task(id, title string, status domain.Status) domain.Task {
	return domain.Task{ID: id, Title: title, Description: title + " description", Status: status, CreatedAt: "2024-01-01T00:00:00Z"}
}

func TestTaskListState_FetchReplacesCollection(t *testing.T) {
	svc := &testutil.MockTaskService{
		ListResult: []domain.Task{task("1", "First", domain.StatusTodo), task("2", "Second", domain.StatusDone)},
	}
	state := newLoggedInState(t, svc)

	require.NoError(t, state.FetchAll(context.Background()))
	assert.Equal(t, svc.ListResult, state.Tasks())
	assert.Equal(t, domain.PhaseFulfilled, state.FetchStatus().Phase)

	// A later fetch replaces everything, including entries the server dropped.
	svc.ListResult = []domain.Task{task("2", "Second", domain.StatusDone)}
	require.NoError(t, state.FetchAll(context.Background()))
	require.Len(t, state.Tasks(), 1)
	assert.Equal(t, "2", state.Tasks()[0].ID)
}

func TestTaskListState_CreateAppends(t *testing.T) {
	svc := &testutil.MockTaskService{
		ListResult:   []domain.Task{task("1", "Existing", domain.StatusTodo)},
		CreateResult: task("2", "New", domain.StatusTodo),
	}
	state := newLoggedInState(t, svc)
	require.NoError(t, state.FetchAll(context.Background()))

	draft := domain.TaskDraft{Title: "New", Description: "New description", Status: domain.StatusTodo}
	require.NoError(t, state.Create(context.Background(), draft))

	tasks := state.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "2", tasks[1].ID)
	assert.Equal(t, domain.PhaseFulfilled, state.CreateStatus().Phase)
}

func TestTaskListState_CreateValidationRejectsWithoutNetwork(t *testing.T) {
	svc := &testutil.MockTaskService{}
	state := newLoggedInState(t, svc)

	err := state.Create(context.Background(), domain.TaskDraft{Description: "no title", Status: domain.StatusTodo})
	require.ErrorIs(t, err, domain.ErrEmptyTitle)

	status := state.CreateStatus()
	assert.Equal(t, domain.PhaseRejected, status.Phase)
	assert.Equal(t, "title cannot be empty", status.Err)
	assert.Zero(t, svc.CreateCalls)
}

func TestTaskListState_UpdateReplacesInPlace(t *testing.T) {
	svc := &testutil.MockTaskService{
		ListResult:   []domain.Task{task("1", "First", domain.StatusTodo), task("2", "Second", domain.StatusTodo)},
		UpdateResult: task("1", "Renamed", domain.StatusDone),
	}
	state := newLoggedInState(t, svc)
	require.NoError(t, state.FetchAll(context.Background()))

	patch := domain.TaskPatch{Status: statusPtr(domain.StatusDone)}
	require.NoError(t, state.Update(context.Background(), "1", patch))

	tasks := state.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "Renamed", tasks[0].Title)
	assert.Equal(t, domain.StatusDone, tasks[0].Status)
	assert.Equal(t, "2", tasks[1].ID)
}

func TestTaskListState_UpdateUnknownIDIsIgnored(t *testing.T) {
	// The service answers an update for an unknown id with a null body, which
	// decodes to a zero task that matches no local entry.
	svc := &testutil.MockTaskService{
		ListResult:   []domain.Task{task("1", "First", domain.StatusTodo)},
		UpdateResult: domain.Task{},
	}
	state := newLoggedInState(t, svc)
	require.NoError(t, state.FetchAll(context.Background()))

	patch := domain.TaskPatch{Title: strPtr("Ghost")}
	require.NoError(t, state.Update(context.Background(), "missing", patch))

	tasks := state.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "First", tasks[0].Title)
	assert.Equal(t, domain.PhaseFulfilled, state.UpdateStatus().Phase)
}

func TestTaskListState_DeleteRemovesMatch(t *testing.T) {
	svc := &testutil.MockTaskService{
		ListResult: []domain.Task{task("1", "First", domain.StatusTodo), task("2", "Second", domain.StatusTodo)},
	}
	state := newLoggedInState(t, svc)
	require.NoError(t, state.FetchAll(context.Background()))

	require.NoError(t, state.Delete(context.Background(), "1"))

	tasks := state.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "2", tasks[0].ID)

	// Deleting an id that is already gone fulfills and removes nothing.
	require.NoError(t, state.Delete(context.Background(), "1"))
	assert.Len(t, state.Tasks(), 1)
	assert.Equal(t, domain.PhaseFulfilled, state.DeleteStatus().Phase)
}

func TestTaskListState_OperationsFailFastWhenLoggedOut(t *testing.T) {
	svc := &testutil.MockTaskService{}
	session := NewSessionState(svc, testutil.NewMemStore(), nil)
	state := NewTaskListState(svc, session, nil)

	ctx := context.Background()
	draft := domain.TaskDraft{Title: "T", Description: "D", Status: domain.StatusTodo}
	patch := domain.TaskPatch{Title: strPtr("T")}

	require.ErrorIs(t, state.FetchAll(ctx), domain.ErrNotLoggedIn)
	require.ErrorIs(t, state.Create(ctx, draft), domain.ErrNotLoggedIn)
	require.ErrorIs(t, state.Update(ctx, "1", patch), domain.ErrNotLoggedIn)
	require.ErrorIs(t, state.Delete(ctx, "1"), domain.ErrNotLoggedIn)

	// No network call was attempted for any of them.
	assert.Zero(t, svc.Calls())
	assert.Equal(t, "not logged in", state.FetchStatus().Err)
	assert.Equal(t, domain.PhaseRejected, state.DeleteStatus().Phase)
}

func TestTaskListState_StatusesAreIndependentPerCategory(t *testing.T) {
	svc := &testutil.MockTaskService{
		ListErr:      errors.New("connection reset"),
		CreateResult: task("1", "New", domain.StatusTodo),
	}
	state := newLoggedInState(t, svc)

	require.Error(t, state.FetchAll(context.Background()))
	draft := domain.TaskDraft{Title: "New", Description: "New description", Status: domain.StatusTodo}
	require.NoError(t, state.Create(context.Background(), draft))

	assert.Equal(t, domain.PhaseRejected, state.FetchStatus().Phase)
	assert.Equal(t, "Failed to load tasks", state.FetchStatus().Err)
	assert.Equal(t, domain.PhaseFulfilled, state.CreateStatus().Phase)
	assert.Equal(t, domain.PhaseIdle, state.UpdateStatus().Phase)
}

func TestTaskListState_RejectionFallbacks(t *testing.T) {
	tests := []struct {
		name string
		run  func(*TaskListState) error
		want string
	}{
		{
			name: "fetch",
			run:  func(s *TaskListState) error { return s.FetchAll(context.Background()) },
			want: "Failed to load tasks",
		},
		{
			name: "create",
			run: func(s *TaskListState) error {
				return s.Create(context.Background(), domain.TaskDraft{Title: "T", Description: "D", Status: domain.StatusTodo})
			},
			want: "Failed to create task",
		},
		{
			name: "update",
			run: func(s *TaskListState) error {
				return s.Update(context.Background(), "1", domain.TaskPatch{Title: strPtr("T")})
			},
			want: "Failed to update task",
		},
		{
			name: "delete",
			run:  func(s *TaskListState) error { return s.Delete(context.Background(), "1") },
			want: "Failed to delete task",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := errors.New("connection refused")
			svc := &testutil.MockTaskService{
				ListErr: transport, CreateErr: transport, UpdateErr: transport, DeleteErr: transport,
			}
			state := newLoggedInState(t, svc)

			require.Error(t, tt.run(state))
			switch tt.name {
			case "fetch":
				assert.Equal(t, tt.want, state.FetchStatus().Err)
			case "create":
				assert.Equal(t, tt.want, state.CreateStatus().Err)
			case "update":
				assert.Equal(t, tt.want, state.UpdateStatus().Err)
			case "delete":
				assert.Equal(t, tt.want, state.DeleteStatus().Err)
			}
		})
	}
}

func TestTaskListState_UnauthorizedDoesNotClearSession(t *testing.T) {
	svc := &testutil.MockTaskService{
		ListErr: &domain.RemoteError{Message: "Unauthorized", StatusCode: http.StatusUnauthorized},
	}
	store := testutil.NewMemStore()
	session := NewSessionState(svc, store, nil)
	svc.LoginResult = domain.Session{Token: "stale-token", Username: "test"}
	require.NoError(t, session.Login(context.Background(), "test", "test123"))
	state := NewTaskListState(svc, session, nil)

	require.Error(t, state.FetchAll(context.Background()))

	assert.Equal(t, "Unauthorized", state.FetchStatus().Err)
	// The stale credential stays until the user logs out or signs in again.
	assert.True(t, session.Session().IsAuthenticated())
	_, ok := store.Raw("auth")
	assert.True(t, ok)
}

func TestTaskListState_ConcurrentFetchAndCreate(t *testing.T) {
	serverList := []domain.Task{task("1", "Server copy", domain.StatusTodo)}
	created := task("2", "Created", domain.StatusTodo)
	draft := domain.TaskDraft{Title: "Created", Description: "Created description", Status: domain.StatusTodo}

	t.Run("create settles before fetch", func(t *testing.T) {
		svc := &testutil.MockTaskService{
			ListResult:   serverList,
			CreateResult: created,
			ListGate:     make(chan struct{}),
		}
		state := newLoggedInState(t, svc)

		fetchDone := make(chan struct{})
		go func() {
			defer close(fetchDone)
			_ = state.FetchAll(context.Background())
		}()
		require.Eventually(t, func() bool { return svc.Calls() == 2 }, time.Second, time.Millisecond)

		require.NoError(t, state.Create(context.Background(), draft))
		require.Len(t, state.Tasks(), 1)

		close(svc.ListGate)
		<-fetchDone

		// The fetch response merged last, so the collection is the server's
		// list verbatim; the locally appended task is gone until a re-fetch.
		assert.Equal(t, serverList, state.Tasks())
		assert.Equal(t, domain.PhaseFulfilled, state.FetchStatus().Phase)
		assert.Equal(t, domain.PhaseFulfilled, state.CreateStatus().Phase)
	})

	t.Run("fetch settles before create", func(t *testing.T) {
		svc := &testutil.MockTaskService{
			ListResult:   serverList,
			CreateResult: created,
			CreateGate:   make(chan struct{}),
		}
		state := newLoggedInState(t, svc)

		createDone := make(chan struct{})
		go func() {
			defer close(createDone)
			_ = state.Create(context.Background(), draft)
		}()
		require.Eventually(t, func() bool { return svc.Calls() == 2 }, time.Second, time.Millisecond)

		require.NoError(t, state.FetchAll(context.Background()))

		close(svc.CreateGate)
		<-createDone

		// The create response merged last and appends to the fetched list.
		tasks := state.Tasks()
		require.Len(t, tasks, 2)
		assert.Equal(t, "1", tasks[0].ID)
		assert.Equal(t, "2", tasks[1].ID)
	})
}

func TestTaskListState_UpdateAfterDeleteMatchesNothing(t *testing.T) {
	svc := &testutil.MockTaskService{
		ListResult:   []domain.Task{task("1", "Doomed", domain.StatusTodo)},
		UpdateResult: task("1", "Renamed", domain.StatusDone),
	}
	state := newLoggedInState(t, svc)
	require.NoError(t, state.FetchAll(context.Background()))

	require.NoError(t, state.Delete(context.Background(), "1"))
	require.NoError(t, state.Update(context.Background(), "1", domain.TaskPatch{Title: strPtr("Renamed")}))

	// The update response arrived after the delete merged; its id no longer
	// matches anything and the collection stays empty.
	assert.Empty(t, state.Tasks())
	assert.Equal(t, domain.PhaseFulfilled, state.UpdateStatus().Phase)
}

func TestTaskListState_TaskLookup(t *testing.T) {
	svc := &testutil.MockTaskService{
		ListResult: []domain.Task{task("1", "First", domain.StatusTodo)},
	}
	state := newLoggedInState(t, svc)
	require.NoError(t, state.FetchAll(context.Background()))

	got, ok := state.Task("1")
	require.True(t, ok)
	assert.Equal(t, "First", got.Title)

	_, ok = state.Task("nope")
	assert.False(t, ok)
}
