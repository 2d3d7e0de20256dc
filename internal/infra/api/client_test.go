package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskman/internal/domain"
	"taskman/internal/infra/mockapi"
	"taskman/internal/testutil"
)

func newClient(t *testing.T) *Client {
	t.Helper()
	store := testutil.NewMemStore()
	clock := &testutil.MockClock{NowTime: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	srv := httptest.NewServer(mockapi.New(store, clock).Handler())
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestClient_Login(t *testing.T) {
	client := newClient(t)

	session, err := client.Login(context.Background(), mockapi.Username, mockapi.Password)
	require.NoError(t, err)
	assert.Equal(t, mockapi.Token, session.Token)
	assert.Equal(t, mockapi.Username, session.Username)
}

func TestClient_LoginRejected(t *testing.T) {
	client := newClient(t)

	_, err := client.Login(context.Background(), "test", "wrong")
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "Invalid username or password", remote.Message)
	assert.True(t, remote.IsUnauthorized())
}

func TestClient_ListTasks(t *testing.T) {
	client := newClient(t)

	tasks, err := client.ListTasks(context.Background(), mockapi.Token)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Sample Task", tasks[0].Title)
}

func TestClient_ListTasksUnauthorized(t *testing.T) {
	client := newClient(t)

	_, err := client.ListTasks(context.Background(), "stale-token")
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "Unauthorized", remote.Message)
	assert.Equal(t, http.StatusUnauthorized, remote.StatusCode)
}

func TestClient_CreateUpdateDeleteRoundTrip(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	draft := domain.TaskDraft{Title: "Write tests", Description: "Cover the wire contract", Status: domain.StatusTodo}
	created, err := client.CreateTask(ctx, mockapi.Token, draft)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)

	status := domain.StatusDone
	updated, err := client.UpdateTask(ctx, mockapi.Token, created.ID, domain.TaskPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, domain.StatusDone, updated.Status)
	assert.Equal(t, "Write tests", updated.Title)

	require.NoError(t, client.DeleteTask(ctx, mockapi.Token, created.ID))

	tasks, err := client.ListTasks(ctx, mockapi.Token)
	require.NoError(t, err)
	for _, task := range tasks {
		assert.NotEqual(t, created.ID, task.ID)
	}
}

func TestClient_UpdateUnknownIDDecodesToZeroTask(t *testing.T) {
	client := newClient(t)

	title := "Ghost"
	task, err := client.UpdateTask(context.Background(), mockapi.Token, "nope", domain.TaskPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, domain.Task{}, task)
}

func TestClient_UnreadableErrorBodyYieldsEmptyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("not json"))
	}))
	t.Cleanup(srv.Close)
	client := New(srv.URL)

	_, err := client.ListTasks(context.Background(), mockapi.Token)
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Empty(t, remote.Message)
	assert.Equal(t, http.StatusInternalServerError, remote.StatusCode)
}
