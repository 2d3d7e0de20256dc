package state

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"taskman/internal/domain"
)

// TaskListState owns the ordered task collection and one request status per
// operation category, so a fetch and a create in flight at the same time
// never stomp on each other's pending or error state.
//
// Operations complete in response-arrival order, and each merge applies only
// to the data in its own response; whichever response is merged last wins.
// A delete merged after an update removes the task, and an update merged
// after a delete matches no local entry and is dropped.
//
// TaskListState reads the session credential but never mutates the session:
// a 401 on a task operation surfaces as that operation's rejection and the
// session stays as it is.
type TaskListState struct {
	svc     domain.TaskService
	session *SessionState
	logger  *slog.Logger

	mu     sync.Mutex
	items  []domain.Task
	fetch  domain.RequestStatus
	create domain.RequestStatus
	update domain.RequestStatus
	remove domain.RequestStatus
}

// NewTaskListState creates a TaskListState bound to the given session.
func NewTaskListState(svc domain.TaskService, session *SessionState, logger *slog.Logger) *TaskListState {
	return &TaskListState{
		svc:     svc,
		session: session,
		logger:  logger,
		fetch:   domain.NewRequestStatus(),
		create:  domain.NewRequestStatus(),
		update:  domain.NewRequestStatus(),
		remove:  domain.NewRequestStatus(),
	}
}

// FetchAll replaces the entire local collection with the server's response
// verbatim, so stale entries never survive a failed partial sync.
func (t *TaskListState) FetchAll(ctx context.Context) error {
	return runRequest(&t.mu, &t.fetch, "Failed to load tasks",
		func() ([]domain.Task, error) {
			token, err := t.token()
			if err != nil {
				return nil, err
			}
			return t.svc.ListTasks(ctx, token)
		},
		func(tasks []domain.Task) {
			t.items = tasks
		})
}

// Create submits a draft; the server assigns ID and CreatedAt and the new
// task is appended to the end of the collection.
func (t *TaskListState) Create(ctx context.Context, draft domain.TaskDraft) error {
	return runRequest(&t.mu, &t.create, "Failed to create task",
		func() (domain.Task, error) {
			if err := draft.Validate(); err != nil {
				return domain.Task{}, err
			}
			token, err := t.token()
			if err != nil {
				return domain.Task{}, err
			}
			return t.svc.CreateTask(ctx, token, draft)
		},
		func(task domain.Task) {
			t.items = append(t.items, task)
			if t.logger != nil {
				t.logger.Info("task created", "id", task.ID, "title", task.Title)
			}
		})
}

// Update applies a partial update. The returned task replaces the local
// entry with the same id, keeping its position; a response whose id has no
// local match corrects nothing and is ignored.
func (t *TaskListState) Update(ctx context.Context, id string, patch domain.TaskPatch) error {
	return runRequest(&t.mu, &t.update, "Failed to update task",
		func() (domain.Task, error) {
			if err := patch.Validate(); err != nil {
				return domain.Task{}, err
			}
			token, err := t.token()
			if err != nil {
				return domain.Task{}, err
			}
			return t.svc.UpdateTask(ctx, token, id, patch)
		},
		func(task domain.Task) {
			for i := range t.items {
				if t.items[i].ID == task.ID {
					t.items[i] = task
					return
				}
			}
		})
}

// Delete removes the matching entry on success. The service treats unknown
// ids permissively, so deleting an absent id fulfills and removes nothing.
func (t *TaskListState) Delete(ctx context.Context, id string) error {
	return runRequest(&t.mu, &t.remove, "Failed to delete task",
		func() (string, error) {
			token, err := t.token()
			if err != nil {
				return "", err
			}
			if err := t.svc.DeleteTask(ctx, token, id); err != nil {
				return "", err
			}
			return id, nil
		},
		func(deleted string) {
			t.items = slices.DeleteFunc(t.items, func(task domain.Task) bool {
				return task.ID == deleted
			})
		})
}

// Tasks returns a snapshot of the collection in server order.
func (t *TaskListState) Tasks() []domain.Task {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.items)
}

// Task returns the task with the given id, if present.
func (t *TaskListState) Task(id string) (domain.Task, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, task := range t.items {
		if task.ID == id {
			return task, true
		}
	}
	return domain.Task{}, false
}

// FetchStatus returns a snapshot of the fetch request status.
func (t *TaskListState) FetchStatus() domain.RequestStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fetch
}

// CreateStatus returns a snapshot of the create request status.
func (t *TaskListState) CreateStatus() domain.RequestStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.create
}

// UpdateStatus returns a snapshot of the update request status.
func (t *TaskListState) UpdateStatus() domain.RequestStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.update
}

// DeleteStatus returns a snapshot of the delete request status.
func (t *TaskListState) DeleteStatus() domain.RequestStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remove
}

// token reads the current credential, failing fast before any network call
// when it is absent.
func (t *TaskListState) token() (string, error) {
	token := t.session.Token()
	if token == "" {
		return "", domain.ErrNotLoggedIn
	}
	return token, nil
}
