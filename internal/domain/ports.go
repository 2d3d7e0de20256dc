package domain

import (
	"context"
	"time"
)

// TaskService is the request/response contract of the remote service.
// All operations except Login require a bearer token.
type TaskService interface {
	// Login exchanges credentials for a session.
	Login(ctx context.Context, username, password string) (Session, error)

	// ListTasks returns all tasks in server order.
	ListTasks(ctx context.Context, token string) ([]Task, error)

	// CreateTask creates a task; the server assigns ID and CreatedAt.
	CreateTask(ctx context.Context, token string, draft TaskDraft) (Task, error)

	// UpdateTask applies a partial update and returns the full updated task.
	UpdateTask(ctx context.Context, token, id string, patch TaskPatch) (Task, error)

	// DeleteTask removes a task. Deleting an unknown id is not an error.
	DeleteTask(ctx context.Context, token, id string) error
}

// KeyValueStore is the durable per-key byte store that survives restarts.
// Writes are atomic per key; the value format is opaque to the store.
type KeyValueStore interface {
	// Get retrieves the value for a key. The second return is false when the
	// key is absent.
	Get(key string) ([]byte, bool, error)

	// Set writes the value for a key.
	Set(key string, value []byte) error

	// Remove deletes a key. Removing an absent key is a no-op.
	Remove(key string) error
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}
