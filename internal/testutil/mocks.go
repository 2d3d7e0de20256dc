// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"sync"
	"time"

	"taskman/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MemStore is an in-memory test double for domain.KeyValueStore.
type MemStore struct {
	mu     sync.Mutex
	values map[string][]byte

	SetErr error
	GetErr error
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string][]byte)}
}

// Get retrieves the value for a key.
func (m *MemStore) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

// Set writes the value for a key.
func (m *MemStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}

// Remove deletes a key.
func (m *MemStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Raw returns the stored bytes for a key, for assertions.
func (m *MemStore) Raw(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

// MockTaskService is a test double for domain.TaskService with per-method
// results, error injection, call counters, and optional gates for driving
// completion order in concurrency tests.
type MockTaskService struct {
	mu sync.Mutex

	LoginResult  domain.Session
	ListResult   []domain.Task
	CreateResult domain.Task
	UpdateResult domain.Task

	LoginErr  error
	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error

	LoginCalls  int
	ListCalls   int
	CreateCalls int
	UpdateCalls int
	DeleteCalls int

	// Gates block the corresponding call until closed, letting a test decide
	// which in-flight response resolves first.
	ListGate   chan struct{}
	CreateGate chan struct{}
}

// Login implements domain.TaskService.
func (m *MockTaskService) Login(_ context.Context, _, _ string) (domain.Session, error) {
	m.mu.Lock()
	m.LoginCalls++
	m.mu.Unlock()
	if m.LoginErr != nil {
		return domain.Session{}, m.LoginErr
	}
	return m.LoginResult, nil
}

// ListTasks implements domain.TaskService.
func (m *MockTaskService) ListTasks(_ context.Context, _ string) ([]domain.Task, error) {
	m.mu.Lock()
	m.ListCalls++
	gate := m.ListGate
	m.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return append([]domain.Task(nil), m.ListResult...), nil
}

// CreateTask implements domain.TaskService.
func (m *MockTaskService) CreateTask(_ context.Context, _ string, _ domain.TaskDraft) (domain.Task, error) {
	m.mu.Lock()
	m.CreateCalls++
	gate := m.CreateGate
	m.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if m.CreateErr != nil {
		return domain.Task{}, m.CreateErr
	}
	return m.CreateResult, nil
}

// UpdateTask implements domain.TaskService.
func (m *MockTaskService) UpdateTask(_ context.Context, _, _ string, _ domain.TaskPatch) (domain.Task, error) {
	m.mu.Lock()
	m.UpdateCalls++
	m.mu.Unlock()
	if m.UpdateErr != nil {
		return domain.Task{}, m.UpdateErr
	}
	return m.UpdateResult, nil
}

// DeleteTask implements domain.TaskService.
func (m *MockTaskService) DeleteTask(_ context.Context, _, _ string) error {
	m.mu.Lock()
	m.DeleteCalls++
	m.mu.Unlock()
	return m.DeleteErr
}

// Calls returns the total number of service calls made.
func (m *MockTaskService) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.LoginCalls + m.ListCalls + m.CreateCalls + m.UpdateCalls + m.DeleteCalls
}

// Ensure the mocks implement their ports.
var (
	_ domain.TaskService   = (*MockTaskService)(nil)
	_ domain.KeyValueStore = (*MemStore)(nil)
	_ domain.Clock         = (*MockClock)(nil)
)
