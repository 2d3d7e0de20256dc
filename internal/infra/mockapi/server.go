// Package mockapi implements the simulated remote task service. It speaks
// the same request/response contract the real service would: a single known
// account, a fixed bearer token, and JSON {message} error payloads. Task
// data lives in the durable key/value store under its own key, so the
// simulated service keeps its state across restarts just like a real one.
package mockapi

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"taskman/internal/domain"
)

// Credentials and token accepted by the simulated service.
const (
	Username = "test"
	Password = "test123"
	Token    = "fake-jwt-token"
)

// tasksKey is the persisted-store key holding the service-side collection.
// Only the simulated service writes this key.
const tasksKey = "tasks"

// Server is the simulated remote task service.
type Server struct {
	store domain.KeyValueStore
	clock domain.Clock
	mu    sync.Mutex
}

// New creates a Server backed by the given store and clock.
func New(store domain.KeyValueStore, clock domain.Clock) *Server {
	return &Server{store: store, clock: clock}
}

// Handler returns the HTTP handler implementing the service contract.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /tasks", s.requireAuth(s.handleList))
	mux.HandleFunc("POST /tasks", s.requireAuth(s.handleCreate))
	mux.HandleFunc("PUT /tasks/{id}", s.requireAuth(s.handleUpdate))
	mux.HandleFunc("DELETE /tasks/{id}", s.requireAuth(s.handleDelete))
	return mux
}

// Start serves the simulated service on a loopback port and returns its base
// URL plus a stop function.
func (s *Server) Start() (string, func(), error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, fmt.Errorf("listen: %w", err)
	}
	srv := &http.Server{Handler: s.Handler()}
	go func() { _ = srv.Serve(ln) }()
	stop := func() { _ = srv.Close() }
	return "http://" + ln.Addr().String(), stop, nil
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if body.Username != Username || body.Password != Password {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	writeJSON(w, http.StatusOK, domain.Session{Token: Token, Username: Username})
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	tasks := s.loadTasks()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var draft domain.TaskDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	task := domain.Task{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		Status:      draft.Status,
		CreatedAt:   s.clock.Now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	tasks := append(s.loadTasks(), task)
	s.saveTasks(tasks)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var patch domain.TaskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	s.mu.Lock()
	tasks := s.loadTasks()
	var updated *domain.Task
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		if patch.Title != nil {
			tasks[i].Title = *patch.Title
		}
		if patch.Description != nil {
			tasks[i].Description = *patch.Description
		}
		if patch.Status != nil {
			tasks[i].Status = *patch.Status
		}
		updated = &tasks[i]
		break
	}
	s.saveTasks(tasks)
	s.mu.Unlock()

	// The service is permissive: an unknown id still answers 200, with a
	// null body, and the client side is expected to ignore it.
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	tasks := s.loadTasks()
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.saveTasks(kept)
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+Token {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next(w, r)
	}
}

// loadTasks reads the service-side collection, seeding it with one sample
// task on first use. Callers must hold s.mu.
func (s *Server) loadTasks() []domain.Task {
	raw, found, err := s.store.Get(tasksKey)
	if err != nil || !found {
		return s.seedTasks()
	}
	var tasks []domain.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return []domain.Task{}
	}
	return tasks
}

func (s *Server) seedTasks() []domain.Task {
	seed := []domain.Task{{
		ID:          "1",
		Title:       "Sample Task",
		Description: "This is a demo task loaded from the simulated service.",
		Status:      domain.StatusTodo,
		CreatedAt:   s.clock.Now().UTC().Format(time.RFC3339),
	}}
	s.saveTasks(seed)
	return seed
}

func (s *Server) saveTasks(tasks []domain.Task) {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	raw, err := json.Marshal(tasks)
	if err != nil {
		return
	}
	_ = s.store.Set(tasksKey, raw)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
