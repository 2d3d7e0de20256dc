// Package api provides the HTTP client for the remote task service.
// It implements domain.TaskService against the JSON contract:
// POST /login, GET /tasks, POST /tasks, PUT /tasks/:id, DELETE /tasks/:id,
// with a bearer token on everything except login.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"taskman/internal/domain"
)

// Client talks to the remote task service over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a Client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// The timeout guards the process against a wedged server; the state
		// layer itself never enforces one.
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Ensure Client implements the port.
var _ domain.TaskService = (*Client)(nil)

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, username, password string) (domain.Session, error) {
	body := map[string]string{"username": username, "password": password}
	var session domain.Session
	if err := c.do(ctx, http.MethodPost, "/login", "", body, &session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

// ListTasks returns all tasks in server order.
func (c *Client) ListTasks(ctx context.Context, token string) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", token, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task; the server assigns ID and CreatedAt.
func (c *Client) CreateTask(ctx context.Context, token string, draft domain.TaskDraft) (domain.Task, error) {
	var task domain.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", token, draft, &task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// UpdateTask applies a partial update and returns the full updated task.
// For an unknown id the service answers 200 with a null body; the zero Task
// that decodes from it matches nothing locally, so callers drop it.
func (c *Client) UpdateTask(ctx context.Context, token, id string, patch domain.TaskPatch) (domain.Task, error) {
	var task domain.Task
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id, token, patch, &task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// DeleteTask removes a task. The service answers 204 even for unknown ids.
func (c *Client) DeleteTask(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id, token, nil, nil)
}

// do performs one request/response cycle. A non-2xx response becomes a
// domain.RemoteError carrying the service's {message} payload when the body
// is readable, and an empty message otherwise.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return remoteError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func remoteError(resp *http.Response) error {
	remote := &domain.RemoteError{StatusCode: resp.StatusCode}
	content, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return remote
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(content, &payload); err == nil {
		remote.Message = payload.Message
	}
	return remote
}
