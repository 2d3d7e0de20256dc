// Package domain contains core business entities and interfaces.
package domain

// Task represents a single task item owned by the authenticated user.
// ID and CreatedAt are assigned by the remote service at creation time and
// are never modified client-side.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// TaskDraft contains the client-supplied fields for creating a task.
// It deliberately has no ID or CreatedAt; the request body must omit both.
type TaskDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// Validate checks that the draft can be submitted.
func (d TaskDraft) Validate() error {
	if d.Title == "" {
		return ErrEmptyTitle
	}
	if d.Description == "" {
		return ErrEmptyDescription
	}
	if !d.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

// TaskPatch describes a partial update to a task. Nil fields are left
// untouched; the wire body carries only the fields that are set.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *Status `json:"status,omitempty"`
}

// IsEmpty returns true if the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil
}

// Validate checks that the set fields are acceptable.
func (p TaskPatch) Validate() error {
	if p.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if p.Title != nil && *p.Title == "" {
		return ErrEmptyTitle
	}
	if p.Description != nil && *p.Description == "" {
		return ErrEmptyDescription
	}
	if p.Status != nil && !p.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}
