package domain

// Phase is the lifecycle state of one request category.
type Phase string

// Request phases. Every category starts idle and is perpetually
// re-dispatchable; there is no terminal phase.
const (
	PhaseIdle      Phase = "idle"
	PhasePending   Phase = "pending"
	PhaseFulfilled Phase = "fulfilled"
	PhaseRejected  Phase = "rejected"
)

// RequestStatus records the in-flight/success/failure state of one operation
// category. Err is populated only while Phase is rejected.
type RequestStatus struct {
	Phase Phase  `json:"phase"`
	Err   string `json:"error,omitempty"`
}

// NewRequestStatus returns an idle status.
func NewRequestStatus() RequestStatus {
	return RequestStatus{Phase: PhaseIdle}
}

// Dispatch transitions to pending and clears any previous error.
func (r *RequestStatus) Dispatch() {
	r.Phase = PhasePending
	r.Err = ""
}

// Fulfill transitions to fulfilled.
func (r *RequestStatus) Fulfill() {
	r.Phase = PhaseFulfilled
	r.Err = ""
}

// Reject transitions to rejected and records the reduced error message.
func (r *RequestStatus) Reject(msg string) {
	r.Phase = PhaseRejected
	r.Err = msg
}

// IsPending returns true while a request in this category is in flight.
func (r RequestStatus) IsPending() bool {
	return r.Phase == PhasePending
}
