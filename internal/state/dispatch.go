// Package state contains the client-side state owners: the authenticated
// session, the task collection, and the theme preference. Every remote
// operation runs through the same dispatch pattern, and the presentation
// layer only ever observes state snapshots and RequestStatus values.
package state

import (
	"errors"
	"sync"

	"taskman/internal/domain"
)

// runRequest is the dispatch pattern shared by every remote operation: the
// category transitions to pending, the call runs with no lock held, and on
// completion the result is merged under lock (fulfilled) or the error is
// reduced to a message (rejected). Once dispatched, the merge applies
// whenever the response arrives; there is no cancellation and no timeout at
// this layer.
//
// The error return exists for non-interactive callers; interactive ones read
// the RequestStatus instead.
func runRequest[R any](mu *sync.Mutex, status *domain.RequestStatus, fallback string, call func() (R, error), merge func(R)) error {
	mu.Lock()
	status.Dispatch()
	mu.Unlock()

	out, err := call()

	mu.Lock()
	defer mu.Unlock()
	if err != nil {
		status.Reject(reduceError(err, fallback))
		return err
	}
	merge(out)
	status.Fulfill()
	return nil
}

// clientErrs are failures produced before any network call; their own text
// is the message shown to the user.
var clientErrs = []error{
	domain.ErrNotLoggedIn,
	domain.ErrEmptyTitle,
	domain.ErrEmptyDescription,
	domain.ErrInvalidStatus,
	domain.ErrNoFieldsToUpdate,
}

// reduceError turns a failure into the single human-readable string stored
// on the RequestStatus: the service's own error payload when it was
// readable, a client-side validation message, or the per-operation fallback
// for transport failures and unreadable responses.
func reduceError(err error, fallback string) string {
	var remote *domain.RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message
	}
	for _, known := range clientErrs {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return fallback
}
