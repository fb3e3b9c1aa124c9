// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"sync"

	"github.com/google/uuid"
)

// RequestTracker gates the application of aggregation results when several
// requests for the same owner are in flight, e.g. when the viewed period
// changes again before a prior load completes. Begin records a new request
// and returns its token; StillCurrent reports whether that token belongs to
// the most recently initiated request. Results of superseded requests must be
// discarded, never applied.
type RequestTracker struct {
	mu     sync.Mutex
	latest map[uuid.UUID]uint64
}

// NewRequestTracker creates an empty tracker.
func NewRequestTracker() *RequestTracker {
	return &RequestTracker{
		latest: make(map[uuid.UUID]uint64),
	}
}

// Begin registers a newly initiated request for the owner and returns its token.
func (t *RequestTracker) Begin(ownerID uuid.UUID) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest[ownerID]++
	return t.latest[ownerID]
}

// StillCurrent reports whether the token is the owner's most recent request.
func (t *RequestTracker) StillCurrent(ownerID uuid.UUID, token uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest[ownerID] == token
}

// Forget drops the owner's tracking state, e.g. when the view is dismissed.
func (t *RequestTracker) Forget(ownerID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.latest, ownerID)
}
