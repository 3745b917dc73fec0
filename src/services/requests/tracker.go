// Package requests tracks in-flight backend calls by purpose so that a newer
// call supersedes an older one of the same kind.
package requests

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Purpose groups requests that supersede each other.
type Purpose string

const (
	Chat        Purpose = "chat"
	Scholarship Purpose = "scholarship"
	Analytics   Purpose = "analytics"
	Chart       Purpose = "chart"
	Auth        Purpose = "auth"
)

// Ticket identifies one tracked request. Its context is cancelled when a
// newer request with the same purpose begins.
type Ticket struct {
	Purpose Purpose
	ID      uuid.UUID
	ctx     context.Context
}

// Context returns the request context bound to the ticket.
func (t Ticket) Context() context.Context {
	if t.ctx == nil {
		return context.Background()
	}
	return t.ctx
}

type inflight struct {
	id     uuid.UUID
	cancel context.CancelFunc
}

// Tracker holds at most one current request per purpose.
type Tracker struct {
	mu      sync.Mutex
	parent  context.Context
	current map[Purpose]inflight
}

// NewTracker returns a tracker whose request contexts derive from parent.
func NewTracker(parent context.Context) *Tracker {
	if parent == nil {
		parent = context.Background()
	}
	return &Tracker{
		parent:  parent,
		current: make(map[Purpose]inflight),
	}
}

// Begin starts a request for purpose, cancelling the previous one.
func (t *Tracker) Begin(purpose Purpose) Ticket {
	ctx, cancel := context.WithCancel(t.parent)
	id := uuid.New()

	t.mu.Lock()
	if prev, ok := t.current[purpose]; ok {
		prev.cancel()
	}
	t.current[purpose] = inflight{id: id, cancel: cancel}
	t.mu.Unlock()

	return Ticket{Purpose: purpose, ID: id, ctx: ctx}
}

// Finish reports whether ticket is still the current request for its
// purpose and releases it. A false result means the response is stale and
// must be ignored.
func (t *Tracker) Finish(ticket Ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	cur, ok := t.current[ticket.Purpose]
	if !ok || cur.id != ticket.ID {
		return false
	}
	cur.cancel()
	delete(t.current, ticket.Purpose)
	return true
}

// Pending reports whether a request for purpose is in flight.
func (t *Tracker) Pending(purpose Purpose) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.current[purpose]
	return ok
}

// CancelAll cancels every in-flight request.
func (t *Tracker) CancelAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for purpose, cur := range t.current {
		cur.cancel()
		delete(t.current, purpose)
	}
}
