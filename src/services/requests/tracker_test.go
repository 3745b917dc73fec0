package requests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBeginSupersedesSamePurpose(t *testing.T) {
	tr := NewTracker(context.Background())

	first := tr.Begin(Analytics)
	second := tr.Begin(Analytics)

	assert.ErrorIs(t, first.Context().Err(), context.Canceled)
	assert.NoError(t, second.Context().Err())

	// The stale response arrives after the newer request began.
	assert.False(t, tr.Finish(first))
	assert.True(t, tr.Pending(Analytics))
	assert.True(t, tr.Finish(second))
	assert.False(t, tr.Pending(Analytics))
}

func TestStaleResponseAfterNewerFinished(t *testing.T) {
	tr := NewTracker(context.Background())

	first := tr.Begin(Chart)
	second := tr.Begin(Chart)
	assert.True(t, tr.Finish(second))
	assert.False(t, tr.Finish(first))
}

func TestPurposesAreIndependent(t *testing.T) {
	tr := NewTracker(context.Background())

	chat := tr.Begin(Chat)
	analytics := tr.Begin(Analytics)
	chart := tr.Begin(Chart)

	assert.NoError(t, chat.Context().Err())
	assert.True(t, tr.Finish(analytics))
	assert.True(t, tr.Finish(chat))
	assert.True(t, tr.Finish(chart))
}

func TestFinishTwice(t *testing.T) {
	tr := NewTracker(context.Background())
	ticket := tr.Begin(Scholarship)
	assert.True(t, tr.Finish(ticket))
	assert.False(t, tr.Finish(ticket))
	assert.ErrorIs(t, ticket.Context().Err(), context.Canceled)
}

func TestCancelAll(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	defer cancel()
	tr := NewTracker(parent)

	a := tr.Begin(Chat)
	b := tr.Begin(Analytics)
	tr.CancelAll()

	assert.Error(t, a.Context().Err())
	assert.Error(t, b.Context().Err())
	assert.False(t, tr.Pending(Chat))
	assert.False(t, tr.Finish(a))
}

func TestZeroTicketContext(t *testing.T) {
	var ticket Ticket
	assert.NotNil(t, ticket.Context())
}
