package results

import (
	"context"
	"errors"
	"sync"
)

var ErrSuperseded = errors.New("results: superseded by a newer search")

// Ticket identifies one in-flight fetch.
type Ticket struct {
	seq uint64
}

// Tracker enforces that only the latest search of a visitor is applied.
// Starting a fetch cancels the previous one; a response that arrives after
// a newer fetch started is rejected by Finish.
type Tracker struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Begin cancels the in-flight fetch, if any, and returns a context for the
// new one.
func (t *Tracker) Begin(parent context.Context) (context.Context, Ticket) {
	ctx, cancel := context.WithCancel(parent)
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
	}
	t.seq++
	t.cancel = cancel
	return ctx, Ticket{seq: t.seq}
}

// Finish releases the ticket's context and reports ErrSuperseded when a
// newer fetch has started since.
func (t *Tracker) Finish(ticket Ticket) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if ticket.seq != t.seq {
		return ErrSuperseded
	}
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	return nil
}
