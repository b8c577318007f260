// Package latest keeps only the newest request per logical query alive.
//
// Every Begin for a key cancels the context handed to the previous caller of
// the same key and issues a fresh generation. A response is applied only if
// its ticket is still current when it arrives.
package latest

import (
	"context"
	"errors"
	"sync"
)

var ErrSuperseded = errors.New("superseded by a newer request")

type slot struct {
	gen    uint64
	cancel context.CancelFunc
}

// Tracker holds one slot per key while a request for it is in flight. Keys
// are dropped once their newest request finishes, so the key set is bounded
// by concurrent requests rather than by every key ever seen.
type Tracker struct {
	mu    sync.Mutex
	next  uint64
	slots map[string]*slot
}

func NewTracker() *Tracker {
	return &Tracker{slots: make(map[string]*slot)}
}

// Ticket identifies one request. Generations are unique across keys, so a
// ticket from before a key was dropped never matches a later request.
type Ticket struct {
	tracker *Tracker
	key     string
	gen     uint64
}

// Begin supersedes any in-flight request for key.
func (t *Tracker) Begin(ctx context.Context, key string) (context.Context, Ticket) {
	reqCtx, cancel := context.WithCancel(ctx)

	t.mu.Lock()
	if prev, ok := t.slots[key]; ok {
		prev.cancel()
	}
	t.next++
	gen := t.next
	t.slots[key] = &slot{gen: gen, cancel: cancel}
	t.mu.Unlock()

	return reqCtx, Ticket{tracker: t, key: key, gen: gen}
}

// Cancel aborts the in-flight request for key, if any. Responses that arrive
// afterwards are treated as stale.
func (t *Tracker) Cancel(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if prev, ok := t.slots[key]; ok {
		prev.cancel()
		delete(t.slots, key)
	}
}

func (t *Tracker) CancelAll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for key, prev := range t.slots {
		prev.cancel()
		delete(t.slots, key)
	}
}

// Len reports how many keys have a request in flight.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.slots)
}

func (tk Ticket) Generation() uint64 {
	return tk.gen
}

// Current reports whether no newer request for the same key was issued and
// the request was not cancelled.
func (tk Ticket) Current() bool {
	if tk.tracker == nil {
		return false
	}
	tk.tracker.mu.Lock()
	defer tk.tracker.mu.Unlock()

	current, ok := tk.tracker.slots[tk.key]
	return ok && current.gen == tk.gen
}

// Done releases the request context and forgets the key when this ticket is
// still the newest. It is safe to call on stale tickets.
func (tk Ticket) Done() {
	if tk.tracker == nil {
		return
	}
	tk.tracker.mu.Lock()
	defer tk.tracker.mu.Unlock()

	if current, ok := tk.tracker.slots[tk.key]; ok && current.gen == tk.gen {
		current.cancel()
		delete(tk.tracker.slots, tk.key)
	}
}

// Do runs fn under a fresh ticket for key and returns ErrSuperseded when a
// newer request for the same key started before fn returned.
func Do[T any](ctx context.Context, t *Tracker, key string, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	reqCtx, ticket := t.Begin(ctx, key)
	defer ticket.Done()

	out, err := fn(reqCtx)
	if !ticket.Current() {
		return zero, ErrSuperseded
	}
	if err != nil {
		return zero, err
	}
	return out, nil
}
