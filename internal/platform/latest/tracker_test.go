package latest

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTracker_NewerRequestCancelsOlder(t *testing.T) {
	t.Parallel()

	tracker := NewTracker()
	firstCtx, first := tracker.Begin(context.Background(), "standings:football")
	secondCtx, second := tracker.Begin(context.Background(), "standings:football")
	defer second.Done()

	select {
	case <-firstCtx.Done():
	case <-time.After(time.Second):
		t.Fatalf("expected first context to be cancelled")
	}
	if first.Current() {
		t.Fatalf("expected first ticket to be stale")
	}
	if !second.Current() {
		t.Fatalf("expected second ticket to be current")
	}
	if secondCtx.Err() != nil {
		t.Fatalf("expected second context alive, got %v", secondCtx.Err())
	}

	first.Done()
	if secondCtx.Err() != nil {
		t.Fatalf("stale Done must not cancel the newer request")
	}
}

func TestTracker_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	tracker := NewTracker()
	aCtx, a := tracker.Begin(context.Background(), "a")
	_, b := tracker.Begin(context.Background(), "b")
	defer a.Done()
	defer b.Done()

	if aCtx.Err() != nil || !a.Current() || !b.Current() {
		t.Fatalf("expected both keys to stay current")
	}
}

func TestTracker_CancelMarksInFlightStale(t *testing.T) {
	t.Parallel()

	tracker := NewTracker()
	ctx, ticket := tracker.Begin(context.Background(), "team-page")
	tracker.Cancel("team-page")

	if ctx.Err() == nil {
		t.Fatalf("expected cancelled context")
	}
	if ticket.Current() {
		t.Fatalf("expected cancelled ticket to be stale")
	}
}

func TestDo_DropsSupersededResult(t *testing.T) {
	t.Parallel()

	tracker := NewTracker()
	release := make(chan struct{})
	started := make(chan struct{})
	result := make(chan error, 1)

	go func() {
		_, err := Do(context.Background(), tracker, "k", func(ctx context.Context) (int, error) {
			close(started)
			<-release
			return 1, nil
		})
		result <- err
	}()

	<-started
	got, err := Do(context.Background(), tracker, "k", func(context.Context) (int, error) { return 2, nil })
	if err != nil || got != 2 {
		t.Fatalf("expected newer result, got %d, %v", got, err)
	}
	close(release)

	if err := <-result; !errors.Is(err, ErrSuperseded) {
		t.Fatalf("expected ErrSuperseded for stale call, got %v", err)
	}
}

func TestTracker_FinishedKeysAreForgotten(t *testing.T) {
	t.Parallel()

	tracker := NewTracker()
	for _, view := range []string{"graph", "table", "team-page"} {
		_, ticket := tracker.Begin(context.Background(), view)
		ticket.Done()
	}
	if n := tracker.Len(); n != 0 {
		t.Fatalf("expected no tracked keys after every request finished, got %d", n)
	}

	_, stale := tracker.Begin(context.Background(), "graph")
	_, newer := tracker.Begin(context.Background(), "graph")
	stale.Done()
	if tracker.Len() != 1 {
		t.Fatalf("stale Done must keep the newer request tracked")
	}
	newer.Done()
	if tracker.Len() != 0 {
		t.Fatalf("expected key dropped after newest request finished")
	}
}

func TestTracker_StaleTicketStaysStaleAfterKeyReuse(t *testing.T) {
	t.Parallel()

	tracker := NewTracker()
	_, old := tracker.Begin(context.Background(), "graph")
	_, mid := tracker.Begin(context.Background(), "graph")
	mid.Done()

	_, fresh := tracker.Begin(context.Background(), "graph")
	defer fresh.Done()

	if old.Current() {
		t.Fatalf("ticket superseded before the key was dropped must stay stale")
	}
	if !fresh.Current() {
		t.Fatalf("expected fresh ticket to be current")
	}
}
