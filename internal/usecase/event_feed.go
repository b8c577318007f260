package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"

	"github.com/riskibarqy/sportsboard/internal/domain/event"
	"github.com/riskibarqy/sportsboard/internal/domain/user"
	"github.com/riskibarqy/sportsboard/internal/platform/latest"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
)

type FeedState string

const (
	FeedIdle       FeedState = "idle"
	FeedLoading    FeedState = "loading"
	FeedReady      FeedState = "ready"
	FeedRefreshing FeedState = "refreshing"
	FeedFailed     FeedState = "failed"
)

const (
	feedFetchKey   = "events.upcoming"
	feedErrorQueue = 16
)

var ErrFeedClosed = stderrors.New("event feed closed")

// EventView is one event as the viewer sees it.
type EventView struct {
	Event     event.Event
	Follow    event.FollowState
	CanDelete bool
}

type FeedSnapshot struct {
	State      FeedState
	Error      string
	Connection ConnectionState
	Events     []EventView
}

type EventFeedConfig struct {
	Logger   *logging.Logger
	Recorder FeedRecorder
}

// EventFeed keeps the upcoming events list in step with realtime
// notifications. Every notification triggers a full refetch; a newer fetch
// supersedes older ones in flight. Follow toggles are shown optimistically
// through an intent overlay and rolled back if the backend rejects them.
type EventFeed struct {
	events   event.Repository
	channel  RealtimeChannel
	sessions *SessionService
	prefs    *PreferenceService
	tracker  *latest.Tracker
	recorder FeedRecorder
	logger   *logging.Logger

	ctx    context.Context
	cancel context.CancelFunc
	bg     sync.WaitGroup
	errs   chan error

	mu       sync.Mutex
	state    FeedState
	lastErr  error
	items    []event.Event
	viewerID string
	intents  event.IntentSet
	desired  map[string]bool
	unsubs   []func()
	closed   bool
}

func NewEventFeed(
	events event.Repository,
	channel RealtimeChannel,
	sessions *SessionService,
	prefs *PreferenceService,
	cfg EventFeedConfig,
) *EventFeed {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	recorder := cfg.Recorder
	if recorder == nil {
		recorder = nopFeedRecorder{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &EventFeed{
		events:   events,
		channel:  channel,
		sessions: sessions,
		prefs:    prefs,
		tracker:  latest.NewTracker(),
		recorder: recorder,
		logger:   logger.Named("event_feed"),
		ctx:      ctx,
		cancel:   cancel,
		errs:     make(chan error, feedErrorQueue),
		state:    FeedIdle,
		intents:  event.NewIntentSet(),
		desired:  map[string]bool{},
	}
}

// Start subscribes to event notifications and loads the list. It is a no-op
// once the feed is loaded; a failed feed is retried.
func (f *EventFeed) Start(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventFeed.Start")
	defer span.End()

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrFeedClosed
	}
	if f.state != FeedIdle && f.state != FeedFailed {
		f.mu.Unlock()
		return nil
	}
	f.state = FeedLoading
	if f.channel != nil && len(f.unsubs) == 0 {
		f.unsubs = append(f.unsubs,
			f.channel.Subscribe(TopicNewEvent, func([]byte) { f.onNotification(TopicNewEvent) }),
			f.channel.Subscribe(TopicDeleteEvent, func([]byte) { f.onNotification(TopicDeleteEvent) }),
		)
	}
	f.mu.Unlock()

	f.loadOverlay(ctx)
	return ignoreSuperseded(f.refetch(ctx))
}

// Refresh refetches on demand. A failed feed goes back to loading.
func (f *EventFeed) Refresh(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventFeed.Refresh")
	defer span.End()

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrFeedClosed
	}
	switch f.state {
	case FeedIdle, FeedFailed:
		f.state = FeedLoading
	case FeedReady:
		f.state = FeedRefreshing
	}
	f.mu.Unlock()

	return ignoreSuperseded(f.refetch(ctx))
}

// ignoreSuperseded treats a fetch overtaken by a newer one as done; the newer
// fetch owns the outcome.
func ignoreSuperseded(err error) error {
	if stderrors.Is(err, latest.ErrSuperseded) {
		return nil
	}
	return err
}

func (f *EventFeed) onNotification(topic string) {
	f.recorder.FeedNotification(topic)

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	switch f.state {
	case FeedIdle, FeedFailed:
		f.mu.Unlock()
		f.logger.Debug("notification ignored", "topic", topic, "state", string(f.State()))
		return
	case FeedReady:
		f.state = FeedRefreshing
	}
	f.bg.Add(1)
	f.mu.Unlock()

	go func() {
		defer f.bg.Done()
		if err := f.refetch(f.ctx); err != nil && !stderrors.Is(err, latest.ErrSuperseded) {
			f.logger.Debug("refetch after notification failed", "topic", topic, "error", err)
		}
	}()
}

// refetch replaces the list wholesale. Responses from superseded fetches are
// dropped. A failed refresh keeps the previous list; a failed initial load
// moves the feed to failed.
func (f *EventFeed) refetch(ctx context.Context) error {
	reqCtx, ticket := f.tracker.Begin(ctx, feedFetchKey)
	defer ticket.Done()

	items, err := f.events.ListUpcoming(reqCtx)
	if !ticket.Current() {
		f.recorder.FeedSuperseded()
		return latest.ErrSuperseded
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrFeedClosed
	}
	if err != nil {
		err = fmt.Errorf("list upcoming events: %w", err)
		if f.state == FeedLoading {
			f.state = FeedFailed
			f.lastErr = err
			f.mu.Unlock()
			f.recorder.FeedFetch("failed")
			f.logger.WarnContext(ctx, "load upcoming events failed", "error", err)
			return err
		}
		f.state = FeedReady
		f.mu.Unlock()
		f.recorder.FeedFetch("degraded")
		f.logger.WarnContext(ctx, "refresh upcoming events failed, keeping previous list", "error", err)
		return err
	}

	f.items = items
	f.state = FeedReady
	f.lastErr = nil
	overlay, changed := f.reconcileLocked()
	f.mu.Unlock()

	f.recorder.FeedFetch("ok")
	if changed {
		f.saveOverlay(ctx, overlay)
	}
	return nil
}

// reconcileLocked drops intents the fresh list has made redundant.
func (f *EventFeed) reconcileLocked() (FollowOverlay, bool) {
	next := event.Reconcile(f.intents, f.items, f.viewerID, f.desired)
	if next.Equal(f.intents) {
		return FollowOverlay{}, false
	}

	f.intents = next
	for id := range f.desired {
		if !next.Has(id) {
			delete(f.desired, id)
		}
	}
	return f.overlayLocked(), true
}

// RequestDelete deletes an event the viewer hosts, or any event for admins.
// Other clients learn about it through a delete-event emit.
func (f *EventFeed) RequestDelete(ctx context.Context, eventID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventFeed.RequestDelete")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	session, err := f.sessions.RequireActive(ctx)
	if err != nil {
		return err
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrFeedClosed
	}
	item, found := event.FindByID(f.items, eventID)
	if !found {
		f.mu.Unlock()
		return fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}
	if !item.CanDelete(session.UserID, session.IsAdmin) {
		f.mu.Unlock()
		return fmt.Errorf("%w: only the host or an admin may delete event=%s", ErrForbidden, eventID)
	}
	previous := f.state
	if previous == FeedReady {
		f.state = FeedRefreshing
	}
	f.mu.Unlock()

	if err := f.events.Delete(ctx, session.Token, eventID); err != nil {
		f.mu.Lock()
		if f.state == FeedRefreshing && previous == FeedReady {
			f.state = FeedReady
		}
		f.mu.Unlock()
		return fmt.Errorf("delete event: %w", err)
	}

	if f.channel != nil {
		if err := f.channel.Emit(ctx, TopicDeleteEvent, session.Token); err != nil {
			f.logger.WarnContext(ctx, "emit delete-event failed", "event_id", eventID, "error", err)
		}
	}

	if err := f.refetch(ctx); err != nil && !stderrors.Is(err, latest.ErrSuperseded) {
		f.logger.WarnContext(ctx, "refetch after delete failed", "event_id", eventID, "error", err)
	}
	return nil
}

// RequestFollow flips the viewer's follow state at once and sends the toggle
// in the background. A rejected toggle is rolled back and reported on Errors.
func (f *EventFeed) RequestFollow(ctx context.Context, eventID string) (event.FollowState, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventFeed.RequestFollow")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return event.FollowState{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	session, err := f.sessions.RequireActive(ctx)
	if err != nil {
		return event.FollowState{}, err
	}
	f.ensureViewer(ctx, session.UserID)

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return event.FollowState{}, ErrFeedClosed
	}
	item, found := event.FindByID(f.items, eventID)
	if !found {
		f.mu.Unlock()
		return event.FollowState{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}
	f.toggleLocked(item, eventID)
	state := event.EffectiveState(item, f.viewerID, f.intents)
	overlay := f.overlayLocked()
	f.bg.Add(1)
	f.mu.Unlock()

	f.saveOverlay(ctx, overlay)

	go func() {
		defer f.bg.Done()
		if err := f.events.ToggleFollow(f.ctx, session.Token, eventID); err != nil {
			f.rollbackFollow(session.UserID, eventID, err)
		}
	}()

	return state, nil
}

func (f *EventFeed) toggleLocked(item event.Event, eventID string) {
	f.intents = event.ToggleIntent(f.intents, eventID)
	if f.intents.Has(eventID) {
		f.desired[eventID] = !item.HasFollower(f.viewerID)
	} else {
		delete(f.desired, eventID)
	}
}

func (f *EventFeed) rollbackFollow(viewerID, eventID string, cause error) {
	f.mu.Lock()
	if f.closed || f.viewerID != viewerID {
		f.mu.Unlock()
		return
	}
	item, found := event.FindByID(f.items, eventID)
	if !found {
		item = event.Event{ID: eventID}
	}
	f.toggleLocked(item, eventID)
	overlay := f.overlayLocked()
	f.mu.Unlock()

	f.recorder.FollowRollback()
	f.saveOverlay(f.ctx, overlay)

	err := fmt.Errorf("follow event=%s: %w", eventID, cause)
	f.logger.Warn("follow toggle rejected, rolled back", "event_id", eventID, "error", cause)
	select {
	case f.errs <- err:
	default:
		f.logger.Warn("follow error dropped, queue full", "event_id", eventID)
	}
}

// Errors delivers background follow failures. It is closed by Close.
func (f *EventFeed) Errors() <-chan error {
	return f.errs
}

// Wait blocks until background follow requests and notification refetches finish.
func (f *EventFeed) Wait() {
	f.bg.Wait()
}

func (f *EventFeed) State() FeedState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *EventFeed) ConnectionState() ConnectionState {
	if f.channel == nil {
		return ConnectionClosed
	}
	return f.channel.State()
}

// Snapshot renders the list for viewer. The intent overlay applies only to
// the viewer it was recorded for.
func (f *EventFeed) Snapshot(viewer user.Session) FeedSnapshot {
	viewerID := ""
	if !viewer.IsAnonymous() {
		viewerID = viewer.UserID
	}

	f.mu.Lock()
	intents := event.NewIntentSet()
	if viewerID != "" && viewerID == f.viewerID {
		intents = f.intents
	}
	out := FeedSnapshot{
		State:  f.state,
		Events: make([]EventView, 0, len(f.items)),
	}
	if f.lastErr != nil {
		out.Error = f.lastErr.Error()
	}
	for _, item := range f.items {
		out.Events = append(out.Events, EventView{
			Event:     item,
			Follow:    event.EffectiveState(item, viewerID, intents),
			CanDelete: viewerID != "" && item.CanDelete(viewerID, viewer.IsAdmin),
		})
	}
	f.mu.Unlock()

	out.Connection = f.ConnectionState()
	return out
}

// Close releases subscriptions, cancels fetches in flight and waits for
// background work.
func (f *EventFeed) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	unsubs := f.unsubs
	f.unsubs = nil
	f.mu.Unlock()

	for _, unsubscribe := range unsubs {
		unsubscribe()
	}
	f.cancel()
	f.tracker.CancelAll()
	f.bg.Wait()
	close(f.errs)
}

func (f *EventFeed) loadOverlay(ctx context.Context) {
	session, err := f.sessions.Current(ctx)
	if err != nil {
		f.logger.WarnContext(ctx, "read session failed", "error", err)
		return
	}
	if session.IsAnonymous() {
		return
	}
	f.ensureViewer(ctx, session.UserID)
}

// ensureViewer switches the in-memory overlay to viewerID, loading what was
// persisted for that viewer.
func (f *EventFeed) ensureViewer(ctx context.Context, viewerID string) {
	f.mu.Lock()
	same := f.viewerID == viewerID
	f.mu.Unlock()
	if same {
		return
	}

	overlay, err := f.prefs.FollowOverlay(ctx, viewerID)
	if err != nil {
		f.logger.WarnContext(ctx, "read follow overlay failed", "error", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.viewerID == viewerID {
		return
	}
	f.viewerID = viewerID
	f.intents = overlay.IntentSet()
	f.desired = make(map[string]bool, len(overlay.Desired))
	for id, want := range overlay.Desired {
		f.desired[id] = want
	}
}

func (f *EventFeed) overlayLocked() FollowOverlay {
	desired := make(map[string]bool, len(f.desired))
	for id, want := range f.desired {
		desired[id] = want
	}
	return FollowOverlay{
		ViewerID: f.viewerID,
		Intents:  f.intents.IDs(),
		Desired:  desired,
	}
}

func (f *EventFeed) saveOverlay(ctx context.Context, overlay FollowOverlay) {
	if f.prefs == nil {
		return
	}
	if err := f.prefs.SaveFollowOverlay(ctx, overlay); err != nil {
		f.logger.WarnContext(ctx, "persist follow overlay failed", "error", err)
	}
}
