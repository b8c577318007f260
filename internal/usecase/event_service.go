package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/sportsboard/internal/domain/event"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
)

// EventService composes and submits new events.
type EventService struct {
	events   event.Repository
	channel  RealtimeChannel
	sessions *SessionService
	prefs    *PreferenceService
	logger   *logging.Logger
	now      func() time.Time
}

func NewEventService(
	events event.Repository,
	channel RealtimeChannel,
	sessions *SessionService,
	prefs *PreferenceService,
	logger *logging.Logger,
) *EventService {
	if logger == nil {
		logger = logging.Default()
	}
	return &EventService{
		events:   events,
		channel:  channel,
		sessions: sessions,
		prefs:    prefs,
		logger:   logger.Named("events"),
		now:      time.Now,
	}
}

// Draft returns the saved draft, or a fresh one dated today.
func (s *EventService) Draft(ctx context.Context) (event.Draft, error) {
	draft, found, err := s.prefs.EventDraft(ctx)
	if err != nil {
		return event.Draft{}, err
	}
	if !found {
		return event.DefaultDraft(s.now()), nil
	}
	return draft, nil
}

func (s *EventService) SaveDraft(ctx context.Context, draft event.Draft) error {
	return s.prefs.SaveEventDraft(ctx, draft)
}

// Create submits draft for the signed-in viewer, announces it on the realtime
// channel and discards the saved draft.
func (s *EventService) Create(ctx context.Context, draft event.Draft) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Create")
	defer span.End()

	draft = draft.Normalize()
	if err := validateStruct(ctx, draft); err != nil {
		if saveErr := s.prefs.SaveEventDraft(ctx, draft); saveErr != nil {
			s.logger.WarnContext(ctx, "save event draft failed", "error", saveErr)
		}
		return err
	}
	if err := draft.CheckLocation(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	session, err := s.sessions.RequireActive(ctx)
	if err != nil {
		return err
	}

	if err := s.events.Create(ctx, session.Token, draft); err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	if s.channel != nil {
		if err := s.channel.Emit(ctx, TopicCreateEvent, session.Token); err != nil {
			s.logger.WarnContext(ctx, "emit create-event failed", "error", err)
		}
	}
	if err := s.prefs.ClearEventDraft(ctx); err != nil {
		s.logger.WarnContext(ctx, "clear event draft failed", "error", err)
	}

	s.logger.InfoContext(ctx, "event created", "name", draft.Name, "user_id", session.UserID)
	return nil
}
