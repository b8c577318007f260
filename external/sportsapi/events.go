package sportsapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/riskibarqy/sportsboard/internal/domain/event"
)

// EventRepository serves the community event endpoints.
type EventRepository struct {
	client *Client
}

func NewEventRepository(client *Client) *EventRepository {
	return &EventRepository{client: client}
}

func (r *EventRepository) ListUpcoming(ctx context.Context) ([]event.Event, error) {
	var payload []eventDTO
	if err := r.client.getJSON(ctx, "/events/upcoming", nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch upcoming events: %w", err)
	}
	out := make([]event.Event, 0, len(payload))
	for _, item := range payload {
		out = append(out, item.toDomain())
	}
	return out, nil
}

// ToggleFollow flips the caller's follow on the event. The backend decides
// the direction from its own follower list.
func (r *EventRepository) ToggleFollow(ctx context.Context, token, eventID string) error {
	if err := r.client.sendJSON(ctx, http.MethodGet, "/events/follow/"+url.PathEscape(eventID), token, nil, nil); err != nil {
		return fmt.Errorf("toggle event follow: %w", err)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, token, eventID string) error {
	if err := r.client.sendJSON(ctx, http.MethodDelete, "/events/"+url.PathEscape(eventID), token, nil, nil); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (r *EventRepository) Create(ctx context.Context, token string, draft event.Draft) error {
	if err := r.client.sendJSON(ctx, http.MethodPost, "/events", token, newEventCreateDTO(draft), nil); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}
