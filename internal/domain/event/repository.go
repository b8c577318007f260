package event

import "context"

// Repository is the backend's event API as seen by an authenticated client.
// token is the viewer's bearer token.
type Repository interface {
	ListUpcoming(ctx context.Context) ([]Event, error)
	ToggleFollow(ctx context.Context, token, eventID string) error
	Delete(ctx context.Context, token, eventID string) error
	Create(ctx context.Context, token string, draft Draft) error
}
