package usecase

import (
	"context"
	"fmt"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/sportsboard/internal/domain/event"
	"github.com/riskibarqy/sportsboard/internal/domain/localstate"
	"github.com/riskibarqy/sportsboard/internal/domain/user"
)

// ViewFilter is the filter selection remembered per view.
type ViewFilter struct {
	Sport    string `json:"sport,omitempty"`
	Season   int    `json:"season,omitempty"`
	TeamID   string `json:"teamId,omitempty"`
	TeamName string `json:"teamName,omitempty"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
	Page     int    `json:"page,omitempty"`
}

// FollowOverlay is the persisted follow intent set plus the follow state the
// viewer asked for when each toggle was made.
type FollowOverlay struct {
	ViewerID string          `json:"viewerId"`
	Intents  []string        `json:"intents"`
	Desired  map[string]bool `json:"desired,omitempty"`
}

func (o FollowOverlay) IntentSet() event.IntentSet {
	return event.NewIntentSet(o.Intents...)
}

// LoginDraft keeps a half-typed login form. Passwords are never stored.
type LoginDraft struct {
	Username string `json:"username"`
}

type RegisterDraft struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// PreferenceService reads and writes typed values in local state.
type PreferenceService struct {
	store localstate.Store
}

func NewPreferenceService(store localstate.Store) *PreferenceService {
	return &PreferenceService{store: store}
}

func (s *PreferenceService) LastPath(ctx context.Context) (string, error) {
	var out string
	_, err := s.get(ctx, localstate.KeyLastPath, &out)
	return out, err
}

func (s *PreferenceService) SetLastPath(ctx context.Context, path string) error {
	path = strings.TrimSpace(path)
	if path == "" || !strings.HasPrefix(path, "/") {
		return fmt.Errorf("%w: path must start with /", ErrInvalidInput)
	}
	return s.put(ctx, localstate.KeyLastPath, path)
}

// Session returns the stored session, or the anonymous session when none is stored.
func (s *PreferenceService) Session(ctx context.Context) (user.Session, error) {
	var out user.Session
	_, err := s.get(ctx, localstate.KeySession, &out)
	return out, err
}

func (s *PreferenceService) SaveSession(ctx context.Context, session user.Session) error {
	return s.put(ctx, localstate.KeySession, session)
}

func (s *PreferenceService) ClearSession(ctx context.Context) error {
	return s.delete(ctx, localstate.KeySession)
}

// FollowOverlay returns the overlay stored for viewerID. An overlay written by
// another viewer is ignored.
func (s *PreferenceService) FollowOverlay(ctx context.Context, viewerID string) (FollowOverlay, error) {
	var out FollowOverlay
	found, err := s.get(ctx, localstate.KeyFollowOverlay, &out)
	if err != nil || !found || out.ViewerID != viewerID {
		return FollowOverlay{ViewerID: viewerID}, err
	}
	return out, nil
}

func (s *PreferenceService) SaveFollowOverlay(ctx context.Context, overlay FollowOverlay) error {
	if len(overlay.Intents) == 0 {
		return s.delete(ctx, localstate.KeyFollowOverlay)
	}
	return s.put(ctx, localstate.KeyFollowOverlay, overlay)
}

func (s *PreferenceService) EventDraft(ctx context.Context) (event.Draft, bool, error) {
	var out event.Draft
	found, err := s.get(ctx, localstate.KeyEventDraft, &out)
	return out, found, err
}

func (s *PreferenceService) SaveEventDraft(ctx context.Context, draft event.Draft) error {
	return s.put(ctx, localstate.KeyEventDraft, draft)
}

func (s *PreferenceService) ClearEventDraft(ctx context.Context) error {
	return s.delete(ctx, localstate.KeyEventDraft)
}

func (s *PreferenceService) LoginDraft(ctx context.Context) (LoginDraft, error) {
	var out LoginDraft
	_, err := s.get(ctx, localstate.KeyLoginDraft, &out)
	return out, err
}

func (s *PreferenceService) SaveLoginDraft(ctx context.Context, draft LoginDraft) error {
	return s.put(ctx, localstate.KeyLoginDraft, draft)
}

func (s *PreferenceService) RegisterDraft(ctx context.Context) (RegisterDraft, error) {
	var out RegisterDraft
	_, err := s.get(ctx, localstate.KeyRegisterDraft, &out)
	return out, err
}

func (s *PreferenceService) SaveRegisterDraft(ctx context.Context, draft RegisterDraft) error {
	return s.put(ctx, localstate.KeyRegisterDraft, draft)
}

func (s *PreferenceService) Filter(ctx context.Context, view string) (ViewFilter, bool, error) {
	if strings.TrimSpace(view) == "" {
		return ViewFilter{}, false, fmt.Errorf("%w: view is required", ErrInvalidInput)
	}
	var out ViewFilter
	found, err := s.get(ctx, localstate.FilterKey(view), &out)
	return out, found, err
}

func (s *PreferenceService) SaveFilter(ctx context.Context, view string, filter ViewFilter) error {
	if strings.TrimSpace(view) == "" {
		return fmt.Errorf("%w: view is required", ErrInvalidInput)
	}
	return s.put(ctx, localstate.FilterKey(view), filter)
}

// Filters returns every remembered view filter keyed by view name.
func (s *PreferenceService) Filters(ctx context.Context) (map[string]ViewFilter, error) {
	entries, err := s.store.ListByPrefix(ctx, localstate.FilterPrefix())
	if err != nil {
		return nil, fmt.Errorf("list filters: %w", err)
	}

	out := make(map[string]ViewFilter, len(entries))
	for _, entry := range entries {
		var filter ViewFilter
		if err := sonic.Unmarshal(entry.Value, &filter); err != nil {
			continue
		}
		out[strings.TrimPrefix(string(entry.Key), localstate.FilterPrefix())] = filter
	}
	return out, nil
}

func (s *PreferenceService) get(ctx context.Context, key localstate.Key, dst any) (bool, error) {
	entry, found, err := s.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("get local state %s: %w", key, err)
	}
	if !found || len(entry.Value) == 0 {
		return false, nil
	}
	if err := sonic.Unmarshal(entry.Value, dst); err != nil {
		return false, fmt.Errorf("decode local state %s: %w", key, err)
	}
	return true, nil
}

func (s *PreferenceService) put(ctx context.Context, key localstate.Key, value any) error {
	raw, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode local state %s: %w", key, err)
	}
	if err := s.store.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("put local state %s: %w", key, err)
	}
	return nil
}

func (s *PreferenceService) delete(ctx context.Context, key localstate.Key) error {
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete local state %s: %w", key, err)
	}
	return nil
}
