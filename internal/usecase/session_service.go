package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/sportsboard/internal/domain/user"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
)

// SessionService signs the viewer in and out and guards mutating requests
// against expired tokens.
type SessionService struct {
	accounts user.AccountGateway
	prefs    *PreferenceService
	logger   *logging.Logger
	now      func() time.Time
}

func NewSessionService(accounts user.AccountGateway, prefs *PreferenceService, logger *logging.Logger) *SessionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SessionService{
		accounts: accounts,
		prefs:    prefs,
		logger:   logger.Named("session"),
		now:      time.Now,
	}
}

func (s *SessionService) Login(ctx context.Context, creds user.Credentials) (user.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Login")
	defer span.End()

	creds.Username = strings.TrimSpace(creds.Username)
	if err := validateStruct(ctx, creds); err != nil {
		return user.Session{}, err
	}

	session, err := s.accounts.Login(ctx, creds)
	if err != nil {
		return user.Session{}, fmt.Errorf("login: %w", err)
	}
	if session.Token == "" {
		return user.Session{}, fmt.Errorf("%w: login response has no token", ErrUnauthorized)
	}

	if err := s.prefs.SaveSession(ctx, session); err != nil {
		return user.Session{}, err
	}
	if err := s.prefs.SaveLoginDraft(ctx, LoginDraft{}); err != nil {
		s.logger.WarnContext(ctx, "clear login draft failed", "error", err)
	}

	s.logger.InfoContext(ctx, "signed in", "user_id", session.UserID)
	return session, nil
}

// Register creates an account. A taken username surfaces as ErrConflict.
func (s *SessionService) Register(ctx context.Context, reg user.Registration) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Register")
	defer span.End()

	reg.Username = strings.TrimSpace(reg.Username)
	reg.Email = strings.TrimSpace(reg.Email)
	if err := validateStruct(ctx, reg); err != nil {
		return err
	}

	if err := s.accounts.Register(ctx, reg); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	if err := s.prefs.SaveRegisterDraft(ctx, RegisterDraft{}); err != nil {
		s.logger.WarnContext(ctx, "clear register draft failed", "error", err)
	}
	return nil
}

func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.prefs.ClearSession(ctx); err != nil {
		return err
	}
	return s.prefs.SaveFollowOverlay(ctx, FollowOverlay{})
}

// Current returns the stored session; it may be anonymous or expired.
func (s *SessionService) Current(ctx context.Context) (user.Session, error) {
	return s.prefs.Session(ctx)
}

// RequireActive returns the session when it is signed in and unexpired. An
// expired session is cleared before ErrSessionExpired is returned.
func (s *SessionService) RequireActive(ctx context.Context) (user.Session, error) {
	session, err := s.prefs.Session(ctx)
	if err != nil {
		return user.Session{}, err
	}
	if session.IsAnonymous() {
		return user.Session{}, fmt.Errorf("%w: sign in required", ErrUnauthorized)
	}
	if session.Expired(s.now()) {
		if err := s.Logout(ctx); err != nil {
			s.logger.WarnContext(ctx, "clear expired session failed", "error", err)
		}
		s.logger.InfoContext(ctx, "session expired", "user_id", session.UserID)
		return user.Session{}, ErrSessionExpired
	}
	return session, nil
}

func (s *SessionService) Profile(ctx context.Context, userID string) (user.Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.Profile{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	profile, err := s.accounts.GetProfile(ctx, userID)
	if err != nil {
		return user.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

func (s *SessionService) UpdateProfile(ctx context.Context, update user.ProfileUpdate) (user.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.UpdateProfile")
	defer span.End()

	update.Username = strings.TrimSpace(update.Username)
	update.Email = strings.TrimSpace(update.Email)
	if err := validateStruct(ctx, update); err != nil {
		return user.Session{}, err
	}

	session, err := s.RequireActive(ctx)
	if err != nil {
		return user.Session{}, err
	}

	profile, err := s.accounts.UpdateProfile(ctx, session.Token, session.UserID, update)
	if err != nil {
		return user.Session{}, fmt.Errorf("update profile: %w", err)
	}
	return s.applyProfile(ctx, session, profile)
}

// applyProfile keeps the bearer token and admin flag, which profile responses omit.
func (s *SessionService) applyProfile(ctx context.Context, session user.Session, profile user.Profile) (user.Session, error) {
	if profile.Username != "" {
		session.Username = profile.Username
	}
	if profile.Email != "" {
		session.Email = profile.Email
	}
	if profile.Image != "" {
		session.Image = profile.Image
	}
	if err := s.prefs.SaveSession(ctx, session); err != nil {
		return user.Session{}, err
	}
	return session, nil
}
