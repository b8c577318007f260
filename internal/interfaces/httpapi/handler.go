package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
	"github.com/riskibarqy/sportsboard/internal/usecase"
)

const maxJSONBodyBytes = 1 << 20

// Services groups the usecases served over HTTP. A nil service leaves its
// routes unregistered.
type Services struct {
	Standings   *usecase.StandingsService
	Catalog     *usecase.CatalogService
	Schedule    *usecase.ScheduleService
	Sessions    *usecase.SessionService
	Preferences *usecase.PreferenceService
	Events      *usecase.EventService
	Feed        *usecase.EventFeed
}

type Handler struct {
	standings   *usecase.StandingsService
	catalog     *usecase.CatalogService
	schedule    *usecase.ScheduleService
	sessions    *usecase.SessionService
	preferences *usecase.PreferenceService
	events      *usecase.EventService
	feed        *usecase.EventFeed
	logger      *logging.Logger
	validator   *validator.Validate
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		standings:   services.Standings,
		catalog:     services.Catalog,
		schedule:    services.Schedule,
		sessions:    services.Sessions,
		preferences: services.Preferences,
		events:      services.Events,
		feed:        services.Feed,
		logger:      logger.Named("httpapi"),
		validator:   validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	payload := map[string]string{"status": "ok"}
	if h.feed != nil {
		payload["realtime"] = string(h.feed.ConnectionState())
		payload["feed"] = string(h.feed.State())
	}
	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeJSON reads a bounded JSON body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxJSONBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func pathSport(r *http.Request) (sport.Sport, error) {
	sp, err := sport.Parse(r.PathValue("sport"))
	if err != nil {
		return "", fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return sp, nil
}

func parseSeason(raw string) (int, error) {
	season, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || season <= 0 {
		return 0, fmt.Errorf("%w: invalid season %q", usecase.ErrInvalidInput, raw)
	}
	return season, nil
}

// queryInt reads an optional positive integer query value; absent yields fallback.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}
