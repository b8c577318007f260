package httpapi

import (
	"net/http"

	"github.com/riskibarqy/sportsboard/internal/platform/id"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
)

type RouterConfig struct {
	Logger             *logging.Logger
	Observer           HTTPObserver
	MetricsHandler     http.Handler
	RequestIDs         id.Generator
	CORSAllowedOrigins []string
	BodyCapture        BodyCapture
}

func NewRouter(handler *Handler, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	routes := routeRegistrar{mux: mux, observer: cfg.Observer}
	registerSystemRoutes(routes, handler, cfg.MetricsHandler)
	registerStandingsRoutes(routes, handler)
	registerCatalogRoutes(routes, handler)
	registerScheduleRoutes(routes, handler)
	registerEventRoutes(routes, handler)
	registerSessionRoutes(routes, handler)
	registerPreferenceRoutes(routes, handler)

	return RequestTracing(captureRequestBody(cfg.BodyCapture,
		RequestID(cfg.RequestIDs,
			RequestLogging(logger,
				CORS(cfg.CORSAllowedOrigins,
					ViewScope(recoverPanic(logger, mux)))))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
