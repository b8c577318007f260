package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/riskibarqy/sportsboard/external/socketio"
	"github.com/riskibarqy/sportsboard/external/sportsapi"
	"github.com/riskibarqy/sportsboard/internal/config"
	"github.com/riskibarqy/sportsboard/internal/domain/localstate"
	"github.com/riskibarqy/sportsboard/internal/domain/user"
	"github.com/riskibarqy/sportsboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/sportsboard/internal/infrastructure/repository/sqlstore"
	"github.com/riskibarqy/sportsboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/sportsboard/internal/metrics"
	"github.com/riskibarqy/sportsboard/internal/observability"
	"github.com/riskibarqy/sportsboard/internal/platform/cache"
	idgen "github.com/riskibarqy/sportsboard/internal/platform/id"
	"github.com/riskibarqy/sportsboard/internal/platform/latest"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
	"github.com/riskibarqy/sportsboard/internal/platform/resilience"
	"github.com/riskibarqy/sportsboard/internal/usecase"
)

// Options carries process-level dependencies that tests replace.
type Options struct {
	// Registerer and Gatherer default to the Prometheus globals.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	HTTPClient *http.Client
}

// Container is the wired application: every usecase plus the realtime
// channel and the resources that must be released on shutdown.
type Container struct {
	Config      config.Config
	Logger      *logging.Logger
	Metrics     *metrics.Service
	Socket      *socketio.Client
	Standings   *usecase.StandingsService
	Catalog     *usecase.CatalogService
	Schedule    *usecase.ScheduleService
	Sessions    *usecase.SessionService
	Preferences *usecase.PreferenceService
	Events      *usecase.EventService
	Feed        *usecase.EventFeed

	gatherer prometheus.Gatherer
	closers  []func() error
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger, opts Options) (*Container, error) {
	if logger == nil {
		logger = logging.Default()
	}

	c := &Container{Config: cfg, Logger: logger}

	state, err := c.openLocalState(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.MetricsEnabled {
		registerer := opts.Registerer
		if registerer == nil {
			registerer = prometheus.DefaultRegisterer
		}
		c.gatherer = opts.Gatherer
		if c.gatherer == nil {
			c.gatherer = prometheus.DefaultGatherer
		}
		c.Metrics = metrics.NewService(registerer)
	}

	client := sportsapi.NewClient(sportsapi.ClientConfig{
		HTTPClient: opts.HTTPClient,
		BaseURL:    cfg.SportsAPIBaseURL,
		Timeout:    cfg.SportsAPITimeout,
		MaxRetries: cfg.SportsAPIMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SportsAPICircuitEnabled,
			FailureThreshold: cfg.SportsAPICircuitFailureCount,
			OpenTimeout:      cfg.SportsAPICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SportsAPICircuitHalfOpenMaxReq,
			OnStateChange: func(from, to resilience.CircuitState) {
				logger.Warn("sports api circuit changed", "from", from, "to", to)
			},
		},
	})

	var channel usecase.RealtimeChannel
	if cfg.SocketEnabled {
		socket, err := socketio.New(socketio.Config{
			URL: cfg.SocketURL,
			Reconnect: resilience.ReconnectConfig{
				InitialInterval: cfg.SocketReconnectInitial,
				MaxInterval:     cfg.SocketReconnectMax,
			},
			Logger:        logger,
			OnStateChange: c.onRealtimeState,
		})
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("build realtime client: %w", err)
		}
		c.Socket = socket
		c.closers = append(c.closers, socket.Close)
		channel = socket
	}

	store := cache.NewPassthrough()
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}
	tracker := latest.NewTracker()

	standings := sportsapi.NewStandingRepository(client)
	teams := sportsapi.NewTeamRepository(client)
	matches := sportsapi.NewMatchRepository(client)
	stadiums := sportsapi.NewStadiumRepository(client)
	events := sportsapi.NewEventRepository(client)

	c.Preferences = usecase.NewPreferenceService(state)
	c.Sessions = usecase.NewSessionService(sportsapi.NewAccountGateway(client), c.Preferences, logger)
	c.Standings = usecase.NewStandingsService(standings, store, tracker, usecase.StandingsServiceConfig{
		SupportedYears: cfg.SupportedYears,
		FanOutSeasons:  cfg.SportsAPIFanOutSeasons,
		Logger:         logger,
	})
	c.Catalog = usecase.NewCatalogService(teams, stadiums, standings, matches, store, tracker)
	c.Schedule = usecase.NewScheduleService(matches, store, tracker, cfg.SupportedYears)
	c.Events = usecase.NewEventService(events, channel, c.Sessions, c.Preferences, logger)

	feedCfg := usecase.EventFeedConfig{Logger: logger}
	if c.Metrics != nil {
		feedCfg.Recorder = c.Metrics
	}
	c.Feed = usecase.NewEventFeed(events, channel, c.Sessions, c.Preferences, feedCfg)

	return c, nil
}

func (c *Container) openLocalState(ctx context.Context) (localstate.Store, error) {
	if c.Config.StateDriver == config.StateDriverMemory {
		return memory.NewLocalStateStore(), nil
	}

	db, err := sqlstore.Open(ctx, sqlstore.Config{
		Driver:      c.Config.StateDriver,
		DSN:         c.Config.StateDSN,
		AutoMigrate: c.Config.StateAutoMigrate,
		Logger:      c.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("open local state: %w", err)
	}
	c.closers = append(c.closers, db.Close)
	return sqlstore.NewLocalStateStore(db), nil
}

func (c *Container) onRealtimeState(state usecase.ConnectionState) {
	c.Logger.Info("realtime channel state changed", "state", state)
	if c.Metrics != nil {
		c.Metrics.SetRealtimeState(state)
	}
}

// Start connects the realtime channel and loads the event feed. A failed
// first load is logged; the feed retries on the next request.
func (c *Container) Start(ctx context.Context) {
	if c.Socket != nil {
		c.Socket.Start(ctx)
	}
	if err := c.Feed.Start(ctx); err != nil {
		c.Logger.WarnContext(ctx, "initial event feed load failed", "error", err)
	}
}

// Close stops the feed and releases resources in reverse order of creation.
func (c *Container) Close() error {
	if c.Feed != nil {
		c.Feed.Close()
	}

	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *Container) NewHTTPServer() (*http.Server, error) {
	cfg := c.Config
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	handler := httpapi.NewHandler(httpapi.Services{
		Standings:   c.Standings,
		Catalog:     c.Catalog,
		Schedule:    c.Schedule,
		Sessions:    c.Sessions,
		Preferences: c.Preferences,
		Events:      c.Events,
		Feed:        c.Feed,
	}, c.Logger)

	routerCfg := httpapi.RouterConfig{
		Logger:             c.Logger,
		RequestIDs:         idgen.NewUUIDGenerator(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		BodyCapture: httpapi.BodyCapture{
			Enabled:  cfg.UptraceEnabled && cfg.UptraceCaptureRequestBody,
			MaxBytes: cfg.UptraceRequestBodyMaxBytes,
		},
	}
	if c.Metrics != nil {
		routerCfg.Observer = c.Metrics
		routerCfg.MetricsHandler = metrics.NewMetricsHandler(c.gatherer)
	}

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, routerCfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

type feedDump struct {
	State      usecase.FeedState       `json:"state"`
	Connection usecase.ConnectionState `json:"connection"`
	Events     int                     `json:"events"`
	Error      string                  `json:"error,omitempty"`
}

// DebugRoutes are served on the pprof listener only.
func (c *Container) DebugRoutes() []observability.DebugRoute {
	return []observability.DebugRoute{{
		Pattern: "GET /debug/feed",
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			snapshot := c.Feed.Snapshot(user.Session{})
			w.Header().Set("Content-Type", "application/json")
			_ = sonic.ConfigDefault.NewEncoder(w).Encode(feedDump{
				State:      snapshot.State,
				Connection: snapshot.Connection,
				Events:     len(snapshot.Events),
				Error:      snapshot.Error,
			})
		}),
	}}
}
