package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riskibarqy/sportsboard/internal/usecase"
)

var _ usecase.FeedRecorder = (*Service)(nil)

var connectionStates = []usecase.ConnectionState{
	usecase.ConnectionConnecting,
	usecase.ConnectionConnected,
	usecase.ConnectionReconnecting,
	usecase.ConnectionClosed,
}

// Service holds the Prometheus collectors for the process.
type Service struct {
	FeedFetches         *prometheus.CounterVec
	FeedNotifications   *prometheus.CounterVec
	FeedSupersessions   prometheus.Counter
	FollowRollbacks     prometheus.Counter
	RealtimeState       *prometheus.GaugeVec
	RealtimeTransitions *prometheus.CounterVec
	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
}

// NewMetricsHandler serves gatherer, or the default gatherer when none is given.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the collectors on registerer, or on the
// default registerer when none is given.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		FeedFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sportsboard_feed_fetches_total",
			Help: "Event feed fetches by outcome (ok, failed, degraded).",
		}, []string{"outcome"}),
		FeedNotifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sportsboard_feed_notifications_total",
			Help: "Realtime notifications received by the event feed.",
		}, []string{"topic"}),
		FeedSupersessions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sportsboard_feed_superseded_total",
			Help: "Event feed responses dropped because a newer fetch started.",
		}),
		FollowRollbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sportsboard_follow_rollbacks_total",
			Help: "Optimistic follow toggles rolled back after a backend failure.",
		}),
		RealtimeState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sportsboard_realtime_state",
			Help: "1 for the current realtime connection state, 0 otherwise.",
		}, []string{"state"}),
		RealtimeTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sportsboard_realtime_transitions_total",
			Help: "Realtime connection state transitions by target state.",
		}, []string{"state"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sportsboard_http_requests_total",
			Help: "HTTP requests served by route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sportsboard_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		s.FeedFetches,
		s.FeedNotifications,
		s.FeedSupersessions,
		s.FollowRollbacks,
		s.RealtimeState,
		s.RealtimeTransitions,
		s.HTTPRequests,
		s.HTTPDuration,
	)

	return s
}

func (s *Service) FeedFetch(outcome string) {
	s.FeedFetches.WithLabelValues(outcome).Inc()
}

func (s *Service) FeedNotification(topic string) {
	s.FeedNotifications.WithLabelValues(topic).Inc()
}

func (s *Service) FeedSuperseded() {
	s.FeedSupersessions.Inc()
}

func (s *Service) FollowRollback() {
	s.FollowRollbacks.Inc()
}

// SetRealtimeState is shaped to be passed as the socket client's state hook.
func (s *Service) SetRealtimeState(state usecase.ConnectionState) {
	for _, candidate := range connectionStates {
		value := 0.0
		if candidate == state {
			value = 1
		}
		s.RealtimeState.WithLabelValues(string(candidate)).Set(value)
	}
	s.RealtimeTransitions.WithLabelValues(string(state)).Inc()
}

func (s *Service) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	s.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	s.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
