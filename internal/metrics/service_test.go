package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/riskibarqy/sportsboard/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_FeedCounters(t *testing.T) {
	t.Parallel()

	svc := NewService(prometheus.NewRegistry())
	svc.FeedFetch("ok")
	svc.FeedFetch("ok")
	svc.FeedFetch("failed")
	svc.FeedNotification(usecase.TopicNewEvent)
	svc.FeedSuperseded()
	svc.FollowRollback()

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.FeedFetches.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.FeedFetches.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.FeedNotifications.WithLabelValues("new-event")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.FeedSupersessions))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.FollowRollbacks))
}

func TestService_RealtimeStateIsOneHot(t *testing.T) {
	t.Parallel()

	svc := NewService(prometheus.NewRegistry())
	svc.SetRealtimeState(usecase.ConnectionConnected)
	svc.SetRealtimeState(usecase.ConnectionReconnecting)

	assert.Equal(t, 0.0, testutil.ToFloat64(svc.RealtimeState.WithLabelValues("connected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.RealtimeState.WithLabelValues("reconnecting")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.RealtimeTransitions.WithLabelValues("connected")))
}

func TestMetricsHandler_ExposesRegisteredCollectors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	svc := NewService(reg)
	svc.ObserveHTTP(http.MethodGet, "/v1/events", http.StatusOK, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `sportsboard_http_requests_total{method="GET",route="/v1/events",status="200"} 1`)
}
