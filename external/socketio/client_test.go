package socketio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
	"github.com/riskibarqy/sportsboard/internal/platform/resilience"
	"github.com/riskibarqy/sportsboard/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer speaks just enough socket.io to drive the client. Each accepted
// connection is handed to session after the namespace handshake.
type fakeServer struct {
	srv      *httptest.Server
	accepted atomic.Int32
}

func newFakeServer(t *testing.T, session func(n int32, conn *websocket.Conn)) *fakeServer {
	t.Helper()

	fs := &fakeServer{}
	upgrader := websocket.Upgrader{}
	fs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/socket.io/" || r.URL.Query().Get("EIO") != "4" {
			http.NotFound(w, r)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		n := fs.accepted.Add(1)
		if err := conn.WriteMessage(websocket.TextMessage, []byte(`0{"sid":"s1","pingInterval":25000,"pingTimeout":20000}`)); err != nil {
			return
		}
		_, msg, err := conn.ReadMessage()
		if err != nil || string(msg) != "40" {
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(`40{"sid":"n1"}`)); err != nil {
			return
		}
		session(n, conn)
	}))
	t.Cleanup(fs.srv.Close)
	return fs
}

func newTestClient(t *testing.T, url string, onState func(usecase.ConnectionState)) *Client {
	t.Helper()

	client, err := New(Config{
		URL:    url,
		Logger: logging.NewNop(),
		Reconnect: resilience.ReconnectConfig{
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
		},
		OnStateChange: onState,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestClient_DispatchesEventsAndEmits(t *testing.T) {
	t.Parallel()

	emitted := make(chan string, 1)
	fs := newFakeServer(t, func(_ int32, conn *websocket.Conn) {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`42["new-event",{"id":"e-1"}]`))
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if len(msg) > 2 && string(msg[:2]) == "42" {
				emitted <- string(msg)
			}
		}
	})

	connected := make(chan struct{}, 1)
	client := newTestClient(t, fs.srv.URL, func(s usecase.ConnectionState) {
		if s == usecase.ConnectionConnected {
			connected <- struct{}{}
		}
	})

	got := make(chan []byte, 1)
	unsubscribe := client.Subscribe(usecase.TopicNewEvent, func(payload []byte) { got <- payload })
	defer unsubscribe()

	client.Start(context.Background())

	select {
	case payload := <-got:
		assert.JSONEq(t, `{"id":"e-1"}`, string(payload))
	case <-time.After(2 * time.Second):
		t.Fatal("expected new-event to be dispatched")
	}

	select {
	case <-connected:
	case <-time.After(2 * time.Second):
		t.Fatal("expected connected state")
	}
	require.NoError(t, client.Emit(context.Background(), usecase.TopicCreateEvent, "token-abc"))

	select {
	case frame := <-emitted:
		assert.Equal(t, `42["create-event","token-abc"]`, frame)
	case <-time.After(2 * time.Second):
		t.Fatal("expected server to receive create-event")
	}
}

func TestClient_AnswersPing(t *testing.T) {
	t.Parallel()

	pong := make(chan string, 1)
	fs := newFakeServer(t, func(_ int32, conn *websocket.Conn) {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("2")); err != nil {
			return
		}
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		pong <- string(msg)
		_, _, _ = conn.ReadMessage()
	})

	client := newTestClient(t, fs.srv.URL, nil)
	client.Start(context.Background())

	select {
	case msg := <-pong:
		assert.Equal(t, "3", msg)
	case <-time.After(2 * time.Second):
		t.Fatal("expected pong")
	}
}

func TestClient_ReconnectsAfterDrop(t *testing.T) {
	t.Parallel()

	fs := newFakeServer(t, func(n int32, conn *websocket.Conn) {
		if n == 1 {
			return
		}
		_, _, _ = conn.ReadMessage()
	})

	states := make(chan usecase.ConnectionState, 16)
	client := newTestClient(t, fs.srv.URL, func(s usecase.ConnectionState) {
		select {
		case states <- s:
		default:
		}
	})
	client.Start(context.Background())

	var seen []usecase.ConnectionState
	deadline := time.After(3 * time.Second)
	for connects := 0; connects < 2; {
		select {
		case s := <-states:
			seen = append(seen, s)
			if s == usecase.ConnectionConnected {
				connects++
			}
		case <-deadline:
			t.Fatalf("expected two connects, saw %v", seen)
		}
	}

	assert.Contains(t, seen, usecase.ConnectionReconnecting)
	assert.GreaterOrEqual(t, fs.accepted.Load(), int32(2))
	assert.Equal(t, usecase.ConnectionConnected, client.State())
}

func TestClient_UnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "http://localhost:1", nil)

	var calls atomic.Int32
	unsubscribe := client.Subscribe("new-event", func([]byte) { calls.Add(1) })
	client.dispatch("new-event", nil)
	unsubscribe()
	unsubscribe()
	client.dispatch("new-event", nil)

	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_EmitWhileDisconnectedFails(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "http://localhost:1", nil)
	err := client.Emit(context.Background(), usecase.TopicDeleteEvent, "tok")
	require.ErrorIs(t, err, usecase.ErrNetworkFailure)
	assert.Equal(t, usecase.ConnectionConnecting, client.State())
}

func TestClient_CloseReportsClosed(t *testing.T) {
	t.Parallel()

	fs := newFakeServer(t, func(_ int32, conn *websocket.Conn) {
		_, _, _ = conn.ReadMessage()
	})
	client := newTestClient(t, fs.srv.URL, nil)
	client.Start(context.Background())

	require.Eventually(t, func() bool {
		return client.State() == usecase.ConnectionConnected
	}, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, client.Close())
	assert.Equal(t, usecase.ConnectionClosed, client.State())
	select {
	case <-client.Done():
	default:
		t.Fatal("expected done to be closed")
	}
}
