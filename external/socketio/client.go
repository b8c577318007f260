package socketio

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	crerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
	"github.com/riskibarqy/sportsboard/internal/platform/resilience"
	"github.com/riskibarqy/sportsboard/internal/usecase"
)

const (
	defaultPath         = "/socket.io/"
	defaultWriteTimeout = 10 * time.Second
	defaultPingWindow   = 45 * time.Second
)

var (
	errServerDisconnect = crerr.New("socket.io server disconnected")
	errServerClose      = crerr.New("engine.io server closed")
)

type Config struct {
	// URL is the backend root, http(s) or ws(s).
	URL              string
	Path             string
	Dialer           *websocket.Dialer
	Header           http.Header
	HandshakeTimeout time.Duration
	Reconnect        resilience.ReconnectConfig
	Logger           *logging.Logger
	// OnStateChange is called outside the client lock after every transition.
	OnStateChange func(usecase.ConnectionState)
}

// Client is a socket.io v4 client over a single websocket. It keeps
// reconnecting with exponential backoff until Close.
type Client struct {
	endpoint         string
	header           http.Header
	dialer           *websocket.Dialer
	handshakeTimeout time.Duration
	backoff          *backoff.ExponentialBackOff
	logger           *logging.Logger
	onStateChange    func(usecase.ConnectionState)
	id               string

	mu      sync.Mutex
	state   usecase.ConnectionState
	conn    *websocket.Conn
	subs    map[string]map[uint64]func([]byte)
	nextSub uint64
	started bool
	cancel  context.CancelFunc
	done    chan struct{}

	writeMu sync.Mutex
}

func New(cfg Config) (*Client, error) {
	endpoint, err := buildEndpoint(cfg.URL, cfg.Path)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	dialer := cfg.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	handshakeTimeout := cfg.HandshakeTimeout
	if handshakeTimeout <= 0 {
		handshakeTimeout = 10 * time.Second
	}
	header := cfg.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}

	id := uuid.NewString()
	header.Set("X-Client-ID", id)

	return &Client{
		endpoint:         endpoint,
		header:           header,
		dialer:           dialer,
		handshakeTimeout: handshakeTimeout,
		backoff:          resilience.NewReconnectBackOff(cfg.Reconnect),
		logger:           logger.Named("socketio").With("client_id", id),
		onStateChange:    cfg.OnStateChange,
		id:               id,
		state:            usecase.ConnectionConnecting,
		subs:             make(map[string]map[uint64]func([]byte)),
		done:             make(chan struct{}),
	}, nil
}

func buildEndpoint(raw, path string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("parse socket url: %w", err)
	}
	switch parsed.Scheme {
	case "http", "ws":
		parsed.Scheme = "ws"
	case "https", "wss":
		parsed.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported socket url scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("socket url %q has no host", raw)
	}

	if path = strings.TrimSpace(path); path == "" {
		path = defaultPath
	}
	parsed.Path = "/" + strings.Trim(path, "/") + "/"

	query := parsed.Query()
	query.Set("EIO", "4")
	query.Set("transport", "websocket")
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

func (c *Client) ID() string {
	return c.id
}

// Start launches the connection loop. It returns immediately; later calls
// are no-ops.
func (c *Client) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	ctx, c.cancel = context.WithCancel(ctx)
	c.mu.Unlock()

	go c.run(ctx)
}

// Close stops the loop and waits for the connection to be released.
func (c *Client) Close() error {
	c.mu.Lock()
	started := c.started
	cancel := c.cancel
	c.started = true
	c.mu.Unlock()

	if !started {
		close(c.done)
		c.setState(usecase.ConnectionClosed)
		return nil
	}
	if cancel != nil {
		cancel()
	}
	<-c.done
	return nil
}

func (c *Client) Done() <-chan struct{} {
	return c.done
}

func (c *Client) State() usecase.ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn for topic. fn runs on the read goroutine and must
// not block.
func (c *Client) Subscribe(topic string, fn func(payload []byte)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextSub++
	id := c.nextSub
	if c.subs[topic] == nil {
		c.subs[topic] = make(map[uint64]func([]byte))
	}
	c.subs[topic][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subs[topic], id)
			if len(c.subs[topic]) == 0 {
				delete(c.subs, topic)
			}
		})
	}
}

// Emit sends an event on the live connection. Events are not queued while
// disconnected.
func (c *Client) Emit(ctx context.Context, topic string, args ...any) error {
	frame, err := encodeEvent(topic, args)
	if err != nil {
		return err
	}

	c.mu.Lock()
	conn := c.conn
	state := c.state
	c.mu.Unlock()
	if conn == nil || state != usecase.ConnectionConnected {
		return fmt.Errorf("%w: realtime channel is %s", usecase.ErrNetworkFailure, state)
	}

	if err := c.write(ctx, conn, frame); err != nil {
		return fmt.Errorf("%w: emit %s: %v", usecase.ErrNetworkFailure, topic, err)
	}
	return nil
}

func (c *Client) write(ctx context.Context, conn *websocket.Conn, frame []byte) error {
	deadline := time.Now().Add(defaultWriteTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := conn.SetWriteDeadline(deadline); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, frame)
}

func (c *Client) run(ctx context.Context) {
	defer close(c.done)
	defer c.setState(usecase.ConnectionClosed)

	for {
		conn, open, err := c.connect(ctx)
		if err == nil {
			c.backoff.Reset()
			c.logger.InfoContext(ctx, "realtime channel connected", "sid", open.SID)
			err = c.serve(ctx, conn, open)
		}
		if ctx.Err() != nil {
			return
		}

		c.setState(usecase.ConnectionReconnecting)
		wait := c.backoff.NextBackOff()
		c.logger.WarnContext(ctx, "realtime channel dropped", "error", err, "retry_in", wait)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

func (c *Client) connect(ctx context.Context) (*websocket.Conn, openPayload, error) {
	dialCtx, cancel := context.WithTimeout(ctx, c.handshakeTimeout)
	defer cancel()

	conn, resp, err := c.dialer.DialContext(dialCtx, c.endpoint, c.header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, openPayload{}, fmt.Errorf("dial: %w", err)
	}

	open, err := c.handshake(conn)
	if err != nil {
		_ = conn.Close()
		return nil, openPayload{}, err
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	c.setState(usecase.ConnectionConnected)
	return conn, open, nil
}

// handshake reads the engine.io open packet and joins the default namespace.
func (c *Client) handshake(conn *websocket.Conn) (openPayload, error) {
	_ = conn.SetReadDeadline(time.Now().Add(c.handshakeTimeout))

	p, err := readPacket(conn)
	if err != nil {
		return openPayload{}, err
	}
	open, err := parseOpen(p)
	if err != nil {
		return openPayload{}, err
	}

	c.writeMu.Lock()
	_ = conn.SetWriteDeadline(time.Now().Add(c.handshakeTimeout))
	err = conn.WriteMessage(websocket.TextMessage, controlPacket(engineMessage, socketConnect))
	c.writeMu.Unlock()
	if err != nil {
		return openPayload{}, fmt.Errorf("send namespace connect: %w", err)
	}

	for {
		p, err := readPacket(conn)
		if err != nil {
			return openPayload{}, err
		}
		switch {
		case p.engine == engineMessage && p.socket == socketConnect:
			return open, nil
		case p.engine == engineMessage && p.socket == socketConnectError:
			return openPayload{}, fmt.Errorf("namespace connect refused: %s", p.data)
		case p.engine == enginePing:
			c.writeMu.Lock()
			err = conn.WriteMessage(websocket.TextMessage, controlPacket(enginePong))
			c.writeMu.Unlock()
			if err != nil {
				return openPayload{}, fmt.Errorf("send pong: %w", err)
			}
		}
	}
}

func (c *Client) serve(ctx context.Context, conn *websocket.Conn, open openPayload) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			c.writeMu.Lock()
			_ = conn.WriteMessage(websocket.TextMessage, controlPacket(engineMessage, socketDisconnect))
			c.writeMu.Unlock()
			_ = conn.Close()
		case <-stop:
		}
	}()
	defer func() {
		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()
		_ = conn.Close()
	}()

	window := time.Duration(open.PingInterval+open.PingTimeout) * time.Millisecond
	if window <= 0 {
		window = defaultPingWindow
	}

	for {
		_ = conn.SetReadDeadline(time.Now().Add(window))
		p, err := readPacket(conn)
		if err != nil {
			return err
		}

		switch p.engine {
		case enginePing:
			if err := c.write(ctx, conn, controlPacket(enginePong)); err != nil {
				return fmt.Errorf("send pong: %w", err)
			}
		case engineClose:
			return errServerClose
		case engineMessage:
			switch p.socket {
			case socketEvent:
				topic, payload, err := decodeEvent(p.data)
				if err != nil {
					c.logger.WarnContext(ctx, "dropping malformed realtime event", "error", err)
					continue
				}
				c.dispatch(topic, payload)
			case socketConnectError:
				c.dispatch(usecase.TopicError, p.data)
			case socketDisconnect:
				return errServerDisconnect
			}
		}
	}
}

func readPacket(conn *websocket.Conn) (packet, error) {
	for {
		kind, raw, err := conn.ReadMessage()
		if err != nil {
			return packet{}, fmt.Errorf("read: %w", err)
		}
		if kind != websocket.TextMessage {
			continue
		}
		p, err := parsePacket(raw)
		if err != nil {
			return packet{}, err
		}
		if p.engine == engineNoop {
			continue
		}
		return p, nil
	}
}

func (c *Client) dispatch(topic string, payload []byte) {
	c.mu.Lock()
	handlers := make([]func([]byte), 0, len(c.subs[topic]))
	for _, fn := range c.subs[topic] {
		handlers = append(handlers, fn)
	}
	c.mu.Unlock()

	for _, fn := range handlers {
		fn(payload)
	}
}

func (c *Client) setState(next usecase.ConnectionState) {
	c.mu.Lock()
	if c.state == next {
		c.mu.Unlock()
		return
	}
	c.state = next
	hook := c.onStateChange
	c.mu.Unlock()

	if hook != nil {
		hook(next)
	}
}
