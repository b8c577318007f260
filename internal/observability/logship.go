package observability

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/riskibarqy/sportsboard/internal/config"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
	"go.uber.org/zap/zapcore"
)

const (
	logShipQueueSize    = 1024
	logShipMaxTries     = 3
	logShipRetryInitial = 200 * time.Millisecond
	logShipDrainTimeout = 5 * time.Second
)

// InitLogShipping tees entries at or above LOG_SHIP_MIN_LEVEL to an HTTP
// ingestion endpoint as NDJSON batches. The returned func drains pending
// batches and should run before the process exits.
func InitLogShipping(cfg config.Config, base *logging.Logger) (*logging.Logger, func(context.Context) error, error) {
	if base == nil {
		base = logging.NewJSON(cfg.LogLevel)
	}
	if !cfg.LogShipEnabled {
		return base, func(context.Context) error { return nil }, nil
	}

	endpoint := normalizeLogShipEndpoint(cfg.LogShipEndpoint)
	if endpoint == "" {
		return nil, nil, fmt.Errorf("log ship endpoint cannot be empty")
	}

	shipper := newLogShipper(logShipperConfig{
		Endpoint:      endpoint,
		Token:         strings.TrimSpace(cfg.LogShipToken),
		Timeout:       cfg.LogShipTimeout,
		BatchSize:     cfg.LogShipBatchSize,
		FlushInterval: cfg.LogShipFlushInterval,
	})
	logger := base.Tee(logging.NewJSONCore(cfg.LogShipMinLevel, zapcore.AddSync(shipper)))
	logger.Info("log shipping enabled",
		"endpoint", endpoint,
		"min_level", cfg.LogShipMinLevel.String(),
		"batch_size", cfg.LogShipBatchSize,
	)

	return logger, func(ctx context.Context) error {
		if ctx == nil {
			ctx = context.Background()
		}
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, logShipDrainTimeout)
			defer cancel()
		}
		if err := shipper.Close(ctx); err != nil {
			return fmt.Errorf("drain log shipper: %w", err)
		}
		return nil
	}, nil
}

func normalizeLogShipEndpoint(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	return "https://" + value
}

type logShipperConfig struct {
	Endpoint      string
	Token         string
	Timeout       time.Duration
	BatchSize     int
	FlushInterval time.Duration
	RetryInitial  time.Duration
	MaxTries      uint
}

// logShipper is a zapcore.WriteSyncer that buffers encoded lines and posts
// them in batches from a single goroutine. Writes never block; a full queue
// drops the line.
type logShipper struct {
	cfg     logShipperConfig
	client  *http.Client
	queue   chan []byte
	mu      sync.RWMutex
	closed  bool
	once    sync.Once
	done    chan struct{}
	ctx     context.Context
	cancel  context.CancelFunc
	dropped atomic.Uint64
}

func newLogShipper(cfg logShipperConfig) *logShipper {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 2 * time.Second
	}
	if cfg.RetryInitial <= 0 {
		cfg.RetryInitial = logShipRetryInitial
	}
	if cfg.MaxTries == 0 {
		cfg.MaxTries = logShipMaxTries
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &logShipper{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		queue:  make(chan []byte, logShipQueueSize),
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}
	go s.run()
	return s
}

func (s *logShipper) Write(p []byte) (int, error) {
	line := bytes.TrimSpace(p)
	if len(line) == 0 {
		return len(p), nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return len(p), nil
	}

	// zap reuses its buffer once Write returns.
	copied := append([]byte(nil), line...)
	select {
	case s.queue <- copied:
	default:
		if dropped := s.dropped.Add(1); dropped == 1 || dropped%100 == 0 {
			fmt.Fprintf(os.Stderr, "log shipper queue full; dropped=%d\n", dropped)
		}
	}
	return len(p), nil
}

// Sync is a no-op; batches are flushed on size, interval or Close.
func (s *logShipper) Sync() error {
	return nil
}

// Close stops accepting lines and waits for the final batch. When ctx ends
// first, in-flight retries are abandoned.
func (s *logShipper) Close(ctx context.Context) error {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		close(s.queue)
		s.mu.Unlock()
	})

	select {
	case <-s.done:
		s.cancel()
		return nil
	case <-ctx.Done():
		s.cancel()
		<-s.done
		return ctx.Err()
	}
}

func (s *logShipper) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.FlushInterval)
	defer ticker.Stop()

	batch := bytebufferpool.Get()
	defer bytebufferpool.Put(batch)
	lines := 0

	flush := func() {
		if lines == 0 {
			return
		}
		if err := s.send(batch.Bytes()); err != nil {
			fmt.Fprintf(os.Stderr, "log shipper dropped batch of %d: %v\n", lines, err)
		}
		batch.Reset()
		lines = 0
	}

	for {
		select {
		case line, ok := <-s.queue:
			if !ok {
				flush()
				return
			}
			_, _ = batch.Write(line)
			_ = batch.WriteByte('\n')
			lines++
			if lines >= s.cfg.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

func (s *logShipper) send(payload []byte) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.cfg.RetryInitial

	_, err := backoff.Retry(s.ctx, func() (struct{}, error) {
		req, err := http.NewRequestWithContext(s.ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(payload))
		if err != nil {
			return struct{}{}, backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/x-ndjson")
		if s.cfg.Token != "" {
			req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
		}

		resp, err := s.client.Do(req)
		if err != nil {
			return struct{}{}, err
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		switch {
		case resp.StatusCode < 300:
			return struct{}{}, nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return struct{}{}, fmt.Errorf("ingest status %d", resp.StatusCode)
		default:
			return struct{}{}, backoff.Permanent(fmt.Errorf("ingest status %d", resp.StatusCode))
		}
	}, backoff.WithBackOff(policy), backoff.WithMaxTries(s.cfg.MaxTries))
	return err
}
