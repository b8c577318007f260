package sportsapi

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
	"github.com/riskibarqy/sportsboard/internal/platform/resilience"
	"github.com/riskibarqy/sportsboard/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL = "http://localhost:3000"
	maxBodyBytes   = 6 << 20
)

var errBackendTransient = crerr.New("sports backend transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the sports backend REST API. One Client serves every
// catalogue repository plus the event and account endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxRetries int
	retryDelay time.Duration
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = time.Second
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		maxRetries: max(cfg.MaxRetries, 0),
		retryDelay: retryDelay,
		logger:     logger.Named("sportsapi"),
		breaker:    resilience.NewBreaker(cfg.CircuitBreaker),
	}
}

// BaseURL is the normalized backend root, used to resolve image paths.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type request struct {
	method      string
	path        string
	query       url.Values
	token       string
	body        []byte
	contentType string
}

// getJSON issues a GET. Concurrent identical reads share one round trip.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	return c.doJSON(ctx, request{method: http.MethodGet, path: path, query: query}, target)
}

func (c *Client) sendJSON(ctx context.Context, method, path, token string, payload, target any) error {
	req := request{method: method, path: path, token: token}
	if payload != nil {
		raw, err := sonic.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		req.body = raw
		req.contentType = "application/json"
	}
	return c.doJSON(ctx, req, target)
}

func (c *Client) doJSON(ctx context.Context, req request, target any) error {
	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "sports backend circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: sports backend is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + req.path
	if encoded := req.query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	call := func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, req, fullURL)
		if c.breaker != nil {
			if isCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	}

	var (
		out any
		err error
	)
	if req.method == http.MethodGet && req.token == "" {
		out, err, _ = c.flight.Do(fullURL, call)
		if err != nil && ctx.Err() == nil && stderrors.Is(err, context.Canceled) {
			// joined a round trip owned by a caller that has since been cancelled
			c.flight.Forget(fullURL)
			out, err, _ = c.flight.Do(fullURL, call)
		}
	} else {
		out, err = call()
	}
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if target == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode backend payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, req request, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		var body io.Reader
		if req.body != nil {
			body = bytes.NewReader(req.body)
		}
		httpReq, err := http.NewRequestWithContext(ctx, req.method, fullURL, body)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		httpReq.Header.Set("accept", "application/json")
		if req.contentType != "" {
			httpReq.Header.Set("content-type", req.contentType)
		}
		if req.token != "" {
			httpReq.Header.Set("authorization", "Bearer "+req.token)
		}

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = fmt.Errorf("%w: %w: send request: %s", usecase.ErrNetworkFailure, errBackendTransient, sanitizeSensitiveText(err.Error(), req.token))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: %w: read response body: %v", usecase.ErrNetworkFailure, errBackendTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: %w: backend status=%d body=%s", usecase.ErrNetworkFailure, errBackendTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, statusError(resp.StatusCode, raw)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * c.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("%w: backend request failed", usecase.ErrNetworkFailure)
	}
	c.logger.WarnContext(ctx, "sports backend request failed", "method", req.method, "path", req.path, "error", lastErr)
	return nil, lastErr
}

// statusError maps a non-retryable backend status onto the usecase sentinels.
func statusError(code int, raw []byte) error {
	msg := backendMessage(raw)
	switch code {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", usecase.ErrUnauthorized, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", usecase.ErrForbidden, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", usecase.ErrNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", usecase.ErrConflict, msg)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, msg)
	default:
		return fmt.Errorf("%w: backend status=%d body=%s", usecase.ErrNetworkFailure, code, abbreviateBody(raw))
	}
}

// backendMessage pulls the {"message": "..."} text the backend sends with
// errors, falling back to the raw body.
func backendMessage(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := sonic.Unmarshal(raw, &payload); err == nil {
		if msg := strings.TrimSpace(payload.Message); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(payload.Error); msg != "" {
			return msg
		}
	}
	if text := abbreviateBody(raw); text != "" {
		return text
	}
	return "request rejected"
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errBackendTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" || token == "" {
		return value
	}
	return strings.ReplaceAll(value, token, "REDACTED")
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
