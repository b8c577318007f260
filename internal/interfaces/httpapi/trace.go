package httpapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("sportsboard/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// startSpan opens a child span for handler work only. Middleware and helpers
// stay inside the otelhttp server span, and untraced routes get no span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !strings.HasPrefix(name, "httpapi.Handler.") {
		return ctx, noopSpan
	}
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noopSpan
	}

	opts := []trace.SpanStartOption{trace.WithSpanKind(trace.SpanKindInternal)}
	if view := viewFromContext(ctx); view != "" {
		opts = append(opts, trace.WithAttributes(attribute.String("sportsboard.view", view)))
	}
	return apiTracer.Start(ctx, name, opts...)
}

// BodyCapture copies a bounded prefix of JSON request bodies onto the
// server span. Credentials never reach the span.
type BodyCapture struct {
	Enabled  bool
	MaxBytes int
}

var uncapturedPrefixes = []string{"/v1/session/", "/v1/preferences/drafts/", "/v1/profile"}

func (c BodyCapture) capturable(r *http.Request) bool {
	if !c.Enabled || c.MaxBytes <= 0 || r.Body == nil || r.Body == http.NoBody {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return false
	}
	if !strings.HasPrefix(strings.ToLower(r.Header.Get("Content-Type")), "application/json") {
		return false
	}
	for _, prefix := range uncapturedPrefixes {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return false
		}
	}
	return true
}

func captureRequestBody(capture BodyCapture, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		span := trace.SpanFromContext(r.Context())
		if !span.IsRecording() || !capture.capturable(r) {
			next.ServeHTTP(w, r)
			return
		}

		head, err := io.ReadAll(io.LimitReader(r.Body, int64(capture.MaxBytes)))
		if err == nil {
			span.SetAttributes(
				attribute.String("http.request.body", string(head)),
				attribute.Bool("http.request.body.truncated", len(head) == capture.MaxBytes),
			)
		}
		r.Body = struct {
			io.Reader
			io.Closer
		}{io.MultiReader(bytes.NewReader(head), r.Body), r.Body}
		next.ServeHTTP(w, r)
	})
}
