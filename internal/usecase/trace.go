package usecase

import (
	"context"

	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("sportsboard/internal/usecase")

// startUsecaseSpan only opens a span under an existing trace so background
// refetches do not start root spans of their own.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if name == "" || !parent.SpanContext().IsValid() {
		return ctx, trace.SpanFromContext(context.Background())
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func sportAttr(sp sport.Sport) attribute.KeyValue {
	return attribute.String("sportsboard.sport", string(sp))
}
