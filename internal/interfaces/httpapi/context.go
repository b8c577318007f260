package httpapi

import "context"

type contextKey string

const (
	viewContextKey      contextKey = "view_id"
	requestIDContextKey contextKey = "request_id"
)

func withView(ctx context.Context, view string) context.Context {
	return context.WithValue(ctx, viewContextKey, view)
}

// viewFromContext returns the client view that issued the request. Reads
// sharing a view supersede each other; an empty view is never superseded.
func viewFromContext(ctx context.Context) string {
	view, _ := ctx.Value(viewContextKey).(string)
	return view
}

func withRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

func requestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDContextKey).(string)
	return requestID
}
