package usecase

import (
	"context"

	"github.com/riskibarqy/sportsboard/internal/platform/latest"
)

// supersede runs fn as the newest request for query on view. A newer call for
// the same query and view, even with other filters, cancels this one; other
// queries on the same view run side by side. Requests without a view are never
// superseded.
func supersede[T any](ctx context.Context, tracker *latest.Tracker, view, query string, fn func(context.Context) (T, error)) (T, error) {
	if tracker == nil || view == "" {
		return fn(ctx)
	}
	return latest.Do(ctx, tracker, supersedeKey(view, query), fn)
}

func supersedeKey(view, query string) string {
	return view + "|" + query
}
