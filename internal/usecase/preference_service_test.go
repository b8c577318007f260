package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/sportsboard/internal/domain/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceService_Filters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	prefs := newPrefs()

	_, found, err := prefs.Filter(ctx, "schedule")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, prefs.SaveFilter(ctx, "schedule", ViewFilter{Sport: "handball", Season: 2023, Page: 2}))
	require.NoError(t, prefs.SaveFilter(ctx, "matches-map", ViewFilter{Sport: "football", From: "2023-08-01", To: "2023-08-31"}))

	got, found, err := prefs.Filter(ctx, "schedule")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, ViewFilter{Sport: "handball", Season: 2023, Page: 2}, got)

	all, err := prefs.Filters(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "2023-08-01", all["matches-map"].From)

	assert.ErrorIs(t, prefs.SaveFilter(ctx, " ", ViewFilter{}), ErrInvalidInput)
}

func TestPreferenceService_LastPath(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	prefs := newPrefs()

	require.NoError(t, prefs.SetLastPath(ctx, "/events"))
	got, err := prefs.LastPath(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/events", got)

	assert.ErrorIs(t, prefs.SetLastPath(ctx, "events"), ErrInvalidInput)
}

func TestPreferenceService_FollowOverlayBelongsToViewer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	prefs := newPrefs()

	require.NoError(t, prefs.SaveFollowOverlay(ctx, FollowOverlay{
		ViewerID: "u1",
		Intents:  []string{"e2", "e1"},
		Desired:  map[string]bool{"e1": true},
	}))

	mine, err := prefs.FollowOverlay(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, mine.IntentSet().Equal(event.NewIntentSet("e1", "e2")))

	theirs, err := prefs.FollowOverlay(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "u2", theirs.ViewerID)
	assert.Zero(t, theirs.IntentSet().Len())
}

func TestPreferenceService_EventDraftRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	prefs := newPrefs()

	draft := event.DefaultDraft(time.Date(2024, 5, 4, 9, 0, 0, 0, time.UTC))
	point := event.NewGeoPoint(46.05, 14.5)
	draft.Name = "Park run"
	draft.Location = &point

	require.NoError(t, prefs.SaveEventDraft(ctx, draft))
	got, found, err := prefs.EventDraft(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, draft, got)

	require.NoError(t, prefs.ClearEventDraft(ctx))
	_, found, err = prefs.EventDraft(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}
