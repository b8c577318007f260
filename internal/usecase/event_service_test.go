package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/sportsboard/internal/domain/event"
	eventmock "github.com/riskibarqy/sportsboard/internal/mocks/domain/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validDraft() event.Draft {
	point := event.NewGeoPoint(46.0569, 14.5058)
	return event.Draft{
		Name:        "Evening futsal",
		Description: "Five a side, bring water",
		Activity:    "nogomet",
		Date:        "2024-06-01",
		Time:        "19:30",
		Location:    &point,
	}
}

func TestEventService_CreateEmitsAndClearsDraft(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := eventmock.NewRepository(t)
	channel := newFakeChannel()
	prefs := newPrefs()
	session := signIn(t, prefs, "u1", false)
	service := NewEventService(repo, channel, NewSessionService(nil, prefs, nil), prefs, nil)

	draft := validDraft()
	draft.Name = "  Evening futsal  "
	require.NoError(t, service.SaveDraft(ctx, draft))
	repo.On("Create", mock.Anything, session.Token, validDraft()).Return(nil).Once()

	require.NoError(t, service.Create(ctx, draft))

	emits := channel.emitLog()
	require.Len(t, emits, 1)
	assert.Equal(t, TopicCreateEvent, emits[0].topic)
	assert.Equal(t, []any{session.Token}, emits[0].args)

	_, found, err := prefs.EventDraft(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestEventService_CreateRejectsInvalidDraft(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	prefs := newPrefs()
	signIn(t, prefs, "u1", false)
	service := NewEventService(eventmock.NewRepository(t), newFakeChannel(), NewSessionService(nil, prefs, nil), prefs, nil)

	draft := validDraft()
	draft.Time = "7pm"
	err := service.Create(ctx, draft)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorContains(t, err, "Time must use layout 15:04")

	// the rejected draft is kept for the next attempt
	saved, found, err := prefs.EventDraft(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "7pm", saved.Time)

	draft = validDraft()
	far := event.NewGeoPoint(95, 14)
	draft.Location = &far
	assert.ErrorIs(t, service.Create(ctx, draft), ErrInvalidInput)
}

func TestEventService_CreateRequiresSession(t *testing.T) {
	t.Parallel()

	prefs := newPrefs()
	service := NewEventService(eventmock.NewRepository(t), newFakeChannel(), NewSessionService(nil, prefs, nil), prefs, nil)

	assert.ErrorIs(t, service.Create(context.Background(), validDraft()), ErrUnauthorized)
}

func TestEventService_CreateFailureKeepsDraft(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := eventmock.NewRepository(t)
	channel := newFakeChannel()
	prefs := newPrefs()
	session := signIn(t, prefs, "u1", false)
	service := NewEventService(repo, channel, NewSessionService(nil, prefs, nil), prefs, nil)

	require.NoError(t, service.SaveDraft(ctx, validDraft()))
	repo.On("Create", mock.Anything, session.Token, validDraft()).Return(errors.New("500")).Once()

	require.Error(t, service.Create(ctx, validDraft()))
	assert.Empty(t, channel.emitLog())

	_, found, err := prefs.EventDraft(ctx)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestEventService_DraftDefaults(t *testing.T) {
	t.Parallel()

	prefs := newPrefs()
	service := NewEventService(nil, nil, NewSessionService(nil, prefs, nil), prefs, nil)
	service.now = func() time.Time { return time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC) }

	draft, err := service.Draft(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", draft.Date)
	assert.Equal(t, "12:00", draft.Time)
	assert.Equal(t, "nogomet", draft.Activity)
}
