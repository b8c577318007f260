package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveState_ToggleScenario(t *testing.T) {
	t.Parallel()

	e := Event{ID: "e1", Followers: []string{"u2"}}
	intents := NewIntentSet()

	assert.Equal(t, FollowState{IsFollowing: false, DisplayCount: 1}, EffectiveState(e, "u1", intents))

	intents = ToggleIntent(intents, "e1")
	assert.Equal(t, FollowState{IsFollowing: true, DisplayCount: 2}, EffectiveState(e, "u1", intents))

	intents = ToggleIntent(intents, "e1")
	assert.Equal(t, FollowState{IsFollowing: false, DisplayCount: 1}, EffectiveState(e, "u1", intents))
}

func TestEffectiveState_UnfollowIntent(t *testing.T) {
	t.Parallel()

	e := Event{ID: "e1", Followers: []string{"u1", "u2"}}
	got := EffectiveState(e, "u1", NewIntentSet("e1"))

	assert.Equal(t, FollowState{IsFollowing: false, DisplayCount: 1}, got)
}

func TestEffectiveState_AnonymousIgnoresIntent(t *testing.T) {
	t.Parallel()

	e := Event{ID: "e1", Followers: []string{"u2", "u3"}}
	got := EffectiveState(e, "", NewIntentSet("e1"))

	assert.Equal(t, FollowState{IsFollowing: false, DisplayCount: 2}, got)
}

func TestEffectiveState_CountNeverNegative(t *testing.T) {
	t.Parallel()

	cases := []Event{
		{ID: "e1"},
		{ID: "e1", Followers: []string{"u1"}},
		{ID: "e1", Followers: []string{"u9"}},
	}
	for _, e := range cases {
		for _, intents := range []IntentSet{NewIntentSet(), NewIntentSet("e1")} {
			base := EffectiveState(e, "u1", NewIntentSet())
			got := EffectiveState(e, "u1", intents)
			assert.GreaterOrEqual(t, got.DisplayCount, 0)
			diff := got.DisplayCount - base.DisplayCount
			assert.Contains(t, []int{-1, 0, 1}, diff)
		}
	}
}

func TestToggleIntent_IsInvolution(t *testing.T) {
	t.Parallel()

	sets := []IntentSet{NewIntentSet(), NewIntentSet("a"), NewIntentSet("a", "b", "c")}
	for _, s := range sets {
		for _, id := range []string{"a", "b", "z"} {
			twice := ToggleIntent(ToggleIntent(s, id), id)
			assert.True(t, twice.Equal(s), "toggle twice of %v with %q", s.IDs(), id)
		}
	}
}

func TestToggleIntent_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	original := NewIntentSet("a")
	_ = ToggleIntent(original, "a")
	_ = ToggleIntent(original, "b")

	assert.Equal(t, []string{"a"}, original.IDs())
}

func TestReconcile(t *testing.T) {
	t.Parallel()

	events := []Event{
		{ID: "confirmed", Followers: []string{"u1"}},
		{ID: "pending", Followers: []string{}},
		{ID: "unknown-desire", Followers: []string{}},
		{ID: "unfollow-confirmed", Followers: []string{"u2"}},
	}
	intents := NewIntentSet("confirmed", "pending", "unknown-desire", "unfollow-confirmed", "gone")
	desired := map[string]bool{
		"confirmed":          true,
		"pending":            true,
		"unfollow-confirmed": false,
		"gone":               true,
	}

	got := Reconcile(intents, events, "u1", desired)

	require.Equal(t, []string{"pending", "unknown-desire"}, got.IDs())
	assert.Equal(t, 5, intents.Len(), "input must not change")
}

func TestReconcile_AnonymousClearsEverything(t *testing.T) {
	t.Parallel()

	got := Reconcile(NewIntentSet("a"), []Event{{ID: "a"}}, "", nil)
	assert.Equal(t, 0, got.Len())
}

func TestEvent_CanDelete(t *testing.T) {
	t.Parallel()

	e := Event{ID: "e1", Host: Host{ID: "host"}}
	assert.True(t, e.CanDelete("host", false))
	assert.True(t, e.CanDelete("someone", true))
	assert.False(t, e.CanDelete("someone", false))
	assert.False(t, e.CanDelete("", false))
}
