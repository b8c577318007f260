package event

import "sort"

// IntentSet holds ids of events the viewer asked to toggle and whose
// server-side follower list has not caught up yet. Membership means "invert
// the server state when rendering". Values are never mutated in place.
type IntentSet struct {
	ids map[string]struct{}
}

func NewIntentSet(ids ...string) IntentSet {
	out := IntentSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if id == "" {
			continue
		}
		out.ids[id] = struct{}{}
	}
	return out
}

func (s IntentSet) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s IntentSet) Len() int {
	return len(s.ids)
}

// IDs returns the members sorted, for stable persistence.
func (s IntentSet) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s IntentSet) Equal(other IntentSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for id := range s.ids {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

func (s IntentSet) clone() IntentSet {
	out := IntentSet{ids: make(map[string]struct{}, len(s.ids)+1)}
	for id := range s.ids {
		out.ids[id] = struct{}{}
	}
	return out
}

// ToggleIntent adds id when absent and removes it when present.
func ToggleIntent(s IntentSet, id string) IntentSet {
	out := s.clone()
	if id == "" {
		return out
	}
	if _, ok := out.ids[id]; ok {
		delete(out.ids, id)
	} else {
		out.ids[id] = struct{}{}
	}
	return out
}

type FollowState struct {
	IsFollowing  bool
	DisplayCount int
}

// EffectiveState overlays the viewer's pending intent on the server's follower
// list. An empty viewerID is anonymous: intent is ignored and the server count
// is shown as is.
func EffectiveState(e Event, viewerID string, intents IntentSet) FollowState {
	count := len(e.Followers)
	if viewerID == "" {
		return FollowState{IsFollowing: false, DisplayCount: count}
	}

	serverHasMe := e.HasFollower(viewerID)
	following := serverHasMe != intents.Has(e.ID)

	switch {
	case following && !serverHasMe:
		count++
	case serverHasMe && !following:
		count--
	}
	if count < 0 {
		count = 0
	}

	return FollowState{IsFollowing: following, DisplayCount: count}
}

// Reconcile drops intents the authoritative list has made redundant: events
// that are no longer listed, and events whose follower list already matches
// the desired state recorded when the toggle was made. Intents without a
// recorded desire are kept.
func Reconcile(intents IntentSet, events []Event, viewerID string, desired map[string]bool) IntentSet {
	out := IntentSet{ids: make(map[string]struct{}, intents.Len())}
	if viewerID == "" {
		return out
	}

	byID := make(map[string]Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}

	for id := range intents.ids {
		e, listed := byID[id]
		if !listed {
			continue
		}
		want, known := desired[id]
		if known && e.HasFollower(viewerID) == want {
			continue
		}
		out.ids[id] = struct{}{}
	}
	return out
}
