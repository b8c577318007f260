package httpapi

import (
	"net/http"

	"github.com/riskibarqy/sportsboard/internal/domain/event"
	"github.com/riskibarqy/sportsboard/internal/usecase"
)

const maxPendingFeedErrors = 16

// GetEvents renders the upcoming events for the signed-in viewer. The feed is
// loaded on first use and retried while it is failed.
func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEvents")
	defer span.End()

	switch h.feed.State() {
	case usecase.FeedIdle, usecase.FeedFailed:
		if err := h.feed.Start(ctx); err != nil {
			h.logger.WarnContext(ctx, "start event feed failed", "error", err)
		}
	}

	viewer, err := h.sessions.Current(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, feedToDTO(h.feed.Snapshot(viewer)))
}

func (h *Handler) RefreshEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshEvents")
	defer span.End()

	if err := h.feed.Refresh(ctx); err != nil {
		h.logger.WarnContext(ctx, "refresh events failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	viewer, err := h.sessions.Current(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, feedToDTO(h.feed.Snapshot(viewer)))
}

// FollowEvent answers with the optimistic state; the toggle itself completes
// in the background and failures surface on ListEventErrors.
func (h *Handler) FollowEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FollowEvent")
	defer span.End()

	eventID := r.PathValue("eventID")
	state, err := h.feed.RequestFollow(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "follow event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, followStateDTO{
		EventID:     eventID,
		IsFollowing: state.IsFollowing,
		Followers:   state.DisplayCount,
	})
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteEvent")
	defer span.End()

	eventID := r.PathValue("eventID")
	if err := h.feed.RequestDelete(ctx, eventID); err != nil {
		h.logger.WarnContext(ctx, "delete event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListEventErrors drains the follow failures reported since the last call.
func (h *Handler) ListEventErrors(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEventErrors")
	defer span.End()

	out := make([]string, 0)
	errs := h.feed.Errors()
drain:
	for len(out) < maxPendingFeedErrors {
		select {
		case err, ok := <-errs:
			if !ok {
				break drain
			}
			out = append(out, err.Error())
		default:
			break drain
		}
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateEvent")
	defer span.End()

	var draft event.Draft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.events.Create(ctx, draft); err != nil {
		h.logger.WarnContext(ctx, "create event failed", "name", draft.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, map[string]string{"status": "created"})
}

func (h *Handler) GetEventDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEventDraft")
	defer span.End()

	draft, err := h.events.Draft(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, draft)
}

// SaveEventDraft stores a partial form as is; validation waits for CreateEvent.
func (h *Handler) SaveEventDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveEventDraft")
	defer span.End()

	var draft event.Draft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.events.SaveDraft(ctx, draft); err != nil {
		h.logger.WarnContext(ctx, "save event draft failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, draft)
}
