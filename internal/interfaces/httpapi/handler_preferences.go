package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/sportsboard/internal/usecase"
)

type lastPathRequest struct {
	Path string `json:"path" validate:"required,startswith=/,max=512"`
}

func (h *Handler) ListFilters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFilters")
	defer span.End()

	filters, err := h.preferences.Filters(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, filters)
}

func (h *Handler) GetFilter(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFilter")
	defer span.End()

	view := strings.TrimSpace(r.PathValue("view"))
	filter, found, err := h.preferences.Filter(ctx, view)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if !found {
		writeError(ctx, w, fmt.Errorf("%w: no filter saved for view=%s", usecase.ErrNotFound, view))
		return
	}
	writeSuccess(ctx, w, http.StatusOK, filter)
}

func (h *Handler) SaveFilter(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveFilter")
	defer span.End()

	var filter usecase.ViewFilter
	if err := decodeJSON(r, &filter); err != nil {
		writeError(ctx, w, err)
		return
	}

	view := strings.TrimSpace(r.PathValue("view"))
	if err := h.preferences.SaveFilter(ctx, view, filter); err != nil {
		h.logger.WarnContext(ctx, "save filter failed", "view", view, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, filter)
}

func (h *Handler) GetLastPath(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLastPath")
	defer span.End()

	path, err := h.preferences.LastPath(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"path": path})
}

func (h *Handler) SetLastPath(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetLastPath")
	defer span.End()

	var req lastPathRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.preferences.SetLastPath(ctx, req.Path); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"path": req.Path})
}

func (h *Handler) GetLoginDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLoginDraft")
	defer span.End()

	draft, err := h.preferences.LoginDraft(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, draft)
}

func (h *Handler) SaveLoginDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveLoginDraft")
	defer span.End()

	var draft usecase.LoginDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.preferences.SaveLoginDraft(ctx, draft); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, draft)
}

func (h *Handler) GetRegisterDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRegisterDraft")
	defer span.End()

	draft, err := h.preferences.RegisterDraft(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, draft)
}

func (h *Handler) SaveRegisterDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveRegisterDraft")
	defer span.End()

	var draft usecase.RegisterDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.preferences.SaveRegisterDraft(ctx, draft); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, draft)
}
