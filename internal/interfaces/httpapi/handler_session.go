package httpapi

import (
	"errors"
	"net/http"

	"github.com/riskibarqy/sportsboard/internal/domain/user"
	"github.com/riskibarqy/sportsboard/internal/usecase"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req user.Credentials
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	session, err := h.sessions.Login(ctx, req)
	if err != nil {
		h.logger.InfoContext(ctx, "login rejected", "username", req.Username, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(session))
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Register")
	defer span.End()

	var req user.Registration
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.sessions.Register(ctx, req); err != nil {
		h.logger.InfoContext(ctx, "registration rejected", "username", req.Username, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, map[string]string{"status": "registered"})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Logout")
	defer span.End()

	if err := h.sessions.Logout(ctx); err != nil {
		h.logger.WarnContext(ctx, "logout failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSession reports the signed-in viewer. An expired session is cleared and
// reported as signed out.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSession")
	defer span.End()

	session, err := h.sessions.RequireActive(ctx)
	switch {
	case err == nil:
		writeSuccess(ctx, w, http.StatusOK, sessionToDTO(session))
	case errors.Is(err, usecase.ErrUnauthorized), errors.Is(err, usecase.ErrSessionExpired):
		writeSuccess(ctx, w, http.StatusOK, sessionDTO{})
	default:
		writeError(ctx, w, err)
	}
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetProfile")
	defer span.End()

	userID := r.PathValue("userID")
	profile, err := h.sessions.Profile(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "get profile failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, profileToDTO(profile))
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateProfile")
	defer span.End()

	var req user.ProfileUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	session, err := h.sessions.UpdateProfile(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "update profile failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(session))
}
