package httpapi

import (
	"net/http"
	"strings"
)

// ListMatchesByDateRange serves ?from=YYYY-MM-DD&to=YYYY-MM-DD; to defaults to from.
func (h *Handler) ListMatchesByDateRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesByDateRange")
	defer span.End()

	sp, err := pathSport(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := r.URL.Query()
	from := strings.TrimSpace(query.Get("from"))
	to := strings.TrimSpace(query.Get("to"))
	items, err := h.schedule.ByDateRange(ctx, viewFromContext(ctx), sp, from, to)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches by date range failed", "sport", sp, "from", from, "to", to, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) GetSeasonSchedulePage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonSchedulePage")
	defer span.End()

	sp, err := pathSport(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := parseSeason(r.PathValue("season"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	page, err := queryInt(r, "page", 1)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.schedule.SeasonPage(ctx, viewFromContext(ctx), sp, season, page)
	if err != nil {
		h.logger.WarnContext(ctx, "season schedule page failed", "sport", sp, "season", season, "page", page, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchPageToDTO(result))
}

func (h *Handler) ListTeamSeasonMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamSeasonMatches")
	defer span.End()

	sp, err := pathSport(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := parseSeason(r.PathValue("season"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID := r.PathValue("teamID")
	items, err := h.schedule.BySeasonAndTeam(ctx, viewFromContext(ctx), sp, season, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team season matches failed", "sport", sp, "season", season, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}
