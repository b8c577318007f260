package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) SupportedYears(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SupportedYears")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string][]int{"years": h.standings.SupportedYears()})
}

func (h *Handler) GetTrajectory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTrajectory")
	defer span.End()

	sp, err := pathSport(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	trajectory, err := h.standings.Trajectory(ctx, viewFromContext(ctx), sp)
	if err != nil {
		h.logger.WarnContext(ctx, "build trajectory failed", "sport", sp, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, trajectoryToDTO(trajectory))
}

func (h *Handler) GetSeasonTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonTable")
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

	records, err := h.standings.SeasonTable(ctx, viewFromContext(ctx), sp, season)
	if err != nil {
		h.logger.WarnContext(ctx, "season table failed", "sport", sp, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(records))
}

func (h *Handler) GetTeamSeasonStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamSeasonStats")
	defer span.End()

	sp, err := pathSport(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamName := strings.TrimSpace(r.URL.Query().Get("team"))
	stats, err := h.standings.TeamSeasonStats(ctx, viewFromContext(ctx), sp, teamName)
	if err != nil {
		h.logger.WarnContext(ctx, "team season stats failed", "sport", sp, "team", teamName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamSeasonStatsToDTO(stats))
}

func (h *Handler) InvalidateStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.InvalidateStandings")
	defer span.End()

	sp, err := pathSport(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	dropped := h.standings.Invalidate(ctx, sp)
	h.logger.InfoContext(ctx, "standings cache invalidated", "sport", sp, "dropped", dropped)
	writeSuccess(ctx, w, http.StatusOK, map[string]int{"dropped": dropped})
}
