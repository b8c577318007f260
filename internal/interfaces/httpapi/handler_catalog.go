package httpapi

import "net/http"

// ListTeams serves ?season=; without it every season's teams are listed.
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	sp, err := pathSport(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := queryInt(r, "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.catalog.Teams(ctx, sp, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "sport", sp, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListTeamNames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamNames")
	defer span.End()

	sp, err := pathSport(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := queryInt(r, "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	names, err := h.catalog.TeamNames(ctx, sp, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list team names failed", "sport", sp, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeSuccess(ctx, w, http.StatusOK, names)
}

func (h *Handler) GetTeamPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamPage")
	defer span.End()

	sp, err := pathSport(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID := r.PathValue("teamID")
	page, err := h.catalog.TeamPage(ctx, viewFromContext(ctx), sp, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "team page failed", "sport", sp, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamPageToDTO(page))
}

func (h *Handler) ListStadiums(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStadiums")
	defer span.End()

	sp, err := pathSport(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := queryInt(r, "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.catalog.Stadiums(ctx, sp, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list stadiums failed", "sport", sp, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, stadiumsToDTO(items))
}

// ListAllStadiums groups every sport's stadiums by sport.
func (h *Handler) ListAllStadiums(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAllStadiums")
	defer span.End()

	season, err := queryInt(r, "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	grouped, err := h.catalog.AllStadiums(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list all stadiums failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make(map[string][]stadiumDTO, len(grouped))
	for sp, items := range grouped {
		out[string(sp)] = stadiumsToDTO(items)
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetTeamStadium(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStadium")
	defer span.End()

	sp, err := pathSport(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID := r.PathValue("teamID")
	venue, err := h.catalog.StadiumByTeam(ctx, sp, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team stadium failed", "sport", sp, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, stadiumToDTO(venue))
}
