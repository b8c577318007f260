package httpapi

import "net/http"

type routeRegistrar struct {
	mux      *http.ServeMux
	observer HTTPObserver
}

func (r routeRegistrar) handle(pattern string, fn http.HandlerFunc) {
	r.mux.Handle(pattern, instrument(r.observer, pattern, fn))
}

func registerSystemRoutes(r routeRegistrar, h *Handler, metrics http.Handler) {
	r.mux.HandleFunc("GET /healthz", h.Healthz)
	if metrics != nil {
		r.mux.Handle("GET /metrics", metrics)
	}
}

func registerStandingsRoutes(r routeRegistrar, h *Handler) {
	if h.standings == nil {
		return
	}
	r.handle("GET /v1/seasons", h.SupportedYears)
	r.handle("GET /v1/sports/{sport}/standings/trajectory", h.GetTrajectory)
	r.handle("GET /v1/sports/{sport}/standings/seasons/{season}", h.GetSeasonTable)
	r.handle("POST /v1/sports/{sport}/standings/invalidate", h.InvalidateStandings)
	r.handle("GET /v1/sports/{sport}/teams/stats", h.GetTeamSeasonStats)
}

func registerCatalogRoutes(r routeRegistrar, h *Handler) {
	if h.catalog == nil {
		return
	}
	r.handle("GET /v1/sports/{sport}/teams", h.ListTeams)
	r.handle("GET /v1/sports/{sport}/teams/names", h.ListTeamNames)
	r.handle("GET /v1/sports/{sport}/teams/{teamID}", h.GetTeamPage)
	r.handle("GET /v1/sports/{sport}/teams/{teamID}/stadium", h.GetTeamStadium)
	r.handle("GET /v1/sports/{sport}/stadiums", h.ListStadiums)
	r.handle("GET /v1/stadiums", h.ListAllStadiums)
}

func registerScheduleRoutes(r routeRegistrar, h *Handler) {
	if h.schedule == nil {
		return
	}
	r.handle("GET /v1/sports/{sport}/matches", h.ListMatchesByDateRange)
	r.handle("GET /v1/sports/{sport}/matches/seasons/{season}", h.GetSeasonSchedulePage)
	r.handle("GET /v1/sports/{sport}/matches/seasons/{season}/teams/{teamID}", h.ListTeamSeasonMatches)
}

func registerEventRoutes(r routeRegistrar, h *Handler) {
	if h.feed != nil && h.sessions != nil {
		r.handle("GET /v1/events", h.GetEvents)
		r.handle("POST /v1/events/refresh", h.RefreshEvents)
		r.handle("GET /v1/events/errors", h.ListEventErrors)
		r.handle("POST /v1/events/{eventID}/follow", h.FollowEvent)
		r.handle("DELETE /v1/events/{eventID}", h.DeleteEvent)
	}
	if h.events != nil {
		r.handle("POST /v1/events", h.CreateEvent)
		r.handle("GET /v1/events/draft", h.GetEventDraft)
		r.handle("PUT /v1/events/draft", h.SaveEventDraft)
	}
}

func registerSessionRoutes(r routeRegistrar, h *Handler) {
	if h.sessions == nil {
		return
	}
	r.handle("POST /v1/session/login", h.Login)
	r.handle("POST /v1/session/register", h.Register)
	r.handle("POST /v1/session/logout", h.Logout)
	r.handle("GET /v1/session", h.GetSession)
	r.handle("GET /v1/users/{userID}", h.GetProfile)
	r.handle("PUT /v1/profile", h.UpdateProfile)
}

func registerPreferenceRoutes(r routeRegistrar, h *Handler) {
	if h.preferences == nil {
		return
	}
	r.handle("GET /v1/preferences/filters", h.ListFilters)
	r.handle("GET /v1/preferences/filters/{view}", h.GetFilter)
	r.handle("PUT /v1/preferences/filters/{view}", h.SaveFilter)
	r.handle("GET /v1/preferences/last-path", h.GetLastPath)
	r.handle("PUT /v1/preferences/last-path", h.SetLastPath)
	r.handle("GET /v1/preferences/drafts/login", h.GetLoginDraft)
	r.handle("PUT /v1/preferences/drafts/login", h.SaveLoginDraft)
	r.handle("GET /v1/preferences/drafts/register", h.GetRegisterDraft)
	r.handle("PUT /v1/preferences/drafts/register", h.SaveRegisterDraft)
}
