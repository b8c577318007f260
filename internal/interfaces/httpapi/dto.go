package httpapi

import (
	"github.com/riskibarqy/sportsboard/internal/domain/event"
	"github.com/riskibarqy/sportsboard/internal/domain/match"
	"github.com/riskibarqy/sportsboard/internal/domain/stadium"
	"github.com/riskibarqy/sportsboard/internal/domain/standing"
	"github.com/riskibarqy/sportsboard/internal/domain/team"
	"github.com/riskibarqy/sportsboard/internal/domain/user"
	"github.com/riskibarqy/sportsboard/internal/usecase"
)

type teamTrajectoryDTO struct {
	Team     string `json:"team"`
	LogoPath string `json:"logoPath,omitempty"`
	Places   []*int `json:"places"`
}

type trajectoryDTO struct {
	Years []int               `json:"years"`
	Teams []teamTrajectoryDTO `json:"teams"`
}

func trajectoryToDTO(v standing.Trajectory) trajectoryDTO {
	out := trajectoryDTO{
		Years: append([]int{}, v.Years...),
		Teams: make([]teamTrajectoryDTO, 0, len(v.Teams)),
	}
	for _, item := range v.Teams {
		out.Teams = append(out.Teams, teamTrajectoryDTO{
			Team:     item.Team,
			LogoPath: item.LogoPath,
			Places:   item.Places,
		})
	}
	return out
}

type standingDTO struct {
	ID            string `json:"id"`
	Season        int    `json:"season"`
	Place         int    `json:"place"`
	TeamID        string `json:"teamId"`
	TeamName      string `json:"teamName"`
	LogoPath      string `json:"logoPath,omitempty"`
	GamesPlayed   int    `json:"gamesPlayed"`
	Wins          int    `json:"wins"`
	Draws         int    `json:"draws"`
	Losses        int    `json:"losses"`
	GoalsScored   int    `json:"goalsScored"`
	GoalsConceded int    `json:"goalsConceded"`
	Points        int    `json:"points"`
}

func standingToDTO(v standing.Record) standingDTO {
	return standingDTO{
		ID:            v.ID,
		Season:        v.Season,
		Place:         v.Place,
		TeamID:        v.Team.ID,
		TeamName:      v.Team.Name,
		LogoPath:      v.Team.LogoPath,
		GamesPlayed:   v.GamesPlayed,
		Wins:          v.Wins,
		Draws:         v.Draws,
		Losses:        v.Losses,
		GoalsScored:   v.GoalsScored,
		GoalsConceded: v.GoalsConceded,
		Points:        v.Points,
	}
}

func standingsToDTO(items []standing.Record) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, standingToDTO(item))
	}
	return out
}

type teamSeasonStatsDTO struct {
	Team            string           `json:"team"`
	Years           []int            `json:"years"`
	Stats           map[string][]int `json:"stats"`
	ObservedSeasons []int            `json:"observedSeasons"`
}

func teamSeasonStatsToDTO(v usecase.TeamSeasonStats) teamSeasonStatsDTO {
	stats := make(map[string][]int, len(v.Series.Values))
	for _, key := range standing.StatKeys() {
		stats[string(key)] = append([]int{}, v.Series.Get(key)...)
	}
	return teamSeasonStatsDTO{
		Team:            v.Team,
		Years:           append([]int{}, v.Series.Years...),
		Stats:           stats,
		ObservedSeasons: append([]int{}, v.ObservedSeasons...),
	}
}

type teamDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	President string `json:"president,omitempty"`
	Director  string `json:"director,omitempty"`
	Coach     string `json:"coach,omitempty"`
	LogoPath  string `json:"logoPath,omitempty"`
	Season    int    `json:"season"`
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:        v.ID,
		Name:      v.Name,
		President: v.President,
		Director:  v.Director,
		Coach:     v.Coach,
		LogoPath:  v.LogoPath,
		Season:    v.Season,
	}
}

type sideDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LogoPath string `json:"logoPath,omitempty"`
}

type matchDTO struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Home     sideDTO `json:"home"`
	Away     sideDTO `json:"away"`
	Score    string  `json:"score,omitempty"`
	Location string  `json:"location,omitempty"`
	Season   int     `json:"season"`
}

func matchToDTO(v match.Match) matchDTO {
	date := ""
	if !v.Date.IsZero() {
		date = v.Date.Format(match.DateLayout)
	}
	return matchDTO{
		ID:       v.ID,
		Date:     date,
		Time:     v.Time,
		Home:     sideDTO{ID: v.Home.ID, Name: v.Home.Name, LogoPath: v.Home.LogoPath},
		Away:     sideDTO{ID: v.Away.ID, Name: v.Away.Name, LogoPath: v.Away.LogoPath},
		Score:    v.Score,
		Location: v.Location,
		Season:   v.Season,
	}
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	return out
}

type matchPageDTO struct {
	Season     int        `json:"season"`
	Page       int        `json:"page"`
	PageCount  int        `json:"pageCount"`
	TotalCount int        `json:"totalCount"`
	Matches    []matchDTO `json:"matches"`
}

func matchPageToDTO(v match.Page) matchPageDTO {
	return matchPageDTO{
		Season:     v.Season,
		Page:       v.Number,
		PageCount:  v.PageCount(),
		TotalCount: v.TotalCount,
		Matches:    matchesToDTO(v.Matches),
	}
}

type stadiumDTO struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Capacity  int            `json:"capacity"`
	Location  event.GeoPoint `json:"location"`
	TeamID    string         `json:"teamId,omitempty"`
	TeamName  string         `json:"teamName,omitempty"`
	BuildYear int            `json:"buildYear,omitempty"`
	ImageURL  string         `json:"imageUrl,omitempty"`
	Season    string         `json:"season,omitempty"`
	Sport     string         `json:"sport"`
}

func stadiumToDTO(v stadium.Stadium) stadiumDTO {
	return stadiumDTO{
		ID:        v.ID,
		Name:      v.Name,
		Capacity:  v.Capacity,
		Location:  v.Location,
		TeamID:    v.Team.ID,
		TeamName:  v.Team.Name,
		BuildYear: v.BuildYear,
		ImageURL:  v.ImageURL,
		Season:    v.Season,
		Sport:     v.Sport,
	}
}

func stadiumsToDTO(items []stadium.Stadium) []stadiumDTO {
	out := make([]stadiumDTO, 0, len(items))
	for _, item := range items {
		out = append(out, stadiumToDTO(item))
	}
	return out
}

type teamPageDTO struct {
	Team      teamDTO       `json:"team"`
	Stadium   *stadiumDTO   `json:"stadium,omitempty"`
	Season    int           `json:"season"`
	Standings []standingDTO `json:"standings"`
	Matches   []matchDTO    `json:"matches"`
}

func teamPageToDTO(v usecase.TeamPage) teamPageDTO {
	out := teamPageDTO{
		Team:      teamToDTO(v.Team),
		Season:    v.Season,
		Standings: standingsToDTO(v.Standings),
		Matches:   matchesToDTO(v.Matches),
	}
	if v.Stadium != nil {
		venue := stadiumToDTO(*v.Stadium)
		out.Stadium = &venue
	}
	return out
}

type hostDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Image    string `json:"image,omitempty"`
}

type eventDTO struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Activity    string         `json:"activity"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
	Location    event.GeoPoint `json:"location"`
	Host        hostDTO        `json:"host"`
	IsFollowing bool           `json:"isFollowing"`
	Followers   int            `json:"followers"`
	CanDelete   bool           `json:"canDelete"`
}

func eventViewToDTO(v usecase.EventView) eventDTO {
	date := ""
	if !v.Event.Date.IsZero() {
		date = v.Event.Date.Format(event.DateLayout)
	}
	return eventDTO{
		ID:          v.Event.ID,
		Name:        v.Event.Name,
		Description: v.Event.Description,
		Activity:    v.Event.Activity,
		Date:        date,
		Time:        v.Event.Time,
		Location:    v.Event.Location,
		Host: hostDTO{
			ID:       v.Event.Host.ID,
			Username: v.Event.Host.Username,
			Image:    v.Event.Host.Image,
		},
		IsFollowing: v.Follow.IsFollowing,
		Followers:   v.Follow.DisplayCount,
		CanDelete:   v.CanDelete,
	}
}

type feedDTO struct {
	State      string     `json:"state"`
	Connection string     `json:"connection"`
	Error      string     `json:"error,omitempty"`
	Events     []eventDTO `json:"events"`
}

func feedToDTO(v usecase.FeedSnapshot) feedDTO {
	out := feedDTO{
		State:      string(v.State),
		Connection: string(v.Connection),
		Error:      v.Error,
		Events:     make([]eventDTO, 0, len(v.Events)),
	}
	for _, item := range v.Events {
		out.Events = append(out.Events, eventViewToDTO(item))
	}
	return out
}

type followStateDTO struct {
	EventID     string `json:"eventId"`
	IsFollowing bool   `json:"isFollowing"`
	Followers   int    `json:"followers"`
}

// sessionDTO never carries the bearer token back to the browser.
type sessionDTO struct {
	SignedIn bool   `json:"signedIn"`
	UserID   string `json:"userId,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Image    string `json:"image,omitempty"`
	IsAdmin  bool   `json:"isAdmin"`
}

func sessionToDTO(v user.Session) sessionDTO {
	if v.IsAnonymous() {
		return sessionDTO{}
	}
	return sessionDTO{
		SignedIn: true,
		UserID:   v.UserID,
		Username: v.Username,
		Email:    v.Email,
		Image:    v.Image,
		IsAdmin:  v.IsAdmin,
	}
}

type profileDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Image    string `json:"image,omitempty"`
}

func profileToDTO(v user.Profile) profileDTO {
	return profileDTO{ID: v.ID, Username: v.Username, Email: v.Email, Image: v.Image}
}
