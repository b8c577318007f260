package sportsapi

import (
	"strings"
	"time"

	"github.com/riskibarqy/sportsboard/internal/domain/event"
	"github.com/riskibarqy/sportsboard/internal/domain/match"
	"github.com/riskibarqy/sportsboard/internal/domain/stadium"
	"github.com/riskibarqy/sportsboard/internal/domain/standing"
	"github.com/riskibarqy/sportsboard/internal/domain/team"
	"github.com/riskibarqy/sportsboard/internal/domain/user"
)

type teamRefDTO struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	LogoPath  string `json:"logoPath"`
	President string `json:"president"`
	Coach     string `json:"coach"`
	Director  string `json:"director"`
}

type standingDTO struct {
	ID            string     `json:"_id"`
	Place         int        `json:"place"`
	Team          teamRefDTO `json:"team"`
	GamesPlayed   int        `json:"gamesPlayed"`
	Wins          int        `json:"wins"`
	Draws         int        `json:"draws"`
	Losses        int        `json:"losses"`
	GoalsScored   int        `json:"goalsScored"`
	GoalsConceded int        `json:"goalsConceded"`
	Points        int        `json:"points"`
	Season        int        `json:"season"`
}

func (d standingDTO) toDomain() standing.Record {
	return standing.Record{
		ID:     d.ID,
		Season: d.Season,
		Place:  d.Place,
		Team: standing.TeamRef{
			ID:        d.Team.ID,
			Name:      strings.TrimSpace(d.Team.Name),
			LogoPath:  d.Team.LogoPath,
			President: d.Team.President,
			Coach:     d.Team.Coach,
			Director:  d.Team.Director,
		},
		GamesPlayed:   d.GamesPlayed,
		Wins:          d.Wins,
		Draws:         d.Draws,
		Losses:        d.Losses,
		GoalsScored:   d.GoalsScored,
		GoalsConceded: d.GoalsConceded,
		Points:        d.Points,
	}
}

type teamDTO struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	President string `json:"president"`
	Director  string `json:"director"`
	Coach     string `json:"coach"`
	LogoPath  string `json:"logoPath"`
	Season    int    `json:"season"`
}

func (d teamDTO) toDomain() team.Team {
	return team.Team{
		ID:        d.ID,
		Name:      strings.TrimSpace(d.Name),
		President: d.President,
		Director:  d.Director,
		Coach:     d.Coach,
		LogoPath:  d.LogoPath,
		Season:    d.Season,
	}
}

type sideDTO struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	LogoPath string `json:"logoPath"`
}

func (d sideDTO) toDomain() match.Side {
	return match.Side{ID: d.ID, Name: strings.TrimSpace(d.Name), LogoPath: d.LogoPath}
}

type matchDTO struct {
	ID       string  `json:"_id"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Home     sideDTO `json:"home"`
	Away     sideDTO `json:"away"`
	Score    string  `json:"score"`
	Location string  `json:"location"`
	Season   int     `json:"season"`
}

func (d matchDTO) toDomain() match.Match {
	return match.Match{
		ID:       d.ID,
		Date:     parseDate(d.Date),
		Time:     d.Time,
		Home:     d.Home.toDomain(),
		Away:     d.Away.toDomain(),
		Score:    d.Score,
		Location: d.Location,
		Season:   d.Season,
	}
}

type stadiumDTO struct {
	ID        string         `json:"_id"`
	Name      string         `json:"name"`
	Capacity  int            `json:"capacity"`
	Location  event.GeoPoint `json:"location"`
	Team      sideDTO        `json:"teamId"`
	BuildYear int            `json:"buildYear"`
	ImageURL  string         `json:"imageUrl"`
	Season    string         `json:"season"`
	Sport     string         `json:"sport"`
}

func (d stadiumDTO) toDomain() stadium.Stadium {
	return stadium.Stadium{
		ID:        d.ID,
		Name:      d.Name,
		Capacity:  d.Capacity,
		Location:  d.Location,
		Team:      stadium.TeamRef{ID: d.Team.ID, Name: strings.TrimSpace(d.Team.Name)},
		BuildYear: d.BuildYear,
		ImageURL:  d.ImageURL,
		Season:    d.Season,
		Sport:     d.Sport,
	}
}

type hostDTO struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Image    string `json:"image"`
}

type eventDTO struct {
	ID          string         `json:"_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Activity    string         `json:"activity"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
	Location    event.GeoPoint `json:"location"`
	Host        hostDTO        `json:"host"`
	Followers   []string       `json:"followers"`
}

func (d eventDTO) toDomain() event.Event {
	return event.Event{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Activity:    d.Activity,
		Date:        parseDate(d.Date),
		Time:        d.Time,
		Location:    d.Location,
		Host: event.Host{
			ID:       d.Host.ID,
			Username: d.Host.Username,
			Email:    d.Host.Email,
			Image:    d.Host.Image,
		},
		Followers: append([]string(nil), d.Followers...),
	}
}

type eventCreateDTO struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Activity    string         `json:"activity"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
	Location    event.GeoPoint `json:"location"`
}

func newEventCreateDTO(draft event.Draft) eventCreateDTO {
	out := eventCreateDTO{
		Name:        draft.Name,
		Description: draft.Description,
		Activity:    draft.Activity,
		Date:        draft.Date,
		Time:        draft.Time,
	}
	if draft.Location != nil {
		out.Location = *draft.Location
	}
	return out
}

// userDTO is both the login response and the profile shape; token is only
// present on login.
type userDTO struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Image    string `json:"image"`
	IsAdmin  bool   `json:"isAdmin"`
	Token    string `json:"token"`
}

func (d userDTO) toSession() user.Session {
	return user.Session{
		UserID:   d.ID,
		Username: d.Username,
		Email:    d.Email,
		Image:    d.Image,
		IsAdmin:  d.IsAdmin,
		Token:    d.Token,
	}
}

func (d userDTO) toProfile() user.Profile {
	return user.Profile{
		ID:       d.ID,
		Username: d.Username,
		Email:    d.Email,
		Image:    d.Image,
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	match.DateLayout,
}

// parseDate accepts the ISO forms the backend emits. Unparsable values map to
// the zero time.
func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
