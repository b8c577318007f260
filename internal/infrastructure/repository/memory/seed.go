package memory

import (
	"fmt"
	"time"

	"github.com/riskibarqy/sportsboard/internal/domain/event"
	"github.com/riskibarqy/sportsboard/internal/domain/match"
	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/domain/stadium"
	"github.com/riskibarqy/sportsboard/internal/domain/standing"
	"github.com/riskibarqy/sportsboard/internal/domain/team"
)

const (
	TeamIDMaribor  = "fb-maribor"
	TeamIDOlimpija = "fb-olimpija"
	TeamIDCelje    = "fb-celje"
	TeamIDKoper    = "fb-koper"
	TeamIDRKCelje  = "hb-celje"
	TeamIDVelenje  = "hb-velenje"
)

type seedTeam struct {
	id, name, president, coach, director string
}

var seedTeams = map[sport.Sport][]seedTeam{
	sport.Football: {
		{TeamIDMaribor, "NK Maribor", "Drago Cotar", "Damir Krznar", "Marko Suler"},
		{TeamIDOlimpija, "NK Olimpija Ljubljana", "Adam Delius", "Victor Sanchez", "Ranko Stojic"},
		{TeamIDCelje, "NK Celje", "Valerij Kolotilo", "Albert Riera", "Gaber Dobrovoljc"},
		{TeamIDKoper, "FC Koper", "Bostjan Kocjancic", "Zoran Zeljkovic", "Matej Pregarc"},
	},
	sport.Handball: {
		{TeamIDRKCelje, "RK Celje Pivovarna Lasko", "Tomaz Jersic", "Alem Toskic", "Luka Ulaga"},
		{TeamIDVelenje, "RK Gorenje Velenje", "Marijan Pirsic", "Zoran Jeftic", "Rok Golcman"},
	},
}

// seedPlaces is the final table per season; a team missing from a season
// did not play in the league that year.
var seedPlaces = map[sport.Sport]map[int][]string{
	sport.Football: {
		2020: {TeamIDCelje, TeamIDMaribor, TeamIDOlimpija, TeamIDKoper},
		2021: {TeamIDMaribor, TeamIDKoper, TeamIDOlimpija},
		2022: {TeamIDMaribor, TeamIDCelje, TeamIDKoper, TeamIDOlimpija},
		2023: {TeamIDOlimpija, TeamIDCelje, TeamIDMaribor, TeamIDKoper},
		2024: {TeamIDCelje, TeamIDOlimpija, TeamIDMaribor, TeamIDKoper},
	},
	sport.Handball: {
		2022: {TeamIDRKCelje, TeamIDVelenje},
		2023: {TeamIDVelenje, TeamIDRKCelje},
		2024: {TeamIDRKCelje, TeamIDVelenje},
	},
}

func seedTeamByID(sp sport.Sport, id string) seedTeam {
	for _, t := range seedTeams[sp] {
		if t.id == id {
			return t
		}
	}
	return seedTeam{id: id, name: id}
}

func logoPath(id string) string {
	return "/images/logos/" + id + ".png"
}

// SeedTeams lists each team once per season it played.
func SeedTeams() map[sport.Sport][]team.Team {
	out := make(map[sport.Sport][]team.Team, len(seedPlaces))
	for _, sp := range sport.All() {
		for _, season := range sport.DefaultSupportedYears() {
			for _, id := range seedPlaces[sp][season] {
				t := seedTeamByID(sp, id)
				out[sp] = append(out[sp], team.Team{
					ID:        t.id,
					Name:      t.name,
					President: t.president,
					Director:  t.director,
					Coach:     t.coach,
					LogoPath:  logoPath(t.id),
					Season:    season,
				})
			}
		}
	}
	return out
}

func SeedStandings() map[sport.Sport][]standing.Record {
	out := make(map[sport.Sport][]standing.Record, len(seedPlaces))
	for _, sp := range sport.All() {
		for _, season := range sport.DefaultSupportedYears() {
			table := seedPlaces[sp][season]
			for i, id := range table {
				t := seedTeamByID(sp, id)
				played := 36
				wins := 20 - 4*i
				draws := 8 + i
				losses := played - wins - draws
				out[sp] = append(out[sp], standing.Record{
					ID:     fmt.Sprintf("st-%s-%d", id, season),
					Season: season,
					Place:  i + 1,
					Team: standing.TeamRef{
						ID:        t.id,
						Name:      t.name,
						LogoPath:  logoPath(t.id),
						President: t.president,
						Coach:     t.coach,
						Director:  t.director,
					},
					GamesPlayed:   played,
					Wins:          wins,
					Draws:         draws,
					Losses:        losses,
					GoalsScored:   60 - 7*i,
					GoalsConceded: 25 + 6*i,
					Points:        3*wins + draws,
				})
			}
		}
	}
	return out
}

// SeedMatches pairs every two teams of a season once, one round per week
// starting in mid July.
func SeedMatches() map[sport.Sport][]match.Match {
	out := make(map[sport.Sport][]match.Match, len(seedPlaces))
	for _, sp := range sport.All() {
		for _, season := range sport.DefaultSupportedYears() {
			table := seedPlaces[sp][season]
			kickoff := time.Date(season, time.July, 15, 0, 0, 0, 0, time.UTC)
			round := 0
			for i := range table {
				for j := i + 1; j < len(table); j++ {
					home, away := seedTeamByID(sp, table[i]), seedTeamByID(sp, table[j])
					out[sp] = append(out[sp], match.Match{
						ID:       fmt.Sprintf("m-%s-%d-%s-%s", sp, season, home.id, away.id),
						Date:     kickoff.AddDate(0, 0, 7*round),
						Time:     "18:00",
						Home:     match.Side{ID: home.id, Name: home.name, LogoPath: logoPath(home.id)},
						Away:     match.Side{ID: away.id, Name: away.name, LogoPath: logoPath(away.id)},
						Score:    fmt.Sprintf("%d:%d", (i+j)%3, j%2),
						Location: home.name + " Stadium",
						Season:   season,
					})
					round++
				}
			}
		}
	}
	return out
}

func SeedStadiums() map[sport.Sport][]stadium.Stadium {
	out := make(map[sport.Sport][]stadium.Stadium, len(seedTeams))
	for _, sp := range sport.All() {
		for i, t := range seedTeams[sp] {
			out[sp] = append(out[sp], stadium.Stadium{
				ID:        "std-" + t.id,
				Name:      t.name + " Stadium",
				Capacity:  5000 + 2500*i,
				Location:  event.NewGeoPoint(46.05+0.1*float64(i), 14.5+0.3*float64(i)),
				Team:      stadium.TeamRef{ID: t.id, Name: t.name},
				BuildYear: 1960 + 10*i,
				ImageURL:  "/images/stadiums/" + t.id + ".jpg",
				Season:    "2024",
				Sport:     string(sp),
			})
		}
	}
	return out
}
