package standing

import "strings"

type TeamTrajectory struct {
	Team     string
	LogoPath string
	// Places has one slot per supported year; nil marks a season without a row.
	Places []*int
}

// Trajectory is the per-team placement series across the supported years,
// in first-seen team order.
type Trajectory struct {
	Years []int
	Teams []TeamTrajectory
}

func (t Trajectory) TeamNames() []string {
	out := make([]string, 0, len(t.Teams))
	for _, team := range t.Teams {
		out = append(out, team.Team)
	}
	return out
}

func (t Trajectory) Places(team string) ([]*int, bool) {
	for _, item := range t.Teams {
		if item.Team == team {
			return item.Places, true
		}
	}
	return nil, false
}

func (t Trajectory) AsMap() map[string][]*int {
	out := make(map[string][]*int, len(t.Teams))
	for _, item := range t.Teams {
		out[item.Team] = item.Places
	}
	return out
}

type teamSeason struct {
	team   string
	season int
}

// BuildTrajectory folds standing rows into placement series. Seasons outside
// years are ignored and rows without a team name are skipped. When a team has
// several rows for one season the last one wins and the overwritten row is
// reported as a Duplicate.
func BuildTrajectory(records []Record, years []int) (Trajectory, []Duplicate) {
	yearIndex := indexYears(years)
	out := Trajectory{
		Years: append([]int(nil), years...),
		Teams: make([]TeamTrajectory, 0),
	}

	teamIndex := make(map[string]int)
	lastID := make(map[teamSeason]string)
	var duplicates []Duplicate

	for _, record := range records {
		name := record.Team.Name
		if strings.TrimSpace(name) == "" {
			continue
		}

		idx, ok := teamIndex[name]
		if !ok {
			idx = len(out.Teams)
			teamIndex[name] = idx
			out.Teams = append(out.Teams, TeamTrajectory{
				Team:     name,
				LogoPath: record.Team.LogoPath,
				Places:   make([]*int, len(years)),
			})
		}

		slot, ok := yearIndex[record.Season]
		if !ok {
			continue
		}

		key := teamSeason{team: name, season: record.Season}
		if prev, seen := lastID[key]; seen {
			duplicates = append(duplicates, Duplicate{
				Team:      name,
				Season:    record.Season,
				KeptID:    record.ID,
				DroppedID: prev,
			})
		}
		lastID[key] = record.ID

		place := record.Place
		out.Teams[idx].Places[slot] = &place
	}

	return out, duplicates
}
