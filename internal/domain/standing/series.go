package standing

type StatKey string

const (
	StatWins          StatKey = "wins"
	StatDraws         StatKey = "draws"
	StatLosses        StatKey = "losses"
	StatGoalsScored   StatKey = "goalsScored"
	StatGoalsConceded StatKey = "goalsConceded"
	StatPoints        StatKey = "points"
)

func StatKeys() []StatKey {
	return []StatKey{StatWins, StatDraws, StatLosses, StatGoalsScored, StatGoalsConceded, StatPoints}
}

func (r Record) Stat(key StatKey) int {
	switch key {
	case StatWins:
		return r.Wins
	case StatDraws:
		return r.Draws
	case StatLosses:
		return r.Losses
	case StatGoalsScored:
		return r.GoalsScored
	case StatGoalsConceded:
		return r.GoalsConceded
	case StatPoints:
		return r.Points
	default:
		return 0
	}
}

// SeasonSeries holds one value per supported year for every StatKey.
type SeasonSeries struct {
	Years  []int
	Values map[StatKey][]int
}

func (s SeasonSeries) Get(key StatKey) []int {
	return s.Values[key]
}

// BuildSeasonSeries aligns one team's rows to years. A year without a row
// yields 0 for every stat. The first row for a season wins; later rows for the
// same season are reported as duplicates. Rows are not filtered by team.
func BuildSeasonSeries(records []Record, years []int) (SeasonSeries, []Duplicate) {
	wanted := indexYears(years)
	first := make(map[int]int, len(years))
	var duplicates []Duplicate

	for i, record := range records {
		if _, ok := wanted[record.Season]; !ok {
			continue
		}
		if keptIdx, seen := first[record.Season]; seen {
			duplicates = append(duplicates, Duplicate{
				Team:      record.Team.Name,
				Season:    record.Season,
				KeptID:    records[keptIdx].ID,
				DroppedID: record.ID,
			})
			continue
		}
		first[record.Season] = i
	}

	out := SeasonSeries{
		Years:  append([]int(nil), years...),
		Values: make(map[StatKey][]int, len(StatKeys())),
	}
	for _, key := range StatKeys() {
		values := make([]int, len(years))
		for i, year := range years {
			if idx, ok := first[year]; ok {
				values[i] = records[idx].Stat(key)
			}
		}
		out.Values[key] = values
	}

	return out, duplicates
}
