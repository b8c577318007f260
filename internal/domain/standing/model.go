package standing

import "sort"

// TeamRef is the team as embedded in a standing row.
type TeamRef struct {
	ID        string
	Name      string
	LogoPath  string
	President string
	Coach     string
	Director  string
}

// Record is one team's table row for one season.
type Record struct {
	ID            string
	Season        int
	Place         int
	Team          TeamRef
	GamesPlayed   int
	Wins          int
	Draws         int
	Losses        int
	GoalsScored   int
	GoalsConceded int
	Points        int
}

// Duplicate reports a second record for a (team, season) pair.
type Duplicate struct {
	Team      string
	Season    int
	KeptID    string
	DroppedID string
}

// SortedByPlace returns a copy ordered by place, keeping input order on ties.
func SortedByPlace(records []Record) []Record {
	out := append([]Record(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Place < out[j].Place
	})
	return out
}

// SeasonsOf returns the distinct seasons present in records, ascending.
func SeasonsOf(records []Record) []int {
	seen := make(map[int]struct{}, len(records))
	out := make([]int, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.Season]; ok {
			continue
		}
		seen[r.Season] = struct{}{}
		out = append(out, r.Season)
	}
	sort.Ints(out)
	return out
}

func indexYears(years []int) map[int]int {
	out := make(map[int]int, len(years))
	for i, year := range years {
		if _, ok := out[year]; ok {
			continue
		}
		out[year] = i
	}
	return out
}
