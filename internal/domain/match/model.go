package match

import (
	"fmt"
	"sort"
	"time"
)

// DateLayout is the YYYY-MM-DD form used by date range filters.
const DateLayout = "2006-01-02"

// PageSize is the number of matches per schedule page.
const PageSize = 30

type Side struct {
	ID       string
	Name     string
	LogoPath string
}

// Match is one fixture of a season. Score is empty until the match is played.
type Match struct {
	ID       string
	Date     time.Time
	Time     string
	Home     Side
	Away     Side
	Score    string
	Location string
	Season   int
}

func (m Match) Involves(teamName string) bool {
	return m.Home.Name == teamName || m.Away.Name == teamName
}

// DateRange is an inclusive day range.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDateRange reads two YYYY-MM-DD values. An empty to defaults to from.
func ParseDateRange(from, to string) (DateRange, error) {
	start, err := time.Parse(DateLayout, from)
	if err != nil {
		return DateRange{}, fmt.Errorf("parse from date: %w", err)
	}
	end := start
	if to != "" {
		end, err = time.Parse(DateLayout, to)
		if err != nil {
			return DateRange{}, fmt.Errorf("parse to date: %w", err)
		}
	}
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("to date %s is before from date %s", to, from)
	}
	return DateRange{From: start, To: end}, nil
}

func (r DateRange) FromString() string { return r.From.Format(DateLayout) }
func (r DateRange) ToString() string   { return r.To.Format(DateLayout) }

// Page is one slice of a season schedule.
type Page struct {
	Season     int
	Number     int
	TotalCount int
	Matches    []Match
}

// PageCount returns how many pages total matches fill.
func PageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

func (p Page) PageCount() int {
	return PageCount(p.TotalCount, PageSize)
}

// SortedByDateDesc returns a copy with the most recent match first.
func SortedByDateDesc(matches []Match) []Match {
	out := append([]Match(nil), matches...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
