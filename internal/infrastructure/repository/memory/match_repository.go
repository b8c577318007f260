package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/sportsboard/internal/domain/match"
	"github.com/riskibarqy/sportsboard/internal/domain/sport"
)

type MatchRepository struct {
	mu      sync.RWMutex
	bySport map[sport.Sport][]match.Match
}

func NewMatchRepository(matches map[sport.Sport][]match.Match) *MatchRepository {
	bySport := make(map[sport.Sport][]match.Match, len(matches))
	for sp, items := range matches {
		rows := append([]match.Match(nil), items...)
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
		bySport[sp] = rows
	}

	return &MatchRepository{bySport: bySport}
}

func (r *MatchRepository) ListByDateRange(_ context.Context, sp sport.Sport, dr match.DateRange) ([]match.Match, error) {
	end := dr.To.AddDate(0, 0, 1)
	return r.filter(sp, func(item match.Match) bool {
		return !item.Date.Before(dr.From) && item.Date.Before(end)
	}), nil
}

func (r *MatchRepository) ListBySeasonAndTeam(_ context.Context, sp sport.Sport, season int, teamID string) ([]match.Match, error) {
	return r.filter(sp, func(item match.Match) bool {
		return item.Season == season && (item.Home.ID == teamID || item.Away.ID == teamID)
	}), nil
}

func (r *MatchRepository) CountBySeason(_ context.Context, sp sport.Sport, season int) (int, error) {
	return len(r.filter(sp, func(item match.Match) bool { return item.Season == season })), nil
}

func (r *MatchRepository) ListBySeasonPage(_ context.Context, sp sport.Sport, season, page int) ([]match.Match, error) {
	rows := r.filter(sp, func(item match.Match) bool { return item.Season == season })
	if page < 1 {
		page = 1
	}
	start := (page - 1) * match.PageSize
	if start >= len(rows) {
		return []match.Match{}, nil
	}
	end := min(start+match.PageSize, len(rows))
	return rows[start:end], nil
}

func (r *MatchRepository) filter(sp sport.Sport, keep func(match.Match) bool) []match.Match {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, item := range r.bySport[sp] {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
