package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/domain/stadium"
)

type StadiumRepository struct {
	mu      sync.RWMutex
	bySport map[sport.Sport][]stadium.Stadium
}

func NewStadiumRepository(stadiums map[sport.Sport][]stadium.Stadium) *StadiumRepository {
	bySport := make(map[sport.Sport][]stadium.Stadium, len(stadiums))
	for sp, items := range stadiums {
		bySport[sp] = append([]stadium.Stadium(nil), items...)
	}

	return &StadiumRepository{bySport: bySport}
}

func (r *StadiumRepository) ListBySeason(_ context.Context, sp sport.Sport, season int) ([]stadium.Stadium, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := strconv.Itoa(season)
	out := make([]stadium.Stadium, 0)
	for _, item := range r.bySport[sp] {
		if item.Season == want {
			out = append(out, item)
		}
	}
	return out, nil
}

// GetByTeam returns the team's stadium from its most recent season.
func (r *StadiumRepository) GetByTeam(_ context.Context, sp sport.Sport, teamID string) (stadium.Stadium, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		out   stadium.Stadium
		found bool
	)
	for _, item := range r.bySport[sp] {
		if item.Team.ID != teamID {
			continue
		}
		if !found || item.Season > out.Season {
			out = item
			found = true
		}
	}
	return out, found, nil
}
