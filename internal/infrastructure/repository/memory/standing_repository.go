package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/domain/standing"
)

type StandingRepository struct {
	mu      sync.RWMutex
	bySport map[sport.Sport][]standing.Record
}

func NewStandingRepository(records map[sport.Sport][]standing.Record) *StandingRepository {
	bySport := make(map[sport.Sport][]standing.Record, len(records))
	for sp, items := range records {
		bySport[sp] = append([]standing.Record(nil), items...)
	}

	return &StandingRepository{bySport: bySport}
}

func (r *StandingRepository) ListBySport(_ context.Context, sp sport.Sport) ([]standing.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]standing.Record(nil), r.bySport[sp]...), nil
}

func (r *StandingRepository) ListBySeason(_ context.Context, sp sport.Sport, season int) ([]standing.Record, error) {
	return r.filter(sp, func(item standing.Record) bool { return item.Season == season }), nil
}

// ListByTeamName matches case-insensitively on a name substring, as the
// backend endpoint does.
func (r *StandingRepository) ListByTeamName(_ context.Context, sp sport.Sport, teamName string) ([]standing.Record, error) {
	needle := strings.ToLower(strings.TrimSpace(teamName))
	return r.filter(sp, func(item standing.Record) bool {
		return needle != "" && strings.Contains(strings.ToLower(item.Team.Name), needle)
	}), nil
}

func (r *StandingRepository) filter(sp sport.Sport, keep func(standing.Record) bool) []standing.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]standing.Record, 0)
	for _, item := range r.bySport[sp] {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
