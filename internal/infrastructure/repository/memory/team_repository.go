package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/domain/team"
)

type TeamRepository struct {
	mu           sync.RWMutex
	teamsBySport map[sport.Sport][]team.Team
}

func NewTeamRepository(teams map[sport.Sport][]team.Team) *TeamRepository {
	teamsBySport := make(map[sport.Sport][]team.Team, len(teams))
	for sp, items := range teams {
		teamsBySport[sp] = append([]team.Team(nil), items...)
	}

	return &TeamRepository{teamsBySport: teamsBySport}
}

func (r *TeamRepository) ListAll(_ context.Context, sp sport.Sport) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := r.teamsBySport[sp]
	out := make([]team.Team, 0, len(teams))
	out = append(out, teams...)

	return out, nil
}

func (r *TeamRepository) ListBySeason(_ context.Context, sp sport.Sport, season int) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, item := range r.teamsBySport[sp] {
		if item.Season == season {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *TeamRepository) NamesBySeason(ctx context.Context, sp sport.Sport, season int) ([]string, error) {
	var (
		items []team.Team
		err   error
	)
	if season == 0 {
		items, err = r.ListAll(ctx, sp)
	} else {
		items, err = r.ListBySeason(ctx, sp, season)
	}
	if err != nil {
		return nil, err
	}

	return team.Names(items), nil
}

func (r *TeamRepository) GetLatest(_ context.Context, sp sport.Sport, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		latest team.Team
		found  bool
	)
	for _, item := range r.teamsBySport[sp] {
		if item.ID != teamID {
			continue
		}
		if !found || item.Season > latest.Season {
			latest = item
			found = true
		}
	}

	return latest, found, nil
}
