package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sportsboard/internal/domain/match"
	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/domain/stadium"
	"github.com/riskibarqy/sportsboard/internal/domain/standing"
	"github.com/riskibarqy/sportsboard/internal/domain/team"
	"github.com/riskibarqy/sportsboard/internal/platform/cache"
	"github.com/riskibarqy/sportsboard/internal/platform/latest"
	"github.com/sourcegraph/conc/pool"
)

// TeamPage is everything a team screen shows, loaded together.
type TeamPage struct {
	Team      team.Team
	Stadium   *stadium.Stadium
	Standings []standing.Record
	Matches   []match.Match
	Season    int
}

type CatalogService struct {
	teams     team.Repository
	stadiums  stadium.Repository
	standings standing.Repository
	matches   match.Repository
	cache     *cache.Store
	tracker   *latest.Tracker
}

func NewCatalogService(
	teams team.Repository,
	stadiums stadium.Repository,
	standings standing.Repository,
	matches match.Repository,
	store *cache.Store,
	tracker *latest.Tracker,
) *CatalogService {
	return &CatalogService{
		teams:     teams,
		stadiums:  stadiums,
		standings: standings,
		matches:   matches,
		cache:     store,
		tracker:   tracker,
	}
}

// Teams lists the teams of season, or of every season when season is 0.
func (s *CatalogService) Teams(ctx context.Context, sp sport.Sport, season int) ([]team.Team, error) {
	key := cache.Key("teams", sp, season)
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) ([]team.Team, error) {
		var (
			items []team.Team
			err   error
		)
		if season == 0 {
			items, err = s.teams.ListAll(ctx, sp)
		} else {
			items, err = s.teams.ListBySeason(ctx, sp, season)
		}
		if err != nil {
			return nil, fmt.Errorf("list teams season=%d: %w", season, err)
		}
		return items, nil
	})
}

// TeamNames lists team names of season, or of every season when season is 0.
func (s *CatalogService) TeamNames(ctx context.Context, sp sport.Sport, season int) ([]string, error) {
	key := cache.Key("teams", sp, season, "names")
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) ([]string, error) {
		names, err := s.teams.NamesBySeason(ctx, sp, season)
		if err != nil {
			return nil, fmt.Errorf("list team names season=%d: %w", season, err)
		}
		return names, nil
	})
}

func (s *CatalogService) LatestTeam(ctx context.Context, sp sport.Sport, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teams.GetLatest(ctx, sp, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get latest team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return item, nil
}

func (s *CatalogService) Stadiums(ctx context.Context, sp sport.Sport, season int) ([]stadium.Stadium, error) {
	key := cache.Key("stadiums", sp, season)
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) ([]stadium.Stadium, error) {
		items, err := s.stadiums.ListBySeason(ctx, sp, season)
		if err != nil {
			return nil, fmt.Errorf("list stadiums season=%d: %w", season, err)
		}
		return items, nil
	})
}

// AllStadiums lists the stadiums of every sport for season.
func (s *CatalogService) AllStadiums(ctx context.Context, season int) (map[sport.Sport][]stadium.Stadium, error) {
	sports := sport.All()
	results := make([][]stadium.Stadium, len(sports))

	p := pool.New().WithContext(ctx).WithCancelOnError()
	for i, sp := range sports {
		p.Go(func(ctx context.Context) error {
			items, err := s.Stadiums(ctx, sp, season)
			if err != nil {
				return err
			}
			results[i] = items
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	out := make(map[sport.Sport][]stadium.Stadium, len(sports))
	for i, sp := range sports {
		out[sp] = results[i]
	}
	return out, nil
}

func (s *CatalogService) StadiumByTeam(ctx context.Context, sp sport.Sport, teamID string) (stadium.Stadium, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return stadium.Stadium{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.stadiums.GetByTeam(ctx, sp, teamID)
	if err != nil {
		return stadium.Stadium{}, fmt.Errorf("get stadium by team: %w", err)
	}
	if !exists {
		return stadium.Stadium{}, fmt.Errorf("%w: stadium for team=%s", ErrNotFound, teamID)
	}
	return item, nil
}

// TeamPage loads the team, then its stadium, its season's table and its
// season's matches concurrently. A missing stadium is not an error.
func (s *CatalogService) TeamPage(ctx context.Context, view string, sp sport.Sport, teamID string) (TeamPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.TeamPage", sportAttr(sp))
	defer span.End()

	return supersede(ctx, s.tracker, view, "catalog.team_page", func(ctx context.Context) (TeamPage, error) {
		item, err := s.LatestTeam(ctx, sp, teamID)
		if err != nil {
			return TeamPage{}, err
		}

		page := TeamPage{Team: item, Season: item.Season}

		p := pool.New().WithContext(ctx).WithCancelOnError()
		p.Go(func(ctx context.Context) error {
			venue, exists, err := s.stadiums.GetByTeam(ctx, sp, item.ID)
			if err != nil {
				return fmt.Errorf("get stadium by team: %w", err)
			}
			if exists {
				page.Stadium = &venue
			}
			return nil
		})
		p.Go(func(ctx context.Context) error {
			rows, err := cache.Load(ctx, s.cache, cache.Key("standings", sp, page.Season), func(ctx context.Context) ([]standing.Record, error) {
				return s.standings.ListBySeason(ctx, sp, page.Season)
			})
			if err != nil {
				return fmt.Errorf("list standings season=%d: %w", page.Season, err)
			}
			page.Standings = standing.SortedByPlace(rows)
			return nil
		})
		p.Go(func(ctx context.Context) error {
			items, err := s.matches.ListBySeasonAndTeam(ctx, sp, page.Season, item.ID)
			if err != nil {
				return fmt.Errorf("list team matches: %w", err)
			}
			page.Matches = match.SortedByDateDesc(items)
			return nil
		})
		if err := p.Wait(); err != nil {
			return TeamPage{}, err
		}
		return page, nil
	})
}
