package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/domain/standing"
	"github.com/riskibarqy/sportsboard/internal/platform/cache"
	"github.com/riskibarqy/sportsboard/internal/platform/latest"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
)

const defaultFanOutWorkers = 4

type StandingsServiceConfig struct {
	SupportedYears []int
	// FanOutSeasons loads the trajectory with one request per supported
	// season instead of one request for every season.
	FanOutSeasons bool
	FanOutWorkers int
	Logger        *logging.Logger
}

// TeamSeasonStats is one team's per-season statistics plus the seasons it
// actually has records for.
type TeamSeasonStats struct {
	Team            string
	Series          standing.SeasonSeries
	ObservedSeasons []int
}

type StandingsService struct {
	repo    standing.Repository
	cache   *cache.Store
	tracker *latest.Tracker
	years   []int
	fanOut  bool
	workers int
	logger  *logging.Logger
}

func NewStandingsService(repo standing.Repository, store *cache.Store, tracker *latest.Tracker, cfg StandingsServiceConfig) *StandingsService {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	years := cfg.SupportedYears
	if len(years) == 0 {
		years = sport.DefaultSupportedYears()
	}
	workers := cfg.FanOutWorkers
	if workers <= 0 {
		workers = defaultFanOutWorkers
	}

	return &StandingsService{
		repo:    repo,
		cache:   store,
		tracker: tracker,
		years:   append([]int(nil), years...),
		fanOut:  cfg.FanOutSeasons,
		workers: workers,
		logger:  logger.Named("standings"),
	}
}

func (s *StandingsService) SupportedYears() []int {
	return append([]int(nil), s.years...)
}

// Trajectory returns every team's place per supported season. view, when set,
// names the screen asking so that a newer request for it supersedes this one.
func (s *StandingsService) Trajectory(ctx context.Context, view string, sp sport.Sport) (standing.Trajectory, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Trajectory", sportAttr(sp))
	defer span.End()

	return supersede(ctx, s.tracker, view, "standings.trajectory", func(ctx context.Context) (standing.Trajectory, error) {
		records, err := s.allSeasons(ctx, sp)
		if err != nil {
			return standing.Trajectory{}, err
		}

		trajectory, dups := standing.BuildTrajectory(records, s.years)
		s.logDuplicates(ctx, "trajectory", sp, dups)
		return trajectory, nil
	})
}

// SeasonTable returns one season's table ordered by place.
func (s *StandingsService) SeasonTable(ctx context.Context, view string, sp sport.Sport, season int) ([]standing.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.SeasonTable", sportAttr(sp))
	defer span.End()

	if !sport.IsSupportedYear(s.years, season) {
		return nil, fmt.Errorf("%w: season %d is not supported", ErrInvalidInput, season)
	}

	return supersede(ctx, s.tracker, view, "standings.season_table", func(ctx context.Context) ([]standing.Record, error) {
		records, err := s.season(ctx, sp, season)
		if err != nil {
			return nil, err
		}
		return standing.SortedByPlace(records), nil
	})
}

// TeamSeasonStats aggregates one team's statistics over the supported seasons.
func (s *StandingsService) TeamSeasonStats(ctx context.Context, view string, sp sport.Sport, teamName string) (TeamSeasonStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.TeamSeasonStats", sportAttr(sp))
	defer span.End()

	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return TeamSeasonStats{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	return supersede(ctx, s.tracker, view, "standings.team_stats", func(ctx context.Context) (TeamSeasonStats, error) {
		key := cache.Key("standings", sp, "team", teamName)
		records, err := cache.Load(ctx, s.cache, key, func(ctx context.Context) ([]standing.Record, error) {
			items, err := s.repo.ListByTeamName(ctx, sp, teamName)
			if err != nil {
				return nil, fmt.Errorf("list standings by team name: %w", err)
			}
			return items, nil
		})
		if err != nil {
			return TeamSeasonStats{}, err
		}

		// the endpoint matches by name, which may be a substring match upstream
		own := make([]standing.Record, 0, len(records))
		for _, r := range records {
			if r.Team.Name == teamName {
				own = append(own, r)
			}
		}

		series, dups := standing.BuildSeasonSeries(own, s.years)
		s.logDuplicates(ctx, "team_stats", sp, dups)
		return TeamSeasonStats{
			Team:            teamName,
			Series:          series,
			ObservedSeasons: standing.SeasonsOf(own),
		}, nil
	})
}

// Invalidate drops every cached standings query for sp.
func (s *StandingsService) Invalidate(ctx context.Context, sp sport.Sport) int {
	if s.cache == nil {
		return 0
	}
	return s.cache.DeletePrefix(ctx, cache.Key("standings", sp)+":")
}

func (s *StandingsService) season(ctx context.Context, sp sport.Sport, season int) ([]standing.Record, error) {
	key := cache.Key("standings", sp, season)
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) ([]standing.Record, error) {
		items, err := s.repo.ListBySeason(ctx, sp, season)
		if err != nil {
			return nil, fmt.Errorf("list standings season=%d: %w", season, err)
		}
		return items, nil
	})
}

func (s *StandingsService) allSeasons(ctx context.Context, sp sport.Sport) ([]standing.Record, error) {
	if s.fanOut {
		return s.fanOutSeasons(ctx, sp)
	}

	key := cache.Key("standings", sp, "all")
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) ([]standing.Record, error) {
		items, err := s.repo.ListBySport(ctx, sp)
		if err != nil {
			return nil, fmt.Errorf("list standings: %w", err)
		}
		return items, nil
	})
}

// fanOutSeasons loads each supported season on a worker pool and joins the
// results in season order.
func (s *StandingsService) fanOutSeasons(ctx context.Context, sp sport.Sport) ([]standing.Record, error) {
	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	perSeason := make([][]standing.Record, len(s.years))
	errs := make([]error, len(s.years))

	var workers sync.WaitGroup
	for i, season := range s.years {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			perSeason[i], errs[i] = s.season(ctx, sp, season)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	out := make([]standing.Record, 0, len(s.years)*16)
	for i := range s.years {
		if errs[i] != nil {
			return nil, errs[i]
		}
		out = append(out, perSeason[i]...)
	}
	return out, nil
}

func (s *StandingsService) logDuplicates(ctx context.Context, view string, sp sport.Sport, dups []standing.Duplicate) {
	for _, dup := range dups {
		s.logger.WarnContext(ctx, "duplicate standing record",
			"view", view,
			"sport", string(sp),
			"team", dup.Team,
			"season", dup.Season,
			"kept_id", dup.KeptID,
			"dropped_id", dup.DroppedID,
		)
	}
}
