package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sportsboard/internal/domain/match"
	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/platform/cache"
	"github.com/riskibarqy/sportsboard/internal/platform/latest"
)

type ScheduleService struct {
	repo    match.Repository
	cache   *cache.Store
	tracker *latest.Tracker
	years   []int
}

func NewScheduleService(repo match.Repository, store *cache.Store, tracker *latest.Tracker, supportedYears []int) *ScheduleService {
	if len(supportedYears) == 0 {
		supportedYears = sport.DefaultSupportedYears()
	}
	return &ScheduleService{
		repo:    repo,
		cache:   store,
		tracker: tracker,
		years:   append([]int(nil), supportedYears...),
	}
}

// ByDateRange lists matches played between from and to (YYYY-MM-DD, inclusive).
func (s *ScheduleService) ByDateRange(ctx context.Context, view string, sp sport.Sport, from, to string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.ByDateRange", sportAttr(sp))
	defer span.End()

	r, err := match.ParseDateRange(strings.TrimSpace(from), strings.TrimSpace(to))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return supersede(ctx, s.tracker, view, "schedule.date_range", func(ctx context.Context) ([]match.Match, error) {
		key := cache.Key("matches", sp, "range", r.FromString(), r.ToString())
		return cache.Load(ctx, s.cache, key, func(ctx context.Context) ([]match.Match, error) {
			items, err := s.repo.ListByDateRange(ctx, sp, r)
			if err != nil {
				return nil, fmt.Errorf("list matches by date range: %w", err)
			}
			return items, nil
		})
	})
}

func (s *ScheduleService) BySeasonAndTeam(ctx context.Context, view string, sp sport.Sport, season int, teamID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.BySeasonAndTeam", sportAttr(sp))
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if !sport.IsSupportedYear(s.years, season) {
		return nil, fmt.Errorf("%w: season %d is not supported", ErrInvalidInput, season)
	}

	return supersede(ctx, s.tracker, view, "schedule.season_team", func(ctx context.Context) ([]match.Match, error) {
		return s.seasonAndTeam(ctx, sp, season, teamID)
	})
}

// SeasonPage returns page (1-based) of the season schedule with the total count.
func (s *ScheduleService) SeasonPage(ctx context.Context, view string, sp sport.Sport, season, page int) (match.Page, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.SeasonPage", sportAttr(sp))
	defer span.End()

	if !sport.IsSupportedYear(s.years, season) {
		return match.Page{}, fmt.Errorf("%w: season %d is not supported", ErrInvalidInput, season)
	}
	if page < 1 {
		page = 1
	}

	return supersede(ctx, s.tracker, view, "schedule.season_page", func(ctx context.Context) (match.Page, error) {
		total, err := cache.Load(ctx, s.cache, cache.Key("matches", sp, season, "count"), func(ctx context.Context) (int, error) {
			n, err := s.repo.CountBySeason(ctx, sp, season)
			if err != nil {
				return 0, fmt.Errorf("count matches season=%d: %w", season, err)
			}
			return n, nil
		})
		if err != nil {
			return match.Page{}, err
		}

		out := match.Page{Season: season, Number: page, TotalCount: total}
		if pages := out.PageCount(); page > pages {
			out.Matches = []match.Match{}
			return out, nil
		}

		items, err := cache.Load(ctx, s.cache, cache.Key("matches", sp, season, "page", page), func(ctx context.Context) ([]match.Match, error) {
			items, err := s.repo.ListBySeasonPage(ctx, sp, season, page)
			if err != nil {
				return nil, fmt.Errorf("list matches season=%d page=%d: %w", season, page, err)
			}
			return items, nil
		})
		if err != nil {
			return match.Page{}, err
		}
		out.Matches = items
		return out, nil
	})
}

func (s *ScheduleService) seasonAndTeam(ctx context.Context, sp sport.Sport, season int, teamID string) ([]match.Match, error) {
	key := cache.Key("matches", sp, season, "team", teamID)
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) ([]match.Match, error) {
		items, err := s.repo.ListBySeasonAndTeam(ctx, sp, season, teamID)
		if err != nil {
			return nil, fmt.Errorf("list matches season=%d team=%s: %w", season, teamID, err)
		}
		return items, nil
	})
}
