package match

import (
	"context"

	"github.com/riskibarqy/sportsboard/internal/domain/sport"
)

type Repository interface {
	ListByDateRange(ctx context.Context, s sport.Sport, r DateRange) ([]Match, error)
	ListBySeasonAndTeam(ctx context.Context, s sport.Sport, season int, teamID string) ([]Match, error)
	CountBySeason(ctx context.Context, s sport.Sport, season int) (int, error)
	// ListBySeasonPage returns page (1-based) of a season schedule, limit PageSize.
	ListBySeasonPage(ctx context.Context, s sport.Sport, season, page int) ([]Match, error)
}
