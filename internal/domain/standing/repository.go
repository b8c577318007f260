package standing

import (
	"context"

	"github.com/riskibarqy/sportsboard/internal/domain/sport"
)

type Repository interface {
	ListBySport(ctx context.Context, s sport.Sport) ([]Record, error)
	ListBySeason(ctx context.Context, s sport.Sport, season int) ([]Record, error)
	ListByTeamName(ctx context.Context, s sport.Sport, teamName string) ([]Record, error)
}
