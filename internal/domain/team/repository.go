package team

import (
	"context"

	"github.com/riskibarqy/sportsboard/internal/domain/sport"
)

// Repository describes team catalogue reads needed by use cases.
type Repository interface {
	ListAll(ctx context.Context, s sport.Sport) ([]Team, error)
	ListBySeason(ctx context.Context, s sport.Sport, season int) ([]Team, error)
	// NamesBySeason lists team names; season 0 means every season.
	NamesBySeason(ctx context.Context, s sport.Sport, season int) ([]string, error)
	// GetLatest returns the team's entry for its most recent season.
	GetLatest(ctx context.Context, s sport.Sport, teamID string) (Team, bool, error)
}
