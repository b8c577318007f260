package stadium

import (
	"context"

	"github.com/riskibarqy/sportsboard/internal/domain/event"
	"github.com/riskibarqy/sportsboard/internal/domain/sport"
)

type TeamRef struct {
	ID   string
	Name string
}

// Stadium is a venue listed for a season. Season is served as a string.
type Stadium struct {
	ID        string
	Name      string
	Capacity  int
	Location  event.GeoPoint
	Team      TeamRef
	BuildYear int
	ImageURL  string
	Season    string
	Sport     string
}

type Repository interface {
	ListBySeason(ctx context.Context, s sport.Sport, season int) ([]Stadium, error)
	GetByTeam(ctx context.Context, s sport.Sport, teamID string) (Stadium, bool, error)
}
