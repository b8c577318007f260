package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/sportsboard/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededCatalog() *CatalogService {
	return NewCatalogService(
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewStadiumRepository(memory.SeedStadiums()),
		memory.NewStandingRepository(memory.SeedStandings()),
		memory.NewMatchRepository(memory.SeedMatches()),
		cache.NewStore(time.Minute),
		nil,
	)
}

func TestCatalogService_TeamPage(t *testing.T) {
	t.Parallel()

	service := newSeededCatalog()

	page, err := service.TeamPage(context.Background(), "", sport.Football, memory.TeamIDMaribor)
	require.NoError(t, err)
	assert.Equal(t, "NK Maribor", page.Team.Name)
	assert.Equal(t, 2024, page.Season)
	require.NotNil(t, page.Stadium)
	assert.Equal(t, memory.TeamIDMaribor, page.Stadium.Team.ID)
	require.Len(t, page.Standings, 4)
	assert.Equal(t, 1, page.Standings[0].Place)
	require.Len(t, page.Matches, 3)
	assert.False(t, page.Matches[0].Date.Before(page.Matches[1].Date))
}

func TestCatalogService_TeamPageUnknownTeam(t *testing.T) {
	t.Parallel()

	_, err := newSeededCatalog().TeamPage(context.Background(), "", sport.Football, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogService_TeamsAndNames(t *testing.T) {
	t.Parallel()

	service := newSeededCatalog()

	teams, err := service.Teams(context.Background(), sport.Handball, 2023)
	require.NoError(t, err)
	assert.Len(t, teams, 2)

	names, err := service.TeamNames(context.Background(), sport.Football, 0)
	require.NoError(t, err)
	assert.Len(t, names, 4)

	_, err = service.LatestTeam(context.Background(), sport.Football, " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCatalogService_AllStadiums(t *testing.T) {
	t.Parallel()

	got, err := newSeededCatalog().AllStadiums(context.Background(), 2024)
	require.NoError(t, err)
	assert.Len(t, got[sport.Football], 4)
	assert.Len(t, got[sport.Handball], 2)

	_, err = newSeededCatalog().StadiumByTeam(context.Background(), sport.Football, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
