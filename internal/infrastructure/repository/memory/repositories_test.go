package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/sportsboard/internal/domain/localstate"
	"github.com/riskibarqy/sportsboard/internal/domain/match"
	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStateStore_PutGetDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewLocalStateStore()

	require.NoError(t, store.Put(ctx, localstate.KeyLastPath, []byte(`"/events"`)))
	require.NoError(t, store.Put(ctx, localstate.KeyLastPath, []byte(`"/schedule"`)))

	entry, found, err := store.Get(ctx, localstate.KeyLastPath)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `"/schedule"`, string(entry.Value))

	require.NoError(t, store.Delete(ctx, localstate.KeyLastPath))
	_, found, err = store.Get(ctx, localstate.KeyLastPath)
	require.NoError(t, err)
	assert.False(t, found)

	err = store.Put(ctx, localstate.Key(" "), []byte("x"))
	assert.ErrorIs(t, err, localstate.ErrKeyRequired)
}

func TestLocalStateStore_ListByPrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewLocalStateStore()
	require.NoError(t, store.Put(ctx, localstate.FilterKey("schedule"), []byte(`{}`)))
	require.NoError(t, store.Put(ctx, localstate.FilterKey("map"), []byte(`{}`)))
	require.NoError(t, store.Put(ctx, localstate.KeySession, []byte(`{}`)))

	entries, err := store.ListByPrefix(ctx, localstate.FilterPrefix())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, localstate.FilterKey("map"), entries[0].Key)
	assert.Equal(t, localstate.FilterKey("schedule"), entries[1].Key)
}

func TestTeamRepository_GetLatestAndNames(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewTeamRepository(SeedTeams())

	latest, found, err := repo.GetLatest(ctx, sport.Football, TeamIDKoper)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2024, latest.Season)

	names, err := repo.NamesBySeason(ctx, sport.Football, 2021)
	require.NoError(t, err)
	assert.Equal(t, []string{"NK Maribor", "FC Koper", "NK Olimpija Ljubljana"}, names)

	all, err := repo.NamesBySeason(ctx, sport.Football, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestStandingRepository_ListByTeamName(t *testing.T) {
	t.Parallel()

	repo := NewStandingRepository(SeedStandings())
	rows, err := repo.ListByTeamName(context.Background(), sport.Football, "celje")
	require.NoError(t, err)
	// NK Celje sat out 2021
	assert.Len(t, rows, 4)
}

func TestMatchRepository_Paging(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMatchRepository(SeedMatches())

	total, err := repo.CountBySeason(ctx, sport.Football, 2022)
	require.NoError(t, err)
	assert.Equal(t, 6, total)

	page, err := repo.ListBySeasonPage(ctx, sport.Football, 2022, 1)
	require.NoError(t, err)
	assert.Len(t, page, 6)

	empty, err := repo.ListBySeasonPage(ctx, sport.Football, 2022, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)

	dr, err := match.ParseDateRange("2022-07-15", "2022-07-22")
	require.NoError(t, err)
	inRange, err := repo.ListByDateRange(ctx, sport.Football, dr)
	require.NoError(t, err)
	assert.Len(t, inRange, 2)
}

func TestStadiumRepository_GetByTeam(t *testing.T) {
	t.Parallel()

	repo := NewStadiumRepository(SeedStadiums())
	venue, found, err := repo.GetByTeam(context.Background(), sport.Handball, TeamIDVelenje)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "RK Gorenje Velenje Stadium", venue.Name)

	_, found, err = repo.GetByTeam(context.Background(), sport.Handball, "missing")
	require.NoError(t, err)
	assert.False(t, found)
}
