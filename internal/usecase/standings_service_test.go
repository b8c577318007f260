package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/domain/standing"
	"github.com/riskibarqy/sportsboard/internal/infrastructure/repository/memory"
	standingmock "github.com/riskibarqy/sportsboard/internal/mocks/domain/standing"
	"github.com/riskibarqy/sportsboard/internal/platform/cache"
	"github.com/riskibarqy/sportsboard/internal/platform/latest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func rec(id, team string, season, place int) standing.Record {
	return standing.Record{ID: id, Season: season, Place: place, Team: standing.TeamRef{Name: team}}
}

func TestStandingsService_TrajectoryIsCached(t *testing.T) {
	t.Parallel()

	repo := standingmock.NewRepository(t)
	service := NewStandingsService(repo, cache.NewStore(time.Minute), nil, StandingsServiceConfig{})

	repo.On("ListBySport", mock.Anything, sport.Football).Return([]standing.Record{
		rec("r1", "A", 2021, 2),
		rec("r2", "A", 2023, 1),
		rec("r3", "B", 2022, 5),
	}, nil).Once()

	for range 2 {
		got, err := service.Trajectory(context.Background(), "", sport.Football)
		require.NoError(t, err)

		a, ok := got.Places("A")
		require.True(t, ok)
		assert.Equal(t, []*int{nil, ptrInt(2), nil, ptrInt(1), nil}, a)
	}
}

func ptrInt(v int) *int { return &v }

func TestStandingsService_TrajectoryFanOut(t *testing.T) {
	t.Parallel()

	repo := standingmock.NewRepository(t)
	service := NewStandingsService(repo, nil, nil, StandingsServiceConfig{
		SupportedYears: []int{2021, 2022, 2023},
		FanOutSeasons:  true,
		FanOutWorkers:  2,
	})

	repo.On("ListBySeason", mock.Anything, sport.Handball, 2021).Return([]standing.Record{rec("a21", "A", 2021, 1)}, nil).Once()
	repo.On("ListBySeason", mock.Anything, sport.Handball, 2022).Return([]standing.Record{}, nil).Once()
	repo.On("ListBySeason", mock.Anything, sport.Handball, 2023).Return([]standing.Record{rec("b23", "B", 2023, 1), rec("a23", "A", 2023, 2)}, nil).Once()

	got, err := service.Trajectory(context.Background(), "", sport.Handball)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, got.TeamNames())

	a, _ := got.Places("A")
	assert.Equal(t, []*int{ptrInt(1), nil, ptrInt(2)}, a)
}

func TestStandingsService_FanOutPropagatesError(t *testing.T) {
	t.Parallel()

	repo := standingmock.NewRepository(t)
	service := NewStandingsService(repo, nil, nil, StandingsServiceConfig{
		SupportedYears: []int{2021, 2022},
		FanOutSeasons:  true,
	})

	repo.On("ListBySeason", mock.Anything, sport.Football, 2021).Return([]standing.Record{}, nil).Once()
	repo.On("ListBySeason", mock.Anything, sport.Football, 2022).Return(nil, errors.New("timeout")).Once()

	_, err := service.Trajectory(context.Background(), "", sport.Football)
	assert.ErrorContains(t, err, "season=2022")
}

func TestStandingsService_SeasonTable(t *testing.T) {
	t.Parallel()

	repo := memory.NewStandingRepository(memory.SeedStandings())
	service := NewStandingsService(repo, cache.NewStore(time.Minute), nil, StandingsServiceConfig{})

	rows, err := service.SeasonTable(context.Background(), "", sport.Football, 2021)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, i+1, row.Place)
	}

	_, err = service.SeasonTable(context.Background(), "", sport.Football, 2019)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStandingsService_TeamSeasonStats(t *testing.T) {
	t.Parallel()

	repo := standingmock.NewRepository(t)
	service := NewStandingsService(repo, nil, nil, StandingsServiceConfig{SupportedYears: []int{2021, 2022, 2023}})

	x := rec("x22", "X", 2022, 1)
	x.Wins = 10
	lookalike := rec("xx22", "X United", 2022, 4)
	lookalike.Wins = 3
	repo.On("ListByTeamName", mock.Anything, sport.Football, "X").Return([]standing.Record{x, lookalike}, nil).Once()

	got, err := service.TeamSeasonStats(context.Background(), "", sport.Football, " X ")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 10, 0}, got.Series.Get(standing.StatWins))
	assert.Equal(t, []int{2022}, got.ObservedSeasons)

	_, err = service.TeamSeasonStats(context.Background(), "", sport.Football, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStandingsService_NewerViewRequestSupersedes(t *testing.T) {
	t.Parallel()

	repo := standingmock.NewRepository(t)
	service := NewStandingsService(repo, nil, latest.NewTracker(), StandingsServiceConfig{})

	started := make(chan struct{})
	repo.On("ListBySport", mock.Anything, sport.Football).
		Run(func(args mock.Arguments) {
			close(started)
			<-args.Get(0).(context.Context).Done()
		}).
		Return(nil, context.Canceled).Once()
	repo.On("ListBySport", mock.Anything, sport.Handball).Return([]standing.Record{rec("h", "H", 2024, 1)}, nil).Once()

	older := make(chan error, 1)
	go func() {
		_, err := service.Trajectory(context.Background(), "graph", sport.Football)
		older <- err
	}()
	<-started

	got, err := service.Trajectory(context.Background(), "graph", sport.Handball)
	require.NoError(t, err)
	assert.Equal(t, []string{"H"}, got.TeamNames())

	select {
	case err := <-older:
		assert.ErrorIs(t, err, latest.ErrSuperseded)
	case <-time.After(2 * time.Second):
		t.Fatal("older request was not cancelled")
	}
}

func TestStandingsService_DistinctQueriesOnOneViewRunSideBySide(t *testing.T) {
	t.Parallel()

	repo := standingmock.NewRepository(t)
	service := NewStandingsService(repo, nil, latest.NewTracker(), StandingsServiceConfig{SupportedYears: []int{2023, 2024}})

	started := make(chan struct{})
	release := make(chan struct{})
	repo.On("ListBySport", mock.Anything, sport.Football).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return([]standing.Record{rec("a24", "A", 2024, 1)}, nil).Once()
	repo.On("ListByTeamName", mock.Anything, sport.Football, "A").Return([]standing.Record{rec("a24", "A", 2024, 1)}, nil).Once()

	trajectory := make(chan error, 1)
	go func() {
		_, err := service.Trajectory(context.Background(), "team-page", sport.Football)
		trajectory <- err
	}()
	<-started

	stats, err := service.TeamSeasonStats(context.Background(), "team-page", sport.Football, "A")
	require.NoError(t, err)
	assert.Equal(t, []int{2024}, stats.ObservedSeasons)
	close(release)

	select {
	case err := <-trajectory:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("trajectory request did not finish")
	}
}

func TestStandingsService_Invalidate(t *testing.T) {
	t.Parallel()

	repo := standingmock.NewRepository(t)
	store := cache.NewStore(time.Minute)
	service := NewStandingsService(repo, store, nil, StandingsServiceConfig{})

	repo.On("ListBySport", mock.Anything, sport.Football).Return([]standing.Record{rec("r1", "A", 2024, 1)}, nil).Twice()

	_, err := service.Trajectory(context.Background(), "", sport.Football)
	require.NoError(t, err)
	assert.Equal(t, 1, service.Invalidate(context.Background(), sport.Football))

	_, err = service.Trajectory(context.Background(), "", sport.Football)
	require.NoError(t, err)
}
