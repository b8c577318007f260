package sportsapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/riskibarqy/sportsboard/internal/domain/match"
	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/domain/stadium"
	"github.com/riskibarqy/sportsboard/internal/domain/standing"
	"github.com/riskibarqy/sportsboard/internal/domain/team"
	"github.com/riskibarqy/sportsboard/internal/usecase"
)

// Resources are named "<sport><Kind>", e.g. /footballStanding.
func resource(s sport.Sport, kind string) string {
	return "/" + string(s) + kind
}

type StandingRepository struct {
	client *Client
}

func NewStandingRepository(client *Client) *StandingRepository {
	return &StandingRepository{client: client}
}

func (r *StandingRepository) ListBySport(ctx context.Context, s sport.Sport) ([]standing.Record, error) {
	return r.list(ctx, resource(s, "Standing"))
}

func (r *StandingRepository) ListBySeason(ctx context.Context, s sport.Sport, season int) ([]standing.Record, error) {
	return r.list(ctx, resource(s, "Standing")+"/filterBySeason/"+strconv.Itoa(season))
}

func (r *StandingRepository) ListByTeamName(ctx context.Context, s sport.Sport, teamName string) ([]standing.Record, error) {
	return r.list(ctx, resource(s, "Standing")+"/filterByTeamName/"+url.PathEscape(teamName))
}

func (r *StandingRepository) list(ctx context.Context, path string) ([]standing.Record, error) {
	var payload []standingDTO
	if err := r.client.getJSON(ctx, path, nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch standings: %w", err)
	}
	out := make([]standing.Record, 0, len(payload))
	for _, item := range payload {
		out = append(out, item.toDomain())
	}
	return out, nil
}

type TeamRepository struct {
	client *Client
}

func NewTeamRepository(client *Client) *TeamRepository {
	return &TeamRepository{client: client}
}

func (r *TeamRepository) ListAll(ctx context.Context, s sport.Sport) ([]team.Team, error) {
	return r.list(ctx, resource(s, "Team"))
}

func (r *TeamRepository) ListBySeason(ctx context.Context, s sport.Sport, season int) ([]team.Team, error) {
	return r.list(ctx, resource(s, "Team")+"/filterBySeason/"+strconv.Itoa(season))
}

func (r *TeamRepository) NamesBySeason(ctx context.Context, s sport.Sport, season int) ([]string, error) {
	path := resource(s, "Team") + "/name"
	if season != 0 {
		path += "/" + strconv.Itoa(season)
	}

	var names []string
	if err := r.client.getJSON(ctx, path, nil, &names); err != nil {
		return nil, fmt.Errorf("fetch team names: %w", err)
	}
	return names, nil
}

func (r *TeamRepository) GetLatest(ctx context.Context, s sport.Sport, teamID string) (team.Team, bool, error) {
	var payload teamDTO
	err := r.client.getJSON(ctx, resource(s, "Team")+"/latest/"+url.PathEscape(teamID), nil, &payload)
	if errors.Is(err, usecase.ErrNotFound) {
		return team.Team{}, false, nil
	}
	if err != nil {
		return team.Team{}, false, fmt.Errorf("fetch latest team: %w", err)
	}
	if payload.ID == "" {
		return team.Team{}, false, nil
	}
	return payload.toDomain(), true, nil
}

func (r *TeamRepository) list(ctx context.Context, path string) ([]team.Team, error) {
	var payload []teamDTO
	if err := r.client.getJSON(ctx, path, nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}
	out := make([]team.Team, 0, len(payload))
	for _, item := range payload {
		out = append(out, item.toDomain())
	}
	return out, nil
}

type MatchRepository struct {
	client *Client
}

func NewMatchRepository(client *Client) *MatchRepository {
	return &MatchRepository{client: client}
}

func (r *MatchRepository) ListByDateRange(ctx context.Context, s sport.Sport, dr match.DateRange) ([]match.Match, error) {
	return r.list(ctx, resource(s, "Match")+"/filterByDateRange/"+dr.FromString()+"/"+dr.ToString(), nil)
}

func (r *MatchRepository) ListBySeasonAndTeam(ctx context.Context, s sport.Sport, season int, teamID string) ([]match.Match, error) {
	return r.list(ctx, resource(s, "Match")+"/filterByTeamAndSeason/"+strconv.Itoa(season)+"/"+url.PathEscape(teamID), nil)
}

func (r *MatchRepository) CountBySeason(ctx context.Context, s sport.Sport, season int) (int, error) {
	var count int
	if err := r.client.getJSON(ctx, resource(s, "Match")+"/countBySeason/"+strconv.Itoa(season), nil, &count); err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}
	return count, nil
}

func (r *MatchRepository) ListBySeasonPage(ctx context.Context, s sport.Sport, season, page int) ([]match.Match, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(match.PageSize))
	return r.list(ctx, resource(s, "Match")+"/filterBySeason/"+strconv.Itoa(season), query)
}

func (r *MatchRepository) list(ctx context.Context, path string, query url.Values) ([]match.Match, error) {
	var payload []matchDTO
	if err := r.client.getJSON(ctx, path, query, &payload); err != nil {
		return nil, fmt.Errorf("fetch matches: %w", err)
	}
	out := make([]match.Match, 0, len(payload))
	for _, item := range payload {
		out = append(out, item.toDomain())
	}
	return out, nil
}

type StadiumRepository struct {
	client *Client
}

func NewStadiumRepository(client *Client) *StadiumRepository {
	return &StadiumRepository{client: client}
}

func (r *StadiumRepository) ListBySeason(ctx context.Context, s sport.Sport, season int) ([]stadium.Stadium, error) {
	var payload []stadiumDTO
	if err := r.client.getJSON(ctx, resource(s, "Stadium")+"/filterBySeason/"+strconv.Itoa(season), nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch stadiums: %w", err)
	}
	out := make([]stadium.Stadium, 0, len(payload))
	for _, item := range payload {
		st := item.toDomain()
		if st.Sport == "" {
			st.Sport = string(s)
		}
		out = append(out, st)
	}
	return out, nil
}

func (r *StadiumRepository) GetByTeam(ctx context.Context, s sport.Sport, teamID string) (stadium.Stadium, bool, error) {
	var payload stadiumDTO
	err := r.client.getJSON(ctx, resource(s, "Stadium")+"/getByTeam/"+url.PathEscape(teamID), nil, &payload)
	if errors.Is(err, usecase.ErrNotFound) {
		return stadium.Stadium{}, false, nil
	}
	if err != nil {
		return stadium.Stadium{}, false, fmt.Errorf("fetch team stadium: %w", err)
	}
	if payload.ID == "" {
		return stadium.Stadium{}, false, nil
	}
	st := payload.toDomain()
	if st.Sport == "" {
		st.Sport = string(s)
	}
	return st, true, nil
}
