package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/riskibarqy/sportsboard/internal/domain/event"
	"github.com/riskibarqy/sportsboard/internal/domain/match"
	"github.com/riskibarqy/sportsboard/internal/domain/standing"
	"github.com/riskibarqy/sportsboard/internal/usecase"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func renderStandings(w io.Writer, rows []standing.Record) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tTEAM\tGP\tW\tD\tL\tGF\tGA\tPTS")
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			row.Place, row.Team.Name, row.GamesPlayed, row.Wins, row.Draws, row.Losses,
			row.GoalsScored, row.GoalsConceded, row.Points)
	}
	return tw.Flush()
}

func renderTrajectory(w io.Writer, trajectory standing.Trajectory) error {
	tw := newTable(w)
	header := []string{"TEAM"}
	for _, year := range trajectory.Years {
		header = append(header, strconv.Itoa(year))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, team := range trajectory.Teams {
		cells := []string{team.Team}
		for _, place := range team.Places {
			if place == nil {
				cells = append(cells, "-")
				continue
			}
			cells = append(cells, strconv.Itoa(*place))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func renderTeamStats(w io.Writer, stats usecase.TeamSeasonStats) error {
	fmt.Fprintln(w, stats.Team)

	tw := newTable(w)
	header := []string{"STAT"}
	for _, year := range stats.Series.Years {
		header = append(header, strconv.Itoa(year))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, key := range standing.StatKeys() {
		cells := []string{string(key)}
		for _, value := range stats.Series.Get(key) {
			cells = append(cells, strconv.Itoa(value))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func renderMatches(w io.Writer, matches []match.Match) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tTIME\tHOME\tAWAY\tSCORE\tLOCATION")
	for _, m := range matches {
		date := ""
		if !m.Date.IsZero() {
			date = m.Date.Format(match.DateLayout)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", date, m.Time, m.Home.Name, m.Away.Name, m.Score, m.Location)
	}
	return tw.Flush()
}

func renderEvents(w io.Writer, snapshot usecase.FeedSnapshot) error {
	if snapshot.Error != "" {
		fmt.Fprintf(w, "feed %s: %s\n", snapshot.State, snapshot.Error)
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tTIME\tNAME\tACTIVITY\tHOST\tFOLLOWERS")
	for _, view := range snapshot.Events {
		date := ""
		if !view.Event.Date.IsZero() {
			date = view.Event.Date.Format(event.DateLayout)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			date, view.Event.Time, view.Event.Name, view.Event.Activity, view.Event.Host.Username, view.Follow.DisplayCount)
	}
	return tw.Flush()
}
