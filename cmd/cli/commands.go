package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/riskibarqy/sportsboard/internal/app"
	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/domain/user"
	"github.com/spf13/cobra"
)

const cliView = "cli"

var (
	fromDate string
	toDate   string
	page     int
)

func init() {
	scheduleCmd.Flags().StringVar(&fromDate, "from", "", "first day, YYYY-MM-DD (required with --to)")
	scheduleCmd.Flags().StringVar(&toDate, "to", "", "last day, YYYY-MM-DD")
	scheduleCmd.Flags().IntVar(&page, "page", 1, "page of the season schedule")

	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(trajectoryCmd)
	rootCmd.AddCommand(teamStatsCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(eventsCmd)
}

var standingsCmd = &cobra.Command{
	Use:   "standings <sport> <season>",
	Short: "Print the league table of one season",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sp, season, err := parseSportSeason(args[0], args[1])
		if err != nil {
			return err
		}
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			rows, err := c.Standings.SeasonTable(ctx, cliView, sp, season)
			if err != nil {
				return err
			}
			return renderStandings(cmd.OutOrStdout(), rows)
		})
	},
}

var trajectoryCmd = &cobra.Command{
	Use:   "trajectory <sport>",
	Short: "Print every team's final place across the supported seasons",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sp, err := sport.Parse(args[0])
		if err != nil {
			return err
		}
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			trajectory, err := c.Standings.Trajectory(ctx, cliView, sp)
			if err != nil {
				return err
			}
			return renderTrajectory(cmd.OutOrStdout(), trajectory)
		})
	},
}

var teamStatsCmd = &cobra.Command{
	Use:   "team-stats <sport> <team name>",
	Short: "Print one team's season-by-season statistics",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sp, err := sport.Parse(args[0])
		if err != nil {
			return err
		}
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			stats, err := c.Standings.TeamSeasonStats(ctx, cliView, sp, args[1])
			if err != nil {
				return err
			}
			return renderTeamStats(cmd.OutOrStdout(), stats)
		})
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule <sport> [season]",
	Short: "Print matches of a season page or of a date range",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sp, err := sport.Parse(args[0])
		if err != nil {
			return err
		}
		if fromDate != "" || toDate != "" {
			return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
				matches, err := c.Schedule.ByDateRange(ctx, cliView, sp, fromDate, toDate)
				if err != nil {
					return err
				}
				return renderMatches(cmd.OutOrStdout(), matches)
			})
		}
		if len(args) < 2 {
			return fmt.Errorf("season is required without --from/--to")
		}
		season, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid season %q", args[1])
		}
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			result, err := c.Schedule.SeasonPage(ctx, cliView, sp, season, page)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "season %d, page %d of %d (%d matches)\n",
				result.Season, result.Number, result.PageCount(), result.TotalCount)
			return renderMatches(cmd.OutOrStdout(), result.Matches)
		})
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Print upcoming events as an anonymous viewer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			if err := c.Feed.Start(ctx); err != nil {
				return err
			}
			return renderEvents(cmd.OutOrStdout(), c.Feed.Snapshot(user.Session{}))
		})
	},
}

func parseSportSeason(rawSport, rawSeason string) (sport.Sport, int, error) {
	sp, err := sport.Parse(rawSport)
	if err != nil {
		return "", 0, err
	}
	season, err := strconv.Atoi(rawSeason)
	if err != nil || season <= 0 {
		return "", 0, fmt.Errorf("invalid season %q", rawSeason)
	}
	return sp, season, nil
}
