package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/naka-gawa/github-activities/internal/gateway"
	"github.com/naka-gawa/github-activities/internal/render"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <username>",
	Short: "Display a summary of GitHub activities for a user",
	Long: `Fetches a user's commits, pull requests, issues and reviews for the
requested window and displays a summary, optionally aggregated by week
or month, as terminal tables.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		username := args[0]
		logger := newLogger(cmd)

		days, _ := cmd.Flags().GetInt("days")
		repository, _ := cmd.Flags().GetString("repository")
		aggregation, _ := cmd.Flags().GetString("aggregation")
		excludePersonal, _ := cmd.Flags().GetBool("exclude-personal")
		jpWeekFormat, _ := cmd.Flags().GetBool("jp-week-format")

		periodType, err := parsePeriodType(aggregation)
		if err != nil {
			fatal("Error: %v", err)
		}

		reporter, err := newReporter(cmd, logger)
		if err != nil {
			fatal("Error: %v", err)
		}

		since, until := searchWindow(days)
		opts := gateway.SearchOptions{
			Since:           since,
			Until:           until,
			Repository:      repository,
			ExcludePersonal: excludePersonal,
		}

		fmt.Printf("Fetching GitHub activity for %s...\n", username)
		report, err := reporter.UserReport(ctx, username, opts, periodType)
		if err != nil {
			fatal("Failed to fetch activity: %v", err)
		}

		fmt.Println()
		terminal := &render.TerminalWriter{JPWeekFormat: jpWeekFormat}
		terminal.WriteReport(os.Stdout, report)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().IntP("days", "d", 365, "Number of days to look back for activity")
	summaryCmd.Flags().StringP("repository", "r", "", "Repository name to filter by (e.g., 'owner/repo')")
	summaryCmd.Flags().StringP("aggregation", "a", "", "Aggregate data by 'week' or 'month'")
	summaryCmd.Flags().Bool("exclude-personal", false, "Exclude repositories owned by the user")
	summaryCmd.Flags().BoolP("jp-week-format", "j", false, "Show week start dates instead of W01 notation")
}
