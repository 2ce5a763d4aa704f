package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/naka-gawa/github-activities/internal/gateway"
	"github.com/naka-gawa/github-activities/internal/render"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <username>...",
	Short: "Compare GitHub contributions across multiple users",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)

		days, _ := cmd.Flags().GetInt("days")
		aggregation, _ := cmd.Flags().GetString("aggregation")
		jpWeekFormat, _ := cmd.Flags().GetBool("jp-week-format")
		langFlag, _ := cmd.Flags().GetString("lang")
		output, _ := cmd.Flags().GetString("output")

		periodType, err := parsePeriodType(aggregation)
		if err != nil {
			fatal("Error: %v", err)
		}
		lang, err := parseLanguage(langFlag)
		if err != nil {
			fatal("Error: %v", err)
		}

		reporter, err := newReporter(cmd, logger)
		if err != nil {
			fatal("Error: %v", err)
		}

		since, until := searchWindow(days)
		opts := gateway.SearchOptions{Since: since, Until: until}

		fmt.Printf("Fetching GitHub activity for %d users...\n", len(args))
		comparison, err := reporter.Compare(ctx, args, opts, periodType)
		if err != nil {
			fatal("Failed to build comparison: %v", err)
		}

		output = resolveReportPath(output, comparisonFileName(args, time.Now()))
		htmlReporter := render.NewHTMLReporter(jpWeekFormat, lang)
		if err := writeReportFile(output, func(f *os.File) error {
			return htmlReporter.WriteComparison(f, comparison)
		}); err != nil {
			fatal("Failed to export comparison report: %v", err)
		}
		fmt.Printf("Comparison report exported to %s\n", output)
	},
}

// comparisonFileName uses the first three usernames to keep the file name
// bounded.
func comparisonFileName(usernames []string, now time.Time) string {
	names := usernames
	suffix := ""
	if len(names) > 3 {
		names = names[:3]
		suffix = "_and_others"
	}
	return fmt.Sprintf("comparison_%s%s_%s.html", strings.Join(names, "_"), suffix, now.Format("20060102_150405"))
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().IntP("days", "d", 365, "Number of days to look back for activity")
	compareCmd.Flags().StringP("aggregation", "a", "week", "Aggregate data by 'week' or 'month'")
	compareCmd.Flags().BoolP("jp-week-format", "j", false, "Show week start dates instead of W01 notation")
	compareCmd.Flags().String("lang", "en", "Report language ('en' or 'ja')")
	compareCmd.Flags().StringP("output", "o", "", "Output file path for the comparison report")
}
