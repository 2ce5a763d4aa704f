package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/naka-gawa/github-activities/internal/gateway"
	"github.com/naka-gawa/github-activities/internal/render"
	"github.com/spf13/cobra"
)

// reportsDir is where HTML reports land when no absolute output path is
// given.
const reportsDir = "reports"

var exportCmd = &cobra.Command{
	Use:   "export <username>",
	Short: "Export GitHub activities data as JSON or HTML",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		username := args[0]
		logger := newLogger(cmd)

		days, _ := cmd.Flags().GetInt("days")
		repository, _ := cmd.Flags().GetString("repository")
		aggregation, _ := cmd.Flags().GetString("aggregation")
		excludePersonal, _ := cmd.Flags().GetBool("exclude-personal")
		jpWeekFormat, _ := cmd.Flags().GetBool("jp-week-format")
		langFlag, _ := cmd.Flags().GetString("lang")
		output, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")

		if format != "json" && format != "html" {
			fatal("Error: invalid --format value %q: must be 'json' or 'html'", format)
		}

		// HTML reports need series data; default to weekly aggregation.
		if format == "html" && aggregation == "" {
			fmt.Println("Warning: no aggregation specified. Using 'week' for better visualizations.")
			aggregation = "week"
		}

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

		timestamp := time.Now().Format("20060102_150405")
		switch format {
		case "json":
			if output == "" {
				output = fmt.Sprintf("%s_github_activity_%s.json", username, timestamp)
			}
			if err := writeReportFile(output, func(f *os.File) error {
				return render.WriteJSON(f, report)
			}); err != nil {
				fatal("Failed to export JSON: %v", err)
			}
			fmt.Printf("Data exported to %s in JSON format\n", output)

		case "html":
			output = resolveReportPath(output, fmt.Sprintf("%s_github_activity_%s_%s.html", username, aggregation, timestamp))
			htmlReporter := render.NewHTMLReporter(jpWeekFormat, lang)
			if err := writeReportFile(output, func(f *os.File) error {
				return htmlReporter.WriteReport(f, report)
			}); err != nil {
				fatal("Failed to export HTML: %v", err)
			}
			fmt.Printf("Report exported to %s in HTML format\n", output)
		}
	},
}

// resolveReportPath places relative outputs under the reports directory.
func resolveReportPath(output, defaultName string) string {
	if output == "" {
		return filepath.Join(reportsDir, defaultName)
	}
	if !filepath.IsAbs(output) {
		return filepath.Join(reportsDir, output)
	}
	return output
}

func writeReportFile(path string, write func(*os.File) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()
	return write(f)
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().IntP("days", "d", 365, "Number of days to look back for activity")
	exportCmd.Flags().StringP("repository", "r", "", "Repository name to filter by (e.g., 'owner/repo')")
	exportCmd.Flags().StringP("aggregation", "a", "", "Aggregate data by 'week' or 'month'")
	exportCmd.Flags().Bool("exclude-personal", false, "Exclude repositories owned by the user")
	exportCmd.Flags().BoolP("jp-week-format", "j", false, "Show week start dates instead of W01 notation")
	exportCmd.Flags().String("lang", "en", "Report language ('en' or 'ja')")
	exportCmd.Flags().StringP("output", "o", "", "Output file path")
	exportCmd.Flags().StringP("format", "f", "json", "Output format ('json' or 'html')")
}
