// Package render produces the terminal, JSON and HTML output surfaces from
// assembled activity reports.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/naka-gawa/github-activities/internal/domain"
)

// TerminalWriter renders a report as plain-text tables.
type TerminalWriter struct {
	JPWeekFormat bool
}

// WriteReport writes the user panel, summary table, aggregated tables and
// recent activity tables to w.
func (t *TerminalWriter) WriteReport(w io.Writer, report domain.UserActivityReport) {
	t.writeUserInfo(w, report)
	t.writeSummary(w, report)
	if report.Aggregated != nil {
		t.writeAggregated(w, report)
	}
	t.writeRecentActivity(w, report)
}

func (t *TerminalWriter) writeUserInfo(w io.Writer, report domain.UserActivityReport) {
	user := report.User
	fmt.Fprintln(w, "User Information")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", user.DisplayName())
	fmt.Fprintf(tw, "Username:\t%s\n", user.Login)
	fmt.Fprintf(tw, "Profile:\t%s\n", user.HTMLURL)
	fmt.Fprintf(tw, "Public Repos:\t%d\n", user.PublicRepos)
	fmt.Fprintf(tw, "Followers:\t%d\n", user.Followers)
	fmt.Fprintf(tw, "Following:\t%d\n", user.Following)
	fmt.Fprintf(tw, "Account Created:\t%s\n", user.CreatedAt.Format("2006-01-02"))
	tw.Flush()
	fmt.Fprintln(w)
}

func (t *TerminalWriter) writeSummary(w io.Writer, report domain.UserActivityReport) {
	summary := report.Summary
	period := report.ActivityPeriod
	fmt.Fprintf(w, "Activity Summary (%s to %s)\n",
		period.Since.Format("2006-01-02"), period.Until.Format("2006-01-02"))
	fmt.Fprintln(w, strings.Repeat("-", 40))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Commits\t%d\n", summary.CommitsCount)
	fmt.Fprintf(tw, "Pull Requests\t%d\n", summary.PullRequestsCount)
	fmt.Fprintf(tw, "Issues\t%d\n", summary.IssuesCount)
	fmt.Fprintf(tw, "Reviews\t%d\n", summary.ReviewsCount)
	fmt.Fprintf(tw, "Total Contributions\t%d\n", summary.TotalContributions)
	fmt.Fprintf(tw, "Code Additions\t%d\n", summary.CodeChanges.Additions)
	fmt.Fprintf(tw, "Code Deletions\t%d\n", summary.CodeChanges.Deletions)
	fmt.Fprintf(tw, "Total Code Changes\t%d\n", summary.CodeChanges.Total)
	tw.Flush()
	fmt.Fprintln(w)
}

func (t *TerminalWriter) writeAggregated(w io.Writer, report domain.UserActivityReport) {
	agg := report.Aggregated
	t.writeSeriesTable(w, "Commits by Period", agg.Commits)
	t.writeSeriesTable(w, "Pull Requests by Period", agg.PullRequests)
	t.writeSeriesTable(w, "Issues by Period", agg.Issues)
	t.writeSeriesTable(w, "Reviews by Period", agg.Reviews)
	t.writeSeriesTable(w, "Code Changes by Period", agg.CodeChanges)
}

func (t *TerminalWriter) writeSeriesTable(w io.Writer, title string, series domain.Series) {
	if len(series) == 0 {
		return
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", 40))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range series {
		fmt.Fprintf(tw, "%s\t%.0f\n", t.displayPeriod(p.Period), p.Value)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func (t *TerminalWriter) displayPeriod(key domain.PeriodKey) string {
	if t.JPWeekFormat {
		return domain.WeekStartDisplay(key)
	}
	return string(key)
}

func (t *TerminalWriter) writeRecentActivity(w io.Writer, report domain.UserActivityReport) {
	details := report.Details

	if len(details.Commits) > 0 {
		fmt.Fprintln(w, "Recent Commits")
		fmt.Fprintln(w, strings.Repeat("-", 40))
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, c := range details.Commits {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Date.Format("2006-01-02"), c.Repository, firstLine(c.Message, 50))
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	if len(details.PullRequests) > 0 {
		fmt.Fprintln(w, "Recent Pull Requests")
		fmt.Fprintln(w, strings.Repeat("-", 40))
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, pr := range details.PullRequests {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", pr.CreatedAt.Format("2006-01-02"), pr.Repository, truncate(pr.Title, 50), pr.State)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	if len(details.Issues) > 0 {
		fmt.Fprintln(w, "Recent Issues")
		fmt.Fprintln(w, strings.Repeat("-", 40))
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, issue := range details.Issues {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", issue.CreatedAt.Format("2006-01-02"), issue.Repository, truncate(issue.Title, 50), issue.State)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	if len(details.Reviews) > 0 {
		fmt.Fprintln(w, "Recent Reviews")
		fmt.Fprintln(w, strings.Repeat("-", 40))
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, r := range details.Reviews {
			fmt.Fprintf(tw, "%s\t%s\t#%d %s\n", r.ReviewedAt.Format("2006-01-02"), r.Repository, r.PRNumber, truncate(r.PRTitle, 50))
		}
		tw.Flush()
		fmt.Fprintln(w)
	}
}

func firstLine(s string, limit int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return truncate(s, limit)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
