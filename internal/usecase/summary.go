package usecase

import (
	"time"

	"github.com/naka-gawa/github-activities/internal/domain"
)

// detailPreviewCount limits the raw record lists included in report output.
const detailPreviewCount = 5

// BuildSummary composes per-user totals from the raw record lists. Code
// changes are summed across all fetched commits, not just the preview slice.
func BuildSummary(commits []domain.Commit, prs []domain.PullRequest, issues []domain.Issue, reviews []domain.Review) domain.ActivitySummary {
	var additions, deletions int
	for _, c := range commits {
		additions += c.Additions
		deletions += c.Deletions
	}

	return domain.ActivitySummary{
		CommitsCount:       len(commits),
		PullRequestsCount:  len(prs),
		IssuesCount:        len(issues),
		ReviewsCount:       len(reviews),
		TotalContributions: len(commits) + len(prs) + len(issues) + len(reviews),
		CodeChanges: domain.CodeChanges{
			Additions: additions,
			Deletions: deletions,
			Total:     additions + deletions,
		},
	}
}

// BuildReport assembles a full activity report for one user. When
// periodType is non-empty the aggregated series bundle is included, gap
// filled across [period.Since, period.Until].
func BuildReport(user domain.User, period domain.ActivityPeriod, commits []domain.Commit, prs []domain.PullRequest, issues []domain.Issue, reviews []domain.Review, periodType domain.PeriodType) domain.UserActivityReport {
	report := domain.UserActivityReport{
		User:           user,
		ActivityPeriod: period,
		Summary:        BuildSummary(commits, prs, issues, reviews),
		Details: domain.ActivityDetails{
			Commits:      preview(commits),
			PullRequests: preview(prs),
			Issues:       preview(issues),
			Reviews:      preview(reviews),
		},
	}

	if periodType != "" {
		report.Aggregated = buildAggregated(commits, prs, issues, reviews, periodType, period.Since, period.Until)
	}
	return report
}

func buildAggregated(commits []domain.Commit, prs []domain.PullRequest, issues []domain.Issue, reviews []domain.Review, periodType domain.PeriodType, since, until time.Time) *domain.AggregatedActivity {
	commitSeries := Aggregate(Records(commits), periodType, since, until, nil)
	prSeries := Aggregate(Records(prs), periodType, since, until, nil)
	issueSeries := Aggregate(Records(issues), periodType, since, until, nil)
	reviewSeries := Aggregate(Records(reviews), periodType, since, until, nil)

	additions := Aggregate(Records(commits), periodType, since, until, CommitAdditions)
	deletions := Aggregate(Records(commits), periodType, since, until, CommitDeletions)

	return &domain.AggregatedActivity{
		TotalContributions: CombineSeries(commitSeries, prSeries, issueSeries, reviewSeries),
		Commits:            commitSeries,
		PullRequests:       prSeries,
		Issues:             issueSeries,
		Reviews:            reviewSeries,
		CodeChanges:        CombineSeries(additions, deletions),
	}
}

func preview[T any](items []T) []T {
	if len(items) > detailPreviewCount {
		return items[:detailPreviewCount]
	}
	return items
}
