package usecase

import (
	"fmt"
	"testing"
	"time"

	"github.com/naka-gawa/github-activities/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildSummary(t *testing.T) {
	commits := []domain.Commit{
		{SHA: "a", Date: date(2024, time.January, 2), Additions: 10, Deletions: 3},
		{SHA: "b", Date: date(2024, time.January, 5), Additions: 5, Deletions: 2},
	}
	prs := []domain.PullRequest{{Number: 1, CreatedAt: date(2024, time.January, 3)}}
	issues := []domain.Issue{{Number: 2, CreatedAt: date(2024, time.January, 4)}}
	reviews := []domain.Review{{PRNumber: 3, ReviewedAt: date(2024, time.January, 6)}}

	summary := BuildSummary(commits, prs, issues, reviews)

	assert.Equal(t, 2, summary.CommitsCount)
	assert.Equal(t, 1, summary.PullRequestsCount)
	assert.Equal(t, 1, summary.IssuesCount)
	assert.Equal(t, 1, summary.ReviewsCount)
	assert.Equal(t, 5, summary.TotalContributions)
	assert.Equal(t, domain.CodeChanges{Additions: 15, Deletions: 5, Total: 20}, summary.CodeChanges)
}

func TestBuildReport_DetailPreview(t *testing.T) {
	commits := make([]domain.Commit, 8)
	for i := range commits {
		commits[i] = domain.Commit{
			SHA:  fmt.Sprintf("sha-%d", i),
			Date: date(2024, time.January, 1+i),
		}
	}

	report := BuildReport(domain.User{Login: "alice"}, domain.ActivityPeriod{}, commits, nil, nil, nil, "")

	// The summary counts everything; the detail list is a preview.
	assert.Equal(t, 8, report.Summary.CommitsCount)
	assert.Len(t, report.Details.Commits, detailPreviewCount)
	assert.Equal(t, "sha-0", report.Details.Commits[0].SHA)
	assert.Nil(t, report.Aggregated)
}

// Code change totals come from all commits, not the preview slice.
func TestBuildReport_CodeChangesBeyondPreview(t *testing.T) {
	commits := make([]domain.Commit, 7)
	for i := range commits {
		commits[i] = domain.Commit{Date: date(2024, time.January, 1+i), Additions: 1}
	}

	report := BuildReport(domain.User{Login: "alice"}, domain.ActivityPeriod{}, commits, nil, nil, nil, "")
	assert.Equal(t, 7, report.Summary.CodeChanges.Additions)
}

func TestBuildReport_Aggregated(t *testing.T) {
	period := domain.ActivityPeriod{
		Since: date(2024, time.January, 1),
		Until: date(2024, time.February, 28),
		Days:  58,
	}
	commits := []domain.Commit{
		{SHA: "a", Date: date(2024, time.January, 2), Additions: 4, Deletions: 1},
		{SHA: "b", Date: date(2024, time.January, 10), Additions: 2, Deletions: 2},
		{SHA: "c", Date: date(2024, time.February, 1), Additions: 1, Deletions: 0},
	}
	prs := []domain.PullRequest{{Number: 1, CreatedAt: date(2024, time.February, 5)}}

	report := BuildReport(domain.User{Login: "alice"}, period, commits, prs, nil, nil, domain.PeriodMonth)

	assert.Equal(t, 4, report.Summary.TotalContributions)
	if assert.NotNil(t, report.Aggregated) {
		assert.Equal(t, domain.Series{
			{Period: "2024-01", Value: 2},
			{Period: "2024-02", Value: 1},
		}, report.Aggregated.Commits)
		assert.Equal(t, domain.Series{
			{Period: "2024-01", Value: 0},
			{Period: "2024-02", Value: 1},
		}, report.Aggregated.PullRequests)
		assert.Equal(t, domain.Series{
			{Period: "2024-01", Value: 2},
			{Period: "2024-02", Value: 2},
		}, report.Aggregated.TotalContributions)
		// Code changes sum additions and deletions per period.
		assert.Equal(t, domain.Series{
			{Period: "2024-01", Value: 9},
			{Period: "2024-02", Value: 1},
		}, report.Aggregated.CodeChanges)
	}
}

func TestAggregatedActivity_ByType(t *testing.T) {
	agg := domain.AggregatedActivity{
		Commits: domain.Series{{Period: "2024-01", Value: 1}},
		Issues:  domain.Series{{Period: "2024-01", Value: 2}},
	}
	assert.Equal(t, agg.Commits, agg.ByType(domain.ActivityCommits))
	assert.Equal(t, agg.Issues, agg.ByType(domain.ActivityIssues))
	assert.Nil(t, agg.ByType("unknown"))
}
