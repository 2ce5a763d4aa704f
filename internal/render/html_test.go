package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/naka-gawa/github-activities/internal/domain"
	"github.com/naka-gawa/github-activities/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
}

func testHTMLReporter(jpWeekFormat bool, lang usecase.Language) *HTMLReporter {
	h := NewHTMLReporter(jpWeekFormat, lang)
	h.now = fixedClock
	return h
}

func TestHTMLReporter_WriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testHTMLReporter(false, usecase.LangEnglish).WriteReport(&buf, sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "GitHub Activity Report")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, `"2024-W05"`)
	assert.Contains(t, out, "total_contributions")
	assert.Contains(t, out, "2024-04-01 12:00:00")
	// One narrative per analyzed series.
	assert.Contains(t, out, "Not enough data")
}

func TestHTMLReporter_WriteReport_NoAggregation(t *testing.T) {
	report := sampleReport()
	report.Aggregated = nil

	var buf bytes.Buffer
	require.NoError(t, testHTMLReporter(false, usecase.LangEnglish).WriteReport(&buf, report))
	out := buf.String()

	assert.Contains(t, out, "alice")
	assert.NotContains(t, out, `"2024-W05"`)
}

func TestHTMLReporter_WriteReport_Japanese(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testHTMLReporter(true, usecase.LangJapanese).WriteReport(&buf, sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "GitHub アクティビティレポート")
	// JP week format swaps the W-notation labels for week start dates.
	assert.Contains(t, out, "2024-01-29")
	assert.NotContains(t, out, `"2024-W05"`)
}

func sampleComparison() domain.Comparison {
	alice := domain.UserComparison{
		UserActivityReport: domain.UserActivityReport{
			User: domain.User{Login: "alice", Name: "Alice"},
			Summary: domain.ActivitySummary{
				CommitsCount:       20,
				PullRequestsCount:  10,
				TotalContributions: 30,
			},
		},
		DailyAvgActivity:     3,
		ActivityPercentage:   75,
		PerformanceLabel:     domain.PerformanceHigh,
		AlignedContributions: domain.Series{{Period: "2024-W01", Value: 30}, {Period: "2024-W02", Value: 0}},
	}
	bob := domain.UserComparison{
		UserActivityReport: domain.UserActivityReport{
			User:    domain.User{Login: "bob"},
			Summary: domain.ActivitySummary{TotalContributions: 10},
		},
		DailyAvgActivity:     1,
		ActivityPercentage:   25,
		PerformanceLabel:     domain.PerformanceAverage,
		AlignedContributions: domain.Series{{Period: "2024-W01", Value: 0}, {Period: "2024-W02", Value: 10}},
	}
	return domain.Comparison{
		Users:   []domain.UserComparison{alice, bob},
		Periods: []domain.PeriodKey{"2024-W01", "2024-W02"},
		ActivityPeriod: domain.ActivityPeriod{
			Since: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Until: time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
			Days:  10,
		},
	}
}

func TestHTMLReporter_WriteComparison(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testHTMLReporter(false, usecase.LangEnglish).WriteComparison(&buf, sampleComparison()))
	out := buf.String()

	assert.Contains(t, out, `lang="en"`)
	assert.Contains(t, out, "GitHub Contributions Comparison")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, "High Performer")
	assert.Contains(t, out, "Top by Total Contributions")
	// Each user gets a dataset with a distinct cycled color.
	assert.Contains(t, out, chartColors[0])
	assert.Contains(t, out, chartColors[1])
	assert.Contains(t, out, "2024-W01")
}

func TestHTMLReporter_WriteComparison_Japanese(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testHTMLReporter(false, usecase.LangJapanese).WriteComparison(&buf, sampleComparison()))
	out := buf.String()

	assert.Contains(t, out, `lang="ja"`)
	assert.Contains(t, out, "GitHub 貢献比較")
	assert.Contains(t, out, "総貢献数トップ")
}
