package domain

import "time"

// User is the resolved GitHub profile of the reported user.
type User struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatar_url"`
	HTMLURL     string    `json:"html_url"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
}

// DisplayName prefers the profile name and falls back to the login.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Login
}

// ActivityPeriod is the requested reporting window.
type ActivityPeriod struct {
	Since time.Time `json:"since"`
	Until time.Time `json:"until"`
	Days  int       `json:"days"`
}

// CodeChanges holds total line additions and deletions across all fetched
// commits in the window.
type CodeChanges struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
	Total     int `json:"total"`
}

// ActivitySummary carries per-user totals for the reporting window.
type ActivitySummary struct {
	CommitsCount       int         `json:"commits_count"`
	PullRequestsCount  int         `json:"pull_requests_count"`
	IssuesCount        int         `json:"issues_count"`
	ReviewsCount       int         `json:"reviews_count"`
	TotalContributions int         `json:"total_contributions"`
	CodeChanges        CodeChanges `json:"code_changes"`
}

// ActivityDetails holds the raw record lists, truncated to a preview count
// for report output.
type ActivityDetails struct {
	Commits      []Commit      `json:"commits"`
	PullRequests []PullRequest `json:"pull_requests"`
	Issues       []Issue       `json:"issues"`
	Reviews      []Review      `json:"reviews"`
}

// AggregatedActivity bundles the time-bucketed series for one user.
type AggregatedActivity struct {
	TotalContributions Series `json:"total_contributions"`
	Commits            Series `json:"commits"`
	PullRequests       Series `json:"pull_requests"`
	Issues             Series `json:"issues"`
	Reviews            Series `json:"reviews"`
	CodeChanges        Series `json:"code_changes"`
}

// ByType returns the series for the given activity type.
func (a AggregatedActivity) ByType(t ActivityType) Series {
	switch t {
	case ActivityCommits:
		return a.Commits
	case ActivityPullRequests:
		return a.PullRequests
	case ActivityIssues:
		return a.Issues
	case ActivityReviews:
		return a.Reviews
	}
	return nil
}

// UserActivityReport aggregates one user's summary, detail previews and,
// when aggregation was requested, the bucketed series bundle.
type UserActivityReport struct {
	User           User                `json:"user"`
	ActivityPeriod ActivityPeriod      `json:"activity_period"`
	Summary        ActivitySummary     `json:"summary"`
	Details        ActivityDetails     `json:"details"`
	Aggregated     *AggregatedActivity `json:"aggregated,omitempty"`
}

// Performance labels assigned during multi-user comparison.
const (
	PerformanceHigh    = "High Performer"
	PerformanceAverage = "Average"
)

// UserComparison is one user's report enriched with cross-user derived
// metrics and its total-contributions series resampled onto the shared axis.
type UserComparison struct {
	UserActivityReport
	DailyAvgActivity     float64 `json:"daily_avg_activity"`
	DailyAvgPullRequests float64 `json:"daily_avg_pr"`
	DailyAvgCommits      float64 `json:"daily_avg_commits"`
	ActivityPercentage   float64 `json:"activity_percentage"`
	PerformanceLabel     string  `json:"performance_label"`
	AlignedContributions Series  `json:"aligned_contributions"`
}

// Comparison is the multi-user dataset: enriched per-user reports plus a
// globally unioned, sorted period axis shared by all users.
type Comparison struct {
	Users          []UserComparison `json:"users"`
	Periods        []PeriodKey      `json:"periods"`
	ActivityPeriod ActivityPeriod   `json:"activity_period"`
}
