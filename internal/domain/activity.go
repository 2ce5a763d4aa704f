// Package domain contains the core data structures and domain logic for the application.
package domain

import (
	"encoding/json"
	"time"
)

// ActivityType identifies one of the four activity sources tracked per user.
type ActivityType string

const (
	ActivityCommits      ActivityType = "commits"
	ActivityPullRequests ActivityType = "pull_requests"
	ActivityIssues       ActivityType = "issues"
	ActivityReviews      ActivityType = "reviews"
)

// Record is implemented by every activity variant. OccurredAt exposes the
// date attribute relevant to that variant (commit author date, PR/issue
// creation date, review update date), resolved once at construction time.
type Record interface {
	OccurredAt() time.Time
	Repo() string
}

// Commit is a single commit authored by the user.
type Commit struct {
	SHA        string    `json:"sha"`
	Message    string    `json:"message"`
	Date       time.Time `json:"date"`
	Repository string    `json:"repository"`
	URL        string    `json:"url"`
	Additions  int       `json:"additions"`
	Deletions  int       `json:"deletions"`
}

func (c Commit) OccurredAt() time.Time { return c.Date }
func (c Commit) Repo() string          { return c.Repository }

// PullRequest is a pull request created by the user.
type PullRequest struct {
	Number     int        `json:"number"`
	Title      string     `json:"title"`
	State      string     `json:"state"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ClosedAt   *time.Time `json:"closed_at"`
	Repository string     `json:"repository"`
	URL        string     `json:"url"`
}

func (p PullRequest) OccurredAt() time.Time { return p.CreatedAt }
func (p PullRequest) Repo() string          { return p.Repository }

// Issue is an issue created by the user.
type Issue struct {
	Number     int        `json:"number"`
	Title      string     `json:"title"`
	State      string     `json:"state"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ClosedAt   *time.Time `json:"closed_at"`
	Repository string     `json:"repository"`
	URL        string     `json:"url"`
}

func (i Issue) OccurredAt() time.Time { return i.CreatedAt }
func (i Issue) Repo() string          { return i.Repository }

// Review is a pull request reviewed by the user.
type Review struct {
	PRNumber   int       `json:"pr_number"`
	PRTitle    string    `json:"pr_title"`
	Repository string    `json:"repository"`
	ReviewedAt time.Time `json:"reviewed_at"`
	URL        string    `json:"url"`
}

func (r Review) OccurredAt() time.Time { return r.ReviewedAt }
func (r Review) Repo() string          { return r.Repository }

// SeriesPoint is one (period key, value) entry of a Series.
type SeriesPoint struct {
	Period PeriodKey
	Value  float64
}

// MarshalJSON encodes the point as a ["YYYY-Wnn", value] pair, matching the
// shape consumed by the report renderers.
func (p SeriesPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{string(p.Period), p.Value})
}

// UnmarshalJSON decodes a ["YYYY-Wnn", value] pair.
func (p *SeriesPoint) UnmarshalJSON(data []byte) error {
	var key string
	var value float64
	pair := []any{&key, &value}
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	p.Period = PeriodKey(key)
	p.Value = value
	return nil
}

// Series is an ordered sequence of period/value pairs, sorted ascending by
// period key, one entry per distinct period, no duplicate keys.
type Series []SeriesPoint
