package usecase

import (
	"context"
	"log"

	"github.com/naka-gawa/github-activities/internal/domain"
	"github.com/naka-gawa/github-activities/internal/gateway"
	"golang.org/x/sync/errgroup"
)

// Reporter is the use case for building user activity reports.
// It orchestrates the fetching and aggregation of activity data.
type Reporter struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewReporter creates a new Reporter instance.
func NewReporter(fetcher gateway.Fetcher, logger *log.Logger) *Reporter {
	return &Reporter{
		fetcher: fetcher,
		logger:  logger,
	}
}

// UserReport fetches the user's profile and the four activity lists
// concurrently, then assembles the report. Aggregation starts only after all
// four lists have arrived; the summary and merged series need the complete
// set.
func (r *Reporter) UserReport(ctx context.Context, username string, opts gateway.SearchOptions, periodType domain.PeriodType) (domain.UserActivityReport, error) {
	r.logger.Printf("Usecase: fetching activity for %s...", username)

	var (
		user    domain.User
		commits []domain.Commit
		prs     []domain.PullRequest
		issues  []domain.Issue
		reviews []domain.Review
	)

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		user, err = r.fetcher.FetchUser(egCtx, username)
		return err
	})

	eg.Go(func() error {
		var err error
		commits, err = r.fetcher.FetchCommits(egCtx, username, opts)
		return err
	})

	eg.Go(func() error {
		var err error
		prs, err = r.fetcher.FetchPullRequests(egCtx, username, opts)
		return err
	})

	eg.Go(func() error {
		var err error
		issues, err = r.fetcher.FetchIssues(egCtx, username, opts)
		return err
	})

	eg.Go(func() error {
		var err error
		reviews, err = r.fetcher.FetchReviews(egCtx, username, opts)
		return err
	})

	if err := eg.Wait(); err != nil {
		return domain.UserActivityReport{}, err
	}
	r.logger.Printf("Usecase: all activity data fetched for %s.", username)

	period := domain.ActivityPeriod{
		Since: opts.Since,
		Until: opts.Until,
		Days:  int(opts.Until.Sub(opts.Since).Hours() / 24),
	}
	return BuildReport(user, period, commits, prs, issues, reviews, periodType), nil
}

// Compare builds reports for several users concurrently, preserving input
// order, and enriches them into a comparison dataset with a shared period
// axis and derived metrics.
func (r *Reporter) Compare(ctx context.Context, usernames []string, opts gateway.SearchOptions, periodType domain.PeriodType) (domain.Comparison, error) {
	r.logger.Printf("Usecase: comparing %d users...", len(usernames))

	reports := make([]domain.UserActivityReport, len(usernames))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, username := range usernames {
		i, username := i, username
		eg.Go(func() error {
			report, err := r.UserReport(egCtx, username, opts, periodType)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return domain.Comparison{}, err
	}

	period := domain.ActivityPeriod{
		Since: opts.Since,
		Until: opts.Until,
		Days:  int(opts.Until.Sub(opts.Since).Hours() / 24),
	}
	r.logger.Println("Usecase: comparison dataset complete.")
	return BuildComparison(reports, period), nil
}
