package usecase

import (
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/naka-gawa/github-activities/internal/domain"
)

// CombineSeries unions the period axes of the given series and sums the
// values per period; a series without an entry for a period contributes 0.
// The result is sorted ascending by period key.
func CombineSeries(series ...domain.Series) domain.Series {
	totals := make(map[domain.PeriodKey]float64)
	for _, s := range series {
		for _, p := range s {
			totals[p.Period] += p.Value
		}
	}

	combined := make(domain.Series, 0, len(totals))
	for key, value := range totals {
		combined = append(combined, domain.SeriesPoint{Period: key, Value: value})
	}
	sort.Slice(combined, func(i, j int) bool {
		return combined[i].Period < combined[j].Period
	})
	return combined
}

// SharedPeriods unions the period keys of all given series into one sorted
// axis, used to align multiple users' charts.
func SharedPeriods(series ...domain.Series) []domain.PeriodKey {
	seen := make(map[domain.PeriodKey]struct{})
	for _, s := range series {
		for _, p := range s {
			seen[p.Period] = struct{}{}
		}
	}

	periods := make([]domain.PeriodKey, 0, len(seen))
	for key := range seen {
		periods = append(periods, key)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i] < periods[j] })
	return periods
}

// Resample projects a series onto the given axis, substituting 0 for any
// period the series has no entry for. The output preserves axis order.
func Resample(s domain.Series, axis []domain.PeriodKey) domain.Series {
	values := make(map[domain.PeriodKey]float64, len(s))
	for _, p := range s {
		values[p.Period] = p.Value
	}

	resampled := make(domain.Series, 0, len(axis))
	for _, key := range axis {
		resampled = append(resampled, domain.SeriesPoint{Period: key, Value: values[key]})
	}
	return resampled
}

// BuildComparison enriches per-user reports with cross-user derived metrics
// and a shared period axis. Daily averages divide by the window's day count,
// degrading to 0 for a zero-length window. A user is a High Performer only
// when its total contributions strictly exceed the cross-user average; ties
// are Average.
func BuildComparison(reports []domain.UserActivityReport, period domain.ActivityPeriod) domain.Comparison {
	totalSeries := make([]domain.Series, 0, len(reports))
	totals := make([]float64, 0, len(reports))
	var totalAll float64
	for _, r := range reports {
		if r.Aggregated != nil {
			totalSeries = append(totalSeries, r.Aggregated.TotalContributions)
		}
		totals = append(totals, float64(r.Summary.TotalContributions))
		totalAll += float64(r.Summary.TotalContributions)
	}

	var avgActivity float64
	if len(totals) > 0 {
		avgActivity, _ = stats.Mean(totals)
	}

	axis := SharedPeriods(totalSeries...)
	days := float64(period.Days)

	users := make([]domain.UserComparison, 0, len(reports))
	for _, r := range reports {
		uc := domain.UserComparison{
			UserActivityReport: r,
			PerformanceLabel:   domain.PerformanceAverage,
		}
		total := float64(r.Summary.TotalContributions)
		if days > 0 {
			uc.DailyAvgActivity = total / days
			uc.DailyAvgPullRequests = float64(r.Summary.PullRequestsCount) / days
			uc.DailyAvgCommits = float64(r.Summary.CommitsCount) / days
		}
		if totalAll > 0 {
			uc.ActivityPercentage = total / totalAll * 100
		}
		if total > avgActivity {
			uc.PerformanceLabel = domain.PerformanceHigh
		}
		if r.Aggregated != nil {
			uc.AlignedContributions = Resample(r.Aggregated.TotalContributions, axis)
		}
		users = append(users, uc)
	}

	return domain.Comparison{
		Users:          users,
		Periods:        axis,
		ActivityPeriod: period,
	}
}

// Metric selectors for ranking comparison users.
var (
	ByTotalContributions = func(u domain.UserComparison) float64 {
		return float64(u.Summary.TotalContributions)
	}
	ByDailyAvgActivity = func(u domain.UserComparison) float64 { return u.DailyAvgActivity }
	ByPullRequests     = func(u domain.UserComparison) float64 {
		return float64(u.Summary.PullRequestsCount)
	}
	ByDailyAvgPullRequests = func(u domain.UserComparison) float64 { return u.DailyAvgPullRequests }
)

// TopUsersBy returns the n highest-ranked users by the given metric. The
// sort is stable and descending, so ties keep their original input order.
func TopUsersBy(users []domain.UserComparison, n int, metric func(domain.UserComparison) float64) []domain.UserComparison {
	ranked := make([]domain.UserComparison, len(users))
	copy(ranked, users)
	sort.SliceStable(ranked, func(i, j int) bool {
		return metric(ranked[i]) > metric(ranked[j])
	})
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
