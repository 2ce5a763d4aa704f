// Package usecase contains the business logic of the application.
package usecase

import (
	"sort"
	"time"

	"github.com/naka-gawa/github-activities/internal/domain"
)

// FieldFunc extracts a numeric metric from a record. The boolean reports
// whether the record carries that metric; records without it contribute
// nothing to a metric sum.
type FieldFunc func(domain.Record) (float64, bool)

// CommitAdditions extracts the line additions of a commit record.
func CommitAdditions(r domain.Record) (float64, bool) {
	c, ok := r.(domain.Commit)
	if !ok {
		return 0, false
	}
	return float64(c.Additions), true
}

// CommitDeletions extracts the line deletions of a commit record.
func CommitDeletions(r domain.Record) (float64, bool) {
	c, ok := r.(domain.Commit)
	if !ok {
		return 0, false
	}
	return float64(c.Deletions), true
}

// Records converts a typed record slice to the Record interface slice the
// aggregator operates on.
func Records[T domain.Record](items []T) []domain.Record {
	records := make([]domain.Record, len(items))
	for i, item := range items {
		records[i] = item
	}
	return records
}

// Aggregate buckets records by period key. With a nil field the value of
// each bucket is the record count; with a field it is the sum of that metric
// over the records carrying it. When both since and until are set, every
// period in [since, until] appears in the result even if empty. Records with
// a zero timestamp are silently dropped. The result is sorted ascending by
// period key with no duplicates.
func Aggregate(records []domain.Record, periodType domain.PeriodType, since, until time.Time, field FieldFunc) domain.Series {
	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[domain.PeriodKey]*bucket)

	ensure := func(key domain.PeriodKey) *bucket {
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		return b
	}

	for _, r := range records {
		ts := r.OccurredAt()
		if ts.IsZero() {
			continue
		}
		b := ensure(domain.EncodePeriod(ts, periodType))
		if field != nil {
			if v, ok := field(r); ok {
				b.sum += v
				b.count++
			}
			continue
		}
		b.count++
	}

	if !since.IsZero() && !until.IsZero() {
		for cur := since; !cur.After(until); cur = domain.NextPeriod(cur, periodType) {
			ensure(domain.EncodePeriod(cur, periodType))
		}
	}

	series := make(domain.Series, 0, len(buckets))
	for key, b := range buckets {
		value := float64(b.count)
		if field != nil {
			value = b.sum
		}
		series = append(series, domain.SeriesPoint{Period: key, Value: value})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Period < series[j].Period
	})
	return series
}
