package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PeriodType selects the calendar granularity used for aggregation.
type PeriodType string

const (
	PeriodWeek  PeriodType = "week"
	PeriodMonth PeriodType = "month"
)

// PeriodKey is an opaque ordered token identifying a calendar week
// ("YYYY-Wnn") or month ("YYYY-MM"). Lexicographic order coincides with
// chronological order for both formats.
type PeriodKey string

// EncodePeriod maps a timestamp to its period key.
//
// Week keys follow strftime %W semantics: weeks start on Monday and week 1
// is the first week of the year containing a Monday; days before that belong
// to week 0. This intentionally differs from ISO-8601 week numbering at year
// boundaries.
func EncodePeriod(t time.Time, periodType PeriodType) PeriodKey {
	if periodType == PeriodWeek {
		return PeriodKey(fmt.Sprintf("%04d-W%02d", t.Year(), weekOfYear(t)))
	}
	return PeriodKey(t.Format("2006-01"))
}

// weekOfYear computes the %W week number of t.
func weekOfYear(t time.Time) int {
	yday := t.YearDay() - 1
	wday := int(t.Weekday()) // Sunday = 0
	mondayBased := wday - 1
	if wday == 0 {
		mondayBased = 6
	}
	return (yday + 7 - mondayBased) / 7
}

// firstMonday returns the first Monday of the given year.
func firstMonday(year int) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	offset := (8 - int(jan1.Weekday())) % 7
	return jan1.AddDate(0, 0, offset)
}

// PeriodStart returns the first calendar day of the period identified by key.
// Week keys resolve to the Monday starting that week; week 0 resolves to a
// date before the year's first Monday.
func PeriodStart(key PeriodKey) (time.Time, error) {
	s := string(key)
	if i := strings.Index(s, "-W"); i >= 0 {
		year, err := strconv.Atoi(s[:i])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid week key %q: %w", key, err)
		}
		week, err := strconv.Atoi(s[i+2:])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid week key %q: %w", key, err)
		}
		return firstMonday(year).AddDate(0, 0, (week-1)*7), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t, nil
}

// WeekStartDisplay renders a week key as the date of its first day
// ("YYYY-MM-DD"), the notation preferred in Japanese reports. Month keys and
// malformed input are returned unchanged.
func WeekStartDisplay(key PeriodKey) string {
	if !strings.Contains(string(key), "-W") {
		return string(key)
	}
	start, err := PeriodStart(key)
	if err != nil {
		return string(key)
	}
	return start.Format("2006-01-02")
}

// NextPeriod steps a timestamp to the next period: seven days forward for
// weeks, the first day of the following month for months. Stepping by date
// rather than by produced keys keeps gap filling correct across months of
// varying length.
func NextPeriod(t time.Time, periodType PeriodType) time.Time {
	if periodType == PeriodWeek {
		return t.AddDate(0, 0, 7)
	}
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
}
