package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEncodePeriod(t *testing.T) {
	testCases := []struct {
		name       string
		timestamp  time.Time
		periodType PeriodType
		expected   PeriodKey
	}{
		{
			name:       "week - year starting on a Monday",
			timestamp:  date(2024, time.January, 1),
			periodType: PeriodWeek,
			expected:   "2024-W01",
		},
		{
			name:       "week - second week",
			timestamp:  date(2024, time.January, 8),
			periodType: PeriodWeek,
			expected:   "2024-W02",
		},
		{
			name:       "week - last day of first week",
			timestamp:  date(2024, time.January, 7),
			periodType: PeriodWeek,
			expected:   "2024-W01",
		},
		{
			name:       "week 0 - days before the year's first Monday",
			timestamp:  date(2023, time.January, 1), // a Sunday
			periodType: PeriodWeek,
			expected:   "2023-W00",
		},
		{
			name:       "week 1 - first Monday of 2023",
			timestamp:  date(2023, time.January, 2),
			periodType: PeriodWeek,
			expected:   "2023-W01",
		},
		{
			name:       "month - zero padded",
			timestamp:  date(2024, time.February, 29),
			periodType: PeriodMonth,
			expected:   "2024-02",
		},
		{
			name:       "month - december",
			timestamp:  date(2023, time.December, 31),
			periodType: PeriodMonth,
			expected:   "2023-12",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EncodePeriod(tc.timestamp, tc.periodType))
		})
	}
}

func TestPeriodStart(t *testing.T) {
	testCases := []struct {
		name      string
		key       PeriodKey
		expected  time.Time
		expectErr bool
	}{
		{
			name:     "week key resolves to its Monday",
			key:      "2024-W01",
			expected: date(2024, time.January, 1),
		},
		{
			name:     "later week",
			key:      "2024-W10",
			expected: date(2024, time.March, 4),
		},
		{
			name:     "month key resolves to its first day",
			key:      "2024-02",
			expected: date(2024, time.February, 1),
		},
		{
			name:      "malformed key",
			key:       "not-a-week",
			expectErr: true,
		},
		{
			name:      "non numeric week",
			key:       "2024-Wxx",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, err := PeriodStart(tc.key)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, start)
		})
	}
}

func TestWeekStartDisplay(t *testing.T) {
	testCases := []struct {
		name     string
		key      PeriodKey
		expected string
	}{
		{
			name:     "first week of 2024",
			key:      "2024-W01",
			expected: "2024-01-01",
		},
		{
			name:     "first week of 2023 starts on the first Monday",
			key:      "2023-W01",
			expected: "2023-01-02",
		},
		{
			name:     "month key passes through unchanged",
			key:      "2024-03",
			expected: "2024-03",
		},
		{
			name:     "malformed key passes through unchanged",
			key:      "not-a-week",
			expected: "not-a-week",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, WeekStartDisplay(tc.key))
		})
	}
}

func TestNextPeriod(t *testing.T) {
	t.Run("week steps seven days", func(t *testing.T) {
		assert.Equal(t, date(2024, time.January, 8), NextPeriod(date(2024, time.January, 1), PeriodWeek))
	})

	t.Run("month steps to the first of the next month", func(t *testing.T) {
		assert.Equal(t, date(2024, time.February, 1), NextPeriod(date(2024, time.January, 15), PeriodMonth))
	})

	t.Run("month step crosses year boundary", func(t *testing.T) {
		assert.Equal(t, date(2025, time.January, 1), NextPeriod(date(2024, time.December, 31), PeriodMonth))
	})
}
