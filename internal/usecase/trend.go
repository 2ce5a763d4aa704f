package usecase

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/naka-gawa/github-activities/internal/domain"
)

// Language selects the narrative language for trend analysis and reports.
// It is a separate axis from week-key display formatting.
type Language string

const (
	LangEnglish  Language = "en"
	LangJapanese Language = "ja"
)

// Trend classifies how a series developed between its first and second half.
type Trend string

const (
	TrendIncreasing       Trend = "increasing"
	TrendDecreasing       Trend = "decreasing"
	TrendStable           Trend = "stable"
	TrendInsufficientData Trend = "insufficient_data"
)

// trendThreshold is the relative change below which a series counts as
// stable.
const trendThreshold = 0.20

// peakFactor marks a period as a notable peak when its value exceeds the
// second-half average by this factor.
const peakFactor = 1.5

// TrendResult is the classification of one series plus a human-readable
// narrative.
type TrendResult struct {
	Trend         Trend            `json:"trend"`
	PercentChange float64          `json:"percent_change"`
	PeakPeriod    domain.PeriodKey `json:"peak_period,omitempty"`
	Narrative     string           `json:"narrative"`
}

// AnalyzeTrend compares the first-half and second-half averages of a series.
// For odd lengths the extra element goes to the second half. A first-half
// average of 0 degrades the relative change to 0 instead of dividing by
// zero. The narrative is deterministic for given inputs.
func AnalyzeTrend(series domain.Series, label string, lang Language) TrendResult {
	if len(series) < 2 {
		return TrendResult{
			Trend:     TrendInsufficientData,
			Narrative: narrative(TrendInsufficientData, label, 0, "", lang),
		}
	}

	values := make([]float64, len(series))
	for i, p := range series {
		values[i] = p.Value
	}

	half := len(values) / 2
	firstAvg, _ := stats.Mean(values[:half])
	secondAvg, _ := stats.Mean(values[half:])

	var change float64
	if firstAvg > 0 {
		change = (secondAvg - firstAvg) / firstAvg
	}

	trend := TrendStable
	switch {
	case change >= trendThreshold:
		trend = TrendIncreasing
	case change <= -trendThreshold:
		trend = TrendDecreasing
	}

	var peak domain.PeriodKey
	maxValue, _ := stats.Max(values)
	if maxValue > secondAvg*peakFactor {
		for i, v := range values {
			if v == maxValue {
				peak = series[i].Period
				break
			}
		}
	}

	return TrendResult{
		Trend:         trend,
		PercentChange: change,
		PeakPeriod:    peak,
		Narrative:     narrative(trend, label, change, peak, lang),
	}
}

func narrative(trend Trend, label string, change float64, peak domain.PeriodKey, lang Language) string {
	if lang == LangJapanese {
		return narrativeJA(trend, label, change, peak)
	}
	return narrativeEN(trend, label, change, peak)
}

func narrativeEN(trend Trend, label string, change float64, peak domain.PeriodKey) string {
	var text string
	switch trend {
	case TrendInsufficientData:
		return fmt.Sprintf("Not enough data to analyze the %s trend.", label)
	case TrendIncreasing:
		text = fmt.Sprintf("%s activity is increasing (%.0f%% change between halves)", label, change*100)
	case TrendDecreasing:
		text = fmt.Sprintf("%s activity is decreasing (%.0f%% change between halves)", label, change*100)
	default:
		text = fmt.Sprintf("%s activity has remained stable", label)
	}
	if peak != "" {
		text += fmt.Sprintf(", with a notable peak during %s", peak)
	}
	return text + "."
}

func narrativeJA(trend Trend, label string, change float64, peak domain.PeriodKey) string {
	var text string
	switch trend {
	case TrendInsufficientData:
		return fmt.Sprintf("%sの傾向を分析するにはデータが不足しています。", label)
	case TrendIncreasing:
		text = fmt.Sprintf("%sの活動は増加傾向にあります（前後半で%.0f%%の変化）", label, change*100)
	case TrendDecreasing:
		text = fmt.Sprintf("%sの活動は減少傾向にあります（前後半で%.0f%%の変化）", label, change*100)
	default:
		text = fmt.Sprintf("%sの活動は安定しています", label)
	}
	if peak != "" {
		text += fmt.Sprintf("。%sに顕著なピークがありました", peak)
	}
	return text + "。"
}
