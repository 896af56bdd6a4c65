package insights

import (
	"math"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
)

// minTrendRecords is the smallest window that gives two comparable halves.
const minTrendRecords = 10

// analyzePunctualityTrend compares the on-time rate between the first half
// (most recent records) and the second half of the window. Records must be
// sorted descending by date.
func analyzePunctualityTrend(records []insights.DailyRecord, dropThreshold float64) insights.PunctualityTrend {
	result := insights.PunctualityTrend{Severity: insights.SeverityLow}

	if len(records) < minTrendRecords {
		return result
	}

	mid := len(records) / 2
	current := onTimeRate(records[:mid])
	previous := onTimeRate(records[mid:])

	result.HasData = true
	result.CurrentScore = round1(current)
	result.PreviousScore = round1(previous)
	result.ScoreDifference = round1(current - previous)

	var change float64
	if previous != 0 {
		change = (current - previous) / previous * 100
	}
	result.PercentageChange = round1(change)

	switch {
	case math.Abs(change) < 10:
		result.TrendDirection = insights.TrendStable
	case change > 0:
		result.TrendDirection = insights.TrendImproving
	default:
		result.TrendDirection = insights.TrendDeclining
	}

	result.IsSignificantDrop = result.TrendDirection == insights.TrendDeclining &&
		math.Abs(change) >= dropThreshold

	switch {
	case result.IsSignificantDrop:
		result.Severity = insights.SeverityHigh
	case result.TrendDirection == insights.TrendDeclining:
		result.Severity = insights.SeverityMedium
	default:
		result.Severity = insights.SeverityLow
	}

	return result
}

// onTimeRate is the percentage of present days that were not effectively late.
func onTimeRate(records []insights.DailyRecord) float64 {
	present := 0
	onTime := 0
	for _, day := range records {
		if !day.IsPresent {
			continue
		}
		present++
		if !isEffectivelyLate(day) {
			onTime++
		}
	}
	if present == 0 {
		return 0
	}
	return float64(onTime) / float64(present) * 100
}
