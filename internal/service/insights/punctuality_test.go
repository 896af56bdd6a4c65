package insights

import (
	"testing"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzePunctualityTrendImproving(t *testing.T) {
	// recent half clean, older half with four late days
	var records []insights.DailyRecord
	for _, date := range datesDescending(t, "2025-03-14", 7) {
		records = append(records, workedDay(t, date, 8, 60))
	}
	for i, date := range datesDescending(t, "2025-03-07", 7) {
		if i < 4 {
			records = append(records, lateDay(t, date, 8, 20))
		} else {
			records = append(records, workedDay(t, date, 8, 60))
		}
	}

	result := analyzePunctualityTrend(records, 40)

	assert.True(t, result.HasData)
	assert.Equal(t, 100.0, result.CurrentScore)
	assert.Equal(t, 42.9, result.PreviousScore)
	assert.Equal(t, insights.TrendImproving, result.TrendDirection)
	assert.False(t, result.IsSignificantDrop)
	assert.Equal(t, insights.SeverityLow, result.Severity)
}

func TestAnalyzePunctualityTrendSignificantDrop(t *testing.T) {
	// five of the seven most recent days late, older half clean
	var records []insights.DailyRecord
	for i, date := range datesDescending(t, "2025-03-14", 7) {
		if i < 5 {
			records = append(records, lateDay(t, date, 8, 20))
		} else {
			records = append(records, workedDay(t, date, 8, 60))
		}
	}
	for _, date := range datesDescending(t, "2025-03-07", 7) {
		records = append(records, workedDay(t, date, 8, 60))
	}

	result := analyzePunctualityTrend(records, 40)

	assert.True(t, result.HasData)
	assert.Equal(t, 28.6, result.CurrentScore)
	assert.Equal(t, 100.0, result.PreviousScore)
	assert.Equal(t, -71.4, result.PercentageChange)
	assert.Equal(t, insights.TrendDeclining, result.TrendDirection)
	assert.True(t, result.IsSignificantDrop)
	assert.Equal(t, insights.SeverityHigh, result.Severity)
}

func TestAnalyzePunctualityTrendTooFewRecords(t *testing.T) {
	var records []insights.DailyRecord
	for _, date := range datesDescending(t, "2025-03-14", 9) {
		records = append(records, workedDay(t, date, 8, 60))
	}

	result := analyzePunctualityTrend(records, 40)

	assert.False(t, result.HasData)
	assert.Equal(t, insights.SeverityLow, result.Severity)
}

func TestAnalyzePunctualityTrendZeroPreviousScore(t *testing.T) {
	// older half entirely late leaves nothing to compare against
	var records []insights.DailyRecord
	for _, date := range datesDescending(t, "2025-03-14", 7) {
		records = append(records, workedDay(t, date, 8, 60))
	}
	for _, date := range datesDescending(t, "2025-03-07", 7) {
		records = append(records, lateDay(t, date, 8, 20))
	}

	result := analyzePunctualityTrend(records, 40)

	assert.True(t, result.HasData)
	assert.Equal(t, 0.0, result.PreviousScore)
	assert.Equal(t, 0.0, result.PercentageChange)
	assert.Equal(t, insights.TrendStable, result.TrendDirection)
}

func TestOnTimeRateIgnoresAbsentDays(t *testing.T) {
	records := []insights.DailyRecord{
		workedDay(t, "2025-03-14", 8, 60),
		{Date: mustDate(t, "2025-03-13"), IsAbsent: true},
		lateDay(t, "2025-03-12", 8, 20),
	}

	assert.Equal(t, 50.0, onTimeRate(records))
}
