package insights

import (
	"testing"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeIrregularHoursAlternatingDays(t *testing.T) {
	// alternating 4h and 11h days
	var records []insights.DailyRecord
	for i, date := range datesDescending(t, "2025-03-14", 10) {
		hours := 4.0
		if i%2 == 0 {
			hours = 11.0
		}
		records = append(records, workedDay(t, date, hours, 60))
	}

	result := analyzeIrregularHours(records)

	assert.True(t, result.HasData)
	assert.Equal(t, 7.5, result.AvgHours)
	assert.Equal(t, 3.5, result.StdDeviation)
	assert.Equal(t, 46.7, result.CoefficientOfVariation)
	assert.Equal(t, 0, result.OutlierDays)
	assert.True(t, result.IsIrregular)
	assert.Equal(t, insights.SeverityHigh, result.Severity)
}

func TestAnalyzeIrregularHoursSteadySchedule(t *testing.T) {
	var records []insights.DailyRecord
	for _, date := range datesDescending(t, "2025-03-14", 10) {
		records = append(records, workedDay(t, date, 8, 60))
	}

	result := analyzeIrregularHours(records)

	assert.True(t, result.HasData)
	assert.Equal(t, 8.0, result.AvgHours)
	assert.Equal(t, 0.0, result.StdDeviation)
	assert.False(t, result.IsIrregular)
	assert.Equal(t, insights.SeverityLow, result.Severity)
}

func TestAnalyzeIrregularHoursMixedSchedule(t *testing.T) {
	// three days each at 4h, 10h and 6h
	hoursByDay := []float64{4, 4, 4, 10, 10, 10, 6, 6, 6}
	var records []insights.DailyRecord
	for i, date := range datesDescending(t, "2025-03-14", 9) {
		records = append(records, workedDay(t, date, hoursByDay[i], 60))
	}

	result := analyzeIrregularHours(records)

	assert.True(t, result.HasData)
	assert.Equal(t, 37.4, result.CoefficientOfVariation)
	assert.True(t, result.IsIrregular)
	assert.Equal(t, insights.SeverityMedium, result.Severity)
}

func TestAnalyzeIrregularHoursNeedsThreeWorkedDays(t *testing.T) {
	records := []insights.DailyRecord{
		workedDay(t, "2025-03-14", 8, 60),
		workedDay(t, "2025-03-13", 4, 60),
		{Date: mustDate(t, "2025-03-12"), IsAbsent: true},
	}

	result := analyzeIrregularHours(records)

	assert.False(t, result.HasData)
	assert.Equal(t, insights.SeverityLow, result.Severity)
}

func TestAnalyzeIrregularHoursOutlierDetection(t *testing.T) {
	// one wild day among a steady schedule
	records := []insights.DailyRecord{
		workedDay(t, "2025-03-14", 8, 60),
		workedDay(t, "2025-03-13", 8, 60),
		workedDay(t, "2025-03-12", 8, 60),
		workedDay(t, "2025-03-11", 8, 60),
		workedDay(t, "2025-03-10", 8, 60),
		workedDay(t, "2025-03-09", 8, 60),
		workedDay(t, "2025-03-08", 8, 60),
		workedDay(t, "2025-03-07", 8, 60),
		workedDay(t, "2025-03-06", 8, 60),
		workedDay(t, "2025-03-05", 16, 60),
	}

	result := analyzeIrregularHours(records)

	assert.Equal(t, 1, result.OutlierDays)
	assert.True(t, result.IsIrregular)
}
