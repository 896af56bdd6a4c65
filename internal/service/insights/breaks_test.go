package insights

import (
	"testing"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeBreakPatternsSkippedBreaks(t *testing.T) {
	records := []insights.DailyRecord{
		workedDay(t, "2025-03-14", 8, 0),
		workedDay(t, "2025-03-13", 8, 0),
		workedDay(t, "2025-03-12", 8, 0),
		workedDay(t, "2025-03-11", 8, 45),
		workedDay(t, "2025-03-10", 8, 0),
		workedDay(t, "2025-03-09", 8, 60),
	}

	result := analyzeBreakPatterns(records)

	assert.True(t, result.HasData)
	assert.Equal(t, 4, result.InsufficientBreakDays)
	assert.Equal(t, 66.7, result.InsufficientBreakPercentage)
	assert.Equal(t, 4, result.NoBreakDays)
	assert.Equal(t, 66.7, result.NoBreakPercentage)
	assert.Equal(t, 3, result.MaxConsecutiveNoBreaks)
	assert.True(t, result.HasIssue)
	assert.Equal(t, insights.SeverityMedium, result.Severity)
}

func TestAnalyzeBreakPatternsLongStreakIsHigh(t *testing.T) {
	var records []insights.DailyRecord
	for _, date := range datesDescending(t, "2025-03-14", 5) {
		records = append(records, workedDay(t, date, 8, 0))
	}

	result := analyzeBreakPatterns(records)

	assert.Equal(t, 5, result.MaxConsecutiveNoBreaks)
	assert.Equal(t, insights.SeverityHigh, result.Severity)
}

func TestAnalyzeBreakPatternsHealthyBreaks(t *testing.T) {
	var records []insights.DailyRecord
	for _, date := range datesDescending(t, "2025-03-14", 5) {
		records = append(records, workedDay(t, date, 8, 45))
	}

	result := analyzeBreakPatterns(records)

	assert.True(t, result.HasData)
	assert.Equal(t, 0, result.InsufficientBreakDays)
	assert.False(t, result.HasIssue)
	assert.Equal(t, insights.SeverityLow, result.Severity)
}

func TestAnalyzeBreakPatternsExcludesAbsentDays(t *testing.T) {
	records := []insights.DailyRecord{
		workedDay(t, "2025-03-14", 8, 0),
		{Date: mustDate(t, "2025-03-13"), IsAbsent: true},
		workedDay(t, "2025-03-12", 8, 0),
		{Date: mustDate(t, "2025-03-11"), IsAbsent: true},
	}

	result := analyzeBreakPatterns(records)

	// only two worked days, below the data floor
	assert.False(t, result.HasData)
}
