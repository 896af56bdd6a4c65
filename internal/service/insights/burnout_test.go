package insights

import (
	"testing"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeBurnoutSignalsSustainedOvertime(t *testing.T) {
	// ten straight 10-hour days with no breaks, spanning one weekend
	var records []insights.DailyRecord
	for _, date := range datesDescending(t, "2025-03-14", 10) {
		records = append(records, workedDay(t, date, 10, 0))
	}

	result := analyzeBurnoutSignals(records, 10)

	assert.Equal(t, 10, result.OvertimeDaysCount)
	assert.Equal(t, 100.0, result.OvertimePercentage)
	assert.Equal(t, 25.0, result.TotalOvertimeHours)
	assert.Equal(t, 10, result.MaxConsecutiveOvertime)
	assert.Equal(t, 10, result.SkippedBreakDays)
	assert.Equal(t, 100.0, result.SkippedBreakPercentage)
	assert.Equal(t, 2, result.WeekendWorkDays)
	assert.Equal(t, 12.5, result.AvgWeeklyOvertime)
	assert.True(t, result.HasBurnoutSignals)
	assert.Equal(t, insights.SeverityCritical, result.Severity)
}

func TestAnalyzeBurnoutSignalsQuietSchedule(t *testing.T) {
	// standard weekdays only, real breaks taken
	var records []insights.DailyRecord
	for _, date := range []string{
		"2025-03-14", "2025-03-13", "2025-03-12", "2025-03-11", "2025-03-10",
		"2025-03-07", "2025-03-06", "2025-03-05", "2025-03-04", "2025-03-03",
	} {
		records = append(records, workedDay(t, date, 7.5, 60))
	}

	result := analyzeBurnoutSignals(records, 10)

	assert.Equal(t, 0, result.OvertimeDaysCount)
	assert.Equal(t, 0, result.SkippedBreakDays)
	assert.Equal(t, 0, result.WeekendWorkDays)
	assert.Equal(t, 0.0, result.AvgWeeklyOvertime)
	assert.False(t, result.HasBurnoutSignals)
	assert.Equal(t, insights.SeverityLow, result.Severity)
}

func TestAnalyzeBurnoutSignalsOvertimeMargin(t *testing.T) {
	// 8.5h is within the margin, 8.6h is overtime
	records := []insights.DailyRecord{
		workedDay(t, "2025-03-14", 8.5, 60),
		workedDay(t, "2025-03-13", 8.6, 60),
	}

	result := analyzeBurnoutSignals(records, 10)

	assert.Equal(t, 1, result.OvertimeDaysCount)
	assert.Equal(t, 1, result.MaxConsecutiveOvertime)
}

func TestAnalyzeBurnoutSignalsSkippedBreaksOnlyOnWorkedDays(t *testing.T) {
	absent := insights.DailyRecord{
		Date:     mustDate(t, "2025-03-12"),
		IsAbsent: true,
	}
	records := []insights.DailyRecord{
		workedDay(t, "2025-03-14", 8, 10),
		workedDay(t, "2025-03-13", 8, 60),
		absent,
	}

	result := analyzeBurnoutSignals(records, 10)

	assert.Equal(t, 1, result.SkippedBreakDays)
	assert.Equal(t, 50.0, result.SkippedBreakPercentage)
}

func TestAnalyzeBurnoutSignalsEmptyInput(t *testing.T) {
	result := analyzeBurnoutSignals(nil, 10)

	assert.False(t, result.HasBurnoutSignals)
	assert.Equal(t, insights.SeverityLow, result.Severity)
}
