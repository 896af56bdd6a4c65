package insights

import (
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
)

const (
	standardDayHours  = 7.5
	standardWeekHours = 37.5

	// A day counts as overtime once it exceeds the standard day by an hour.
	overtimeDayMarginHours = 1.0

	// Anything under 15 minutes counts as a skipped break.
	minBreakSeconds = 15 * 60
)

// analyzeBurnoutSignals expects records sorted descending by date.
func analyzeBurnoutSignals(records []insights.DailyRecord, overtimeThreshold float64) insights.BurnoutSignals {
	result := insights.BurnoutSignals{}

	total := len(records)
	if total == 0 {
		return result
	}

	var (
		presentDays        int
		streak             int
		totalOvertimeHours float64
	)
	weekTotals := map[[2]int]float64{}

	for _, day := range records {
		hours := workHours(day)

		if hours > standardDayHours+overtimeDayMarginHours {
			result.OvertimeDaysCount++
			totalOvertimeHours += hours - standardDayHours
			streak++
			if streak > result.MaxConsecutiveOvertime {
				result.MaxConsecutiveOvertime = streak
			}
		} else {
			streak = 0
		}

		if day.IsPresent && !day.IsAbsent {
			presentDays++
			if day.BreakDurationSeconds < minBreakSeconds {
				result.SkippedBreakDays++
			}
		}

		if wd := day.Date.Weekday(); (wd == time.Saturday || wd == time.Sunday) && day.WorkDurationSeconds > 0 {
			result.WeekendWorkDays++
		}

		year, week := day.Date.ISOWeek()
		weekTotals[[2]int{year, week}] += hours
	}

	result.OvertimePercentage = percentOf(result.OvertimeDaysCount, total)
	result.TotalOvertimeHours = round1(totalOvertimeHours)
	result.SkippedBreakPercentage = percentOf(result.SkippedBreakDays, presentDays)

	if len(weekTotals) > 0 {
		var weeklyOvertimeSum float64
		for _, weekHours := range weekTotals {
			if weekHours > standardWeekHours {
				weeklyOvertimeSum += weekHours - standardWeekHours
			}
		}
		result.AvgWeeklyOvertime = round1(weeklyOvertimeSum / float64(len(weekTotals)))
	}

	result.HasBurnoutSignals = result.OvertimePercentage > 40 ||
		result.MaxConsecutiveOvertime >= 5 ||
		result.SkippedBreakPercentage > 50 ||
		result.AvgWeeklyOvertime > overtimeThreshold

	switch {
	case result.MaxConsecutiveOvertime >= 7 ||
		result.AvgWeeklyOvertime > 1.5*overtimeThreshold ||
		result.SkippedBreakPercentage > 70:
		result.Severity = insights.SeverityCritical
	case result.MaxConsecutiveOvertime >= 5 ||
		result.AvgWeeklyOvertime > overtimeThreshold ||
		result.SkippedBreakPercentage > 50:
		result.Severity = insights.SeverityHigh
	case result.MaxConsecutiveOvertime >= 3 ||
		result.OvertimePercentage > 30 ||
		result.SkippedBreakPercentage > 30:
		result.Severity = insights.SeverityMedium
	default:
		result.Severity = insights.SeverityLow
	}

	return result
}
