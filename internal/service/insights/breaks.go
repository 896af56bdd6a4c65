package insights

import (
	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
)

// A break shorter than half an hour counts as insufficient.
const insufficientBreakHours = 0.5

// analyzeBreakPatterns expects records sorted descending by date and only
// considers days actually worked.
func analyzeBreakPatterns(records []insights.DailyRecord) insights.BreakPatterns {
	result := insights.BreakPatterns{Severity: insights.SeverityLow}

	var workDays []insights.DailyRecord
	for _, day := range records {
		if day.IsPresent && !day.IsAbsent {
			workDays = append(workDays, day)
		}
	}

	if len(workDays) < 3 {
		return result
	}
	result.HasData = true

	streak := 0
	for _, day := range workDays {
		if breakHours(day) < insufficientBreakHours {
			result.InsufficientBreakDays++
			streak++
			if streak > result.MaxConsecutiveNoBreaks {
				result.MaxConsecutiveNoBreaks = streak
			}
		} else {
			streak = 0
		}
		if day.BreakDurationSeconds == 0 {
			result.NoBreakDays++
		}
	}

	result.InsufficientBreakPercentage = percentOf(result.InsufficientBreakDays, len(workDays))
	result.NoBreakPercentage = percentOf(result.NoBreakDays, len(workDays))
	result.HasIssue = result.NoBreakPercentage > 30 || result.MaxConsecutiveNoBreaks >= 3

	switch {
	case result.MaxConsecutiveNoBreaks >= 5:
		result.Severity = insights.SeverityHigh
	case result.HasIssue:
		result.Severity = insights.SeverityMedium
	default:
		result.Severity = insights.SeverityLow
	}

	return result
}
