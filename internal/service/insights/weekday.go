package insights

import (
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
)

// aggregateWeekdayPatterns produces per-weekday statistics; all seven
// weekday names are always present in the result.
func aggregateWeekdayPatterns(records []insights.DailyRecord) map[string]insights.WeekdayPattern {
	acc := make(map[string]insights.WeekdayPattern, 7)

	for _, day := range records {
		name := day.Date.Weekday().String()
		p := acc[name]
		p.TotalDays++
		if isEffectivelyLate(day) {
			p.LateDays++
		}
		if day.IsPresent && !day.IsAbsent {
			p.PresentDays++
		}
		p.TotalWorkHours += workHours(day)
		acc[name] = p
	}

	patterns := make(map[string]insights.WeekdayPattern, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := wd.String()
		p := acc[name]
		if p.TotalDays > 0 {
			p.AvgWorkHours = round1(p.TotalWorkHours / float64(p.TotalDays))
			p.LatePercentage = percentOf(p.LateDays, p.TotalDays)
		}
		p.TotalWorkHours = round1(p.TotalWorkHours)
		patterns[name] = p
	}

	return patterns
}
