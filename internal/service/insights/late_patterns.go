package insights

import (
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
)

// analyzeLatePatterns expects records sorted descending by date.
func analyzeLatePatterns(records []insights.DailyRecord) insights.LatePatterns {
	result := insights.LatePatterns{
		ConsecutivePatterns: []insights.LateStreak{},
		LateByDayOfWeek:     map[string]int{},
	}

	total := len(records)
	if total == 0 {
		return result
	}

	var (
		lateCount        int
		streak           int
		streakStart      int
		lateMinutesSum   int
		lateMinutesCount int
	)

	closeStreak := func(endIdx int) {
		if streak >= 2 {
			// records are newest-first, so the run starts at the higher index
			result.ConsecutivePatterns = append(result.ConsecutivePatterns, insights.LateStreak{
				StartDate: records[endIdx].Date.Format("2006-01-02"),
				EndDate:   records[streakStart].Date.Format("2006-01-02"),
				Length:    streak,
			})
		}
		streak = 0
	}

	for i, day := range records {
		if !isEffectivelyLate(day) {
			closeStreak(i - 1)
			continue
		}

		lateCount++
		result.LateByDayOfWeek[day.Date.Weekday().String()]++

		if day.LateMinutes != nil && *day.LateMinutes > 0 {
			lateMinutesSum += *day.LateMinutes
			lateMinutesCount++
			if *day.LateMinutes > result.MaxLateMinutes {
				result.MaxLateMinutes = *day.LateMinutes
			}
		}

		if streak == 0 {
			streakStart = i
		}
		streak++
		if streak > result.MaxConsecutiveLate {
			result.MaxConsecutiveLate = streak
		}
	}
	closeStreak(total - 1)

	result.LateDaysCount = lateCount
	result.LatePercentage = percentOf(lateCount, total)

	// Only late days with actual late-minutes data feed the averages;
	// "no late days" and "no late-minutes data" both leave these at 0.
	if lateMinutesCount > 0 {
		result.AvgLateMinutes = round1(float64(lateMinutesSum) / float64(lateMinutesCount))
	} else {
		result.MaxLateMinutes = 0
	}

	recent := countEffectiveLate(records[:min(7, total)])
	prior := 0
	if total > 7 {
		prior = countEffectiveLate(records[7:min(14, total)])
	}
	result.IsIncreasing = recent > prior && recent >= 2

	best := 0
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if c := result.LateByDayOfWeek[wd.String()]; c > best {
			best = c
			result.MostLateDay = wd.String()
		}
	}

	result.HasPattern = result.MaxConsecutiveLate >= 2 || result.LatePercentage > 20

	switch {
	case result.LatePercentage > 40 || result.MaxConsecutiveLate >= 5:
		result.Severity = insights.SeverityCritical
	case result.LatePercentage > 25 || result.MaxConsecutiveLate >= 3 || result.IsIncreasing:
		result.Severity = insights.SeverityHigh
	case result.LatePercentage > 15 || result.MaxConsecutiveLate >= 2:
		result.Severity = insights.SeverityMedium
	default:
		result.Severity = insights.SeverityLow
	}

	return result
}

func countEffectiveLate(records []insights.DailyRecord) int {
	count := 0
	for _, day := range records {
		if isEffectivelyLate(day) {
			count++
		}
	}
	return count
}
