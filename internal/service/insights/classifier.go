package insights

import (
	"log/slog"
	"math"
	"sort"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
)

// maxDaySeconds caps durations at 24 hours; upstream devices occasionally
// report garbage and one bad day must not fail the whole analysis.
const maxDaySeconds = 86400

// isEffectivelyLate resolves the day-state precedence rule: absent beats
// half-day beats work-from-home beats late. Every detector calls this
// instead of reading IsLate directly.
func isEffectivelyLate(day insights.DailyRecord) bool {
	if !day.IsLate {
		return false
	}
	if day.IsAbsent || day.IsHalfDay {
		return false
	}
	if day.IsWFH && day.IsPresent {
		return false
	}
	return true
}

// normalizeRecords returns a copy sorted descending by date, with negative
// durations zeroed and implausible ones capped. The caller's slice is never
// mutated.
func normalizeRecords(records []insights.DailyRecord, logger *slog.Logger) []insights.DailyRecord {
	sorted := make([]insights.DailyRecord, len(records))
	copy(sorted, records)

	for i := range sorted {
		if sorted[i].WorkDurationSeconds < 0 {
			sorted[i].WorkDurationSeconds = 0
		}
		if sorted[i].BreakDurationSeconds < 0 {
			sorted[i].BreakDurationSeconds = 0
		}
		if sorted[i].WorkDurationSeconds > maxDaySeconds {
			logger.Debug("capping implausible work duration",
				"date", sorted[i].Date.Format("2006-01-02"),
				"seconds", sorted[i].WorkDurationSeconds,
			)
			sorted[i].WorkDurationSeconds = maxDaySeconds
		}
		if sorted[i].BreakDurationSeconds > maxDaySeconds {
			sorted[i].BreakDurationSeconds = maxDaySeconds
		}
		if sorted[i].LateMinutes != nil && *sorted[i].LateMinutes < 0 {
			sorted[i].LateMinutes = nil
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	return sorted
}

func workHours(day insights.DailyRecord) float64 {
	return float64(day.WorkDurationSeconds) / 3600
}

func breakHours(day insights.DailyRecord) float64 {
	return float64(day.BreakDurationSeconds) / 3600
}

// round1 rounds to one decimal place; all reported percentages and hours
// use this.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func percentOf(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(part) / float64(total) * 100)
}
