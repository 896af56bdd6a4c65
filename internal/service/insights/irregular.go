package insights

import (
	"math"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
)

// analyzeIrregularHours judges work-hour regularity by coefficient of
// variation over days actually worked.
func analyzeIrregularHours(records []insights.DailyRecord) insights.IrregularPatterns {
	result := insights.IrregularPatterns{Severity: insights.SeverityLow}

	var hours []float64
	for _, day := range records {
		if day.IsPresent && !day.IsAbsent {
			hours = append(hours, workHours(day))
		}
	}

	if len(hours) < 3 {
		return result
	}
	result.HasData = true

	var sum float64
	for _, h := range hours {
		sum += h
	}
	mean := sum / float64(len(hours))

	var variance float64
	for _, h := range hours {
		variance += (h - mean) * (h - mean)
	}
	variance /= float64(len(hours))
	stddev := math.Sqrt(variance)

	var cv float64
	if mean > 0 {
		cv = stddev / mean * 100
	}

	if stddev > 0 {
		for _, h := range hours {
			if math.Abs(h-mean) > 2*stddev {
				result.OutlierDays++
			}
		}
	}

	result.AvgHours = round1(mean)
	result.StdDeviation = round1(stddev)
	result.CoefficientOfVariation = round1(cv)
	result.IsIrregular = cv > 25 || float64(result.OutlierDays) > 0.2*float64(len(hours))

	switch {
	case cv > 40:
		result.Severity = insights.SeverityHigh
	case cv > 25:
		result.Severity = insights.SeverityMedium
	default:
		result.Severity = insights.SeverityLow
	}

	return result
}
