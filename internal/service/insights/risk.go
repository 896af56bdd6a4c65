package insights

import (
	"math"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
)

// Composite weights; burnout dominates deliberately.
const (
	weightLate        = 0.25
	weightBurnout     = 0.35
	weightPunctuality = 0.25
	weightBreaks      = 0.15
)

// scoreRisk folds the four signal families into a 0-100 composite.
func scoreRisk(report *insights.AnalysisReport) insights.RiskScore {
	late := report.LatePatterns
	burnout := report.BurnoutSignals
	trend := report.PunctualityTrend
	breaks := report.BreakPatterns

	lateScore := capScore(late.LatePercentage*2 + float64(late.MaxConsecutiveLate)*10)
	burnoutScore := capScore(burnout.OvertimePercentage/2 +
		float64(burnout.MaxConsecutiveOvertime)*8 +
		burnout.SkippedBreakPercentage/2)

	var punctualityScore float64
	if trend.HasData {
		punctualityScore = capScore(math.Abs(trend.PercentageChange))
	}

	var breakScore float64
	if breaks.HasData {
		breakScore = capScore(breaks.NoBreakPercentage + float64(breaks.MaxConsecutiveNoBreaks)*10)
	}

	composite := lateScore*weightLate +
		burnoutScore*weightBurnout +
		punctualityScore*weightPunctuality +
		breakScore*weightBreaks

	score := int(math.Round(composite))

	var level insights.Severity
	switch {
	case score >= 60:
		level = insights.SeverityCritical
	case score >= 40:
		level = insights.SeverityHigh
	case score >= 20:
		level = insights.SeverityMedium
	default:
		level = insights.SeverityLow
	}

	return insights.RiskScore{
		Score: score,
		Level: level,
		Breakdown: map[string]float64{
			"late":        round1(lateScore),
			"burnout":     round1(burnoutScore),
			"punctuality": round1(punctualityScore),
			"breaks":      round1(breakScore),
		},
	}
}

func capScore(v float64) float64 {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}
