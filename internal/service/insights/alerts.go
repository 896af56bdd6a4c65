package insights

import (
	"fmt"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
)

// generateAlerts converts detector outputs into severity-tagged alerts.
// Check order is fixed (punctuality patterns, punctuality trend, burnout,
// breaks, irregularity) so output ordering is deterministic.
func generateAlerts(report *insights.AnalysisReport, opts insights.Options) []insights.Alert {
	alerts := []insights.Alert{}

	late := report.LatePatterns
	trend := report.PunctualityTrend
	burnout := report.BurnoutSignals
	breaks := report.BreakPatterns
	irregular := report.IrregularPatterns

	// Punctuality pattern alerts
	if late.MaxConsecutiveLate >= 3 {
		alerts = append(alerts, insights.Alert{
			Type:     "consecutive_late",
			Severity: insights.SeverityHigh,
			Category: "punctuality",
			Title:    "Consecutive late arrivals",
			Message:  fmt.Sprintf("Arrived late %d days in a row.", late.MaxConsecutiveLate),
			Icon:     "⏰",
			Metric:   fmt.Sprintf("%d consecutive late days", late.MaxConsecutiveLate),
		})
	}
	if late.LatePercentage > 25 {
		alerts = append(alerts, insights.Alert{
			Type:     "frequent_lateness",
			Severity: insights.SeverityHigh,
			Category: "punctuality",
			Title:    "Frequent late arrivals",
			Message:  fmt.Sprintf("Late on %.1f%% of days in the analyzed period.", late.LatePercentage),
			Icon:     "⏰",
			Metric:   fmt.Sprintf("%.1f%% late days", late.LatePercentage),
		})
	} else if late.LatePercentage > 15 {
		alerts = append(alerts, insights.Alert{
			Type:     "frequent_lateness",
			Severity: insights.SeverityMedium,
			Category: "punctuality",
			Title:    "Elevated late arrivals",
			Message:  fmt.Sprintf("Late on %.1f%% of days in the analyzed period.", late.LatePercentage),
			Icon:     "⏰",
			Metric:   fmt.Sprintf("%.1f%% late days", late.LatePercentage),
		})
	}
	if late.IsIncreasing {
		alerts = append(alerts, insights.Alert{
			Type:     "lateness_increasing",
			Severity: insights.SeverityMedium,
			Category: "punctuality",
			Title:    "Late arrivals increasing",
			Message:  "More late arrivals in the last 7 days than in the 7 days before.",
			Icon:     "📈",
			Metric:   "rising weekly late count",
		})
	}

	// Punctuality trend alert
	if trend.IsSignificantDrop {
		alerts = append(alerts, insights.Alert{
			Type:     "punctuality_drop",
			Severity: insights.SeverityHigh,
			Category: "punctuality",
			Title:    "Significant punctuality drop",
			Message:  fmt.Sprintf("On-time rate fell from %.1f%% to %.1f%%.", trend.PreviousScore, trend.CurrentScore),
			Icon:     "📉",
			Metric:   fmt.Sprintf("%.1f%% change", trend.PercentageChange),
		})
	} else if trend.HasData && trend.TrendDirection == insights.TrendDeclining {
		alerts = append(alerts, insights.Alert{
			Type:     "punctuality_declining",
			Severity: insights.SeverityMedium,
			Category: "punctuality",
			Title:    "Punctuality declining",
			Message:  fmt.Sprintf("On-time rate fell from %.1f%% to %.1f%%.", trend.PreviousScore, trend.CurrentScore),
			Icon:     "📉",
			Metric:   fmt.Sprintf("%.1f%% change", trend.PercentageChange),
		})
	}

	// Burnout alerts
	if burnout.OvertimePercentage > 40 {
		alerts = append(alerts, insights.Alert{
			Type:     "excessive_overtime",
			Severity: insights.SeverityHigh,
			Category: "burnout",
			Title:    "Excessive overtime",
			Message:  fmt.Sprintf("Overtime on %.1f%% of days.", burnout.OvertimePercentage),
			Icon:     "🔥",
			Metric:   fmt.Sprintf("%.1f%% overtime days", burnout.OvertimePercentage),
		})
	}
	if burnout.MaxConsecutiveOvertime >= 5 {
		alerts = append(alerts, insights.Alert{
			Type:     "overtime_streak",
			Severity: insights.SeverityHigh,
			Category: "burnout",
			Title:    "Sustained overtime streak",
			Message:  fmt.Sprintf("Worked overtime %d days in a row.", burnout.MaxConsecutiveOvertime),
			Icon:     "🔥",
			Metric:   fmt.Sprintf("%d consecutive overtime days", burnout.MaxConsecutiveOvertime),
		})
	}
	if burnout.AvgWeeklyOvertime > opts.OvertimeThreshold {
		alerts = append(alerts, insights.Alert{
			Type:     "weekly_overtime",
			Severity: insights.SeverityHigh,
			Category: "burnout",
			Title:    "Weekly overtime above threshold",
			Message:  fmt.Sprintf("Averaging %.1f overtime hours per week (threshold %.1f).", burnout.AvgWeeklyOvertime, opts.OvertimeThreshold),
			Icon:     "🔥",
			Metric:   fmt.Sprintf("%.1f h/week overtime", burnout.AvgWeeklyOvertime),
		})
	}
	if burnout.SkippedBreakPercentage > 50 {
		alerts = append(alerts, insights.Alert{
			Type:     "skipped_breaks",
			Severity: insights.SeverityMedium,
			Category: "burnout",
			Title:    "Breaks frequently skipped",
			Message:  fmt.Sprintf("Breaks skipped on %.1f%% of working days.", burnout.SkippedBreakPercentage),
			Icon:     "☕",
			Metric:   fmt.Sprintf("%.1f%% skipped breaks", burnout.SkippedBreakPercentage),
		})
	}

	// Break pattern alert
	if breaks.HasData && breaks.HasIssue {
		alerts = append(alerts, insights.Alert{
			Type:     "insufficient_breaks",
			Severity: breaks.Severity,
			Category: "breaks",
			Title:    "Insufficient breaks",
			Message:  fmt.Sprintf("No real break on %.1f%% of working days.", breaks.NoBreakPercentage),
			Icon:     "☕",
			Metric:   fmt.Sprintf("%d consecutive days under 30 minutes", breaks.MaxConsecutiveNoBreaks),
		})
	}

	// Irregularity alert
	if irregular.HasData && irregular.IsIrregular {
		alerts = append(alerts, insights.Alert{
			Type:     "irregular_hours",
			Severity: irregular.Severity,
			Category: "irregularity",
			Title:    "Irregular working hours",
			Message:  fmt.Sprintf("Daily hours vary widely (coefficient of variation %.1f%%).", irregular.CoefficientOfVariation),
			Icon:     "📊",
			Metric:   fmt.Sprintf("CV %.1f%%", irregular.CoefficientOfVariation),
		})
	}

	return alerts
}
