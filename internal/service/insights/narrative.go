package insights

import (
	"fmt"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
)

// generateInsights renders plain-language lines from already-computed
// detector fields. No new computation happens here.
func generateInsights(report *insights.AnalysisReport) []insights.Insight {
	out := []insights.Insight{}

	late := report.LatePatterns
	trend := report.PunctualityTrend
	burnout := report.BurnoutSignals
	breaks := report.BreakPatterns
	irregular := report.IrregularPatterns

	if report.Summary.TotalDays > 0 && late.LatePercentage < 10 {
		out = append(out, insights.Insight{
			Type:    insights.InsightPositive,
			Message: fmt.Sprintf("Excellent punctuality: late on only %.1f%% of days.", late.LatePercentage),
		})
	}
	if late.HasPattern && late.MostLateDay != "" {
		out = append(out, insights.Insight{
			Type:    insights.InsightPattern,
			Message: fmt.Sprintf("Late arrivals cluster on %s (%d of %d late days).", late.MostLateDay, late.LateByDayOfWeek[late.MostLateDay], late.LateDaysCount),
		})
	}
	if late.IsIncreasing {
		out = append(out, insights.Insight{
			Type:    insights.InsightWarning,
			Message: "Late arrivals are trending upward over the last two weeks.",
		})
	}

	if trend.HasData {
		switch trend.TrendDirection {
		case insights.TrendImproving:
			out = append(out, insights.Insight{
				Type:    insights.InsightPositive,
				Message: fmt.Sprintf("Punctuality improving: on-time rate up from %.1f%% to %.1f%%.", trend.PreviousScore, trend.CurrentScore),
			})
		case insights.TrendDeclining:
			out = append(out, insights.Insight{
				Type:    insights.InsightWarning,
				Message: fmt.Sprintf("Punctuality declining: on-time rate down from %.1f%% to %.1f%%.", trend.PreviousScore, trend.CurrentScore),
			})
		}
	}

	if burnout.HasBurnoutSignals {
		out = append(out, insights.Insight{
			Type:    insights.InsightWarning,
			Message: fmt.Sprintf("Burnout indicators detected: %d overtime days and breaks skipped on %.1f%% of working days.", burnout.OvertimeDaysCount, burnout.SkippedBreakPercentage),
		})
	}
	if burnout.WeekendWorkDays > 0 {
		out = append(out, insights.Insight{
			Type:    insights.InsightPattern,
			Message: fmt.Sprintf("Worked on %d weekend day(s) during the period.", burnout.WeekendWorkDays),
		})
	}

	if irregular.HasData && irregular.IsIrregular {
		out = append(out, insights.Insight{
			Type:    insights.InsightPattern,
			Message: fmt.Sprintf("Daily work hours are irregular, averaging %.1fh with a %.1f%% variation.", irregular.AvgHours, irregular.CoefficientOfVariation),
		})
	}

	if breaks.HasData && breaks.HasIssue {
		out = append(out, insights.Insight{
			Type:    insights.InsightWarning,
			Message: fmt.Sprintf("Breaks are routinely skipped: none taken on %.1f%% of working days.", breaks.NoBreakPercentage),
		})
	}

	if report.RiskScore.Level == insights.SeverityLow && len(report.Alerts) == 0 {
		out = append(out, insights.Insight{
			Type:    insights.InsightPositive,
			Message: "No significant behavioral risk detected in this period.",
		})
	}

	return out
}
