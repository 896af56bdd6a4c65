package insights

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
	"github.com/cmlabs-hris/attendance-insights-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type InsightsServiceImpl struct {
	attendanceRepo postgresql.AttendanceRepository
	enhancer       insights.EnhanceService
	logger         *slog.Logger
}

// NewInsightsService wires the analytics engine. enhancer may be nil when
// AI enhancement is disabled.
func NewInsightsService(
	attendanceRepo postgresql.AttendanceRepository,
	enhancer insights.EnhanceService,
	logger *slog.Logger,
) *InsightsServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &InsightsServiceImpl{
		attendanceRepo: attendanceRepo,
		enhancer:       enhancer,
		logger:         logger,
	}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func (s *InsightsServiceImpl) getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// Analyze runs the full single-pass analysis over caller-owned records.
// It is a pure function of (records, opts): the input slice is never
// mutated and identical input yields identical output.
func (s *InsightsServiceImpl) Analyze(records []insights.DailyRecord, opts insights.Options) insights.AnalysisReport {
	opts.ApplyDefaults()

	if len(records) < opts.MinDataPoints {
		return emptyReport(len(records))
	}

	sorted := normalizeRecords(records, s.logger)

	report := insights.AnalysisReport{
		Summary:           summarize(sorted),
		LatePatterns:      analyzeLatePatterns(sorted),
		BurnoutSignals:    analyzeBurnoutSignals(sorted, opts.OvertimeThreshold),
		PunctualityTrend:  analyzePunctualityTrend(sorted, opts.PunctualityDropThreshold),
		IrregularPatterns: analyzeIrregularHours(sorted),
		BreakPatterns:     analyzeBreakPatterns(sorted),
		WeekdayPatterns:   aggregateWeekdayPatterns(sorted),
	}

	report.Alerts = generateAlerts(&report, opts)
	report.RiskScore = scoreRisk(&report)
	report.Insights = generateInsights(&report)

	return report
}

// AnalyzeBehavior implements insights.InsightsService.
func (s *InsightsServiceImpl) AnalyzeBehavior(ctx context.Context, req insights.AnalyzeRequest) (insights.AnalysisReport, error) {
	if err := req.Validate(); err != nil {
		return insights.AnalysisReport{}, err
	}

	report := s.Analyze(req.ToRecords(), req.Options)

	if req.Enhance {
		if s.enhancer == nil {
			return insights.AnalysisReport{}, insights.ErrEnhancementDisabled
		}
		s.enhance(ctx, &report, req.EmployeeName)
	}

	return report, nil
}

// AnalyzeEmployee implements insights.InsightsService.
func (s *InsightsServiceImpl) AnalyzeEmployee(ctx context.Context, employeeID string, filter insights.BehaviorFilter) (insights.AnalysisReport, error) {
	if err := filter.Validate(); err != nil {
		return insights.AnalysisReport{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return insights.AnalysisReport{}, err
	}

	employeeName, err := s.attendanceRepo.GetEmployeeName(ctx, employeeID, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return insights.AnalysisReport{}, insights.ErrEmployeeNotFound
		}
		return insights.AnalysisReport{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	opts := insights.DefaultOptions()
	startDate, endDate := resolveWindow(filter, opts.LookbackPeriod)

	records, err := s.attendanceRepo.GetDailyRecords(ctx, employeeID, companyID, startDate, endDate)
	if err != nil {
		return insights.AnalysisReport{}, fmt.Errorf("failed to get attendance records: %w", err)
	}
	if len(records) == 0 {
		return insights.AnalysisReport{}, insights.ErrNoAttendanceData
	}

	report := s.Analyze(records, opts)

	if filter.Enhance {
		if s.enhancer == nil {
			return insights.AnalysisReport{}, insights.ErrEnhancementDisabled
		}
		s.enhance(ctx, &report, employeeName)
	}

	return report, nil
}

// enhance forwards the finished report to the insight model. Failure never
// alters the numeric report; the caller falls back to the local-only report.
func (s *InsightsServiceImpl) enhance(ctx context.Context, report *insights.AnalysisReport, employeeName string) {
	if s.enhancer == nil {
		return
	}

	ai, err := s.enhancer.Enhance(ctx, *report, employeeName)
	if err != nil {
		s.logger.Warn("ai enhancement failed, returning local report", "error", err)
		report.AIEnhanced = false
		return
	}

	report.AIEnhanced = true
	report.AIInsight = ai
}

// resolveWindow applies the lookback default when the filter leaves the
// window open.
func resolveWindow(filter insights.BehaviorFilter, lookbackDays int) (time.Time, time.Time) {
	end := time.Now().UTC().Truncate(24 * time.Hour)
	if filter.EndDate != "" {
		if parsed, err := time.Parse("2006-01-02", filter.EndDate); err == nil {
			end = parsed
		}
	}

	start := end.AddDate(0, 0, -lookbackDays)
	if filter.StartDate != "" {
		if parsed, err := time.Parse("2006-01-02", filter.StartDate); err == nil {
			start = parsed
		}
	}

	return start, end
}

// summarize expects records sorted descending by date.
func summarize(records []insights.DailyRecord) insights.Summary {
	summary := insights.Summary{TotalDays: len(records)}
	if len(records) == 0 {
		return summary
	}

	var totalHours float64
	for _, day := range records {
		if day.IsPresent {
			summary.PresentDays++
		}
		if day.IsAbsent {
			summary.AbsentDays++
		}
		if day.IsHalfDay {
			summary.HalfDays++
		}
		if day.IsWFH {
			summary.WFHDays++
		}
		if isEffectivelyLate(day) {
			summary.LateDays++
		}
		totalHours += workHours(day)
	}

	summary.TotalWorkHours = round1(totalHours)
	summary.AvgWorkHours = round1(totalHours / float64(len(records)))
	summary.PeriodStart = records[len(records)-1].Date.Format("2006-01-02")
	summary.PeriodEnd = records[0].Date.Format("2006-01-02")

	return summary
}

// emptyReport is the sentinel returned for empty or under-sized input:
// all counts zero, detectors without data, a zero risk score.
func emptyReport(totalDays int) insights.AnalysisReport {
	return insights.AnalysisReport{
		Summary: insights.Summary{TotalDays: totalDays},
		LatePatterns: insights.LatePatterns{
			ConsecutivePatterns: []insights.LateStreak{},
			LateByDayOfWeek:     map[string]int{},
		},
		WeekdayPatterns: aggregateWeekdayPatterns(nil),
		Alerts:          []insights.Alert{},
		RiskScore: insights.RiskScore{
			Score:     0,
			Level:     insights.SeverityLow,
			Breakdown: map[string]float64{},
		},
		Insights: []insights.Insight{},
	}
}
