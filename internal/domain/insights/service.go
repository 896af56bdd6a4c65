package insights

import (
	"context"
)

// InsightsService defines business logic for behavioral attendance analysis
type InsightsService interface {
	// AnalyzeBehavior runs the full analysis over caller-supplied records
	AnalyzeBehavior(ctx context.Context, req AnalyzeRequest) (AnalysisReport, error)

	// AnalyzeEmployee loads attendance records for an employee of the
	// authenticated company and runs the full analysis
	AnalyzeEmployee(ctx context.Context, employeeID string, filter BehaviorFilter) (AnalysisReport, error)
}

// EnhanceService forwards a finished report to the external insight model.
// Failure or unavailability must never alter the numeric report; callers
// fall back to the local-only report.
type EnhanceService interface {
	Enhance(ctx context.Context, report AnalysisReport, employeeName string) (*AIInsight, error)
}
