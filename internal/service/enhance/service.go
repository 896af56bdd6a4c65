package enhance

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
)

const (
	breakerFailureThreshold = 3
	breakerCooldown         = time.Minute
)

// InsightGenerator is the outbound call to the insight model; satisfied by
// aiclient.Client.
type InsightGenerator interface {
	GenerateInsight(ctx context.Context, report insights.AnalysisReport, employeeName string) (*insights.AIInsight, error)
}

// EnhanceServiceImpl wraps the insight model behind a bounded timeout and a
// circuit breaker. The core numeric report is never affected by an outcome
// here; callers fall back to the local-only report on any error.
type EnhanceServiceImpl struct {
	generator InsightGenerator
	timeout   time.Duration
	logger    *slog.Logger

	mu        sync.Mutex
	failures  int
	openUntil time.Time
}

func NewEnhanceService(generator InsightGenerator, timeout time.Duration, logger *slog.Logger) insights.EnhanceService {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &EnhanceServiceImpl{
		generator: generator,
		timeout:   timeout,
		logger:    logger,
	}
}

// Enhance implements insights.EnhanceService.
func (s *EnhanceServiceImpl) Enhance(ctx context.Context, report insights.AnalysisReport, employeeName string) (*insights.AIInsight, error) {
	if s.breakerOpen() {
		return nil, insights.ErrEnhancerUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.generator.GenerateInsight(ctx, report, employeeName)
	if err != nil {
		s.recordFailure()
		return nil, err
	}

	s.recordSuccess()
	return result, nil
}

func (s *EnhanceServiceImpl) breakerOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Now().Before(s.openUntil)
}

func (s *EnhanceServiceImpl) recordFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures++
	if s.failures >= breakerFailureThreshold {
		s.openUntil = time.Now().Add(breakerCooldown)
		s.failures = 0
		s.logger.Warn("insight model circuit opened", "cooldown", breakerCooldown)
	}
}

func (s *EnhanceServiceImpl) recordSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = 0
}
