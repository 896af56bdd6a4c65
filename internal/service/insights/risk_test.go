package insights

import (
	"testing"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRiskCleanReportIsZero(t *testing.T) {
	result := scoreRisk(&insights.AnalysisReport{})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, insights.SeverityLow, result.Level)
	require.Len(t, result.Breakdown, 4)
	assert.Equal(t, 0.0, result.Breakdown["late"])
	assert.Equal(t, 0.0, result.Breakdown["burnout"])
	assert.Equal(t, 0.0, result.Breakdown["punctuality"])
	assert.Equal(t, 0.0, result.Breakdown["breaks"])
}

func TestScoreRiskSaturatedSignalsCapAtHundred(t *testing.T) {
	report := &insights.AnalysisReport{
		LatePatterns: insights.LatePatterns{
			LatePercentage:     100,
			MaxConsecutiveLate: 10,
		},
		BurnoutSignals: insights.BurnoutSignals{
			OvertimePercentage:     100,
			MaxConsecutiveOvertime: 10,
			SkippedBreakPercentage: 100,
		},
		PunctualityTrend: insights.PunctualityTrend{
			HasData:          true,
			PercentageChange: -100,
		},
		BreakPatterns: insights.BreakPatterns{
			HasData:                true,
			NoBreakPercentage:      100,
			MaxConsecutiveNoBreaks: 10,
		},
	}

	result := scoreRisk(report)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, insights.SeverityCritical, result.Level)
	assert.Equal(t, 100.0, result.Breakdown["late"])
	assert.Equal(t, 100.0, result.Breakdown["burnout"])
	assert.Equal(t, 100.0, result.Breakdown["punctuality"])
	assert.Equal(t, 100.0, result.Breakdown["breaks"])
}

func TestScoreRiskIgnoresDetectorsWithoutData(t *testing.T) {
	report := &insights.AnalysisReport{
		PunctualityTrend: insights.PunctualityTrend{
			HasData:          false,
			PercentageChange: -100,
		},
		BreakPatterns: insights.BreakPatterns{
			HasData:                false,
			NoBreakPercentage:      100,
			MaxConsecutiveNoBreaks: 10,
		},
	}

	result := scoreRisk(report)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0.0, result.Breakdown["punctuality"])
	assert.Equal(t, 0.0, result.Breakdown["breaks"])
}

func TestScoreRiskLevels(t *testing.T) {
	tests := []struct {
		name             string
		percentageChange float64
		expectedLevel    insights.Severity
	}{
		{"low below twenty", -70, insights.SeverityLow},
		{"medium at twenty", -80, insights.SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := &insights.AnalysisReport{
				PunctualityTrend: insights.PunctualityTrend{
					HasData:          true,
					PercentageChange: tt.percentageChange,
				},
			}
			result := scoreRisk(report)
			assert.Equal(t, tt.expectedLevel, result.Level)
		})
	}
}

func TestCapScore(t *testing.T) {
	assert.Equal(t, 0.0, capScore(-5))
	assert.Equal(t, 42.0, capScore(42))
	assert.Equal(t, 100.0, capScore(150))
}
