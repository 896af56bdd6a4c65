package insights

import (
	"encoding/json"
	"time"
)

// DailyRecord is one normalized day of attendance data for a single employee,
// as supplied by the upstream attendance system. Flags are independent and
// not mutually exclusive at the source.
type DailyRecord struct {
	Date                 time.Time
	WorkDurationSeconds  int
	BreakDurationSeconds int
	IsPresent            bool
	IsAbsent             bool
	IsHalfDay            bool
	IsWFH                bool
	IsLate               bool

	// LateMinutes is optional; nil means the upstream system supplied no
	// late-minutes figure for the day, which is different from 0.
	LateMinutes *int
}

// Severity is an ordered risk grading. Comparisons use the integer order,
// JSON uses the lowercase string form.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	default:
		return "low"
	}
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "critical":
		*s = SeverityCritical
	case "high":
		*s = SeverityHigh
	case "medium":
		*s = SeverityMedium
	default:
		*s = SeverityLow
	}
	return nil
}

// Trend directions reported by the punctuality analyzer.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// Insight type tags.
const (
	InsightPositive = "positive"
	InsightPattern  = "pattern"
	InsightWarning  = "warning"
)
