package insights

import (
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/validator"
)

// ========================================
// ANALYSIS INPUT DTOs
// ========================================

// Options tunes the behavior analysis. Zero values fall back to defaults.
type Options struct {
	LookbackPeriod           int     `json:"lookback_period,omitempty"`            // informational, days
	LateThreshold            int     `json:"late_threshold,omitempty"`             // advisory
	OvertimeThreshold        float64 `json:"overtime_threshold,omitempty"`         // hours per week
	PunctualityDropThreshold float64 `json:"punctuality_drop_threshold,omitempty"` // percent
	MinDataPoints            int     `json:"min_data_points,omitempty"`
}

// DefaultOptions returns the standard analysis configuration.
func DefaultOptions() Options {
	return Options{
		LookbackPeriod:           30,
		LateThreshold:            3,
		OvertimeThreshold:        10,
		PunctualityDropThreshold: 40,
		MinDataPoints:            5,
	}
}

// ApplyDefaults fills unset (zero or negative) option fields in place.
func (o *Options) ApplyDefaults() {
	def := DefaultOptions()
	if o.LookbackPeriod <= 0 {
		o.LookbackPeriod = def.LookbackPeriod
	}
	if o.LateThreshold <= 0 {
		o.LateThreshold = def.LateThreshold
	}
	if o.OvertimeThreshold <= 0 {
		o.OvertimeThreshold = def.OvertimeThreshold
	}
	if o.PunctualityDropThreshold <= 0 {
		o.PunctualityDropThreshold = def.PunctualityDropThreshold
	}
	if o.MinDataPoints <= 0 {
		o.MinDataPoints = def.MinDataPoints
	}
}

// DailyRecordInput is the wire form of a DailyRecord.
type DailyRecordInput struct {
	Date                 string `json:"date"` // YYYY-MM-DD
	WorkDurationSeconds  int    `json:"work_duration_seconds"`
	BreakDurationSeconds int    `json:"break_duration_seconds"`
	IsPresent            bool   `json:"is_present"`
	IsAbsent             bool   `json:"is_absent"`
	IsHalfDay            bool   `json:"is_half_day"`
	IsWFH                bool   `json:"is_wfh"`
	IsLate               bool   `json:"is_late"`
	LateMinutes          *int   `json:"late_minutes,omitempty"`
}

// ToRecord converts the wire form to the entity. The date must already be
// validated; an unparseable date yields the zero time.
func (d DailyRecordInput) ToRecord() DailyRecord {
	date, _ := time.Parse("2006-01-02", d.Date)
	return DailyRecord{
		Date:                 date,
		WorkDurationSeconds:  d.WorkDurationSeconds,
		BreakDurationSeconds: d.BreakDurationSeconds,
		IsPresent:            d.IsPresent,
		IsAbsent:             d.IsAbsent,
		IsHalfDay:            d.IsHalfDay,
		IsWFH:                d.IsWFH,
		IsLate:               d.IsLate,
		LateMinutes:          d.LateMinutes,
	}
}

// AnalyzeRequest carries caller-supplied records for ad-hoc analysis.
type AnalyzeRequest struct {
	EmployeeName string             `json:"employee_name,omitempty"`
	Records      []DailyRecordInput `json:"records"`
	Options      Options            `json:"options"`
	Enhance      bool               `json:"enhance,omitempty"`
}

func (r *AnalyzeRequest) Validate() error {
	var errs validator.ValidationErrors

	for i, rec := range r.Records {
		if validator.IsEmpty(rec.Date) {
			errs = append(errs, validator.ValidationError{
				Field:   "records[" + validator.Itoa(i) + "].date",
				Message: "date is required",
			})
			continue
		}
		if _, valid := validator.IsValidDate(rec.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "records[" + validator.Itoa(i) + "].date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToRecords converts the wire records to entities.
func (r *AnalyzeRequest) ToRecords() []DailyRecord {
	records := make([]DailyRecord, 0, len(r.Records))
	for _, rec := range r.Records {
		records = append(records, rec.ToRecord())
	}
	return records
}

// BehaviorFilter selects the analysis window for a stored employee.
type BehaviorFilter struct {
	StartDate string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Enhance   bool   `json:"enhance,omitempty"`
}

func (f *BehaviorFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != "" {
		if _, valid := validator.IsValidDate(f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != "" {
		if _, valid := validator.IsValidDate(f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.StartDate != "" && f.EndDate != "" {
		start, okStart := validator.IsValidDate(f.StartDate)
		end, okEnd := validator.IsValidDate(f.EndDate)
		if okStart && okEnd && start.After(end) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be after start_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// ANALYSIS REPORT DTOs
// ========================================

// Summary describes the analyzed window at a glance.
type Summary struct {
	TotalDays      int     `json:"total_days"`
	PresentDays    int     `json:"present_days"`
	AbsentDays     int     `json:"absent_days"`
	HalfDays       int     `json:"half_days"`
	WFHDays        int     `json:"wfh_days"`
	LateDays       int     `json:"late_days"` // effectively late
	TotalWorkHours float64 `json:"total_work_hours"`
	AvgWorkHours   float64 `json:"avg_work_hours"`
	PeriodStart    string  `json:"period_start,omitempty"`
	PeriodEnd      string  `json:"period_end,omitempty"`
}

// LateStreak is a run of two or more consecutive effectively-late days.
type LateStreak struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Length    int    `json:"length"`
}

type LatePatterns struct {
	LateDaysCount       int            `json:"late_days_count"`
	LatePercentage      float64        `json:"late_percentage"`
	MaxConsecutiveLate  int            `json:"max_consecutive_late"`
	ConsecutivePatterns []LateStreak   `json:"consecutive_patterns"`
	AvgLateMinutes      float64        `json:"avg_late_minutes"`
	MaxLateMinutes      int            `json:"max_late_minutes"`
	IsIncreasing        bool           `json:"is_increasing"`
	MostLateDay         string         `json:"most_late_day,omitempty"`
	LateByDayOfWeek     map[string]int `json:"late_by_day_of_week"`
	HasPattern          bool           `json:"has_pattern"`
	Severity            Severity       `json:"severity"`
}

type BurnoutSignals struct {
	OvertimeDaysCount      int      `json:"overtime_days_count"`
	OvertimePercentage     float64  `json:"overtime_percentage"`
	TotalOvertimeHours     float64  `json:"total_overtime_hours"`
	MaxConsecutiveOvertime int      `json:"max_consecutive_overtime"`
	SkippedBreakDays       int      `json:"skipped_break_days"`
	SkippedBreakPercentage float64  `json:"skipped_break_percentage"`
	WeekendWorkDays        int      `json:"weekend_work_days"`
	AvgWeeklyOvertime      float64  `json:"avg_weekly_overtime"`
	HasBurnoutSignals      bool     `json:"has_burnout_signals"`
	Severity               Severity `json:"severity"`
}

type PunctualityTrend struct {
	HasData           bool     `json:"has_data"`
	CurrentScore      float64  `json:"current_score"`
	PreviousScore     float64  `json:"previous_score"`
	ScoreDifference   float64  `json:"score_difference"`
	PercentageChange  float64  `json:"percentage_change"`
	TrendDirection    string   `json:"trend_direction,omitempty"`
	IsSignificantDrop bool     `json:"is_significant_drop"`
	Severity          Severity `json:"severity"`
}

type IrregularPatterns struct {
	HasData                bool     `json:"has_data"`
	AvgHours               float64  `json:"avg_hours"`
	StdDeviation           float64  `json:"std_deviation"`
	CoefficientOfVariation float64  `json:"coefficient_of_variation"`
	OutlierDays            int      `json:"outlier_days"`
	IsIrregular            bool     `json:"is_irregular"`
	Severity               Severity `json:"severity"`
}

type BreakPatterns struct {
	HasData                     bool     `json:"has_data"`
	InsufficientBreakDays       int      `json:"insufficient_break_days"`
	InsufficientBreakPercentage float64  `json:"insufficient_break_percentage"`
	NoBreakDays                 int      `json:"no_break_days"`
	NoBreakPercentage           float64  `json:"no_break_percentage"`
	MaxConsecutiveNoBreaks      int      `json:"max_consecutive_no_breaks"`
	HasIssue                    bool     `json:"has_issue"`
	Severity                    Severity `json:"severity"`
}

type WeekdayPattern struct {
	TotalDays      int     `json:"total_days"`
	LateDays       int     `json:"late_days"`
	PresentDays    int     `json:"present_days"`
	TotalWorkHours float64 `json:"total_work_hours"`
	AvgWorkHours   float64 `json:"avg_work_hours"`
	LatePercentage float64 `json:"late_percentage"`
}

type Alert struct {
	Type     string   `json:"type"`
	Severity Severity `json:"severity"`
	Category string   `json:"category"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Icon     string   `json:"icon"`
	Metric   string   `json:"metric"`
}

type RiskScore struct {
	Score     int                `json:"score"`
	Level     Severity           `json:"level"`
	Breakdown map[string]float64 `json:"breakdown"`
}

type Insight struct {
	Type    string `json:"type"` // positive, pattern, warning
	Message string `json:"message"`
}

// AIInsight is the narrative produced by the external insight model.
type AIInsight struct {
	Insight    string  `json:"insight"`
	Model      string  `json:"model"`
	Confidence float64 `json:"confidence"`
	Timestamp  string  `json:"timestamp"`
}

// AnalysisReport is the full behavioral-risk report for one employee.
// It is a pure function of (records, options); the ai fields are only
// populated by the optional enhancement step.
type AnalysisReport struct {
	Summary           Summary                   `json:"summary"`
	LatePatterns      LatePatterns              `json:"late_patterns"`
	BurnoutSignals    BurnoutSignals            `json:"burnout_signals"`
	PunctualityTrend  PunctualityTrend          `json:"punctuality_trend"`
	IrregularPatterns IrregularPatterns         `json:"irregular_patterns"`
	BreakPatterns     BreakPatterns             `json:"break_patterns"`
	WeekdayPatterns   map[string]WeekdayPattern `json:"weekday_patterns"`
	Alerts            []Alert                   `json:"alerts"`
	RiskScore         RiskScore                 `json:"risk_score"`
	Insights          []Insight                 `json:"insights"`
	AIEnhanced        bool                      `json:"ai_enhanced"`
	AIInsight         *AIInsight                `json:"ai_insight,omitempty"`
}
