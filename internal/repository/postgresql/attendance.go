package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/database"
)

// AttendanceRepository loads normalized daily attendance records for the
// behavior analysis engine.
type AttendanceRepository interface {
	// GetEmployeeName returns the employee's full name, or pgx.ErrNoRows
	// when the employee does not exist in the company.
	GetEmployeeName(ctx context.Context, employeeID, companyID string) (string, error)

	// GetDailyRecords returns one record per attendance day in the window,
	// newest first.
	GetDailyRecords(ctx context.Context, employeeID, companyID string, startDate, endDate time.Time) ([]insights.DailyRecord, error)
}

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func (r *attendanceRepositoryImpl) GetEmployeeName(ctx context.Context, employeeID, companyID string) (string, error) {
	query := `
		SELECT e.full_name
		FROM employees e
		WHERE e.id = $1
			AND e.company_id = $2
			AND e.deleted_at IS NULL
	`

	var name string
	if err := r.db.QueryRow(ctx, query, employeeID, companyID).Scan(&name); err != nil {
		return "", err
	}
	return name, nil
}

func (r *attendanceRepositoryImpl) GetDailyRecords(ctx context.Context, employeeID, companyID string, startDate, endDate time.Time) ([]insights.DailyRecord, error) {
	query := `
		SELECT
			a.date,
			COALESCE(a.work_hours_in_minutes, 0) AS work_minutes,
			COALESCE(a.break_in_minutes, 0) AS break_minutes,
			LOWER(a.status) AS status,
			COALESCE(a.actual_location_type, '') AS location_type,
			a.late_minutes
		FROM attendances a
		WHERE a.employee_id = $1
			AND a.company_id = $2
			AND a.date >= $3 AND a.date <= $4
		ORDER BY a.date DESC
	`

	rows, err := r.db.Query(ctx, query, employeeID, companyID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []insights.DailyRecord
	for rows.Next() {
		var (
			date         time.Time
			workMinutes  int
			breakMinutes int
			status       string
			locationType string
			lateMinutes  *int
		)

		if err := rows.Scan(&date, &workMinutes, &breakMinutes, &status, &locationType, &lateMinutes); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}

		records = append(records, mapRowToRecord(date, workMinutes, breakMinutes, status, locationType, lateMinutes))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return records, nil
}

// mapRowToRecord derives the independent day-state flags from the stored
// attendance status and location type.
func mapRowToRecord(date time.Time, workMinutes, breakMinutes int, status, locationType string, lateMinutes *int) insights.DailyRecord {
	isAbsent := status == "absent"
	isHalfDay := status == "half_day"
	isPresent := status != "" && !isAbsent && status != "on_leave" && status != "holiday"
	isWFH := strings.EqualFold(locationType, "WFH") || strings.EqualFold(locationType, "WFA")
	isLate := status == "late" || (lateMinutes != nil && *lateMinutes > 0)

	return insights.DailyRecord{
		Date:                 date,
		WorkDurationSeconds:  workMinutes * 60,
		BreakDurationSeconds: breakMinutes * 60,
		IsPresent:            isPresent,
		IsAbsent:             isAbsent,
		IsHalfDay:            isHalfDay,
		IsWFH:                isWFH,
		IsLate:               isLate,
		LateMinutes:          lateMinutes,
	}
}
