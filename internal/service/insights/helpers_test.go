package insights

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return date
}

// workedDay builds a present day with the given work hours and break minutes.
func workedDay(t *testing.T, date string, hours float64, breakMinutes int) insights.DailyRecord {
	t.Helper()
	return insights.DailyRecord{
		Date:                 mustDate(t, date),
		WorkDurationSeconds:  int(hours * 3600),
		BreakDurationSeconds: breakMinutes * 60,
		IsPresent:            true,
	}
}

// lateDay builds a present late day with recorded late minutes.
func lateDay(t *testing.T, date string, hours float64, lateMinutes int) insights.DailyRecord {
	t.Helper()
	day := workedDay(t, date, hours, 60)
	day.IsLate = true
	day.LateMinutes = &lateMinutes
	return day
}

// datesDescending generates count consecutive dates ending at newest,
// newest first.
func datesDescending(t *testing.T, newest string, count int) []string {
	t.Helper()
	end := mustDate(t, newest)
	dates := make([]string, 0, count)
	for i := 0; i < count; i++ {
		dates = append(dates, end.AddDate(0, 0, -i).Format("2006-01-02"))
	}
	return dates
}
