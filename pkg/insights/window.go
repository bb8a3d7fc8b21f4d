package insights

import (
	"time"

	"github.com/yurifrl/extrato/pkg/models"
)

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthsBefore moves t back n calendar months. When the target month is
// shorter the day is clamped to its last day, so 31 May minus 3 months is
// 28/29 February.
func MonthsBefore(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()-time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := first.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}

// within reports whether t lies in [start, end].
func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// filterWindow returns the rows dated inside [start, end] in their original order.
func filterWindow(rows []models.Transaction, start, end time.Time) []models.Transaction {
	var out []models.Transaction
	for _, r := range rows {
		if within(r.Date, start, end) {
			out = append(out, r)
		}
	}
	return out
}

// WallClock keeps t's local date and time but moves it to UTC, the location
// every spreadsheet date is read in.
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
