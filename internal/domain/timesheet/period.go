package timesheet

import (
	"time"

	"github.com/BruksfildServices01/billing-tracker/internal/domain"
)

// ===============================
// Period
// ===============================

// Period is an inclusive range of instants.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

const endOfDayNanos = 999 * int(time.Millisecond)

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, endOfDayNanos, t.Location())
}

// WeekContaining returns Monday 00:00:00.000 through Sunday 23:59:59.999 of
// the week holding t, in t's location.
func WeekContaining(t time.Time) Period {
	offset := 1 - int(t.Weekday())
	if t.Weekday() == time.Sunday {
		offset = -6
	}

	monday := startOfDay(t).AddDate(0, 0, offset)
	sunday := endOfDay(monday.AddDate(0, 0, 6))

	return Period{Start: monday, End: sunday}
}

func MonthOf(year int, month time.Month, loc *time.Location) Period {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	return Period{Start: first, End: endOfDay(last)}
}

// NewPeriod widens start and end to whole days.
func NewPeriod(start, end time.Time) (Period, error) {
	p := Period{Start: startOfDay(start), End: endOfDay(end)}
	if p.End.Before(p.Start) {
		return Period{}, domain.Invalid("period end must not be before start")
	}
	return p, nil
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// Key identifies the period independently of the location it was built in.
func (p Period) Key() string {
	return p.Start.UTC().Format(time.RFC3339Nano) + "_" + p.End.UTC().Format(time.RFC3339Nano)
}
