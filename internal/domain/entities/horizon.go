package entities

import "time"

// Horizon is the contiguous, inclusive daily planning window every plan
// is computed over.
type Horizon struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of days spanned by the horizon, inclusive of
// both endpoints.
func (h Horizon) Days() int {
	return int(h.End.Sub(h.Start).Hours()/24) + 1
}

// Index returns the zero-based day offset of d from Start. Callers
// should check Contains first; Index is undefined for out-of-range
// dates.
func (h Horizon) Index(d time.Time) int {
	return int(d.Sub(h.Start).Hours() / 24)
}

// DateAt returns the calendar date for a given zero-based day offset.
func (h Horizon) DateAt(index int) time.Time {
	return h.Start.AddDate(0, 0, index)
}

// Contains reports whether d falls within [Start, End] inclusive.
func (h Horizon) Contains(d time.Time) bool {
	return !d.Before(h.Start) && !d.After(h.End)
}

// Truncate normalizes a time.Time to UTC midnight, the engine's
// calendar-day granularity: dates are calendar days, with no
// time-of-day component.
func Truncate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
