// Package stats derives aggregate views from record collections over
// time windows. All functions are pure: no I/O, no side effects, and
// empty inputs yield zero-valued aggregates rather than errors.
package stats

import "time"

// Window is a closed time interval used to filter records.
type Window struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls within the window, inclusive on
// both ends.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

// Midnight truncates t to the start of its day, keeping the location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date after
// truncating both to midnight in their respective locations.
func SameDay(a, b time.Time) bool {
	return Midnight(a).Equal(Midnight(b))
}

// Day returns the single-day window containing ref.
func Day(ref time.Time) Window {
	start := Midnight(ref)
	return Window{From: start, To: endOfDay(start)}
}

// Week returns the calendar week containing ref, starting on the most
// recent Sunday on or before ref and ending six days later at
// 23:59:59.999.
func Week(ref time.Time) Window {
	start := Midnight(ref).AddDate(0, 0, -int(ref.Weekday()))
	return Window{From: start, To: endOfDay(start.AddDate(0, 0, 6))}
}

// LastNDays returns the rolling window from midnight n days before ref
// up to ref itself.
func LastNDays(ref time.Time, n int) Window {
	return Window{From: Midnight(ref.AddDate(0, 0, -n)), To: ref}
}

func endOfDay(dayStart time.Time) time.Time {
	return time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(),
		23, 59, 59, int(999*time.Millisecond), dayStart.Location())
}
