package scheduling

import (
	"errors"
	"time"
)

// ErrInvalidDuration is returned when an appointment interval has zero or
// negative length.
var ErrInvalidDuration = errors.New("appointment end must be after start")

// Interval is a half-open time interval [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// slotWindow is the occupancy window evaluated for each grid slot. Slots are
// marked occupied when a 60-minute booking starting at the slot would collide,
// independent of the grid granularity.
const slotWindow = time.Hour

// ValidateInterval rejects zero and negative durations before they reach the
// conflict detector.
func ValidateInterval(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidDuration
	}
	return nil
}

// Overlaps reports whether the candidate interval intersects any existing one.
// Intervals are half-open, so a candidate that exactly abuts an existing
// appointment does not conflict; back-to-back scheduling is legal.
func Overlaps(candidate Interval, existing []Interval) bool {
	for _, e := range existing {
		if candidate.Start.Before(e.End) && e.Start.Before(candidate.End) {
			return true
		}
	}
	return false
}

// FreeSlots enumerates every granularity-aligned slot between startHour and
// endHour on the given day and returns those whose occupancy window is free of
// the existing appointments. Slots are independent of each other and only
// valid at the instant of computation; a concurrent create can still collide.
func FreeSlots(day time.Time, existing []Interval, granularity time.Duration, startHour, endHour int) []Interval {
	if granularity <= 0 || endHour <= startHour {
		return nil
	}
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, day.Location())
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), endHour, 0, 0, 0, day.Location())

	var free []Interval
	for t := dayStart; t.Before(dayEnd); t = t.Add(granularity) {
		candidate := Interval{Start: t, End: t.Add(slotWindow)}
		if !Overlaps(candidate, existing) {
			free = append(free, candidate)
		}
	}
	return free
}
