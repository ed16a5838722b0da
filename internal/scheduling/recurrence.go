package scheduling

import (
	"errors"
	"fmt"
	"time"
)

// MaxOccurrences caps how many occurrences a single recurring request may
// expand to. Batches over the cap are rejected whole, never truncated; the cap
// is backpressure against accidental multi-year recurrences.
const MaxOccurrences = 200

// ErrRecurrenceRange is returned when the recurrence end date precedes the
// first occurrence's date.
var ErrRecurrenceRange = errors.New("recurrence end date precedes the first occurrence")

// RecurrenceTooLargeError reports a recurrence expansion over MaxOccurrences.
type RecurrenceTooLargeError struct {
	Count int
}

func (e *RecurrenceTooLargeError) Error() string {
	return fmt.Sprintf("recurrence would create %d occurrences (max %d)", e.Count, MaxOccurrences)
}

// GenerateOccurrences expands a recurring request into the ordered start times
// of its occurrences. It walks every calendar day from firstStart's date
// through until's date inclusive, keeps the days whose weekday is in weekdays,
// and stamps each kept day with firstStart's wall-clock time of day. Sundays
// are skipped unconditionally regardless of the weekday set; the practice does
// not work Sundays. Occurrences earlier than firstStart are discarded, which
// covers a first occurrence whose own weekday is not in the set.
func GenerateOccurrences(firstStart, until time.Time, weekdays map[time.Weekday]bool) ([]time.Time, error) {
	firstDay := dateOf(firstStart)
	lastDay := dateOf(until)
	if lastDay.Before(firstDay) {
		return nil, ErrRecurrenceRange
	}

	var out []time.Time
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Sunday {
			continue
		}
		if !weekdays[day.Weekday()] {
			continue
		}
		occ := time.Date(day.Year(), day.Month(), day.Day(),
			firstStart.Hour(), firstStart.Minute(), firstStart.Second(), firstStart.Nanosecond(),
			firstStart.Location())
		if occ.Before(firstStart) {
			continue
		}
		out = append(out, occ)
	}

	if len(out) > MaxOccurrences {
		return nil, &RecurrenceTooLargeError{Count: len(out)}
	}
	return out, nil
}

// WeekdaySet builds the set for GenerateOccurrences from wire values
// (Monday=1 .. Saturday=6, matching time.Weekday). Sunday is not accepted.
func WeekdaySet(days []int) (map[time.Weekday]bool, error) {
	if len(days) == 0 {
		return nil, errors.New("weekday set is empty")
	}
	set := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		if d < 1 || d > 6 {
			return nil, fmt.Errorf("weekday %d out of range (1=Monday .. 6=Saturday)", d)
		}
		set[time.Weekday(d)] = true
	}
	return set, nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
