package scheduling

import (
	"errors"
	"testing"
	"time"
)

func weekdaySet(t *testing.T, days ...int) map[time.Weekday]bool {
	t.Helper()
	set, err := WeekdaySet(days)
	if err != nil {
		t.Fatalf("weekday set: %v", err)
	}
	return set
}

func TestGenerateOccurrences_MonWedFri(t *testing.T) {
	// Monday 2026-03-02 09:00, until the following Friday.
	first := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	until := time.Date(2026, 3, 6, 0, 0, 0, 0, time.Local)

	occs, err := GenerateOccurrences(first, until, weekdaySet(t, 1, 3, 5))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(occs) != 3 {
		t.Fatalf("expected 3 occurrences, got %d", len(occs))
	}
	want := []time.Time{
		time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local),
		time.Date(2026, 3, 4, 9, 0, 0, 0, time.Local),
		time.Date(2026, 3, 6, 9, 0, 0, 0, time.Local),
	}
	for i, w := range want {
		if !occs[i].Equal(w) {
			t.Fatalf("occurrence %d: expected %s, got %s", i, w, occs[i])
		}
	}
}

func TestGenerateOccurrences_OrderedAndBounded(t *testing.T) {
	first := time.Date(2026, 3, 2, 14, 30, 0, 0, time.Local)
	until := time.Date(2026, 4, 30, 0, 0, 0, 0, time.Local)

	occs, err := GenerateOccurrences(first, until, weekdaySet(t, 1, 2, 3, 4, 5, 6))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(occs) == 0 {
		t.Fatal("expected occurrences")
	}
	firstDay := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	lastDay := time.Date(2026, 4, 30, 23, 59, 59, 0, time.Local)
	for i, occ := range occs {
		if occ.Weekday() == time.Sunday {
			t.Fatalf("occurrence %d falls on a Sunday: %s", i, occ)
		}
		if occ.Hour() != 14 || occ.Minute() != 30 {
			t.Fatalf("occurrence %d lost its wall-clock time: %s", i, occ)
		}
		if occ.Before(firstDay) || occ.After(lastDay) {
			t.Fatalf("occurrence %d outside range: %s", i, occ)
		}
		if i > 0 && !occs[i-1].Before(occ) {
			t.Fatalf("occurrences not strictly ascending at %d: %s then %s", i, occs[i-1], occ)
		}
	}
}

func TestGenerateOccurrences_SundayNeverIncluded(t *testing.T) {
	// A weekday set cannot contain Sunday at all.
	if _, err := WeekdaySet([]int{0}); err == nil {
		t.Fatal("expected error for Sunday in weekday set")
	}
	if _, err := WeekdaySet([]int{7}); err == nil {
		t.Fatal("expected error for weekday 7")
	}
	if _, err := WeekdaySet(nil); err == nil {
		t.Fatal("expected error for empty weekday set")
	}
}

func TestGenerateOccurrences_SkipsBeforeFirstStart(t *testing.T) {
	// First occurrence is a Tuesday, but the weekday set only holds Monday.
	// The Monday of the same week must not be emitted.
	first := time.Date(2026, 3, 3, 10, 0, 0, 0, time.Local) // Tuesday
	until := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)  // next Monday

	occs, err := GenerateOccurrences(first, until, weekdaySet(t, 1))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(occs) != 1 {
		t.Fatalf("expected 1 occurrence, got %d", len(occs))
	}
	want := time.Date(2026, 3, 9, 10, 0, 0, 0, time.Local)
	if !occs[0].Equal(want) {
		t.Fatalf("expected %s, got %s", want, occs[0])
	}
}

func TestGenerateOccurrences_RangeInvalid(t *testing.T) {
	first := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	until := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)

	if _, err := GenerateOccurrences(first, until, weekdaySet(t, 1)); !errors.Is(err, ErrRecurrenceRange) {
		t.Fatalf("expected ErrRecurrenceRange, got %v", err)
	}
}

func TestGenerateOccurrences_CapRejectsWholeBatch(t *testing.T) {
	first := time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)
	// Six days a week for a year is well over the cap.
	until := first.AddDate(1, 0, 0)

	occs, err := GenerateOccurrences(first, until, weekdaySet(t, 1, 2, 3, 4, 5, 6))
	if occs != nil {
		t.Fatalf("expected no occurrences on cap rejection, got %d", len(occs))
	}
	var tooLarge *RecurrenceTooLargeError
	if !errors.As(err, &tooLarge) {
		t.Fatalf("expected RecurrenceTooLargeError, got %v", err)
	}
	if tooLarge.Count <= MaxOccurrences {
		t.Fatalf("expected reported count over %d, got %d", MaxOccurrences, tooLarge.Count)
	}
}
