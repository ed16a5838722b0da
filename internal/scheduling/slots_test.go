package scheduling

import (
	"errors"
	"testing"
	"time"
)

func interval(h, m, h2, m2 int) Interval {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	return Interval{
		Start: day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute),
		End:   day.Add(time.Duration(h2)*time.Hour + time.Duration(m2)*time.Minute),
	}
}

func TestOverlaps_PartialOverlap(t *testing.T) {
	existing := []Interval{interval(10, 0, 11, 0)}

	if !Overlaps(interval(10, 30, 11, 30), existing) {
		t.Fatal("expected 10:30-11:30 to overlap 10:00-11:00")
	}
	if Overlaps(interval(11, 0, 12, 0), existing) {
		t.Fatal("expected 11:00-12:00 not to overlap 10:00-11:00")
	}
}

func TestOverlaps_Containment(t *testing.T) {
	existing := []Interval{interval(10, 0, 11, 0)}

	if !Overlaps(interval(9, 0, 12, 0), existing) {
		t.Fatal("expected containing interval to overlap")
	}
	if !Overlaps(interval(10, 15, 10, 45), existing) {
		t.Fatal("expected contained interval to overlap")
	}
}

func TestOverlaps_Symmetric(t *testing.T) {
	a := interval(9, 0, 10, 30)
	b := interval(10, 0, 11, 0)

	if Overlaps(a, []Interval{b}) != Overlaps(b, []Interval{a}) {
		t.Fatal("overlap must be symmetric")
	}
}

func TestOverlaps_AbutmentIsLegal(t *testing.T) {
	existing := []Interval{interval(10, 0, 11, 0)}

	// Back-to-back appointments share only a boundary instant.
	if Overlaps(interval(9, 0, 10, 0), existing) {
		t.Fatal("candidate ending at existing start must not overlap")
	}
	if Overlaps(interval(11, 0, 12, 0), existing) {
		t.Fatal("candidate starting at existing end must not overlap")
	}
}

func TestValidateInterval(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)

	if err := ValidateInterval(start, start.Add(time.Hour)); err != nil {
		t.Fatalf("valid interval rejected: %v", err)
	}
	if err := ValidateInterval(start, start); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration for zero duration, got %v", err)
	}
	if err := ValidateInterval(start, start.Add(-time.Minute)); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration for negative duration, got %v", err)
	}
}

func TestFreeSlots_MarksOccupiedWindows(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	existing := []Interval{interval(10, 0, 11, 0)}

	free := FreeSlots(day, existing, 30*time.Minute, 9, 12)
	// Grid: 09:00 09:30 10:00 10:30 11:00 11:30. A 60-minute window starting at
	// 09:30 through 10:30 collides with 10:00-11:00; 09:00 and 11:00+ are free.
	want := []time.Time{
		day.Add(9 * time.Hour),
		day.Add(11 * time.Hour),
		day.Add(11*time.Hour + 30*time.Minute),
	}
	if len(free) != len(want) {
		t.Fatalf("expected %d free slots, got %d", len(want), len(free))
	}
	for i, w := range want {
		if !free[i].Start.Equal(w) {
			t.Fatalf("slot %d: expected %s, got %s", i, w, free[i].Start)
		}
		if !free[i].End.Equal(w.Add(time.Hour)) {
			t.Fatalf("slot %d: expected 60-minute window, got end %s", i, free[i].End)
		}
	}
}

func TestFreeSlots_EmptyDayAllFree(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)

	free := FreeSlots(day, nil, time.Hour, 8, 20)
	if len(free) != 12 {
		t.Fatalf("expected 12 free slots, got %d", len(free))
	}
}

func TestFreeSlots_DegenerateInputs(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)

	if got := FreeSlots(day, nil, 0, 8, 20); got != nil {
		t.Fatalf("expected nil for zero granularity, got %v", got)
	}
	if got := FreeSlots(day, nil, time.Hour, 20, 8); got != nil {
		t.Fatalf("expected nil for inverted hours, got %v", got)
	}
}
