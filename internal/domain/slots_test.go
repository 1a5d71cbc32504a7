package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func window(day int, start, end TimeOfDay) AvailabilityWindow {
	return AvailabilityWindow{
		ID:             uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		ProfessionalID: "p1",
		DayOfWeek:      day,
		StartTime:      start,
		EndTime:        end,
	}
}

func booked(start, end TimeOfDay, status AppointmentStatus) Appointment {
	id, _ := uuid.NewV7()
	return Appointment{
		ID:             id,
		ProfessionalID: "p1",
		ClientID:       "c1",
		StartTime:      start,
		EndTime:        end,
		Status:         status,
	}
}

func TestGenerateSlots_EmptyWindow(t *testing.T) {
	slots := GenerateSlots(nil, nil, time.Hour)
	if len(slots) != 0 {
		t.Fatalf("slots = %v, want empty", slots)
	}
}

func TestGenerateSlots_FullMorningWindow(t *testing.T) {
	windows := []AvailabilityWindow{window(WeekdayMonday, NewTimeOfDay(9, 0), NewTimeOfDay(12, 0))}

	slots := GenerateSlots(windows, nil, time.Hour)

	want := []Slot{
		{Start: NewTimeOfDay(9, 0), End: NewTimeOfDay(10, 0)},
		{Start: NewTimeOfDay(10, 0), End: NewTimeOfDay(11, 0)},
		{Start: NewTimeOfDay(11, 0), End: NewTimeOfDay(12, 0)},
	}
	if len(slots) != len(want) {
		t.Fatalf("slots = %v, want %v", slots, want)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("slot[%d] = %v, want %v", i, slots[i], want[i])
		}
	}
}

func TestGenerateSlots_SubMinuteIncrementFallsBackToDefault(t *testing.T) {
	windows := []AvailabilityWindow{window(WeekdayMonday, NewTimeOfDay(9, 0), NewTimeOfDay(12, 0))}

	// A sub-minute increment rounds to zero at minute granularity; the walk
	// must still terminate.
	done := make(chan []Slot, 1)
	go func() {
		done <- GenerateSlots(windows, nil, 30*time.Second)
	}()

	select {
	case slots := <-done:
		if len(slots) != 3 {
			t.Fatalf("slots = %v, want 3 hourly slots", slots)
		}
		if slots[0].Start != NewTimeOfDay(9, 0) || slots[0].End != NewTimeOfDay(10, 0) {
			t.Fatalf("slot[0] = %v, want 09:00-10:00", slots[0])
		}
	case <-time.After(2 * time.Second):
		t.Fatal("GenerateSlots did not return for a sub-minute increment")
	}
}

func TestGenerateSlots_SkipsBookedAndKeepsCancelled(t *testing.T) {
	windows := []AvailabilityWindow{window(WeekdayMonday, NewTimeOfDay(9, 0), NewTimeOfDay(12, 0))}
	appointments := []Appointment{
		booked(NewTimeOfDay(10, 0), NewTimeOfDay(11, 0), AppointmentStatusConfirmed),
		booked(NewTimeOfDay(11, 0), NewTimeOfDay(12, 0), AppointmentStatusCancelled),
	}

	slots := GenerateSlots(windows, appointments, time.Hour)

	want := []Slot{
		{Start: NewTimeOfDay(9, 0), End: NewTimeOfDay(10, 0)},
		{Start: NewTimeOfDay(11, 0), End: NewTimeOfDay(12, 0)},
	}
	if len(slots) != len(want) {
		t.Fatalf("slots = %v, want %v", slots, want)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("slot[%d] = %v, want %v", i, slots[i], want[i])
		}
	}
}

func TestGenerateSlots_ClampsTailSlotToWindowEnd(t *testing.T) {
	windows := []AvailabilityWindow{window(WeekdayTuesday, NewTimeOfDay(9, 0), NewTimeOfDay(10, 30))}

	slots := GenerateSlots(windows, nil, time.Hour)

	want := []Slot{
		{Start: NewTimeOfDay(9, 0), End: NewTimeOfDay(10, 0)},
		{Start: NewTimeOfDay(10, 0), End: NewTimeOfDay(10, 30)},
	}
	if len(slots) != len(want) {
		t.Fatalf("slots = %v, want %v", slots, want)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("slot[%d] = %v, want %v", i, slots[i], want[i])
		}
	}
}

func TestGenerateSlots_WindowShorterThanIncrement(t *testing.T) {
	windows := []AvailabilityWindow{window(WeekdayFriday, NewTimeOfDay(9, 0), NewTimeOfDay(9, 30))}

	slots := GenerateSlots(windows, nil, time.Hour)

	if len(slots) != 1 {
		t.Fatalf("slots = %v, want one partial slot", slots)
	}
	if slots[0].Start != NewTimeOfDay(9, 0) || slots[0].End != NewTimeOfDay(9, 30) {
		t.Fatalf("slot = %v, want 09:00-09:30", slots[0])
	}
}

func TestGenerateSlots_OverlappingWindowsNotDeduplicated(t *testing.T) {
	windows := []AvailabilityWindow{
		window(WeekdayMonday, NewTimeOfDay(9, 0), NewTimeOfDay(10, 0)),
		window(WeekdayMonday, NewTimeOfDay(9, 0), NewTimeOfDay(10, 0)),
	}

	slots := GenerateSlots(windows, nil, time.Hour)

	if len(slots) != 2 {
		t.Fatalf("slots = %v, want duplicate slots from overlapping windows", slots)
	}
}

func TestGenerateSlots_NoSlotOverlapsBooking(t *testing.T) {
	windows := []AvailabilityWindow{
		window(WeekdayMonday, NewTimeOfDay(8, 0), NewTimeOfDay(13, 0)),
		window(WeekdayMonday, NewTimeOfDay(15, 0), NewTimeOfDay(18, 30)),
	}
	appointments := []Appointment{
		booked(NewTimeOfDay(9, 30), NewTimeOfDay(10, 30), AppointmentStatusPending),
		booked(NewTimeOfDay(16, 0), NewTimeOfDay(17, 0), AppointmentStatusConfirmed),
	}

	slots := GenerateSlots(windows, appointments, 45*time.Minute)

	for _, s := range slots {
		for _, a := range appointments {
			if Overlaps(s.Start, s.End, a.StartTime, a.EndTime) {
				t.Fatalf("slot %v overlaps appointment %v-%v", s, a.StartTime, a.EndTime)
			}
		}
	}
}

func TestWithinSchedule(t *testing.T) {
	windows := []AvailabilityWindow{window(WeekdayMonday, NewTimeOfDay(9, 0), NewTimeOfDay(17, 0))}

	tests := []struct {
		name  string
		start TimeOfDay
		end   TimeOfDay
		want  bool
	}{
		{"contained", NewTimeOfDay(9, 0), NewTimeOfDay(10, 0), true},
		{"exact window", NewTimeOfDay(9, 0), NewTimeOfDay(17, 0), true},
		{"starts before window", NewTimeOfDay(8, 0), NewTimeOfDay(10, 0), false},
		{"ends after window", NewTimeOfDay(16, 0), NewTimeOfDay(18, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinSchedule(windows, tt.start, tt.end); got != tt.want {
				t.Fatalf("WithinSchedule(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestWithinSchedule_DoesNotSpanAdjacentWindows(t *testing.T) {
	windows := []AvailabilityWindow{
		window(WeekdayMonday, NewTimeOfDay(9, 0), NewTimeOfDay(12, 0)),
		window(WeekdayMonday, NewTimeOfDay(12, 0), NewTimeOfDay(17, 0)),
	}

	if WithinSchedule(windows, NewTimeOfDay(11, 0), NewTimeOfDay(13, 0)) {
		t.Fatalf("candidate spanning two windows must be rejected")
	}
}

func TestHasConflict_BoundaryIsNotConflict(t *testing.T) {
	existing := []Appointment{booked(NewTimeOfDay(10, 0), NewTimeOfDay(11, 0), AppointmentStatusConfirmed)}

	if HasConflict(existing, uuid.Nil, NewTimeOfDay(11, 0), NewTimeOfDay(12, 0)) {
		t.Fatalf("back-to-back booking flagged as conflict")
	}
	if HasConflict(existing, uuid.Nil, NewTimeOfDay(9, 0), NewTimeOfDay(10, 0)) {
		t.Fatalf("booking ending at the existing start flagged as conflict")
	}
	if !HasConflict(existing, uuid.Nil, NewTimeOfDay(10, 30), NewTimeOfDay(11, 30)) {
		t.Fatalf("overlapping booking not flagged as conflict")
	}
}

func TestHasConflict_IgnoresCancelledAndSelf(t *testing.T) {
	cancelled := booked(NewTimeOfDay(10, 0), NewTimeOfDay(11, 0), AppointmentStatusCancelled)
	self := booked(NewTimeOfDay(11, 0), NewTimeOfDay(12, 0), AppointmentStatusConfirmed)

	existing := []Appointment{cancelled, self}

	if HasConflict(existing, self.ID, NewTimeOfDay(10, 0), NewTimeOfDay(12, 0)) {
		t.Fatalf("cancelled row or the candidate itself must not conflict")
	}
	if !HasConflict(existing, uuid.Nil, NewTimeOfDay(11, 0), NewTimeOfDay(12, 0)) {
		t.Fatalf("other client's active booking must conflict")
	}
}

func TestISOWeekday(t *testing.T) {
	// 2026-01-05 is a Monday, 2026-01-11 a Sunday.
	if got := ISOWeekday(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)); got != WeekdayMonday {
		t.Fatalf("ISOWeekday(Monday) = %d, want %d", got, WeekdayMonday)
	}
	if got := ISOWeekday(time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)); got != WeekdaySunday {
		t.Fatalf("ISOWeekday(Sunday) = %d, want %d", got, WeekdaySunday)
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{AppointmentStatusPending, AppointmentStatusConfirmed, true},
		{AppointmentStatusPending, AppointmentStatusCancelled, true},
		{AppointmentStatusPending, AppointmentStatusCompleted, false},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusPending, false},
		{AppointmentStatusCancelled, AppointmentStatusPending, false},
		{AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Fatalf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
