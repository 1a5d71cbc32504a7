package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSlotIncrement is the slot length used when no increment is configured.
const DefaultSlotIncrement = 60 * time.Minute

// Slot is a computed bookable interval. Slots are derived per query and
// never persisted.
type Slot struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Overlaps applies the half-open interval test: [a1,a2) and [b1,b2) overlap
// iff a1 < b2 && b1 < a2. Touching endpoints do not overlap, so back-to-back
// bookings are allowed.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return aStart < bEnd && bStart < aEnd
}

// GenerateSlots derives the open slots for one day from the professional's
// availability windows minus the day's non-cancelled appointments. Each
// window is walked independently from its start in increment-sized steps;
// the final slot is clamped to the window end, so a window shorter than the
// increment yields one partial slot. Overlapping windows are not
// deduplicated and may produce slots covering the same wall-clock interval.
func GenerateSlots(windows []AvailabilityWindow, appointments []Appointment, increment time.Duration) []Slot {
	// TimeOfDay is minute-grained, so a sub-minute increment would round to
	// zero and the window walk below would never advance.
	if increment < time.Minute {
		increment = DefaultSlotIncrement
	}

	booked := make([]Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Status != AppointmentStatusCancelled {
			booked = append(booked, a)
		}
	}

	slots := make([]Slot, 0, len(windows)*4)
	for _, w := range windows {
		current := w.StartTime
		for current < w.EndTime {
			slotEnd := current.Add(increment)
			if slotEnd > w.EndTime {
				slotEnd = w.EndTime
			}

			available := true
			for _, a := range booked {
				if Overlaps(current, slotEnd, a.StartTime, a.EndTime) {
					available = false
					break
				}
			}
			if available {
				slots = append(slots, Slot{Start: current, End: slotEnd})
			}

			current = slotEnd
		}
	}

	return slots
}

// WithinSchedule reports whether [start,end] fits wholly inside a single
// availability window. A candidate spanning two adjacent windows is
// rejected even when the union would cover it.
func WithinSchedule(windows []AvailabilityWindow, start, end TimeOfDay) bool {
	for _, w := range windows {
		if w.StartTime <= start && end <= w.EndTime {
			return true
		}
	}
	return false
}

// HasConflict reports whether [start,end) overlaps any non-cancelled
// appointment other than the candidate itself. The self id is skipped so
// updates do not conflict with the row being changed.
func HasConflict(appointments []Appointment, selfID uuid.UUID, start, end TimeOfDay) bool {
	for _, a := range appointments {
		if a.ID == selfID {
			continue
		}
		if a.Status == AppointmentStatusCancelled {
			continue
		}
		if Overlaps(start, end, a.StartTime, a.EndTime) {
			return true
		}
	}
	return false
}
