package booking

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"citaplan/backend/internal/domain"
	"citaplan/backend/internal/store"
)

// memoryRepo applies the same in-transaction checks as the Postgres
// repository so the full booking flow can run without a database.
type memoryRepo struct {
	mu      sync.Mutex
	windows []domain.AvailabilityWindow
	appts   map[uuid.UUID]domain.Appointment
}

func newMemoryRepo(windows ...domain.AvailabilityWindow) *memoryRepo {
	return &memoryRepo{windows: windows, appts: make(map[uuid.UUID]domain.Appointment)}
}

func (m *memoryRepo) dayAppointments(professionalID string, date time.Time) []domain.Appointment {
	var out []domain.Appointment
	for _, a := range m.appts {
		if a.ProfessionalID == professionalID && a.Date.Equal(date) {
			out = append(out, a)
		}
	}
	return out
}

func (m *memoryRepo) dayWindows(professionalID string, dayOfWeek int) []domain.AvailabilityWindow {
	var out []domain.AvailabilityWindow
	for _, w := range m.windows {
		if w.ProfessionalID == professionalID && w.DayOfWeek == dayOfWeek {
			out = append(out, w)
		}
	}
	return out
}

func (m *memoryRepo) Book(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	windows := m.dayWindows(appt.ProfessionalID, domain.ISOWeekday(appt.Date))
	if !domain.WithinSchedule(windows, appt.StartTime, appt.EndTime) {
		return domain.Appointment{}, store.ErrOutsideSchedule
	}
	if domain.HasConflict(m.dayAppointments(appt.ProfessionalID, appt.Date), appt.ID, appt.StartTime, appt.EndTime) {
		return domain.Appointment{}, store.ErrConflict
	}

	appt.ID, _ = uuid.NewV7()
	m.appts[appt.ID] = appt
	return appt, nil
}

func (m *memoryRepo) Get(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.appts[appointmentID]
	if !ok {
		return domain.Appointment{}, store.ErrNotFound
	}
	return a, nil
}

func (m *memoryRepo) ListForDay(ctx context.Context, professionalID string, date time.Time) ([]domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dayAppointments(professionalID, date), nil
}

func (m *memoryRepo) ListByStatus(ctx context.Context, date time.Time, status domain.AppointmentStatus) ([]domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Appointment
	for _, a := range m.appts {
		if a.Date.Equal(date) && a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryRepo) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, status domain.AppointmentStatus) (domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.appts[appointmentID]
	if !ok {
		return domain.Appointment{}, store.ErrNotFound
	}
	a.Status = status
	m.appts[appointmentID] = a
	return a, nil
}

func (m *memoryRepo) MarkPaid(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.appts[appointmentID]
	if !ok {
		return domain.Appointment{}, store.ErrNotFound
	}
	a.PaymentStatus = domain.PaymentStatusPaid
	m.appts[appointmentID] = a
	return a, nil
}

func (m *memoryRepo) CreateWindow(ctx context.Context, w domain.AvailabilityWindow) (domain.AvailabilityWindow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w.ID, _ = uuid.NewV7()
	m.windows = append(m.windows, w)
	return w, nil
}

func (m *memoryRepo) ListWindows(ctx context.Context, professionalID string) ([]domain.AvailabilityWindow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.AvailabilityWindow
	for _, w := range m.windows {
		if w.ProfessionalID == professionalID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *memoryRepo) ListWindowsForDay(ctx context.Context, professionalID string, dayOfWeek int) ([]domain.AvailabilityWindow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dayWindows(professionalID, dayOfWeek), nil
}

func (m *memoryRepo) DeleteWindow(ctx context.Context, professionalID string, windowID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, w := range m.windows {
		if w.ProfessionalID == professionalID && w.ID == windowID {
			m.windows = append(m.windows[:i], m.windows[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func TestScenario_MondayMorningBookings(t *testing.T) {
	repo := newMemoryRepo(domain.AvailabilityWindow{
		ID:             uuid.MustParse("00000000-0000-0000-0000-000000000021"),
		ProfessionalID: "p1",
		DayOfWeek:      domain.WeekdayMonday,
		StartTime:      domain.NewTimeOfDay(9, 0),
		EndTime:        domain.NewTimeOfDay(12, 0),
	})
	svc := NewService(repo, repo, nil, slog.Default(), time.Hour)
	svc.now = testClock

	ctx := context.Background()

	slots, err := svc.Slots(ctx, "p1", testMonday)
	if err != nil {
		t.Fatalf("Slots error: %v", err)
	}
	want := []domain.Slot{
		{Start: domain.NewTimeOfDay(9, 0), End: domain.NewTimeOfDay(10, 0)},
		{Start: domain.NewTimeOfDay(10, 0), End: domain.NewTimeOfDay(11, 0)},
		{Start: domain.NewTimeOfDay(11, 0), End: domain.NewTimeOfDay(12, 0)},
	}
	if len(slots) != len(want) {
		t.Fatalf("slots = %v, want %v", slots, want)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("slot[%d] = %v, want %v", i, slots[i], want[i])
		}
	}

	first, err := svc.Book(ctx, BookInput{
		ProfessionalID: "p1",
		ClientID:       "c1",
		Date:           testMonday,
		StartTime:      domain.NewTimeOfDay(9, 0),
		EndTime:        domain.NewTimeOfDay(10, 0),
	})
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if first.Outcome != DecisionAccepted {
		t.Fatalf("first outcome = %s, want accepted", first.Outcome)
	}

	second, err := svc.Book(ctx, BookInput{
		ProfessionalID: "p1",
		ClientID:       "c2",
		Date:           testMonday,
		StartTime:      domain.NewTimeOfDay(9, 30),
		EndTime:        domain.NewTimeOfDay(10, 30),
	})
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if second.Outcome != DecisionConflict {
		t.Fatalf("second outcome = %s, want conflict", second.Outcome)
	}

	// Back-to-back is allowed; the 09:00 slot disappears from the feed.
	third, err := svc.Book(ctx, BookInput{
		ProfessionalID: "p1",
		ClientID:       "c2",
		Date:           testMonday,
		StartTime:      domain.NewTimeOfDay(10, 0),
		EndTime:        domain.NewTimeOfDay(11, 0),
	})
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if third.Outcome != DecisionAccepted {
		t.Fatalf("third outcome = %s, want accepted", third.Outcome)
	}

	slots, err = svc.Slots(ctx, "p1", testMonday)
	if err != nil {
		t.Fatalf("Slots error: %v", err)
	}
	if len(slots) != 1 || slots[0].Start != domain.NewTimeOfDay(11, 0) {
		t.Fatalf("slots after bookings = %v, want only 11:00-12:00", slots)
	}

	// Cancelling frees the interval again but keeps the row queryable.
	res, err := svc.Cancel(ctx, first.Appointment.ID)
	if err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if res != CancelCancelled {
		t.Fatalf("cancel result = %s, want cancelled", res)
	}

	slots, err = svc.Slots(ctx, "p1", testMonday)
	if err != nil {
		t.Fatalf("Slots error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("slots after cancel = %v, want 09:00 and 11:00 free", slots)
	}

	day, err := svc.ListForDay(ctx, "p1", testMonday)
	if err != nil {
		t.Fatalf("ListForDay error: %v", err)
	}
	if len(day) != 2 {
		t.Fatalf("day rows = %d, want 2 (cancelled row retained)", len(day))
	}

	retake, err := svc.Book(ctx, BookInput{
		ProfessionalID: "p1",
		ClientID:       "c3",
		Date:           testMonday,
		StartTime:      domain.NewTimeOfDay(9, 0),
		EndTime:        domain.NewTimeOfDay(10, 0),
	})
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if retake.Outcome != DecisionAccepted {
		t.Fatalf("rebooking a cancelled interval = %s, want accepted", retake.Outcome)
	}
}

func TestScenario_AcceptedBookingsArePairwiseDisjoint(t *testing.T) {
	repo := newMemoryRepo(domain.AvailabilityWindow{
		ID:             uuid.MustParse("00000000-0000-0000-0000-000000000022"),
		ProfessionalID: "p1",
		DayOfWeek:      domain.WeekdayMonday,
		StartTime:      domain.NewTimeOfDay(8, 0),
		EndTime:        domain.NewTimeOfDay(18, 0),
	})
	svc := NewService(repo, repo, nil, slog.Default(), time.Hour)
	svc.now = testClock

	ctx := context.Background()
	requests := []struct{ start, end domain.TimeOfDay }{
		{domain.NewTimeOfDay(9, 0), domain.NewTimeOfDay(10, 0)},
		{domain.NewTimeOfDay(9, 30), domain.NewTimeOfDay(10, 30)},
		{domain.NewTimeOfDay(10, 0), domain.NewTimeOfDay(11, 0)},
		{domain.NewTimeOfDay(8, 0), domain.NewTimeOfDay(12, 0)},
		{domain.NewTimeOfDay(11, 0), domain.NewTimeOfDay(11, 30)},
		{domain.NewTimeOfDay(17, 30), domain.NewTimeOfDay(18, 0)},
	}

	var accepted []domain.Appointment
	for _, r := range requests {
		d, err := svc.Book(ctx, BookInput{
			ProfessionalID: "p1",
			ClientID:       "c1",
			Date:           testMonday,
			StartTime:      r.start,
			EndTime:        r.end,
		})
		if err != nil {
			t.Fatalf("Book error: %v", err)
		}
		if d.Outcome == DecisionAccepted {
			accepted = append(accepted, d.Appointment)
		}
	}

	for i := range accepted {
		for j := i + 1; j < len(accepted); j++ {
			a, b := accepted[i], accepted[j]
			if domain.Overlaps(a.StartTime, a.EndTime, b.StartTime, b.EndTime) {
				t.Fatalf("accepted bookings overlap: %v-%v and %v-%v", a.StartTime, a.EndTime, b.StartTime, b.EndTime)
			}
		}
	}
}
