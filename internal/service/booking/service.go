package booking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"citaplan/backend/internal/domain"
	"citaplan/backend/internal/notify"
	"citaplan/backend/internal/store"
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// DecisionOutcome enumerates every way a booking request can resolve.
// Rejections are expected outcomes, not errors.
type DecisionOutcome string

const (
	DecisionAccepted        DecisionOutcome = "accepted"
	DecisionPastDate        DecisionOutcome = "rejected_past_date"
	DecisionOutsideSchedule DecisionOutcome = "rejected_outside_schedule"
	DecisionConflict        DecisionOutcome = "rejected_conflict"
)

type Decision struct {
	Outcome     DecisionOutcome
	Appointment domain.Appointment
}

type CancelResult string

const (
	CancelCancelled        CancelResult = "cancelled"
	CancelAlreadyCancelled CancelResult = "already_cancelled"
	CancelNotAllowed       CancelResult = "not_allowed"
	CancelNotFound         CancelResult = "not_found"
)

type StatusResult string

const (
	StatusUpdated           StatusResult = "updated"
	StatusInvalidTransition StatusResult = "invalid_transition"
	StatusNotFound          StatusResult = "not_found"
)

type Service struct {
	appointments store.AppointmentRepository
	schedules    store.ScheduleRepository
	notifier     notify.Notifier
	log          *slog.Logger

	slotIncrement time.Duration
	now           func() time.Time
}

func NewService(appointments store.AppointmentRepository, schedules store.ScheduleRepository, notifier notify.Notifier, log *slog.Logger, slotIncrement time.Duration) *Service {
	if log == nil {
		log = slog.Default()
	}
	if notifier == nil {
		notifier = notify.NewLogNotifier(log)
	}
	if slotIncrement < time.Minute {
		slotIncrement = domain.DefaultSlotIncrement
	}
	return &Service{
		appointments:  appointments,
		schedules:     schedules,
		notifier:      notifier,
		log:           log.With(slog.String("component", "service.booking")),
		slotIncrement: slotIncrement,
		now:           time.Now,
	}
}

// Slots derives the open slots for a professional on one date. An unknown
// professional or a day without windows yields an empty result, not an
// error; date-range policy is the caller's concern.
func (s *Service) Slots(ctx context.Context, professionalID string, date time.Time) ([]domain.Slot, error) {
	if professionalID == "" {
		return nil, validationError("professional_id is required")
	}
	date = dateOnly(date)

	windows, err := s.schedules.ListWindowsForDay(ctx, professionalID, domain.ISOWeekday(date))
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return []domain.Slot{}, nil
	}

	appts, err := s.appointments.ListForDay(ctx, professionalID, date)
	if err != nil {
		return nil, err
	}

	return domain.GenerateSlots(windows, appts, s.slotIncrement), nil
}

type BookInput struct {
	ProfessionalID string
	ClientID       string
	Date           time.Time
	StartTime      domain.TimeOfDay
	EndTime        domain.TimeOfDay
	Notes          string
}

// Book validates a booking request and persists it as a pending
// appointment. Checks run in order: past date, schedule containment,
// conflicts; the containment and conflict checks are re-evaluated by the
// store inside the per-professional transaction.
func (s *Service) Book(ctx context.Context, in BookInput) (Decision, error) {
	if in.ProfessionalID == "" {
		return Decision{}, validationError("professional_id is required")
	}
	if in.ClientID == "" {
		return Decision{}, validationError("client_id is required")
	}
	if !in.StartTime.Valid() || !in.EndTime.Valid() {
		return Decision{}, validationError("start_time and end_time must be valid times of day")
	}
	if in.EndTime <= in.StartTime {
		return Decision{}, validationError("end_time must be after start_time")
	}

	date := dateOnly(in.Date)
	if date.Before(dateOnly(s.now())) {
		return Decision{Outcome: DecisionPastDate}, nil
	}

	appt, err := s.appointments.Book(ctx, domain.Appointment{
		ProfessionalID: in.ProfessionalID,
		ClientID:       in.ClientID,
		Date:           date,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		Status:         domain.AppointmentStatusPending,
		PaymentStatus:  domain.PaymentStatusUnpaid,
		Notes:          in.Notes,
	})
	if err != nil {
		if errors.Is(err, store.ErrOutsideSchedule) {
			return Decision{Outcome: DecisionOutsideSchedule}, nil
		}
		if errors.Is(err, store.ErrConflict) {
			return Decision{Outcome: DecisionConflict}, nil
		}
		return Decision{}, err
	}

	s.notify(ctx, appt.ID, notify.EventAppointmentBooked)
	return Decision{Outcome: DecisionAccepted, Appointment: appt}, nil
}

// Cancel soft-cancels an appointment. Cancelling an already-cancelled row
// is idempotent; completed rows cannot be cancelled.
func (s *Service) Cancel(ctx context.Context, appointmentID uuid.UUID) (CancelResult, error) {
	if appointmentID == uuid.Nil {
		return "", validationError("appointment_id is required")
	}

	appt, err := s.appointments.Get(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CancelNotFound, nil
		}
		return "", err
	}

	switch {
	case appt.Status == domain.AppointmentStatusCancelled:
		return CancelAlreadyCancelled, nil
	case !domain.CanTransition(appt.Status, domain.AppointmentStatusCancelled):
		return CancelNotAllowed, nil
	}

	if _, err := s.appointments.UpdateStatus(ctx, appointmentID, domain.AppointmentStatusCancelled); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CancelNotFound, nil
		}
		return "", err
	}

	s.notify(ctx, appointmentID, notify.EventAppointmentCancelled)
	return CancelCancelled, nil
}

// UpdateStatus applies a lifecycle transition requested by the
// professional (confirm, complete, cancel).
func (s *Service) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, newStatus domain.AppointmentStatus) (StatusResult, domain.Appointment, error) {
	if appointmentID == uuid.Nil {
		return "", domain.Appointment{}, validationError("appointment_id is required")
	}
	if !domain.ValidStatus(newStatus) {
		return "", domain.Appointment{}, validationError("unknown status")
	}

	appt, err := s.appointments.Get(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return StatusNotFound, domain.Appointment{}, nil
		}
		return "", domain.Appointment{}, err
	}

	if !domain.CanTransition(appt.Status, newStatus) {
		return StatusInvalidTransition, appt, nil
	}

	updated, err := s.appointments.UpdateStatus(ctx, appointmentID, newStatus)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return StatusNotFound, domain.Appointment{}, nil
		}
		return "", domain.Appointment{}, err
	}

	s.notify(ctx, appointmentID, statusEvent(newStatus))
	return StatusUpdated, updated, nil
}

// ConfirmPayment records a captured payment and auto-confirms the
// appointment when it is still pending. The trigger arrives from the
// payment collaborator's webhook and is idempotent against replays.
func (s *Service) ConfirmPayment(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	if appointmentID == uuid.Nil {
		return domain.Appointment{}, validationError("appointment_id is required")
	}

	appt, err := s.appointments.Get(ctx, appointmentID)
	if err != nil {
		return domain.Appointment{}, err
	}

	if appt.PaymentStatus != domain.PaymentStatusPaid {
		appt, err = s.appointments.MarkPaid(ctx, appointmentID)
		if err != nil {
			return domain.Appointment{}, err
		}
		s.notify(ctx, appointmentID, notify.EventPaymentCaptured)
	}

	if domain.CanTransition(appt.Status, domain.AppointmentStatusConfirmed) {
		appt, err = s.appointments.UpdateStatus(ctx, appointmentID, domain.AppointmentStatusConfirmed)
		if err != nil {
			return domain.Appointment{}, err
		}
		s.notify(ctx, appointmentID, notify.EventAppointmentConfirmed)
	}

	return appt, nil
}

// Appointment returns a single appointment by id.
func (s *Service) Appointment(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	if appointmentID == uuid.Nil {
		return domain.Appointment{}, validationError("appointment_id is required")
	}
	return s.appointments.Get(ctx, appointmentID)
}

// ListForDay returns a professional's appointments on one date, cancelled
// rows included so the history stays visible.
func (s *Service) ListForDay(ctx context.Context, professionalID string, date time.Time) ([]domain.Appointment, error) {
	if professionalID == "" {
		return nil, validationError("professional_id is required")
	}
	return s.appointments.ListForDay(ctx, professionalID, dateOnly(date))
}

// ConfirmedForDate returns every confirmed appointment on a date,
// regardless of professional. Used by the reminder sweep.
func (s *Service) ConfirmedForDate(ctx context.Context, date time.Time) ([]domain.Appointment, error) {
	return s.appointments.ListByStatus(ctx, dateOnly(date), domain.AppointmentStatusConfirmed)
}

// SetAvailability adds a weekly window to a professional's schedule.
// Existing appointments are never affected by schedule edits.
func (s *Service) SetAvailability(ctx context.Context, professionalID string, dayOfWeek int, start, end domain.TimeOfDay) (domain.AvailabilityWindow, error) {
	if professionalID == "" {
		return domain.AvailabilityWindow{}, validationError("professional_id is required")
	}
	if dayOfWeek < domain.WeekdayMonday || dayOfWeek > domain.WeekdaySunday {
		return domain.AvailabilityWindow{}, validationError("day_of_week must be between 0 (Monday) and 6 (Sunday)")
	}
	if !start.Valid() || !end.Valid() {
		return domain.AvailabilityWindow{}, validationError("start_time and end_time must be valid times of day")
	}
	if end <= start {
		return domain.AvailabilityWindow{}, validationError("end_time must be after start_time")
	}

	return s.schedules.CreateWindow(ctx, domain.AvailabilityWindow{
		ProfessionalID: professionalID,
		DayOfWeek:      dayOfWeek,
		StartTime:      start,
		EndTime:        end,
	})
}

func (s *Service) ListAvailability(ctx context.Context, professionalID string) ([]domain.AvailabilityWindow, error) {
	if professionalID == "" {
		return nil, validationError("professional_id is required")
	}
	return s.schedules.ListWindows(ctx, professionalID)
}

func (s *Service) RemoveAvailability(ctx context.Context, professionalID string, windowID uuid.UUID) error {
	if professionalID == "" {
		return validationError("professional_id is required")
	}
	if windowID == uuid.Nil {
		return validationError("window_id is required")
	}
	return s.schedules.DeleteWindow(ctx, professionalID, windowID)
}

// Reminder emits a reminder event for one appointment.
func (s *Service) Reminder(ctx context.Context, appointmentID uuid.UUID) {
	s.notify(ctx, appointmentID, notify.EventAppointmentReminder)
}

func (s *Service) notify(ctx context.Context, appointmentID uuid.UUID, event notify.EventType) {
	if err := s.notifier.AppointmentEvent(ctx, appointmentID, event); err != nil {
		s.log.Warn("notification dispatch failed",
			slog.Any("err", err),
			slog.String("appointment_id", appointmentID.String()),
			slog.String("event_type", string(event)),
		)
	}
}

func statusEvent(status domain.AppointmentStatus) notify.EventType {
	switch status {
	case domain.AppointmentStatusConfirmed:
		return notify.EventAppointmentConfirmed
	case domain.AppointmentStatusCompleted:
		return notify.EventAppointmentCompleted
	default:
		return notify.EventAppointmentCancelled
	}
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
