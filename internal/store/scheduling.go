package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"citaplan/backend/internal/domain"
)

// ScheduleRepository manages a professional's weekly availability windows.
type ScheduleRepository interface {
	CreateWindow(ctx context.Context, w domain.AvailabilityWindow) (domain.AvailabilityWindow, error)
	ListWindows(ctx context.Context, professionalID string) ([]domain.AvailabilityWindow, error)
	ListWindowsForDay(ctx context.Context, professionalID string, dayOfWeek int) ([]domain.AvailabilityWindow, error)
	DeleteWindow(ctx context.Context, professionalID string, windowID uuid.UUID) error
}

// AppointmentRepository persists appointments. Book runs the schedule and
// conflict checks and the insert inside one per-professional transaction,
// so concurrent requests for the same professional serialize.
type AppointmentRepository interface {
	Book(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	Get(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
	ListForDay(ctx context.Context, professionalID string, date time.Time) ([]domain.Appointment, error)
	ListByStatus(ctx context.Context, date time.Time, status domain.AppointmentStatus) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID uuid.UUID, status domain.AppointmentStatus) (domain.Appointment, error)
	MarkPaid(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
}

// SchedulingTx is the read/write surface available inside a booking
// transaction.
type SchedulingTx interface {
	ListWindowsForDay(ctx context.Context, professionalID string, dayOfWeek int) ([]domain.AvailabilityWindow, error)
	ListAppointmentsForDay(ctx context.Context, professionalID string, date time.Time) ([]domain.Appointment, error)
	InsertAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
}
