package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// EventType identifies an appointment lifecycle event handed to the
// notification pipeline.
type EventType string

const (
	EventAppointmentBooked    EventType = "appointment.booked"
	EventAppointmentConfirmed EventType = "appointment.confirmed"
	EventAppointmentCancelled EventType = "appointment.cancelled"
	EventAppointmentCompleted EventType = "appointment.completed"
	EventAppointmentReminder  EventType = "appointment.reminder"
	EventPaymentCaptured      EventType = "appointment.payment_captured"
)

// Notifier delivers appointment events to the notification pipeline.
// Delivery is fire-and-forget: a failed publish must never roll back the
// state change that produced the event.
type Notifier interface {
	AppointmentEvent(ctx context.Context, appointmentID uuid.UUID, event EventType) error
}

// LogNotifier is the fallback used when no brokers are configured: events
// are only written to the log.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{log: log.With(slog.String("component", "notify.log"))}
}

func (n *LogNotifier) AppointmentEvent(ctx context.Context, appointmentID uuid.UUID, event EventType) error {
	n.log.Info("appointment event",
		slog.String("appointment_id", appointmentID.String()),
		slog.String("event_type", string(event)),
	)
	return nil
}
