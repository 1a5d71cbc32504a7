package grpc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"citaplan/backend/internal/domain"
	citaplanv1 "citaplan/backend/internal/gen/proto/citaplan/v1"
	"citaplan/backend/internal/service/booking"
)

type BookingServer struct {
	citaplanv1.UnimplementedBookingServiceServer

	svc bookingService
	log *slog.Logger
}

type bookingService interface {
	Slots(ctx context.Context, professionalID string, date time.Time) ([]domain.Slot, error)
	Book(ctx context.Context, in booking.BookInput) (booking.Decision, error)
	Cancel(ctx context.Context, appointmentID uuid.UUID) (booking.CancelResult, error)
	UpdateStatus(ctx context.Context, appointmentID uuid.UUID, newStatus domain.AppointmentStatus) (booking.StatusResult, domain.Appointment, error)
	ListForDay(ctx context.Context, professionalID string, date time.Time) ([]domain.Appointment, error)
}

func NewBookingServer(svc bookingService, log *slog.Logger) *BookingServer {
	if log == nil {
		log = slog.Default()
	}
	return &BookingServer{
		svc: svc,
		log: log.With(slog.String("component", "grpc.booking")),
	}
}

func (s *BookingServer) GetSlots(ctx context.Context, req *citaplanv1.GetSlotsRequest) (*citaplanv1.GetSlotsResponse, error) {
	log := s.log.With(slog.String("rpc", "GetSlots"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	date, err := parseDate(req.Date)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_date"), slog.String("professional_id", req.ProfessionalId))
		return nil, status.Error(codes.InvalidArgument, "date must be YYYY-MM-DD")
	}

	slots, err := s.svc.Slots(ctx, req.ProfessionalId, date)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("professional_id", req.ProfessionalId))
			return nil, status.Error(codes.InvalidArgument, vErr.Error())
		}
		log.Error("slots lookup failed", slog.Any("err", err), slog.String("professional_id", req.ProfessionalId))
		return nil, status.Error(codes.Internal, "internal error")
	}

	out := make([]*citaplanv1.Slot, 0, len(slots))
	for _, sl := range slots {
		out = append(out, &citaplanv1.Slot{
			StartTime: sl.Start.String(),
			EndTime:   sl.End.String(),
		})
	}

	log.Debug("slots listed",
		slog.String("professional_id", req.ProfessionalId),
		slog.String("date", req.Date),
		slog.Int("count", len(out)),
	)
	return &citaplanv1.GetSlotsResponse{Slots: out}, nil
}

func (s *BookingServer) BookAppointment(ctx context.Context, req *citaplanv1.BookAppointmentRequest) (*citaplanv1.BookAppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "BookAppointment"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	date, err := parseDate(req.Date)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_date"), slog.String("professional_id", req.ProfessionalId))
		return nil, status.Error(codes.InvalidArgument, "date must be YYYY-MM-DD")
	}
	start, err := domain.ParseTimeOfDay(req.StartTime)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_start_time"), slog.String("professional_id", req.ProfessionalId))
		return nil, status.Error(codes.InvalidArgument, "start_time must be HH:MM")
	}
	end, err := domain.ParseTimeOfDay(req.EndTime)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_end_time"), slog.String("professional_id", req.ProfessionalId))
		return nil, status.Error(codes.InvalidArgument, "end_time must be HH:MM")
	}

	decision, err := s.svc.Book(ctx, booking.BookInput{
		ProfessionalID: req.ProfessionalId,
		ClientID:       req.ClientId,
		Date:           date,
		StartTime:      start,
		EndTime:        end,
		Notes:          req.Notes,
	})
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("professional_id", req.ProfessionalId))
			return nil, status.Error(codes.InvalidArgument, vErr.Error())
		}
		log.Error("booking failed", slog.Any("err", err), slog.String("professional_id", req.ProfessionalId))
		return nil, status.Error(codes.Internal, "internal error")
	}

	switch decision.Outcome {
	case booking.DecisionAccepted:
		log.Info("appointment booked",
			slog.String("appointment_id", decision.Appointment.ID.String()),
			slog.String("professional_id", req.ProfessionalId),
			slog.String("date", req.Date),
			slog.String("start_time", req.StartTime),
		)
		return &citaplanv1.BookAppointmentResponse{
			Appointment: toProtoAppointment(decision.Appointment),
		}, nil
	case booking.DecisionPastDate:
		log.Info("booking rejected", slog.String("reason", "past_date"), slog.String("professional_id", req.ProfessionalId))
		return nil, status.Error(codes.FailedPrecondition, "That date is in the past. Pick an upcoming date.")
	case booking.DecisionOutsideSchedule:
		log.Info("booking rejected", slog.String("reason", "outside_schedule"), slog.String("professional_id", req.ProfessionalId))
		return nil, status.Error(codes.FailedPrecondition, "That time falls outside the professional's working hours.")
	case booking.DecisionConflict:
		log.Info("booking rejected", slog.String("reason", "conflict"), slog.String("professional_id", req.ProfessionalId))
		return nil, status.Error(codes.FailedPrecondition, "That time is already booked. Pick a different slot.")
	default:
		log.Error("unknown booking outcome", slog.String("outcome", string(decision.Outcome)))
		return nil, status.Error(codes.Internal, "internal error")
	}
}

func (s *BookingServer) CancelAppointment(ctx context.Context, req *citaplanv1.CancelAppointmentRequest) (*citaplanv1.CancelAppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "CancelAppointment"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := uuid.Parse(req.AppointmentId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, status.Error(codes.InvalidArgument, "appointment_id must be a UUID")
	}

	res, err := s.svc.Cancel(ctx, id)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("appointment_id", id.String()))
			return nil, status.Error(codes.InvalidArgument, vErr.Error())
		}
		log.Error("cancel failed", slog.Any("err", err), slog.String("appointment_id", id.String()))
		return nil, status.Error(codes.Internal, "internal error")
	}

	switch res {
	case booking.CancelCancelled:
		log.Info("appointment cancelled", slog.String("appointment_id", id.String()))
		return &citaplanv1.CancelAppointmentResponse{}, nil
	case booking.CancelAlreadyCancelled:
		log.Info("appointment already cancelled", slog.String("appointment_id", id.String()))
		return &citaplanv1.CancelAppointmentResponse{AlreadyCancelled: true}, nil
	case booking.CancelNotAllowed:
		log.Info("cancel rejected", slog.String("reason", "completed"), slog.String("appointment_id", id.String()))
		return nil, status.Error(codes.FailedPrecondition, "A completed appointment cannot be cancelled.")
	case booking.CancelNotFound:
		log.Info("appointment not found", slog.String("appointment_id", id.String()))
		return nil, status.Error(codes.NotFound, "appointment not found")
	default:
		log.Error("unknown cancel result", slog.String("result", string(res)))
		return nil, status.Error(codes.Internal, "internal error")
	}
}

func (s *BookingServer) UpdateAppointmentStatus(ctx context.Context, req *citaplanv1.UpdateAppointmentStatusRequest) (*citaplanv1.UpdateAppointmentStatusResponse, error) {
	log := s.log.With(slog.String("rpc", "UpdateAppointmentStatus"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := uuid.Parse(req.AppointmentId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, status.Error(codes.InvalidArgument, "appointment_id must be a UUID")
	}
	newStatus, ok := fromProtoStatus(req.Status)
	if !ok {
		log.Warn("invalid request", slog.String("reason", "invalid_status"), slog.String("appointment_id", id.String()))
		return nil, status.Error(codes.InvalidArgument, "status must be one of pending, confirmed, cancelled, completed")
	}

	res, appt, err := s.svc.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("appointment_id", id.String()))
			return nil, status.Error(codes.InvalidArgument, vErr.Error())
		}
		log.Error("status update failed", slog.Any("err", err), slog.String("appointment_id", id.String()))
		return nil, status.Error(codes.Internal, "internal error")
	}

	switch res {
	case booking.StatusUpdated:
		log.Info("appointment status updated",
			slog.String("appointment_id", id.String()),
			slog.String("status", string(appt.Status)),
		)
		return &citaplanv1.UpdateAppointmentStatusResponse{Appointment: toProtoAppointment(appt)}, nil
	case booking.StatusInvalidTransition:
		log.Info("status update rejected",
			slog.String("appointment_id", id.String()),
			slog.String("from", string(appt.Status)),
			slog.String("to", string(newStatus)),
		)
		return nil, status.Error(codes.FailedPrecondition, "That status change is not allowed from the appointment's current state.")
	case booking.StatusNotFound:
		log.Info("appointment not found", slog.String("appointment_id", id.String()))
		return nil, status.Error(codes.NotFound, "appointment not found")
	default:
		log.Error("unknown status result", slog.String("result", string(res)))
		return nil, status.Error(codes.Internal, "internal error")
	}
}

func (s *BookingServer) ListAppointments(ctx context.Context, req *citaplanv1.ListAppointmentsRequest) (*citaplanv1.ListAppointmentsResponse, error) {
	log := s.log.With(slog.String("rpc", "ListAppointments"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	date, err := parseDate(req.Date)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_date"), slog.String("professional_id", req.ProfessionalId))
		return nil, status.Error(codes.InvalidArgument, "date must be YYYY-MM-DD")
	}

	appts, err := s.svc.ListForDay(ctx, req.ProfessionalId, date)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("professional_id", req.ProfessionalId))
			return nil, status.Error(codes.InvalidArgument, vErr.Error())
		}
		log.Error("appointments list failed", slog.Any("err", err), slog.String("professional_id", req.ProfessionalId))
		return nil, status.Error(codes.Internal, "internal error")
	}

	out := make([]*citaplanv1.Appointment, 0, len(appts))
	for _, a := range appts {
		out = append(out, toProtoAppointment(a))
	}

	log.Debug("appointments listed",
		slog.String("professional_id", req.ProfessionalId),
		slog.String("date", req.Date),
		slog.Int("count", len(out)),
	)
	return &citaplanv1.ListAppointmentsResponse{Appointments: out}, nil
}

func parseDate(raw string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", raw, time.UTC)
}

func toProtoAppointment(a domain.Appointment) *citaplanv1.Appointment {
	return &citaplanv1.Appointment{
		Id:             a.ID.String(),
		ProfessionalId: a.ProfessionalID,
		ClientId:       a.ClientID,
		Date:           a.Date.Format("2006-01-02"),
		StartTime:      a.StartTime.String(),
		EndTime:        a.EndTime.String(),
		Status:         toProtoStatus(a.Status),
		PaymentStatus:  toProtoPaymentStatus(a.PaymentStatus),
		Notes:          a.Notes,
		CreatedAt:      timestamppb.New(a.CreatedAt),
		UpdatedAt:      timestamppb.New(a.UpdatedAt),
	}
}

func toProtoStatus(s domain.AppointmentStatus) citaplanv1.AppointmentStatus {
	switch s {
	case domain.AppointmentStatusPending:
		return citaplanv1.AppointmentStatus_APPOINTMENT_STATUS_PENDING
	case domain.AppointmentStatusConfirmed:
		return citaplanv1.AppointmentStatus_APPOINTMENT_STATUS_CONFIRMED
	case domain.AppointmentStatusCancelled:
		return citaplanv1.AppointmentStatus_APPOINTMENT_STATUS_CANCELLED
	case domain.AppointmentStatusCompleted:
		return citaplanv1.AppointmentStatus_APPOINTMENT_STATUS_COMPLETED
	default:
		return citaplanv1.AppointmentStatus_APPOINTMENT_STATUS_UNSPECIFIED
	}
}

func fromProtoStatus(s citaplanv1.AppointmentStatus) (domain.AppointmentStatus, bool) {
	switch s {
	case citaplanv1.AppointmentStatus_APPOINTMENT_STATUS_PENDING:
		return domain.AppointmentStatusPending, true
	case citaplanv1.AppointmentStatus_APPOINTMENT_STATUS_CONFIRMED:
		return domain.AppointmentStatusConfirmed, true
	case citaplanv1.AppointmentStatus_APPOINTMENT_STATUS_CANCELLED:
		return domain.AppointmentStatusCancelled, true
	case citaplanv1.AppointmentStatus_APPOINTMENT_STATUS_COMPLETED:
		return domain.AppointmentStatusCompleted, true
	default:
		return "", false
	}
}

func toProtoPaymentStatus(s domain.PaymentStatus) citaplanv1.PaymentStatus {
	switch s {
	case domain.PaymentStatusUnpaid:
		return citaplanv1.PaymentStatus_PAYMENT_STATUS_UNPAID
	case domain.PaymentStatusPaid:
		return citaplanv1.PaymentStatus_PAYMENT_STATUS_PAID
	case domain.PaymentStatusRefunded:
		return citaplanv1.PaymentStatus_PAYMENT_STATUS_REFUNDED
	default:
		return citaplanv1.PaymentStatus_PAYMENT_STATUS_UNSPECIFIED
	}
}
