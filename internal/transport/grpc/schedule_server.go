package grpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"citaplan/backend/internal/domain"
	citaplanv1 "citaplan/backend/internal/gen/proto/citaplan/v1"
	"citaplan/backend/internal/service/booking"
	"citaplan/backend/internal/store"
)

type ScheduleServer struct {
	citaplanv1.UnimplementedScheduleServiceServer

	svc scheduleService
	log *slog.Logger
}

type scheduleService interface {
	SetAvailability(ctx context.Context, professionalID string, dayOfWeek int, start, end domain.TimeOfDay) (domain.AvailabilityWindow, error)
	ListAvailability(ctx context.Context, professionalID string) ([]domain.AvailabilityWindow, error)
	RemoveAvailability(ctx context.Context, professionalID string, windowID uuid.UUID) error
}

func NewScheduleServer(svc scheduleService, log *slog.Logger) *ScheduleServer {
	if log == nil {
		log = slog.Default()
	}
	return &ScheduleServer{
		svc: svc,
		log: log.With(slog.String("component", "grpc.schedule")),
	}
}

func (s *ScheduleServer) SetAvailability(ctx context.Context, req *citaplanv1.SetAvailabilityRequest) (*citaplanv1.SetAvailabilityResponse, error) {
	log := s.log.With(slog.String("rpc", "SetAvailability"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
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

	window, err := s.svc.SetAvailability(ctx, req.ProfessionalId, int(req.DayOfWeek), start, end)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("professional_id", req.ProfessionalId))
			return nil, status.Error(codes.InvalidArgument, vErr.Error())
		}
		log.Error("availability create failed", slog.Any("err", err), slog.String("professional_id", req.ProfessionalId))
		return nil, status.Error(codes.Internal, "internal error")
	}

	log.Info("availability window created",
		slog.String("window_id", window.ID.String()),
		slog.String("professional_id", window.ProfessionalID),
		slog.Int("day_of_week", window.DayOfWeek),
		slog.String("start_time", window.StartTime.String()),
		slog.String("end_time", window.EndTime.String()),
	)
	return &citaplanv1.SetAvailabilityResponse{Window: toProtoWindow(window)}, nil
}

func (s *ScheduleServer) ListAvailability(ctx context.Context, req *citaplanv1.ListAvailabilityRequest) (*citaplanv1.ListAvailabilityResponse, error) {
	log := s.log.With(slog.String("rpc", "ListAvailability"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	windows, err := s.svc.ListAvailability(ctx, req.ProfessionalId)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("professional_id", req.ProfessionalId))
			return nil, status.Error(codes.InvalidArgument, vErr.Error())
		}
		log.Error("availability list failed", slog.Any("err", err), slog.String("professional_id", req.ProfessionalId))
		return nil, status.Error(codes.Internal, "internal error")
	}

	out := make([]*citaplanv1.AvailabilityWindow, 0, len(windows))
	for _, w := range windows {
		out = append(out, toProtoWindow(w))
	}

	log.Debug("availability listed",
		slog.String("professional_id", req.ProfessionalId),
		slog.Int("count", len(out)),
	)
	return &citaplanv1.ListAvailabilityResponse{Windows: out}, nil
}

func (s *ScheduleServer) RemoveAvailability(ctx context.Context, req *citaplanv1.RemoveAvailabilityRequest) (*citaplanv1.RemoveAvailabilityResponse, error) {
	log := s.log.With(slog.String("rpc", "RemoveAvailability"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := uuid.Parse(req.WindowId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"), slog.String("professional_id", req.ProfessionalId))
		return nil, status.Error(codes.InvalidArgument, "window_id must be a UUID")
	}

	if err := s.svc.RemoveAvailability(ctx, req.ProfessionalId, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("availability window not found", slog.String("window_id", id.String()), slog.String("professional_id", req.ProfessionalId))
			return nil, status.Error(codes.NotFound, "availability window not found")
		}
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("professional_id", req.ProfessionalId))
			return nil, status.Error(codes.InvalidArgument, vErr.Error())
		}
		log.Error("availability delete failed", slog.Any("err", err), slog.String("window_id", id.String()))
		return nil, status.Error(codes.Internal, "internal error")
	}

	log.Info("availability window removed", slog.String("window_id", id.String()), slog.String("professional_id", req.ProfessionalId))
	return &citaplanv1.RemoveAvailabilityResponse{}, nil
}

func toProtoWindow(w domain.AvailabilityWindow) *citaplanv1.AvailabilityWindow {
	return &citaplanv1.AvailabilityWindow{
		Id:             w.ID.String(),
		ProfessionalId: w.ProfessionalID,
		DayOfWeek:      int32(w.DayOfWeek),
		StartTime:      w.StartTime.String(),
		EndTime:        w.EndTime.String(),
	}
}
