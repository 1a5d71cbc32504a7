package grpc

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"citaplan/backend/internal/domain"
	citaplanv1 "citaplan/backend/internal/gen/proto/citaplan/v1"
	"citaplan/backend/internal/store"
)

type fakeScheduleService struct {
	setFn    func(ctx context.Context, professionalID string, dayOfWeek int, start, end domain.TimeOfDay) (domain.AvailabilityWindow, error)
	listFn   func(ctx context.Context, professionalID string) ([]domain.AvailabilityWindow, error)
	removeFn func(ctx context.Context, professionalID string, windowID uuid.UUID) error
}

func (f *fakeScheduleService) SetAvailability(ctx context.Context, professionalID string, dayOfWeek int, start, end domain.TimeOfDay) (domain.AvailabilityWindow, error) {
	if f.setFn == nil {
		panic("SetAvailability not configured")
	}
	return f.setFn(ctx, professionalID, dayOfWeek, start, end)
}

func (f *fakeScheduleService) ListAvailability(ctx context.Context, professionalID string) ([]domain.AvailabilityWindow, error) {
	if f.listFn == nil {
		panic("ListAvailability not configured")
	}
	return f.listFn(ctx, professionalID)
}

func (f *fakeScheduleService) RemoveAvailability(ctx context.Context, professionalID string, windowID uuid.UUID) error {
	if f.removeFn == nil {
		panic("RemoveAvailability not configured")
	}
	return f.removeFn(ctx, professionalID, windowID)
}

func TestSetAvailability_CreatesWindow(t *testing.T) {
	windowID, _ := uuid.NewV7()
	srv := NewScheduleServer(&fakeScheduleService{
		setFn: func(ctx context.Context, professionalID string, dayOfWeek int, start, end domain.TimeOfDay) (domain.AvailabilityWindow, error) {
			if dayOfWeek != domain.WeekdayMonday {
				t.Fatalf("dayOfWeek = %d, want Monday", dayOfWeek)
			}
			return domain.AvailabilityWindow{
				ID:             windowID,
				ProfessionalID: professionalID,
				DayOfWeek:      dayOfWeek,
				StartTime:      start,
				EndTime:        end,
			}, nil
		},
	}, slog.Default())

	resp, err := srv.SetAvailability(context.Background(), &citaplanv1.SetAvailabilityRequest{
		ProfessionalId: "p1",
		DayOfWeek:      0,
		StartTime:      "09:00",
		EndTime:        "12:00",
	})
	if err != nil {
		t.Fatalf("SetAvailability error: %v", err)
	}
	if resp.Window.Id != windowID.String() {
		t.Fatalf("id = %s, want %s", resp.Window.Id, windowID)
	}
	if resp.Window.StartTime != "09:00" || resp.Window.EndTime != "12:00" {
		t.Fatalf("window times = %s-%s, want 09:00-12:00", resp.Window.StartTime, resp.Window.EndTime)
	}
}

func TestSetAvailability_RejectsBadTime(t *testing.T) {
	srv := NewScheduleServer(&fakeScheduleService{}, slog.Default())

	_, err := srv.SetAvailability(context.Background(), &citaplanv1.SetAvailabilityRequest{
		ProfessionalId: "p1",
		StartTime:      "9am",
		EndTime:        "12:00",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}
}

func TestListAvailability_ReturnsWindows(t *testing.T) {
	srv := NewScheduleServer(&fakeScheduleService{
		listFn: func(ctx context.Context, professionalID string) ([]domain.AvailabilityWindow, error) {
			id, _ := uuid.NewV7()
			return []domain.AvailabilityWindow{
				{
					ID:             id,
					ProfessionalID: professionalID,
					DayOfWeek:      domain.WeekdayFriday,
					StartTime:      domain.NewTimeOfDay(14, 0),
					EndTime:        domain.NewTimeOfDay(18, 0),
				},
			}, nil
		},
	}, slog.Default())

	resp, err := srv.ListAvailability(context.Background(), &citaplanv1.ListAvailabilityRequest{ProfessionalId: "p1"})
	if err != nil {
		t.Fatalf("ListAvailability error: %v", err)
	}
	if len(resp.Windows) != 1 || resp.Windows[0].DayOfWeek != int32(domain.WeekdayFriday) {
		t.Fatalf("windows = %v, want one Friday window", resp.Windows)
	}
}

func TestRemoveAvailability_NotFound(t *testing.T) {
	srv := NewScheduleServer(&fakeScheduleService{
		removeFn: func(ctx context.Context, professionalID string, windowID uuid.UUID) error {
			return store.ErrNotFound
		},
	}, slog.Default())

	windowID, _ := uuid.NewV7()
	_, err := srv.RemoveAvailability(context.Background(), &citaplanv1.RemoveAvailabilityRequest{
		ProfessionalId: "p1",
		WindowId:       windowID.String(),
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.NotFound)
	}
}
