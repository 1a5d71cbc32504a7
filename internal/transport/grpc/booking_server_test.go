package grpc

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"citaplan/backend/internal/domain"
	citaplanv1 "citaplan/backend/internal/gen/proto/citaplan/v1"
	"citaplan/backend/internal/service/booking"
)

type fakeBookingService struct {
	slotsFn        func(ctx context.Context, professionalID string, date time.Time) ([]domain.Slot, error)
	bookFn         func(ctx context.Context, in booking.BookInput) (booking.Decision, error)
	cancelFn       func(ctx context.Context, appointmentID uuid.UUID) (booking.CancelResult, error)
	updateStatusFn func(ctx context.Context, appointmentID uuid.UUID, newStatus domain.AppointmentStatus) (booking.StatusResult, domain.Appointment, error)
	listForDayFn   func(ctx context.Context, professionalID string, date time.Time) ([]domain.Appointment, error)
}

func (f *fakeBookingService) Slots(ctx context.Context, professionalID string, date time.Time) ([]domain.Slot, error) {
	if f.slotsFn == nil {
		panic("Slots not configured")
	}
	return f.slotsFn(ctx, professionalID, date)
}

func (f *fakeBookingService) Book(ctx context.Context, in booking.BookInput) (booking.Decision, error) {
	if f.bookFn == nil {
		panic("Book not configured")
	}
	return f.bookFn(ctx, in)
}

func (f *fakeBookingService) Cancel(ctx context.Context, appointmentID uuid.UUID) (booking.CancelResult, error) {
	if f.cancelFn == nil {
		panic("Cancel not configured")
	}
	return f.cancelFn(ctx, appointmentID)
}

func (f *fakeBookingService) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, newStatus domain.AppointmentStatus) (booking.StatusResult, domain.Appointment, error) {
	if f.updateStatusFn == nil {
		panic("UpdateStatus not configured")
	}
	return f.updateStatusFn(ctx, appointmentID, newStatus)
}

func (f *fakeBookingService) ListForDay(ctx context.Context, professionalID string, date time.Time) ([]domain.Appointment, error) {
	if f.listForDayFn == nil {
		panic("ListForDay not configured")
	}
	return f.listForDayFn(ctx, professionalID, date)
}

func TestGetSlots_RejectsBadDate(t *testing.T) {
	srv := NewBookingServer(&fakeBookingService{}, slog.Default())

	_, err := srv.GetSlots(context.Background(), &citaplanv1.GetSlotsRequest{
		ProfessionalId: "p1",
		Date:           "05/01/2026",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}
}

func TestGetSlots_FormatsTimes(t *testing.T) {
	srv := NewBookingServer(&fakeBookingService{
		slotsFn: func(ctx context.Context, professionalID string, date time.Time) ([]domain.Slot, error) {
			if professionalID != "p1" {
				t.Fatalf("professionalID = %q, want p1", professionalID)
			}
			want := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
			if !date.Equal(want) {
				t.Fatalf("date = %s, want %s", date, want)
			}
			return []domain.Slot{
				{Start: domain.NewTimeOfDay(9, 0), End: domain.NewTimeOfDay(10, 0)},
			}, nil
		},
	}, slog.Default())

	resp, err := srv.GetSlots(context.Background(), &citaplanv1.GetSlotsRequest{
		ProfessionalId: "p1",
		Date:           "2026-01-05",
	})
	if err != nil {
		t.Fatalf("GetSlots error: %v", err)
	}
	if len(resp.Slots) != 1 || resp.Slots[0].StartTime != "09:00" || resp.Slots[0].EndTime != "10:00" {
		t.Fatalf("slots = %v, want one 09:00-10:00", resp.Slots)
	}
}

func TestBookAppointment_Accepted(t *testing.T) {
	apptID, _ := uuid.NewV7()
	srv := NewBookingServer(&fakeBookingService{
		bookFn: func(ctx context.Context, in booking.BookInput) (booking.Decision, error) {
			return booking.Decision{
				Outcome: booking.DecisionAccepted,
				Appointment: domain.Appointment{
					ID:             apptID,
					ProfessionalID: in.ProfessionalID,
					ClientID:       in.ClientID,
					Date:           in.Date,
					StartTime:      in.StartTime,
					EndTime:        in.EndTime,
					Status:         domain.AppointmentStatusPending,
					PaymentStatus:  domain.PaymentStatusUnpaid,
				},
			}, nil
		},
	}, slog.Default())

	resp, err := srv.BookAppointment(context.Background(), &citaplanv1.BookAppointmentRequest{
		ProfessionalId: "p1",
		ClientId:       "c1",
		Date:           "2026-01-05",
		StartTime:      "09:00",
		EndTime:        "10:00",
	})
	if err != nil {
		t.Fatalf("BookAppointment error: %v", err)
	}
	if resp.Appointment.Id != apptID.String() {
		t.Fatalf("id = %s, want %s", resp.Appointment.Id, apptID)
	}
	if resp.Appointment.Status != citaplanv1.AppointmentStatus_APPOINTMENT_STATUS_PENDING {
		t.Fatalf("status = %s, want pending", resp.Appointment.Status)
	}
	if resp.Appointment.Date != "2026-01-05" || resp.Appointment.StartTime != "09:00" {
		t.Fatalf("date/start = %s %s, want 2026-01-05 09:00", resp.Appointment.Date, resp.Appointment.StartTime)
	}
}

func TestBookAppointment_RejectionsMapToFailedPrecondition(t *testing.T) {
	tests := []struct {
		name    string
		outcome booking.DecisionOutcome
	}{
		{"past date", booking.DecisionPastDate},
		{"outside schedule", booking.DecisionOutsideSchedule},
		{"conflict", booking.DecisionConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewBookingServer(&fakeBookingService{
				bookFn: func(ctx context.Context, in booking.BookInput) (booking.Decision, error) {
					return booking.Decision{Outcome: tt.outcome}, nil
				},
			}, slog.Default())

			_, err := srv.BookAppointment(context.Background(), &citaplanv1.BookAppointmentRequest{
				ProfessionalId: "p1",
				ClientId:       "c1",
				Date:           "2026-01-05",
				StartTime:      "09:00",
				EndTime:        "10:00",
			})
			if status.Code(err) != codes.FailedPrecondition {
				t.Fatalf("code = %s, want %s", status.Code(err), codes.FailedPrecondition)
			}
		})
	}
}

func TestBookAppointment_ValidationErrorMapsToInvalidArgument(t *testing.T) {
	srv := NewBookingServer(&fakeBookingService{
		bookFn: func(ctx context.Context, in booking.BookInput) (booking.Decision, error) {
			return booking.Decision{}, &booking.ValidationError{}
		},
	}, slog.Default())

	_, err := srv.BookAppointment(context.Background(), &citaplanv1.BookAppointmentRequest{
		Date:      "2026-01-05",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}
}

func TestBookAppointment_StorageErrorMapsToInternal(t *testing.T) {
	srv := NewBookingServer(&fakeBookingService{
		bookFn: func(ctx context.Context, in booking.BookInput) (booking.Decision, error) {
			return booking.Decision{}, errors.New("db down")
		},
	}, slog.Default())

	_, err := srv.BookAppointment(context.Background(), &citaplanv1.BookAppointmentRequest{
		ProfessionalId: "p1",
		ClientId:       "c1",
		Date:           "2026-01-05",
		StartTime:      "09:00",
		EndTime:        "10:00",
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.Internal)
	}
}

func TestCancelAppointment_Results(t *testing.T) {
	apptID, _ := uuid.NewV7()

	tests := []struct {
		name            string
		result          booking.CancelResult
		wantCode        codes.Code
		wantAlreadyDone bool
	}{
		{"cancelled", booking.CancelCancelled, codes.OK, false},
		{"already cancelled", booking.CancelAlreadyCancelled, codes.OK, true},
		{"completed", booking.CancelNotAllowed, codes.FailedPrecondition, false},
		{"not found", booking.CancelNotFound, codes.NotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewBookingServer(&fakeBookingService{
				cancelFn: func(ctx context.Context, appointmentID uuid.UUID) (booking.CancelResult, error) {
					if appointmentID != apptID {
						t.Fatalf("appointmentID = %s, want %s", appointmentID, apptID)
					}
					return tt.result, nil
				},
			}, slog.Default())

			resp, err := srv.CancelAppointment(context.Background(), &citaplanv1.CancelAppointmentRequest{
				AppointmentId: apptID.String(),
			})
			if status.Code(err) != tt.wantCode {
				t.Fatalf("code = %s, want %s", status.Code(err), tt.wantCode)
			}
			if tt.wantCode == codes.OK && resp.AlreadyCancelled != tt.wantAlreadyDone {
				t.Fatalf("already_cancelled = %v, want %v", resp.AlreadyCancelled, tt.wantAlreadyDone)
			}
		})
	}
}

func TestCancelAppointment_RejectsBadUUID(t *testing.T) {
	srv := NewBookingServer(&fakeBookingService{}, slog.Default())

	_, err := srv.CancelAppointment(context.Background(), &citaplanv1.CancelAppointmentRequest{
		AppointmentId: "not-a-uuid",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}
}

func TestUpdateAppointmentStatus_InvalidTransition(t *testing.T) {
	apptID, _ := uuid.NewV7()
	srv := NewBookingServer(&fakeBookingService{
		updateStatusFn: func(ctx context.Context, appointmentID uuid.UUID, newStatus domain.AppointmentStatus) (booking.StatusResult, domain.Appointment, error) {
			return booking.StatusInvalidTransition, domain.Appointment{
				ID:     appointmentID,
				Status: domain.AppointmentStatusCompleted,
			}, nil
		},
	}, slog.Default())

	_, err := srv.UpdateAppointmentStatus(context.Background(), &citaplanv1.UpdateAppointmentStatusRequest{
		AppointmentId: apptID.String(),
		Status:        citaplanv1.AppointmentStatus_APPOINTMENT_STATUS_CONFIRMED,
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.FailedPrecondition)
	}
}

func TestUpdateAppointmentStatus_RejectsUnspecified(t *testing.T) {
	srv := NewBookingServer(&fakeBookingService{}, slog.Default())

	apptID, _ := uuid.NewV7()
	_, err := srv.UpdateAppointmentStatus(context.Background(), &citaplanv1.UpdateAppointmentStatusRequest{
		AppointmentId: apptID.String(),
		Status:        citaplanv1.AppointmentStatus_APPOINTMENT_STATUS_UNSPECIFIED,
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}
}

func TestUpdateAppointmentStatus_Updated(t *testing.T) {
	apptID, _ := uuid.NewV7()
	srv := NewBookingServer(&fakeBookingService{
		updateStatusFn: func(ctx context.Context, appointmentID uuid.UUID, newStatus domain.AppointmentStatus) (booking.StatusResult, domain.Appointment, error) {
			if newStatus != domain.AppointmentStatusCompleted {
				t.Fatalf("newStatus = %s, want completed", newStatus)
			}
			return booking.StatusUpdated, domain.Appointment{
				ID:     appointmentID,
				Status: domain.AppointmentStatusCompleted,
			}, nil
		},
	}, slog.Default())

	resp, err := srv.UpdateAppointmentStatus(context.Background(), &citaplanv1.UpdateAppointmentStatusRequest{
		AppointmentId: apptID.String(),
		Status:        citaplanv1.AppointmentStatus_APPOINTMENT_STATUS_COMPLETED,
	})
	if err != nil {
		t.Fatalf("UpdateAppointmentStatus error: %v", err)
	}
	if resp.Appointment.Status != citaplanv1.AppointmentStatus_APPOINTMENT_STATUS_COMPLETED {
		t.Fatalf("status = %s, want completed", resp.Appointment.Status)
	}
}

func TestListAppointments_IncludesCancelled(t *testing.T) {
	srv := NewBookingServer(&fakeBookingService{
		listForDayFn: func(ctx context.Context, professionalID string, date time.Time) ([]domain.Appointment, error) {
			id1, _ := uuid.NewV7()
			id2, _ := uuid.NewV7()
			return []domain.Appointment{
				{ID: id1, Status: domain.AppointmentStatusConfirmed, StartTime: domain.NewTimeOfDay(9, 0), EndTime: domain.NewTimeOfDay(10, 0), Date: date},
				{ID: id2, Status: domain.AppointmentStatusCancelled, StartTime: domain.NewTimeOfDay(10, 0), EndTime: domain.NewTimeOfDay(11, 0), Date: date},
			}, nil
		},
	}, slog.Default())

	resp, err := srv.ListAppointments(context.Background(), &citaplanv1.ListAppointmentsRequest{
		ProfessionalId: "p1",
		Date:           "2026-01-05",
	})
	if err != nil {
		t.Fatalf("ListAppointments error: %v", err)
	}
	if len(resp.Appointments) != 2 {
		t.Fatalf("appointments = %d, want 2", len(resp.Appointments))
	}
	if resp.Appointments[1].Status != citaplanv1.AppointmentStatus_APPOINTMENT_STATUS_CANCELLED {
		t.Fatalf("second status = %s, want cancelled", resp.Appointments[1].Status)
	}
}
