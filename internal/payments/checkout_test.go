package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"citaplan/backend/internal/domain"
	"citaplan/backend/internal/store"
)

type fakeAppointmentSource struct {
	getFn func(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
}

func (f *fakeAppointmentSource) Appointment(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	if f.getFn == nil {
		panic("Appointment not configured")
	}
	return f.getFn(ctx, appointmentID)
}

type fakeGateway struct {
	configured bool
	urlFn      func(ctx context.Context, appt domain.Appointment) (string, error)
}

func (f *fakeGateway) Configured() bool {
	return f.configured
}

func (f *fakeGateway) CheckoutURL(ctx context.Context, appt domain.Appointment) (string, error) {
	if f.urlFn == nil {
		panic("CheckoutURL not configured")
	}
	return f.urlFn(ctx, appt)
}

func checkoutBody(id string) *strings.Reader {
	return strings.NewReader(`{"appointment_id": "` + id + `"}`)
}

func TestCheckout_ReturnsURL(t *testing.T) {
	apptID, _ := uuid.NewV7()
	h := NewCheckoutHandler(
		&fakeGateway{
			configured: true,
			urlFn: func(ctx context.Context, appt domain.Appointment) (string, error) {
				if appt.ID != apptID {
					t.Fatalf("appointment id = %s, want %s", appt.ID, apptID)
				}
				return "https://checkout.stripe.test/cs_1", nil
			},
		},
		&fakeAppointmentSource{
			getFn: func(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
				return domain.Appointment{
					ID:            appointmentID,
					Status:        domain.AppointmentStatusPending,
					PaymentStatus: domain.PaymentStatusUnpaid,
				}, nil
			},
		},
		nil,
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/payments/checkout", checkoutBody(apptID.String())))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp["checkout_url"] != "https://checkout.stripe.test/cs_1" {
		t.Fatalf("checkout_url = %q", resp["checkout_url"])
	}
}

func TestCheckout_RejectsPaidAppointment(t *testing.T) {
	apptID, _ := uuid.NewV7()
	h := NewCheckoutHandler(
		&fakeGateway{configured: true},
		&fakeAppointmentSource{
			getFn: func(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
				return domain.Appointment{
					ID:            appointmentID,
					Status:        domain.AppointmentStatusConfirmed,
					PaymentStatus: domain.PaymentStatusPaid,
				}, nil
			},
		},
		nil,
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/payments/checkout", checkoutBody(apptID.String())))

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestCheckout_RejectsCancelledAppointment(t *testing.T) {
	apptID, _ := uuid.NewV7()
	h := NewCheckoutHandler(
		&fakeGateway{configured: true},
		&fakeAppointmentSource{
			getFn: func(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
				return domain.Appointment{
					ID:            appointmentID,
					Status:        domain.AppointmentStatusCancelled,
					PaymentStatus: domain.PaymentStatusUnpaid,
				}, nil
			},
		},
		nil,
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/payments/checkout", checkoutBody(apptID.String())))

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestCheckout_NotFound(t *testing.T) {
	h := NewCheckoutHandler(
		&fakeGateway{configured: true},
		&fakeAppointmentSource{
			getFn: func(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
				return domain.Appointment{}, store.ErrNotFound
			},
		},
		nil,
	)

	rec := httptest.NewRecorder()
	apptID, _ := uuid.NewV7()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/payments/checkout", checkoutBody(apptID.String())))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestCheckout_UnconfiguredGateway(t *testing.T) {
	h := NewCheckoutHandler(&fakeGateway{configured: false}, &fakeAppointmentSource{}, nil)

	rec := httptest.NewRecorder()
	apptID, _ := uuid.NewV7()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/payments/checkout", checkoutBody(apptID.String())))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}
