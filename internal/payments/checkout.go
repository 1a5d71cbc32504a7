package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"citaplan/backend/internal/domain"
	"citaplan/backend/internal/store"
)

type appointmentSource interface {
	Appointment(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
}

type checkoutCreator interface {
	Configured() bool
	CheckoutURL(ctx context.Context, appt domain.Appointment) (string, error)
}

// CheckoutHandler starts a Stripe Checkout flow for a booked appointment.
// Only unpaid, non-terminal appointments can be paid for.
type CheckoutHandler struct {
	gateway checkoutCreator
	svc     appointmentSource
	log     *slog.Logger
}

func NewCheckoutHandler(gateway checkoutCreator, svc appointmentSource, log *slog.Logger) *CheckoutHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CheckoutHandler{
		gateway: gateway,
		svc:     svc,
		log:     log.With(slog.String("component", "payments.checkout")),
	}
}

type checkoutRequest struct {
	AppointmentID string `json:"appointment_id"`
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.gateway.Configured() {
		http.Error(w, "payments not configured", http.StatusServiceUnavailable)
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}
	apptID, err := uuid.Parse(req.AppointmentID)
	if err != nil {
		http.Error(w, "appointment_id must be a UUID", http.StatusBadRequest)
		return
	}

	appt, err := h.svc.Appointment(r.Context(), apptID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		h.log.Error("appointment lookup failed", slog.Any("err", err), slog.String("appointment_id", apptID.String()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	switch {
	case appt.PaymentStatus == domain.PaymentStatusPaid:
		http.Error(w, "appointment is already paid", http.StatusConflict)
		return
	case appt.Status == domain.AppointmentStatusCancelled || appt.Status == domain.AppointmentStatusCompleted:
		http.Error(w, "appointment can no longer be paid", http.StatusConflict)
		return
	}

	checkoutURL, err := h.gateway.CheckoutURL(r.Context(), appt)
	if err != nil {
		h.log.Error("checkout session create failed", slog.Any("err", err), slog.String("appointment_id", apptID.String()))
		http.Error(w, "failed to start checkout", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"appointment_id": appt.ID.String(),
		"checkout_url":   checkoutURL,
	})
}
