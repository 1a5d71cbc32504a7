package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"

	"citaplan/backend/internal/domain"
	"citaplan/backend/internal/store"
)

type paymentConfirmer interface {
	ConfirmPayment(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
}

// WebhookHandler verifies and processes Stripe webhook events. Signature
// verification is the only auth on this endpoint, so it must stay enabled.
// A captured payment auto-confirms the pending appointment named in the
// session metadata.
type WebhookHandler struct {
	cfg Config
	svc paymentConfirmer
	log *slog.Logger
}

func NewWebhookHandler(cfg Config, svc paymentConfirmer, log *slog.Logger) *WebhookHandler {
	if log == nil {
		log = slog.Default()
	}
	if cfg.WebhookTolerance <= 0 {
		cfg.WebhookTolerance = webhook.DefaultTolerance
	}
	return &WebhookHandler{
		cfg: cfg,
		svc: svc,
		log: log.With(slog.String("component", "payments.webhook")),
	}
}

func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if strings.TrimSpace(h.cfg.WebhookSecret) == "" {
		http.Error(w, "stripe webhook not configured", http.StatusServiceUnavailable)
		return
	}

	sigHeader := r.Header.Get("Stripe-Signature")
	if strings.TrimSpace(sigHeader) == "" {
		http.Error(w, "missing Stripe-Signature header", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1 MiB hard cap
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	evt, err := webhook.ConstructEventWithTolerance(body, sigHeader, h.cfg.WebhookSecret, h.cfg.WebhookTolerance)
	if err != nil {
		http.Error(w, "invalid signature", http.StatusBadRequest)
		return
	}

	h.log.Info("payment provider event received",
		slog.String("provider_event_id", evt.ID),
		slog.String("event_type", string(evt.Type)),
	)

	switch evt.Type {
	case "checkout.session.completed":
		h.handleCheckoutCompleted(w, r, evt)
	default:
		// Acknowledge everything else so Stripe stops retrying.
		writeJSON(w, http.StatusOK, map[string]any{"status": "ignored"})
	}
}

func (h *WebhookHandler) handleCheckoutCompleted(w http.ResponseWriter, r *http.Request, evt stripe.Event) {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(evt.Data.Raw, &sess); err != nil {
		http.Error(w, "malformed event payload", http.StatusBadRequest)
		return
	}

	apptID, err := uuid.Parse(sess.Metadata["appointment_id"])
	if err != nil {
		h.log.Warn("checkout session without appointment metadata", slog.String("session_id", sess.ID))
		http.Error(w, "missing appointment_id metadata", http.StatusBadRequest)
		return
	}

	appt, err := h.svc.ConfirmPayment(r.Context(), apptID)
	if err != nil {
		// Acknowledge payments for appointments that no longer exist;
		// returning an error would make Stripe retry the event forever.
		if errors.Is(err, store.ErrNotFound) {
			h.log.Warn("payment for unknown appointment", slog.String("appointment_id", apptID.String()))
			writeJSON(w, http.StatusOK, map[string]any{"status": "ignored"})
			return
		}
		h.log.Error("payment confirmation failed",
			slog.Any("err", err),
			slog.String("appointment_id", apptID.String()),
		)
		http.Error(w, "failed to apply payment", http.StatusInternalServerError)
		return
	}

	h.log.Info("payment captured",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("status", string(appt.Status)),
	)
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "processed",
		"appointment_id": appt.ID.String(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
