package payments

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"

	"citaplan/backend/internal/domain"
)

type Config struct {
	SecretKey        string
	WebhookSecret    string
	WebhookTolerance time.Duration
	// CostCents is the flat per-appointment price, in cents.
	CostCents  int64
	Currency   string
	SuccessURL string
	CancelURL  string
}

// Gateway wraps the Stripe API for appointment payments. The appointment
// id travels in the checkout session metadata and comes back on the
// webhook, so the two sides need no shared state.
type Gateway struct {
	cfg Config
	log *slog.Logger
}

func NewGateway(cfg Config, log *slog.Logger) *Gateway {
	if log == nil {
		log = slog.Default()
	}
	if cfg.WebhookTolerance <= 0 {
		cfg.WebhookTolerance = 5 * time.Minute
	}
	if cfg.Currency == "" {
		cfg.Currency = "eur"
	}
	if cfg.CostCents <= 0 {
		cfg.CostCents = 5000
	}
	stripe.Key = cfg.SecretKey
	return &Gateway{cfg: cfg, log: log.With(slog.String("component", "payments.stripe"))}
}

func (g *Gateway) Configured() bool {
	return g.cfg.SecretKey != ""
}

// CheckoutURL creates a Stripe Checkout session for an appointment and
// returns the redirect URL.
func (g *Gateway) CheckoutURL(ctx context.Context, appt domain.Appointment) (string, error) {
	if !g.Configured() {
		return "", fmt.Errorf("stripe secret key not configured")
	}

	name := fmt.Sprintf("Appointment on %s at %s", appt.Date.Format("2006-01-02"), appt.StartTime)
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(g.cfg.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(name),
					},
					UnitAmount: stripe.Int64(g.cfg.CostCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(g.cfg.SuccessURL),
		CancelURL:  stripe.String(g.cfg.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata("appointment_id", appt.ID.String())
	params.AddMetadata("professional_id", appt.ProfessionalID)
	params.AddMetadata("client_id", appt.ClientID)

	s, err := session.New(params)
	if err != nil {
		return "", err
	}

	g.log.Info("checkout session created",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("session_id", s.ID),
	)
	return s.URL, nil
}
