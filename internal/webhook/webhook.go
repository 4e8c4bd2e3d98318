// Package webhook receives payment-provider notifications. The handler
// only checks that a signature header is present; it does NOT verify
// the signature cryptographically. That gap is logged on every request
// so it cannot pass silently.
package webhook

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/plusgraphics/backoffice/internal/httpx"
)

const signatureHeader = "Stripe-Signature"

// Event is the provider's envelope; only the type and object payload
// are consumed.
type Event struct {
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// Handler dispatches provider events by type. Every handler is a no-op
// beyond logging until billing automation lands server-side.
type Handler struct {
	log *zap.Logger
}

func NewHandler(log *zap.Logger) *Handler {
	return &Handler{log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get(signatureHeader) == "" {
		httpx.JSONError(w, http.StatusBadRequest, "no_signature_provided", nil)
		return
	}
	// Known gap: the signature is not verified against the provider
	// secret. Do not trust these events for anything irreversible.
	h.log.Warn("webhook signature accepted without verification",
		zap.String("remote", r.RemoteAddr))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "unreadable_body", nil)
		return
	}
	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}

	switch event.Type {
	case "customer.subscription.created":
		h.subscriptionCreated(event)
	case "customer.subscription.updated":
		h.subscriptionUpdated(event)
	case "customer.subscription.deleted":
		h.subscriptionDeleted(event)
	case "invoice.payment_succeeded":
		h.invoicePaymentSucceeded(event)
	case "invoice.payment_failed":
		h.invoicePaymentFailed(event)
	default:
		h.log.Info("unhandled webhook event type", zap.String("type", event.Type))
	}

	httpx.JSON(w, http.StatusOK, map[string]bool{"received": true})
}

func (h *Handler) subscriptionCreated(e Event) {
	h.log.Info("subscription created", zap.String("type", e.Type))
}

func (h *Handler) subscriptionUpdated(e Event) {
	h.log.Info("subscription updated", zap.String("type", e.Type))
}

func (h *Handler) subscriptionDeleted(e Event) {
	h.log.Info("subscription deleted", zap.String("type", e.Type))
}

func (h *Handler) invoicePaymentSucceeded(e Event) {
	h.log.Info("invoice payment succeeded", zap.String("type", e.Type))
}

func (h *Handler) invoicePaymentFailed(e Event) {
	h.log.Info("invoice payment failed", zap.String("type", e.Type))
}
