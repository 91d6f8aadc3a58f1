package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"coachmarket.backend/internal/domain/gateway"
	"coachmarket.backend/internal/interfaces/http/middleware"
	"coachmarket.backend/internal/interfaces/http/response"
	"coachmarket.backend/pkg/logger"
)

// EventVerifier authenticates a raw webhook delivery and decodes its
// envelope.
type EventVerifier interface {
	ConstructEvent(payload []byte, sigHeader string) (*gateway.Event, error)
}

// WebhookProcessor applies a verified event to local state.
type WebhookProcessor interface {
	ProcessEvent(ctx context.Context, event *gateway.Event) error
}

// WebhookHandler handles gateway webhook endpoints
type WebhookHandler struct {
	webhookUsecase WebhookProcessor
	verifier       EventVerifier
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(webhookUsecase WebhookProcessor, verifier EventVerifier) *WebhookHandler {
	return &WebhookHandler{
		webhookUsecase: webhookUsecase,
		verifier:       verifier,
	}
}

// HandleStripeWebhook verifies and processes an incoming gateway event
// POST /api/v1/webhooks/stripe
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "ERR_INVALID_INPUT", "unreadable payload")
		return
	}

	event, err := h.verifier.ConstructEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		logger.Warn(c.Request.Context(), "webhook signature rejected", zap.Error(err))
		middleware.CountWebhookEvent("unknown", "rejected")
		response.ErrorWithStatus(c, http.StatusBadRequest, "ERR_SIGNATURE", "signature verification failed")
		return
	}

	if err := h.webhookUsecase.ProcessEvent(c.Request.Context(), event); err != nil {
		logger.Error(c.Request.Context(), "webhook processing failed",
			zap.Error(err),
			zap.String("event_id", event.ID),
			zap.String("event_type", event.Type),
		)
		middleware.CountWebhookEvent(event.Type, "failed")
		// A non-2xx response makes the gateway redeliver the event later.
		response.ErrorWithStatus(c, http.StatusInternalServerError, "ERR_INTERNAL", "failed to process event")
		return
	}

	middleware.CountWebhookEvent(event.Type, "processed")
	c.JSON(http.StatusOK, gin.H{"received": true})
}
