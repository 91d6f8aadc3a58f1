package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PaymentStatus mirrors the gateway's settlement status for a completed
// checkout session.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

// Payment represents a settled (or at least gateway-confirmed) checkout.
// Rows are written only by the webhook processor, keyed by the gateway
// session id, so an abandoned session never produces a row and a redelivered
// event never produces a second one.
type Payment struct {
	ID          uuid.UUID     `json:"id"`
	SessionID   string        `json:"sessionId"`
	AmountMinor int64         `json:"amountMinor"`
	Currency    string        `json:"currency"`
	Status      PaymentStatus `json:"status"`
	CoachID     *uuid.UUID    `json:"coachId,omitempty"`
	ClientID    *uuid.UUID    `json:"clientId,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// CreateCheckoutInput represents input for creating a checkout session.
// Amount is a decimal major-currency value ("40" or 40.5); it is normalized
// to integer minor units at this boundary and nowhere else.
type CreateCheckoutInput struct {
	CoachID  string      `json:"coachId" binding:"required"`
	Amount   json.Number `json:"amount" binding:"required"`
	ClientID string      `json:"clientId"`
}

// CreateCheckoutResponse carries the hosted-page redirect URL.
type CreateCheckoutResponse struct {
	URL string `json:"url"`
}

// OnboardingLinkInput identifies the coach requesting an onboarding link.
// Either slug or coachId may be supplied.
type OnboardingLinkInput struct {
	Slug    string `json:"slug"`
	CoachID string `json:"coachId"`
}

// OnboardingLinkResponse carries the single-use onboarding URL. Callers must
// not cache it; it expires per gateway policy.
type OnboardingLinkResponse struct {
	URL string `json:"url"`
}

// WebhookEvent records a handled gateway delivery for audit purposes.
type WebhookEvent struct {
	ID          uuid.UUID   `json:"id"`
	EventID     string      `json:"eventId"`
	EventType   string      `json:"eventType"`
	ProcessedAt time.Time   `json:"processedAt"`
	Metadata    null.String `json:"metadata,omitempty"`
}
