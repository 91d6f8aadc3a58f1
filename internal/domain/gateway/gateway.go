package gateway

import (
	"context"
	"encoding/json"
)

// Gateway is the port to the hosted payment processor. Implementations talk
// to the real API; usecases and tests only see this interface.
type Gateway interface {
	// CreateAccount creates a connected account able to receive transfers.
	CreateAccount(ctx context.Context, params *CreateAccountParams) (*Account, error)
	// CreateAccountLink issues a fresh single-use onboarding URL for an
	// existing connected account.
	CreateAccountLink(ctx context.Context, params *AccountLinkParams) (*AccountLink, error)
	// CreateCheckoutSession creates a hosted checkout page that splits the
	// charge between the platform and a connected account.
	CreateCheckoutSession(ctx context.Context, params *CheckoutSessionParams) (*CheckoutSession, error)
	// GetPaymentIntent fetches a payment intent; used as a fallback when a
	// completed-session event carries no settled amount.
	GetPaymentIntent(ctx context.Context, id string) (*PaymentIntent, error)
}

// CreateAccountParams describes the connected account to create.
type CreateAccountParams struct {
	Email        string
	Country      string
	BusinessType string
}

// AccountRequirements mirrors the gateway's outstanding-requirements block.
type AccountRequirements struct {
	CurrentlyDue   []string `json:"currently_due"`
	DisabledReason string   `json:"disabled_reason"`
}

// Account is the gateway's view of a connected account.
type Account struct {
	ID               string              `json:"id"`
	ChargesEnabled   bool                `json:"charges_enabled"`
	DetailsSubmitted bool                `json:"details_submitted"`
	Requirements     AccountRequirements `json:"requirements"`
}

// AccountLinkParams describes the onboarding link to issue.
type AccountLinkParams struct {
	AccountID  string
	ReturnURL  string
	RefreshURL string
}

// AccountLink is a single-use onboarding URL.
type AccountLink struct {
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}

// CheckoutSessionParams describes a single-payment hosted checkout with a
// destination transfer to a connected account.
type CheckoutSessionParams struct {
	AmountMinor        int64
	Currency           string
	ProductName        string
	DestinationAccount string
	ApplicationFee     int64
	Metadata           map[string]string
	SuccessURL         string
	CancelURL          string
}

// CheckoutSession is the gateway's view of a checkout session. The same
// shape decodes both API responses and webhook event objects.
type CheckoutSession struct {
	ID              string            `json:"id"`
	URL             string            `json:"url"`
	AmountTotal     int64             `json:"amount_total"`
	Currency        string            `json:"currency"`
	PaymentStatus   string            `json:"payment_status"`
	PaymentIntentID string            `json:"payment_intent"`
	Metadata        map[string]string `json:"metadata"`
}

// PaymentIntent is the gateway's view of the underlying payment.
type PaymentIntent struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// Event is a signed webhook delivery.
type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}
