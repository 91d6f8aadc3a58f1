package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"coachmarket.backend/internal/config"
	"coachmarket.backend/internal/domain/gateway"
)

const defaultAPIBase = "https://api.stripe.com"

// Client talks to the Stripe REST API with form-encoded requests. The base
// URL is configurable so tests can point it at a local server.
type Client struct {
	httpClient *http.Client
	apiBase    string
	secretKey  string
}

func NewClient(cfg *config.StripeConfig) *Client {
	base := cfg.APIBase
	if base == "" {
		base = defaultAPIBase
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiBase:    strings.TrimSuffix(base, "/"),
		secretKey:  cfg.SecretKey,
	}
}

var _ gateway.Gateway = (*Client)(nil)

func (c *Client) CreateAccount(ctx context.Context, params *gateway.CreateAccountParams) (*gateway.Account, error) {
	form := url.Values{}
	form.Set("type", "express")
	form.Set("email", params.Email)
	if params.Country != "" {
		form.Set("country", params.Country)
	}
	if params.BusinessType != "" {
		form.Set("business_type", params.BusinessType)
	}
	form.Set("capabilities[card_payments][requested]", "true")
	form.Set("capabilities[transfers][requested]", "true")

	var account gateway.Account
	if err := c.postForm(ctx, "/v1/accounts", form, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) CreateAccountLink(ctx context.Context, params *gateway.AccountLinkParams) (*gateway.AccountLink, error) {
	form := url.Values{}
	form.Set("account", params.AccountID)
	form.Set("return_url", params.ReturnURL)
	form.Set("refresh_url", params.RefreshURL)
	form.Set("type", "account_onboarding")

	var link gateway.AccountLink
	if err := c.postForm(ctx, "/v1/account_links", form, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

func (c *Client) CreateCheckoutSession(ctx context.Context, params *gateway.CheckoutSessionParams) (*gateway.CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", params.Currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(params.AmountMinor, 10))
	form.Set("line_items[0][price_data][product_data][name]", params.ProductName)
	form.Set("payment_intent_data[transfer_data][destination]", params.DestinationAccount)
	if params.ApplicationFee > 0 {
		form.Set("payment_intent_data[application_fee_amount]", strconv.FormatInt(params.ApplicationFee, 10))
	}
	for k, v := range params.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)

	var session gateway.CheckoutSession
	if err := c.postForm(ctx, "/v1/checkout/sessions", form, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) GetPaymentIntent(ctx context.Context, id string) (*gateway.PaymentIntent, error) {
	var intent gateway.PaymentIntent
	if err := c.get(ctx, "/v1/payment_intents/"+url.PathEscape(id), &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+path, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("stripe request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("stripe error %d on %s: %s", resp.StatusCode, req.URL.Path, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode stripe response: %w", err)
	}
	return nil
}
