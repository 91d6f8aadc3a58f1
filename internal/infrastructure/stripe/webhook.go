package stripe

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"coachmarket.backend/internal/domain/gateway"
)

// DefaultTolerance bounds the age of a signed webhook payload.
const DefaultTolerance = 5 * time.Minute

// WebhookVerifier checks Stripe-Signature headers and decodes event
// envelopes. The header carries a unix timestamp and one or more HMAC-SHA256
// signatures over "<timestamp>.<payload>".
type WebhookVerifier struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
}

func NewWebhookVerifier(secret string, tolerance time.Duration) *WebhookVerifier {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &WebhookVerifier{
		secret:    []byte(secret),
		tolerance: tolerance,
		now:       time.Now,
	}
}

// ConstructEvent verifies the signature header against the raw payload and
// decodes the event. Verification failures and malformed envelopes both
// return an error; callers treat either as a rejected delivery.
func (v *WebhookVerifier) ConstructEvent(payload []byte, sigHeader string) (*gateway.Event, error) {
	if err := v.verify(payload, sigHeader); err != nil {
		return nil, err
	}

	var event gateway.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("decode event payload: %w", err)
	}
	if event.ID == "" || event.Type == "" {
		return nil, fmt.Errorf("event payload missing id or type")
	}
	return &event, nil
}

func (v *WebhookVerifier) verify(payload []byte, sigHeader string) error {
	timestamp, signatures, err := parseSignatureHeader(sigHeader)
	if err != nil {
		return err
	}

	age := v.now().Sub(time.Unix(timestamp, 0))
	if age > v.tolerance || age < -v.tolerance {
		return fmt.Errorf("signature timestamp outside tolerance")
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := mac.Sum(nil)

	for _, sig := range signatures {
		decoded, err := hex.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			return nil
		}
	}
	return fmt.Errorf("no matching signature")
}

func parseSignatureHeader(header string) (int64, []string, error) {
	if header == "" {
		return 0, nil, fmt.Errorf("missing signature header")
	}

	var timestamp int64
	var signatures []string
	for _, part := range strings.Split(header, ",") {
		k, val, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			ts, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return 0, nil, fmt.Errorf("invalid signature timestamp: %w", err)
			}
			timestamp = ts
		case "v1":
			signatures = append(signatures, val)
		}
	}

	if timestamp == 0 {
		return 0, nil, fmt.Errorf("signature header missing timestamp")
	}
	if len(signatures) == 0 {
		return 0, nil, fmt.Errorf("signature header missing v1 signature")
	}
	return timestamp, signatures, nil
}
