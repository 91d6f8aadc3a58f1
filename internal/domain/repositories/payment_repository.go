package repositories

import (
	"context"

	"coachmarket.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// PaymentRepository defines payment data operations
type PaymentRepository interface {
	// InsertIfAbsent inserts the payment keyed on the unique session id.
	// A duplicate insert is ignored and reported via the returned bool, not
	// an error; this is the idempotency signal for redelivered events.
	InsertIfAbsent(ctx context.Context, payment *entities.Payment) (created bool, err error)
	GetBySessionID(ctx context.Context, sessionID string) (*entities.Payment, error)
	GetByCoachID(ctx context.Context, coachID uuid.UUID, limit, offset int) ([]*entities.Payment, int, error)
}

// WebhookEventRepository records handled gateway deliveries
type WebhookEventRepository interface {
	MarkProcessed(ctx context.Context, eventID, eventType string) error
	Exists(ctx context.Context, eventID string) (bool, error)
}
