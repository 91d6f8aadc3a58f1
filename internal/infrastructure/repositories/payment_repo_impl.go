package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"coachmarket.backend/internal/domain/entities"
	domainerrors "coachmarket.backend/internal/domain/errors"
	"coachmarket.backend/internal/infrastructure/models"
	"coachmarket.backend/pkg/utils"
)

// PaymentRepository implements payment data operations
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// InsertIfAbsent inserts the payment keyed on the unique session id. The
// conflict clause makes redelivered webhook events collapse into the first
// row instead of duplicating or erroring; the returned bool tells the caller
// whether this delivery was the first.
func (r *PaymentRepository) InsertIfAbsent(ctx context.Context, payment *entities.Payment) (bool, error) {
	m := &models.Payment{
		ID:              utils.GenerateUUIDv7(),
		StripeSessionID: payment.SessionID,
		AmountMinor:     payment.AmountMinor,
		Currency:        payment.Currency,
		Status:          string(payment.Status),
		CoachID:         payment.CoachID,
		ClientID:        payment.ClientID,
	}

	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "stripe_session_id"}},
		DoNothing: true,
	}).Create(m)

	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	payment.ID = m.ID
	payment.CreatedAt = m.CreatedAt
	return true, nil
}

// GetBySessionID gets a payment by gateway session id
func (r *PaymentRepository) GetBySessionID(ctx context.Context, sessionID string) (*entities.Payment, error) {
	var m models.Payment
	if err := r.db.WithContext(ctx).Where("stripe_session_id = ?", sessionID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByCoachID gets payments received by a coach with pagination
func (r *PaymentRepository) GetByCoachID(ctx context.Context, coachID uuid.UUID, limit, offset int) ([]*entities.Payment, int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("coach_id = ?", coachID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Payment
	query := r.db.WithContext(ctx).
		Where("coach_id = ?", coachID).
		Order("created_at DESC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	var payments []*entities.Payment
	for _, m := range ms {
		model := m
		payments = append(payments, r.toEntity(&model))
	}
	return payments, int(total), nil
}

func (r *PaymentRepository) toEntity(m *models.Payment) *entities.Payment {
	return &entities.Payment{
		ID:          m.ID,
		SessionID:   m.StripeSessionID,
		AmountMinor: m.AmountMinor,
		Currency:    m.Currency,
		Status:      entities.PaymentStatus(m.Status),
		CoachID:     m.CoachID,
		ClientID:    m.ClientID,
		CreatedAt:   m.CreatedAt,
	}
}

// WebhookEventRepository records handled gateway deliveries
type WebhookEventRepository struct {
	db *gorm.DB
}

// NewWebhookEventRepository creates a new webhook event repository
func NewWebhookEventRepository(db *gorm.DB) *WebhookEventRepository {
	return &WebhookEventRepository{db: db}
}

// MarkProcessed records a handled delivery; duplicates are ignored
func (r *WebhookEventRepository) MarkProcessed(ctx context.Context, eventID, eventType string) error {
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}},
		DoNothing: true,
	}).Create(&models.WebhookEvent{
		ID:          utils.GenerateUUIDv7(),
		EventID:     eventID,
		EventType:   eventType,
		ProcessedAt: time.Now(),
	}).Error
}

// Exists reports whether a delivery was already handled
func (r *WebhookEventRepository) Exists(ctx context.Context, eventID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.WebhookEvent{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count > 0, err
}
