package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"coachmarket.backend/internal/domain/entities"
	domainerrors "coachmarket.backend/internal/domain/errors"
)

func TestPaymentRepository_InsertIfAbsentIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	createPaymentTables(t, db)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	coachID := uuid.New()
	p := &entities.Payment{
		SessionID:   "cs_test_123",
		AmountMinor: 4000,
		Currency:    "usd",
		Status:      entities.PaymentStatusPaid,
		CoachID:     &coachID,
	}

	created, err := repo.InsertIfAbsent(ctx, p)
	require.NoError(t, err)
	require.True(t, created)

	// Redelivered event: same session id must not produce a second row.
	dup := &entities.Payment{
		SessionID:   "cs_test_123",
		AmountMinor: 4000,
		Currency:    "usd",
		Status:      entities.PaymentStatusPaid,
		CoachID:     &coachID,
	}
	created, err = repo.InsertIfAbsent(ctx, dup)
	require.NoError(t, err)
	require.False(t, created)

	payments, total, err := repo.GetByCoachID(ctx, coachID, 10, 0)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, payments, 1)
	require.Equal(t, int64(4000), payments[0].AmountMinor)
}

func TestPaymentRepository_GetBySessionID(t *testing.T) {
	db := newTestDB(t)
	createPaymentTables(t, db)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	_, err := repo.GetBySessionID(ctx, "cs_missing")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.InsertIfAbsent(ctx, &entities.Payment{
		SessionID:   "cs_test_456",
		AmountMinor: 1500,
		Currency:    "usd",
		Status:      entities.PaymentStatusPaid,
	})
	require.NoError(t, err)

	got, err := repo.GetBySessionID(ctx, "cs_test_456")
	require.NoError(t, err)
	require.Equal(t, int64(1500), got.AmountMinor)
	require.Nil(t, got.CoachID)
}

func TestPaymentRepository_GetByCoachIDPagination(t *testing.T) {
	db := newTestDB(t)
	createPaymentTables(t, db)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	coachID := uuid.New()
	for _, sid := range []string{"cs_1", "cs_2", "cs_3"} {
		_, err := repo.InsertIfAbsent(ctx, &entities.Payment{
			SessionID:   sid,
			AmountMinor: 1000,
			Currency:    "usd",
			Status:      entities.PaymentStatusPaid,
			CoachID:     &coachID,
		})
		require.NoError(t, err)
	}

	page, total, err := repo.GetByCoachID(ctx, coachID, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, page, 2)

	rest, _, err := repo.GetByCoachID(ctx, coachID, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
}

func TestWebhookEventRepository_MarkProcessedIgnoresDuplicates(t *testing.T) {
	db := newTestDB(t)
	createPaymentTables(t, db)
	repo := NewWebhookEventRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.MarkProcessed(ctx, "evt_1", "checkout.session.completed"))
	require.NoError(t, repo.MarkProcessed(ctx, "evt_1", "checkout.session.completed"))

	exists, err := repo.Exists(ctx, "evt_1")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.Exists(ctx, "evt_2")
	require.NoError(t, err)
	require.False(t, exists)
}
