package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"coachmarket.backend/internal/config"
	"coachmarket.backend/internal/domain/entities"
	"coachmarket.backend/internal/domain/gateway"
	"coachmarket.backend/internal/domain/repositories"
	"coachmarket.backend/pkg/logger"
)

// WebhookUsecase applies verified gateway events to local state. All writes
// are idempotent: redelivered events hit unique constraints and no-op.
type WebhookUsecase struct {
	userRepo    repositories.UserRepository
	paymentRepo repositories.PaymentRepository
	eventRepo   repositories.WebhookEventRepository
	gateway     gateway.Gateway
	uow         repositories.UnitOfWork
	predicate   config.OnboardingPredicate
}

// NewWebhookUsecase creates a new webhook usecase
func NewWebhookUsecase(
	userRepo repositories.UserRepository,
	paymentRepo repositories.PaymentRepository,
	eventRepo repositories.WebhookEventRepository,
	gw gateway.Gateway,
	uow repositories.UnitOfWork,
	predicate config.OnboardingPredicate,
) *WebhookUsecase {
	return &WebhookUsecase{
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		eventRepo:   eventRepo,
		gateway:     gw,
		uow:         uow,
		predicate:   predicate,
	}
}

// ProcessEvent dispatches a verified event to its handler. Unrecognized
// event types are acknowledged without any state change.
func (u *WebhookUsecase) ProcessEvent(ctx context.Context, event *gateway.Event) error {
	switch event.Type {
	case "account.updated":
		return u.handleAccountUpdated(ctx, event)
	case "checkout.session.completed":
		return u.handleCheckoutCompleted(ctx, event)
	default:
		logger.Debug(ctx, "ignoring webhook event", zap.String("event_type", event.Type), zap.String("event_id", event.ID))
		return nil
	}
}

// handleAccountUpdated recomputes the onboarded flag from the account
// snapshot in the event. The flag can go both ways: an account that loses
// its capabilities stops receiving checkouts.
func (u *WebhookUsecase) handleAccountUpdated(ctx context.Context, event *gateway.Event) error {
	var account gateway.Account
	if err := json.Unmarshal(event.Data.Object, &account); err != nil {
		return fmt.Errorf("decode account object: %w", err)
	}
	if account.ID == "" {
		return fmt.Errorf("account object missing id")
	}

	ready := u.accountReady(&account)
	if err := u.userRepo.SetGatewayReady(ctx, account.ID, ready); err != nil {
		return err
	}
	if err := u.eventRepo.MarkProcessed(ctx, event.ID, event.Type); err != nil {
		return err
	}

	logger.Info(ctx, "account status updated",
		zap.String("account_id", account.ID),
		zap.Bool("ready", ready),
		zap.String("event_id", event.ID),
	)
	return nil
}

func (u *WebhookUsecase) accountReady(account *gateway.Account) bool {
	if u.predicate == config.PredicateLoose {
		return account.ChargesEnabled && account.DetailsSubmitted
	}
	return account.ChargesEnabled &&
		account.DetailsSubmitted &&
		len(account.Requirements.CurrentlyDue) == 0 &&
		account.Requirements.DisabledReason == ""
}

// handleCheckoutCompleted records the settled payment. The payment row and
// the processed-event row are written in one transaction so a crash between
// them cannot split them.
func (u *WebhookUsecase) handleCheckoutCompleted(ctx context.Context, event *gateway.Event) error {
	var session gateway.CheckoutSession
	if err := json.Unmarshal(event.Data.Object, &session); err != nil {
		return fmt.Errorf("decode session object: %w", err)
	}
	if session.ID == "" {
		return fmt.Errorf("session object missing id")
	}

	amount := session.AmountTotal
	if amount == 0 && session.PaymentIntentID != "" {
		// Some completed sessions omit the settled total; the payment intent
		// is authoritative then.
		intent, err := u.gateway.GetPaymentIntent(ctx, session.PaymentIntentID)
		if err != nil {
			return fmt.Errorf("resolve payment intent %s: %w", session.PaymentIntentID, err)
		}
		amount = intent.Amount
	}

	status := entities.PaymentStatusUnpaid
	if session.PaymentStatus == "paid" {
		status = entities.PaymentStatusPaid
	}

	currency := session.Currency
	if currency == "" {
		currency = "usd"
	}

	payment := &entities.Payment{
		SessionID:   session.ID,
		AmountMinor: amount,
		Currency:    currency,
		Status:      status,
		CoachID:     parseMetadataID(session.Metadata, "coach_id"),
		ClientID:    parseMetadataID(session.Metadata, "client_id"),
	}

	var created bool
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		var err error
		created, err = u.paymentRepo.InsertIfAbsent(txCtx, payment)
		if err != nil {
			return err
		}
		return u.eventRepo.MarkProcessed(txCtx, event.ID, event.Type)
	})
	if err != nil {
		logger.Error(ctx, "record checkout payment failed", zap.Error(err), zap.String("session_id", session.ID))
		return err
	}

	logger.Info(ctx, "checkout session recorded",
		zap.String("session_id", session.ID),
		zap.String("event_id", event.ID),
		zap.Int64("amount_minor", amount),
		zap.Bool("created", created),
	)
	return nil
}

func parseMetadataID(metadata map[string]string, key string) *uuid.UUID {
	raw, ok := metadata[key]
	if !ok || raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
