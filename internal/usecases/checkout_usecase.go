package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"coachmarket.backend/internal/config"
	"coachmarket.backend/internal/domain/entities"
	apperrors "coachmarket.backend/internal/domain/errors"
	"coachmarket.backend/internal/domain/gateway"
	"coachmarket.backend/internal/domain/repositories"
	"coachmarket.backend/pkg/logger"
)

// CheckoutUsecase creates hosted checkout sessions that split each charge
// between the platform and a coach's connected account.
type CheckoutUsecase struct {
	userRepo repositories.UserRepository
	gateway  gateway.Gateway
	platform config.PlatformConfig
}

// NewCheckoutUsecase creates a new checkout usecase
func NewCheckoutUsecase(
	userRepo repositories.UserRepository,
	gw gateway.Gateway,
	platform config.PlatformConfig,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		userRepo: userRepo,
		gateway:  gw,
		platform: platform,
	}
}

// CreateCheckout validates the amount, checks the coach can receive funds and
// returns the hosted-page redirect URL. Amount validation happens before any
// gateway call.
func (u *CheckoutUsecase) CreateCheckout(ctx context.Context, input *entities.CreateCheckoutInput) (*entities.CreateCheckoutResponse, error) {
	amountMinor, err := amountToMinor(input.Amount.String())
	if err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}

	coach, err := u.resolveCoach(ctx, input.CoachID)
	if err != nil {
		return nil, err
	}
	if !coach.CanReceivePayments() {
		return nil, apperrors.CoachNotReady("coach has not completed payment onboarding")
	}

	fee := platformFee(amountMinor, u.platform.FeeBps)

	metadata := map[string]string{
		"coach_id":   coach.ID.String(),
		"coach_slug": coach.Slug,
	}
	if input.ClientID != "" {
		if _, err := uuid.Parse(input.ClientID); err != nil {
			return nil, apperrors.BadRequest("clientId must be a valid uuid")
		}
		metadata["client_id"] = input.ClientID
	}

	profileURL := fmt.Sprintf("%s/coaches/%s", u.platform.SiteURL, coach.Slug)
	session, err := u.gateway.CreateCheckoutSession(ctx, &gateway.CheckoutSessionParams{
		AmountMinor:        amountMinor,
		Currency:           "usd",
		ProductName:        "Contribution to " + coach.Slug,
		DestinationAccount: coach.GatewayAccount.String,
		ApplicationFee:     fee,
		Metadata:           metadata,
		SuccessURL:         profileURL + "?paid=1",
		CancelURL:          profileURL + "?canceled=1",
	})
	if err != nil {
		logger.Error(ctx, "create checkout session failed", zap.Error(err), zap.String("coach_id", coach.ID.String()))
		return nil, apperrors.Gateway(err)
	}

	logger.Info(ctx, "checkout session created",
		zap.String("session_id", session.ID),
		zap.String("coach_id", coach.ID.String()),
		zap.Int64("amount_minor", amountMinor),
		zap.Int64("application_fee", fee),
	)
	return &entities.CreateCheckoutResponse{URL: session.URL}, nil
}

// resolveCoach accepts either a uuid or a slug in the coachId field.
func (u *CheckoutUsecase) resolveCoach(ctx context.Context, coachID string) (*entities.User, error) {
	var (
		coach *entities.User
		err   error
	)
	if id, parseErr := uuid.Parse(coachID); parseErr == nil {
		coach, err = u.userRepo.GetByID(ctx, id)
	} else {
		coach, err = u.userRepo.GetBySlug(ctx, coachID)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("coach not found")
		}
		return nil, err
	}
	return coach, nil
}
