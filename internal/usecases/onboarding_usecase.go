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

// OnboardingUsecase connects coaches to the payment gateway and issues
// single-use onboarding links.
type OnboardingUsecase struct {
	userRepo repositories.UserRepository
	gateway  gateway.Gateway
	platform config.PlatformConfig
}

// NewOnboardingUsecase creates a new onboarding usecase
func NewOnboardingUsecase(
	userRepo repositories.UserRepository,
	gw gateway.Gateway,
	platform config.PlatformConfig,
) *OnboardingUsecase {
	return &OnboardingUsecase{
		userRepo: userRepo,
		gateway:  gw,
		platform: platform,
	}
}

// CreateOnboardingLink resolves the coach, lazily creates a connected account
// for them, and returns a fresh onboarding URL. The account id is persisted
// before the link is requested so a link failure never strands an untracked
// account.
func (u *OnboardingUsecase) CreateOnboardingLink(ctx context.Context, input *entities.OnboardingLinkInput) (*entities.OnboardingLinkResponse, error) {
	coach, err := u.resolveCoach(ctx, input)
	if err != nil {
		return nil, err
	}

	accountID := coach.GatewayAccount.String
	if !coach.GatewayAccount.Valid || accountID == "" {
		account, err := u.gateway.CreateAccount(ctx, &gateway.CreateAccountParams{
			Email:        coach.Email,
			Country:      u.platform.Country,
			BusinessType: "individual",
		})
		if err != nil {
			logger.Error(ctx, "create connected account failed", zap.Error(err), zap.String("coach_id", coach.ID.String()))
			return nil, apperrors.Gateway(err)
		}
		if err := u.userRepo.SetGatewayAccount(ctx, coach.ID, account.ID); err != nil {
			return nil, err
		}
		accountID = account.ID
		logger.Info(ctx, "connected account created",
			zap.String("coach_id", coach.ID.String()),
			zap.String("account_id", account.ID),
		)
	}

	profileURL := fmt.Sprintf("%s/coaches/%s", u.platform.SiteURL, coach.Slug)
	link, err := u.gateway.CreateAccountLink(ctx, &gateway.AccountLinkParams{
		AccountID:  accountID,
		ReturnURL:  profileURL + "?onboarded=1",
		RefreshURL: profileURL + "?refresh=1",
	})
	if err != nil {
		logger.Error(ctx, "create account link failed", zap.Error(err), zap.String("account_id", accountID))
		return nil, apperrors.Gateway(err)
	}

	return &entities.OnboardingLinkResponse{URL: link.URL}, nil
}

func (u *OnboardingUsecase) resolveCoach(ctx context.Context, input *entities.OnboardingLinkInput) (*entities.User, error) {
	var (
		coach *entities.User
		err   error
	)
	switch {
	case input.Slug != "":
		coach, err = u.userRepo.GetBySlug(ctx, input.Slug)
	case input.CoachID != "":
		id, parseErr := uuid.Parse(input.CoachID)
		if parseErr != nil {
			return nil, apperrors.BadRequest("coachId must be a valid uuid")
		}
		coach, err = u.userRepo.GetByID(ctx, id)
	default:
		return nil, apperrors.BadRequest("slug or coachId is required")
	}

	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("coach not found")
		}
		return nil, err
	}
	return coach, nil
}
