package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"coachmarket.backend/internal/domain/entities"
	apperrors "coachmarket.backend/internal/domain/errors"
	"coachmarket.backend/internal/domain/gateway"
	"coachmarket.backend/internal/usecases"
)

func TestCreateOnboardingLink_CreatesAccountOnFirstRequest(t *testing.T) {
	userRepo := new(MockUserRepository)
	gw := new(MockGateway)
	uc := usecases.NewOnboardingUsecase(userRepo, gw, testPlatform())

	coach := readyCoach()
	coach.GatewayAccount = null.String{}
	coach.GatewayReady = false

	userRepo.On("GetBySlug", mock.Anything, "jane-doe").Return(coach, nil)
	gw.On("CreateAccount", mock.Anything, mock.MatchedBy(func(p *gateway.CreateAccountParams) bool {
		return p.Email == "jane@example.com" &&
			p.Country == "US" &&
			p.BusinessType == "individual"
	})).Return(&gateway.Account{ID: "acct_new"}, nil)
	userRepo.On("SetGatewayAccount", mock.Anything, coach.ID, "acct_new").Return(nil)
	gw.On("CreateAccountLink", mock.Anything, mock.MatchedBy(func(p *gateway.AccountLinkParams) bool {
		return p.AccountID == "acct_new" &&
			p.ReturnURL == "https://site.test/coaches/jane-doe?onboarded=1" &&
			p.RefreshURL == "https://site.test/coaches/jane-doe?refresh=1"
	})).Return(&gateway.AccountLink{URL: "https://connect.stripe.com/setup/x"}, nil)

	resp, err := uc.CreateOnboardingLink(context.Background(), &entities.OnboardingLinkInput{Slug: "jane-doe"})
	require.NoError(t, err)
	require.Equal(t, "https://connect.stripe.com/setup/x", resp.URL)
	userRepo.AssertExpectations(t)
	gw.AssertExpectations(t)
}

func TestCreateOnboardingLink_ReusesExistingAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	gw := new(MockGateway)
	uc := usecases.NewOnboardingUsecase(userRepo, gw, testPlatform())

	coach := readyCoach()
	userRepo.On("GetBySlug", mock.Anything, "jane-doe").Return(coach, nil)
	gw.On("CreateAccountLink", mock.Anything, mock.MatchedBy(func(p *gateway.AccountLinkParams) bool {
		return p.AccountID == "acct_1"
	})).Return(&gateway.AccountLink{URL: "https://connect.stripe.com/setup/y"}, nil)

	_, err := uc.CreateOnboardingLink(context.Background(), &entities.OnboardingLinkInput{Slug: "jane-doe"})
	require.NoError(t, err)
	gw.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "SetGatewayAccount", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOnboardingLink_PersistsAccountBeforeLinkFailure(t *testing.T) {
	userRepo := new(MockUserRepository)
	gw := new(MockGateway)
	uc := usecases.NewOnboardingUsecase(userRepo, gw, testPlatform())

	coach := readyCoach()
	coach.GatewayAccount = null.String{}

	userRepo.On("GetBySlug", mock.Anything, "jane-doe").Return(coach, nil)
	gw.On("CreateAccount", mock.Anything, mock.Anything).Return(&gateway.Account{ID: "acct_new"}, nil)
	userRepo.On("SetGatewayAccount", mock.Anything, coach.ID, "acct_new").Return(nil)
	gw.On("CreateAccountLink", mock.Anything, mock.Anything).Return(nil, errors.New("rate limited"))

	_, err := uc.CreateOnboardingLink(context.Background(), &entities.OnboardingLinkInput{Slug: "jane-doe"})
	require.ErrorIs(t, err, apperrors.ErrGateway)
	// The account id was saved even though the link failed; a retry reuses it.
	userRepo.AssertCalled(t, "SetGatewayAccount", mock.Anything, coach.ID, "acct_new")
}

func TestCreateOnboardingLink_ResolvesByCoachID(t *testing.T) {
	userRepo := new(MockUserRepository)
	gw := new(MockGateway)
	uc := usecases.NewOnboardingUsecase(userRepo, gw, testPlatform())

	coach := readyCoach()
	userRepo.On("GetByID", mock.Anything, coach.ID).Return(coach, nil)
	gw.On("CreateAccountLink", mock.Anything, mock.Anything).
		Return(&gateway.AccountLink{URL: "https://connect.stripe.com/setup/z"}, nil)

	_, err := uc.CreateOnboardingLink(context.Background(), &entities.OnboardingLinkInput{CoachID: coach.ID.String()})
	require.NoError(t, err)
}

func TestCreateOnboardingLink_InputErrors(t *testing.T) {
	userRepo := new(MockUserRepository)
	gw := new(MockGateway)
	uc := usecases.NewOnboardingUsecase(userRepo, gw, testPlatform())

	_, err := uc.CreateOnboardingLink(context.Background(), &entities.OnboardingLinkInput{})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = uc.CreateOnboardingLink(context.Background(), &entities.OnboardingLinkInput{CoachID: "not-a-uuid"})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)

	userRepo.On("GetBySlug", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)
	_, err = uc.CreateOnboardingLink(context.Background(), &entities.OnboardingLinkInput{Slug: "ghost"})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateOnboardingLink_AccountCreationFailure(t *testing.T) {
	userRepo := new(MockUserRepository)
	gw := new(MockGateway)
	uc := usecases.NewOnboardingUsecase(userRepo, gw, testPlatform())

	coach := readyCoach()
	coach.GatewayAccount = null.String{}
	userRepo.On("GetBySlug", mock.Anything, "jane-doe").Return(coach, nil)
	gw.On("CreateAccount", mock.Anything, mock.Anything).Return(nil, errors.New("api down"))

	_, err := uc.CreateOnboardingLink(context.Background(), &entities.OnboardingLinkInput{Slug: "jane-doe"})
	require.ErrorIs(t, err, apperrors.ErrGateway)
	userRepo.AssertNotCalled(t, "SetGatewayAccount", mock.Anything, mock.Anything, mock.Anything)
}
