package usecases_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"coachmarket.backend/internal/config"
	"coachmarket.backend/internal/domain/entities"
	apperrors "coachmarket.backend/internal/domain/errors"
	"coachmarket.backend/internal/domain/gateway"
	"coachmarket.backend/internal/usecases"
)

func readyCoach() *entities.User {
	return &entities.User{
		ID:             uuid.New(),
		Email:          "jane@example.com",
		Name:           "Jane Doe",
		Slug:           "jane-doe",
		Role:           entities.UserRoleCoach,
		GatewayAccount: null.StringFrom("acct_1"),
		GatewayReady:   true,
	}
}

func testPlatform() config.PlatformConfig {
	return config.PlatformConfig{
		SiteURL: "https://site.test",
		FeeBps:  100,
		Country: "US",
	}
}

func TestCreateCheckout_SplitsAmountAndFee(t *testing.T) {
	userRepo := new(MockUserRepository)
	gw := new(MockGateway)
	uc := usecases.NewCheckoutUsecase(userRepo, gw, testPlatform())

	coach := readyCoach()
	userRepo.On("GetByID", mock.Anything, coach.ID).Return(coach, nil)
	gw.On("CreateCheckoutSession", mock.Anything, mock.MatchedBy(func(p *gateway.CheckoutSessionParams) bool {
		return p.AmountMinor == 4000 &&
			p.ApplicationFee == 40 &&
			p.DestinationAccount == "acct_1" &&
			p.Currency == "usd" &&
			p.Metadata["coach_slug"] == "jane-doe" &&
			p.SuccessURL == "https://site.test/coaches/jane-doe?paid=1" &&
			p.CancelURL == "https://site.test/coaches/jane-doe?canceled=1"
	})).Return(&gateway.CheckoutSession{
		ID:  "cs_1",
		URL: "https://checkout.stripe.com/c/pay/cs_1",
	}, nil)

	resp, err := uc.CreateCheckout(context.Background(), &entities.CreateCheckoutInput{
		CoachID: coach.ID.String(),
		Amount:  json.Number("40"),
	})
	require.NoError(t, err)
	require.Equal(t, "https://checkout.stripe.com/c/pay/cs_1", resp.URL)
	gw.AssertExpectations(t)
}

func TestCreateCheckout_ResolvesCoachBySlug(t *testing.T) {
	userRepo := new(MockUserRepository)
	gw := new(MockGateway)
	uc := usecases.NewCheckoutUsecase(userRepo, gw, testPlatform())

	coach := readyCoach()
	userRepo.On("GetBySlug", mock.Anything, "jane-doe").Return(coach, nil)
	gw.On("CreateCheckoutSession", mock.Anything, mock.Anything).
		Return(&gateway.CheckoutSession{ID: "cs_1", URL: "https://x"}, nil)

	_, err := uc.CreateCheckout(context.Background(), &entities.CreateCheckoutInput{
		CoachID: "jane-doe",
		Amount:  json.Number("25"),
	})
	require.NoError(t, err)
}

func TestCreateCheckout_RejectsInvalidAmountBeforeGatewayCall(t *testing.T) {
	userRepo := new(MockUserRepository)
	gw := new(MockGateway)
	uc := usecases.NewCheckoutUsecase(userRepo, gw, testPlatform())

	for _, amount := range []string{"0", "-5", "abc", "0.001"} {
		_, err := uc.CreateCheckout(context.Background(), &entities.CreateCheckoutInput{
			CoachID: uuid.NewString(),
			Amount:  json.Number(amount),
		})
		require.ErrorIs(t, err, apperrors.ErrInvalidInput, "amount %q", amount)
	}
	userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	gw.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func TestCreateCheckout_CoachNotReady(t *testing.T) {
	userRepo := new(MockUserRepository)
	gw := new(MockGateway)
	uc := usecases.NewCheckoutUsecase(userRepo, gw, testPlatform())

	// Account exists but onboarding never completed.
	coach := readyCoach()
	coach.GatewayReady = false
	userRepo.On("GetByID", mock.Anything, coach.ID).Return(coach, nil)

	_, err := uc.CreateCheckout(context.Background(), &entities.CreateCheckoutInput{
		CoachID: coach.ID.String(),
		Amount:  json.Number("40"),
	})
	require.ErrorIs(t, err, apperrors.ErrCoachNotReady)
	gw.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func TestCreateCheckout_CoachNotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	gw := new(MockGateway)
	uc := usecases.NewCheckoutUsecase(userRepo, gw, testPlatform())

	userRepo.On("GetBySlug", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)

	_, err := uc.CreateCheckout(context.Background(), &entities.CreateCheckoutInput{
		CoachID: "ghost",
		Amount:  json.Number("40"),
	})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateCheckout_GatewayFailureIsWrapped(t *testing.T) {
	userRepo := new(MockUserRepository)
	gw := new(MockGateway)
	uc := usecases.NewCheckoutUsecase(userRepo, gw, testPlatform())

	coach := readyCoach()
	userRepo.On("GetByID", mock.Anything, coach.ID).Return(coach, nil)
	gw.On("CreateCheckoutSession", mock.Anything, mock.Anything).
		Return(nil, context.DeadlineExceeded)

	_, err := uc.CreateCheckout(context.Background(), &entities.CreateCheckoutInput{
		CoachID: coach.ID.String(),
		Amount:  json.Number("40"),
	})
	require.ErrorIs(t, err, apperrors.ErrGateway)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	// Upstream details stay out of the client-facing message.
	require.Equal(t, "payment provider error", appErr.Message)
}

func TestCreateCheckout_ClientIDGoesIntoMetadata(t *testing.T) {
	userRepo := new(MockUserRepository)
	gw := new(MockGateway)
	uc := usecases.NewCheckoutUsecase(userRepo, gw, testPlatform())

	coach := readyCoach()
	clientID := uuid.NewString()
	userRepo.On("GetByID", mock.Anything, coach.ID).Return(coach, nil)
	gw.On("CreateCheckoutSession", mock.Anything, mock.MatchedBy(func(p *gateway.CheckoutSessionParams) bool {
		return p.Metadata["client_id"] == clientID && p.Metadata["coach_id"] == coach.ID.String()
	})).Return(&gateway.CheckoutSession{ID: "cs_1", URL: "https://x"}, nil)

	_, err := uc.CreateCheckout(context.Background(), &entities.CreateCheckoutInput{
		CoachID:  coach.ID.String(),
		Amount:   json.Number("40"),
		ClientID: clientID,
	})
	require.NoError(t, err)

	_, err = uc.CreateCheckout(context.Background(), &entities.CreateCheckoutInput{
		CoachID:  coach.ID.String(),
		Amount:   json.Number("40"),
		ClientID: "not-a-uuid",
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
