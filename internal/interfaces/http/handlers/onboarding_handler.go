package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"coachmarket.backend/internal/domain/entities"
	domainerrors "coachmarket.backend/internal/domain/errors"
	"coachmarket.backend/internal/interfaces/http/response"
)

// OnboardingService issues gateway onboarding links for coaches.
type OnboardingService interface {
	CreateOnboardingLink(ctx context.Context, input *entities.OnboardingLinkInput) (*entities.OnboardingLinkResponse, error)
}

// OnboardingHandler handles payment onboarding endpoints
type OnboardingHandler struct {
	onboardingUsecase OnboardingService
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(onboardingUsecase OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{onboardingUsecase: onboardingUsecase}
}

// CreateConnectLink issues a fresh onboarding link for a coach
// POST /api/v1/stripe/connect-link
func (h *OnboardingHandler) CreateConnectLink(c *gin.Context) {
	var input entities.OnboardingLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.onboardingUsecase.CreateOnboardingLink(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
