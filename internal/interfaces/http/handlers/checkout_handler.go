package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"coachmarket.backend/internal/domain/entities"
	domainerrors "coachmarket.backend/internal/domain/errors"
	"coachmarket.backend/internal/interfaces/http/response"
)

// CheckoutService creates hosted checkout sessions.
type CheckoutService interface {
	CreateCheckout(ctx context.Context, input *entities.CreateCheckoutInput) (*entities.CreateCheckoutResponse, error)
}

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutUsecase CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutUsecase CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutUsecase: checkoutUsecase}
}

// CreateCheckout creates a hosted checkout session for a coach
// POST /api/v1/checkout
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var input entities.CreateCheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.checkoutUsecase.CreateCheckout(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
