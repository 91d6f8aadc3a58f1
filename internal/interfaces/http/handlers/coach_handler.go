package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coachmarket.backend/internal/domain/entities"
	domainerrors "coachmarket.backend/internal/domain/errors"
	"coachmarket.backend/internal/interfaces/http/response"
	"coachmarket.backend/pkg/utils"
)

// CoachService serves the public read side of the coach directory.
type CoachService interface {
	ListCoaches(ctx context.Context) ([]*entities.CoachProfile, error)
	GetCoach(ctx context.Context, slug string) (*entities.CoachProfile, error)
	ListCoachPayments(ctx context.Context, slug string, limit, offset int) ([]*entities.Payment, int, error)
}

// IntakeService records coach applications and client intakes.
type IntakeService interface {
	SubmitCoachApplication(ctx context.Context, input *entities.CoachApplyInput) (*entities.CoachApplyResponse, error)
	SubmitClientIntake(ctx context.Context, input *entities.ClientIntakeInput) (*entities.ClientIntake, error)
}

// CoachHandler handles the coach directory and intake endpoints
type CoachHandler struct {
	coachUsecase  CoachService
	intakeUsecase IntakeService
}

// NewCoachHandler creates a new coach handler
func NewCoachHandler(coachUsecase CoachService, intakeUsecase IntakeService) *CoachHandler {
	return &CoachHandler{
		coachUsecase:  coachUsecase,
		intakeUsecase: intakeUsecase,
	}
}

// Apply submits or re-submits a coach application
// POST /api/v1/coaches/apply
func (h *CoachHandler) Apply(c *gin.Context) {
	var input entities.CoachApplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.intakeUsecase.SubmitCoachApplication(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// SubmitIntake records a client intake
// POST /api/v1/intake
func (h *CoachHandler) SubmitIntake(c *gin.Context) {
	var input entities.ClientIntakeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	intake, err := h.intakeUsecase.SubmitClientIntake(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, intake)
}

// ListCoaches returns the coach directory
// GET /api/v1/coaches
func (h *CoachHandler) ListCoaches(c *gin.Context) {
	coaches, err := h.coachUsecase.ListCoaches(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"coaches": coaches})
}

// GetCoach returns a single coach profile
// GET /api/v1/coaches/:slug
func (h *CoachHandler) GetCoach(c *gin.Context) {
	coach, err := h.coachUsecase.GetCoach(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, coach)
}

// ListCoachPayments returns the payments routed to a coach
// GET /api/v1/coaches/:slug/payments
func (h *CoachHandler) ListCoachPayments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	payments, total, err := h.coachUsecase.ListCoachPayments(
		c.Request.Context(), c.Param("slug"), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"payments":   payments,
		"pagination": utils.CalculateMeta(int64(total), params.Page, params.Limit),
	})
}
