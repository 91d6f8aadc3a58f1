package usecases

import (
	"context"
	"errors"

	"coachmarket.backend/internal/domain/entities"
	apperrors "coachmarket.backend/internal/domain/errors"
	"coachmarket.backend/internal/domain/repositories"
)

// CoachUsecase serves the public read side of the coach directory. Only
// coaches with an approved application are visible; applicants get the coach
// role at submission time and must not leak into the directory while pending.
type CoachUsecase struct {
	userRepo    repositories.UserRepository
	appRepo     repositories.CoachApplicationRepository
	paymentRepo repositories.PaymentRepository
}

// NewCoachUsecase creates a new coach usecase
func NewCoachUsecase(
	userRepo repositories.UserRepository,
	appRepo repositories.CoachApplicationRepository,
	paymentRepo repositories.PaymentRepository,
) *CoachUsecase {
	return &CoachUsecase{
		userRepo:    userRepo,
		appRepo:     appRepo,
		paymentRepo: paymentRepo,
	}
}

// ListCoaches returns the approved coaches, newest first.
func (u *CoachUsecase) ListCoaches(ctx context.Context) ([]*entities.CoachProfile, error) {
	users, err := u.userRepo.ListCoaches(ctx)
	if err != nil {
		return nil, err
	}

	var coaches []*entities.CoachProfile
	for _, user := range users {
		profile, err := u.approvedProfile(ctx, user)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			continue
		}
		coaches = append(coaches, profile)
	}
	return coaches, nil
}

// GetCoach returns an approved coach's public profile by slug, including the
// scheduling link from their application.
func (u *CoachUsecase) GetCoach(ctx context.Context, slug string) (*entities.CoachProfile, error) {
	user, err := u.userRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("coach not found")
		}
		return nil, err
	}

	profile, err := u.approvedProfile(ctx, user)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.NotFound("coach not found")
	}
	return profile, nil
}

// ListCoachPayments returns the recorded payments routed to a coach. Not
// gated on approval: a pending coach who finished gateway onboarding can
// already receive payments and needs to see them.
func (u *CoachUsecase) ListCoachPayments(ctx context.Context, slug string, limit, offset int) ([]*entities.Payment, int, error) {
	coach, err := u.userRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, 0, apperrors.NotFound("coach not found")
		}
		return nil, 0, err
	}
	return u.paymentRepo.GetByCoachID(ctx, coach.ID, limit, offset)
}

func (u *CoachUsecase) approvedProfile(ctx context.Context, user *entities.User) (*entities.CoachProfile, error) {
	app, err := u.appRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if app.Status != entities.ApplicationStatusApproved {
		return nil, nil
	}
	return &entities.CoachProfile{
		User:        user,
		FocusAreas:  app.FocusAreas,
		CalendlyURL: app.CalendlyURL,
	}, nil
}
