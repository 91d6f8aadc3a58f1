package usecases

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"coachmarket.backend/internal/domain/entities"
	"coachmarket.backend/internal/domain/repositories"
	"coachmarket.backend/pkg/logger"
)

// IntakeUsecase handles the two public intake forms: coach applications and
// client intakes. Both resolve the submitter by email, so re-submission
// updates the same user instead of creating a duplicate.
type IntakeUsecase struct {
	userRepo   repositories.UserRepository
	appRepo    repositories.CoachApplicationRepository
	intakeRepo repositories.ClientIntakeRepository
	uow        repositories.UnitOfWork
}

// NewIntakeUsecase creates a new intake usecase
func NewIntakeUsecase(
	userRepo repositories.UserRepository,
	appRepo repositories.CoachApplicationRepository,
	intakeRepo repositories.ClientIntakeRepository,
	uow repositories.UnitOfWork,
) *IntakeUsecase {
	return &IntakeUsecase{
		userRepo:   userRepo,
		appRepo:    appRepo,
		intakeRepo: intakeRepo,
		uow:        uow,
	}
}

// SubmitCoachApplication upserts the applicant's user row, promotes them to
// the coach role and records the application as pending. The user and
// application writes share a transaction.
func (u *IntakeUsecase) SubmitCoachApplication(ctx context.Context, input *entities.CoachApplyInput) (*entities.CoachApplyResponse, error) {
	var (
		user *entities.User
		app  entities.CoachApplication
	)

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		var err error
		user, err = u.userRepo.UpsertByEmail(txCtx, &entities.UpsertUserInput{
			Email:    input.Email,
			Name:     input.Name,
			Timezone: input.Timezone,
			Bio:      input.Bio,
		})
		if err != nil {
			return err
		}

		// Admins keep their role; everyone else becomes a coach.
		if user.Role != entities.UserRoleAdmin && user.Role != entities.UserRoleCoach {
			if err := u.userRepo.SetRole(txCtx, user.ID, entities.UserRoleCoach); err != nil {
				return err
			}
		}
		if input.LinkedinURL != "" {
			if err := u.userRepo.SetLinkedinURL(txCtx, user.ID, input.LinkedinURL); err != nil {
				return err
			}
		}

		app = entities.CoachApplication{
			UserID:      user.ID,
			FocusAreas:  input.FocusAreas,
			CalendlyURL: null.NewString(input.CalendlyURL, input.CalendlyURL != ""),
			Status:      entities.ApplicationStatusPending,
		}
		return u.appRepo.Upsert(txCtx, &app)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "coach application submitted",
		zap.String("user_id", user.ID.String()),
		zap.String("slug", user.Slug),
	)

	submittedAt := app.UpdatedAt
	if submittedAt.IsZero() {
		submittedAt = time.Now()
	}
	return &entities.CoachApplyResponse{
		UserID:      user.ID,
		Slug:        user.Slug,
		Status:      app.Status,
		SubmittedAt: submittedAt,
	}, nil
}

// SubmitClientIntake upserts the client's user row and appends an intake.
func (u *IntakeUsecase) SubmitClientIntake(ctx context.Context, input *entities.ClientIntakeInput) (*entities.ClientIntake, error) {
	var intake entities.ClientIntake

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		user, err := u.userRepo.UpsertByEmail(txCtx, &entities.UpsertUserInput{
			Email: input.Email,
			Name:  input.Name,
		})
		if err != nil {
			return err
		}

		intake = entities.ClientIntake{
			UserID:          user.ID,
			Goals:           input.Goals,
			PreferredTopics: input.PreferredTopics,
			BudgetHint:      null.Int64FromPtr(input.BudgetHint),
		}
		return u.intakeRepo.Create(txCtx, &intake)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "client intake recorded", zap.String("user_id", intake.UserID.String()))
	return &intake, nil
}
