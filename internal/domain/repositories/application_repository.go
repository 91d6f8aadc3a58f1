package repositories

import (
	"context"

	"coachmarket.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// CoachApplicationRepository defines coach application data operations
type CoachApplicationRepository interface {
	// Upsert inserts the application or replaces the mutable fields of an
	// existing one, keyed on the unique user_id constraint.
	Upsert(ctx context.Context, app *entities.CoachApplication) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CoachApplication, error)
	UpdateStatus(ctx context.Context, userID uuid.UUID, status entities.ApplicationStatus) error
}
