package repositories

import (
	"context"

	"coachmarket.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// ClientIntakeRepository defines client intake data operations
type ClientIntakeRepository interface {
	Create(ctx context.Context, intake *entities.ClientIntake) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.ClientIntake, error)
}
