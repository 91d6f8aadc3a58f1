package repositories

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"coachmarket.backend/internal/domain/entities"
	"coachmarket.backend/internal/infrastructure/models"
	"coachmarket.backend/pkg/utils"
)

// ClientIntakeRepository implements client intake data operations
type ClientIntakeRepository struct {
	db *gorm.DB
}

// NewClientIntakeRepository creates a new client intake repository
func NewClientIntakeRepository(db *gorm.DB) *ClientIntakeRepository {
	return &ClientIntakeRepository{db: db}
}

// Create appends an intake record. Rows are never updated afterwards.
func (r *ClientIntakeRepository) Create(ctx context.Context, intake *entities.ClientIntake) error {
	topics, err := json.Marshal(intake.PreferredTopics)
	if err != nil {
		return err
	}

	m := &models.ClientIntake{
		ID:              utils.GenerateUUIDv7(),
		UserID:          intake.UserID,
		Goals:           intake.Goals,
		PreferredTopics: string(topics),
	}
	if intake.BudgetHint.Valid {
		m.BudgetHint = &intake.BudgetHint.Int64
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	intake.ID = m.ID
	intake.CreatedAt = m.CreatedAt
	return nil
}

// GetByUserID lists intake submissions for a user, newest first
func (r *ClientIntakeRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.ClientIntake, error) {
	var ms []models.ClientIntake
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	var intakes []*entities.ClientIntake
	for _, m := range ms {
		var topics []string
		_ = json.Unmarshal([]byte(m.PreferredTopics), &topics)
		intakes = append(intakes, &entities.ClientIntake{
			ID:              m.ID,
			UserID:          m.UserID,
			Goals:           m.Goals,
			PreferredTopics: topics,
			BudgetHint:      null.Int64FromPtr(m.BudgetHint),
			CreatedAt:       m.CreatedAt,
		})
	}
	return intakes, nil
}
