package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"coachmarket.backend/internal/domain/entities"
	domainerrors "coachmarket.backend/internal/domain/errors"
	"coachmarket.backend/internal/infrastructure/models"
	"coachmarket.backend/pkg/utils"
)

// CoachApplicationRepository implements coach application data operations
type CoachApplicationRepository struct {
	db *gorm.DB
}

// NewCoachApplicationRepository creates a new coach application repository
func NewCoachApplicationRepository(db *gorm.DB) *CoachApplicationRepository {
	return &CoachApplicationRepository{db: db}
}

// Upsert inserts or refreshes the application keyed on the unique user_id
// column. Re-submission overwrites focus areas and the scheduling link and
// resets status to whatever the caller set (pending on intake).
func (r *CoachApplicationRepository) Upsert(ctx context.Context, app *entities.CoachApplication) error {
	areas, err := json.Marshal(app.FocusAreas)
	if err != nil {
		return err
	}

	m := &models.CoachApplication{
		ID:         utils.GenerateUUIDv7(),
		UserID:     app.UserID,
		FocusAreas: string(areas),
		Status:     string(app.Status),
	}
	if app.CalendlyURL.Valid {
		m.CalendlyURL = &app.CalendlyURL.String
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"focus_areas", "calendly_url", "status", "updated_at"}),
	}).Create(m).Error; err != nil {
		return err
	}

	persisted, err := r.GetByUserID(ctx, app.UserID)
	if err != nil {
		return err
	}
	*app = *persisted
	return nil
}

// GetByUserID gets the application for a user
func (r *CoachApplicationRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CoachApplication, error) {
	var m models.CoachApplication
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// UpdateStatus moves an application through the review states
func (r *CoachApplicationRepository) UpdateStatus(ctx context.Context, userID uuid.UUID, status entities.ApplicationStatus) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.CoachApplication{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *CoachApplicationRepository) toEntity(m *models.CoachApplication) *entities.CoachApplication {
	var areas []string
	// Stored value is written by Upsert, so a decode failure means manual
	// tampering; surface it as an empty set rather than failing reads.
	_ = json.Unmarshal([]byte(m.FocusAreas), &areas)

	return &entities.CoachApplication{
		ID:          m.ID,
		UserID:      m.UserID,
		FocusAreas:  areas,
		CalendlyURL: null.StringFromPtr(m.CalendlyURL),
		Status:      entities.ApplicationStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
