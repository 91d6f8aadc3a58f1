package repositories

import (
	"context"
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

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetBySlug gets a user by slug
func (r *UserRepository) GetBySlug(ctx context.Context, slug string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a user by email. Reads go through GetDB so a lookup inside
// a unit of work sees that transaction's uncommitted writes.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// UpsertByEmail inserts a user keyed on the unique email column, or refreshes
// the mutable profile attributes of the existing row. The slug is assigned on
// first insert and never rewritten, so public URLs stay stable. The conflict
// clause (not a select-then-insert) carries the idempotency, so concurrent
// submissions cannot race into duplicate rows.
func (r *UserRepository) UpsertByEmail(ctx context.Context, input *entities.UpsertUserInput) (*entities.User, error) {
	db := GetDB(ctx, r.db)

	m := &models.User{
		ID:    utils.GenerateUUIDv7(),
		Email: input.Email,
		Name:  input.Name,
		Slug:  r.availableSlug(ctx, input.Email, input.Name),
		Role:  string(entities.UserRoleClient),
	}
	if input.Timezone != "" {
		m.Timezone = &input.Timezone
	}
	if input.Bio != "" {
		m.Bio = &input.Bio
	}

	assignments := []string{"name", "updated_at"}
	if m.Timezone != nil {
		assignments = append(assignments, "timezone")
	}
	if m.Bio != nil {
		assignments = append(assignments, "bio")
	}

	if err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns(assignments),
	}).Create(m).Error; err != nil {
		return nil, err
	}

	// Re-read: on conflict the generated id and slug above never reached the
	// table, the pre-existing row did.
	return r.GetByEmail(ctx, input.Email)
}

// availableSlug derives a slug from the name and suffixes it when another
// user already owns it. The unique index on slug is the real guard; this
// pre-check just avoids burning an insert on the common collision.
func (r *UserRepository) availableSlug(ctx context.Context, email, name string) string {
	slug := utils.Slugify(name)
	if slug == "" {
		slug = "user"
	}

	var count int64
	GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).
		Where("slug = ? AND email <> ?", slug, email).
		Count(&count)
	if count == 0 {
		return slug
	}
	return slug + "-" + uuid.NewString()[:8]
}

// SetGatewayAccount persists the connected-account id on the user row
func (r *UserRepository) SetGatewayAccount(ctx context.Context, id uuid.UUID, accountID string) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stripe_account_id": accountID,
			"updated_at":        time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetGatewayReady updates the onboarded flag by connected-account id. Zero
// matched rows is a no-op: the account may belong to an entity never linked
// to a coach here.
func (r *UserRepository) SetGatewayReady(ctx context.Context, accountID string, ready bool) error {
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Model(&models.User{}).
		Where("stripe_account_id = ?", accountID).
		Updates(map[string]interface{}{
			"stripe_onboarded": ready,
			"updated_at":       time.Now(),
		}).Error
}

// SetLinkedinURL stores the optional profile link
func (r *UserRepository) SetLinkedinURL(ctx context.Context, id uuid.UUID, url string) error {
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"linkedin_url": url,
			"updated_at":   time.Now(),
		}).Error
}

// SetRole updates the role marker
func (r *UserRepository) SetRole(ctx context.Context, id uuid.UUID, role entities.UserRole) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"role":       string(role),
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

// ListCoaches lists users holding the coach role
func (r *UserRepository) ListCoaches(ctx context.Context) ([]*entities.User, error) {
	var ms []models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("role = ?", string(entities.UserRoleCoach)).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	var users []*entities.User
	for _, m := range ms {
		model := m
		users = append(users, r.toEntity(&model))
	}
	return users, nil
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:             m.ID,
		Email:          m.Email,
		Name:           m.Name,
		Slug:           m.Slug,
		Role:           entities.UserRole(m.Role),
		Bio:            null.StringFromPtr(m.Bio),
		AvatarURL:      null.StringFromPtr(m.AvatarURL),
		Timezone:       null.StringFromPtr(m.Timezone),
		LinkedinURL:    null.StringFromPtr(m.LinkedinURL),
		GatewayAccount: null.StringFromPtr(m.StripeAccountID),
		GatewayReady:   m.StripeOnboarded,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
