package repositories

import (
	"context"

	"coachmarket.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// UserRepository defines user data operations
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetBySlug(ctx context.Context, slug string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// UpsertByEmail inserts a user or updates the non-identity attributes of
	// the existing row, keyed on the unique email constraint. The returned
	// entity always carries the persisted id and slug.
	UpsertByEmail(ctx context.Context, input *entities.UpsertUserInput) (*entities.User, error)
	// SetGatewayAccount persists the connected-account id on the user row.
	SetGatewayAccount(ctx context.Context, id uuid.UUID, accountID string) error
	// SetGatewayReady updates the onboarded flag for whichever user owns the
	// given connected-account id. No matching row is not an error.
	SetGatewayReady(ctx context.Context, accountID string, ready bool) error
	SetLinkedinURL(ctx context.Context, id uuid.UUID, url string) error
	SetRole(ctx context.Context, id uuid.UUID, role entities.UserRole) error
	ListCoaches(ctx context.Context) ([]*entities.User, error)
}
