package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleCoach  UserRole = "COACH"
	UserRoleClient UserRole = "CLIENT"
)

// User represents a user entity. Coaches are users with a slug and, once
// connected to the payment gateway, a gateway account id.
type User struct {
	ID             uuid.UUID   `json:"id"`
	Email          string      `json:"email"`
	Name           string      `json:"name"`
	Slug           string      `json:"slug"`
	Role           UserRole    `json:"role"`
	Bio            null.String `json:"bio,omitempty"`
	AvatarURL      null.String `json:"avatarUrl,omitempty"`
	Timezone       null.String `json:"timezone,omitempty"`
	LinkedinURL    null.String `json:"linkedinUrl,omitempty"`
	GatewayAccount null.String `json:"-"`
	GatewayReady   bool        `json:"gatewayReady"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
	DeletedAt      *time.Time  `json:"-"`
}

// CanReceivePayments reports whether checkout sessions may route funds to
// this user. Both conditions are required: an account must exist and the
// gateway must have confirmed onboarding.
func (u *User) CanReceivePayments() bool {
	return u.GatewayAccount.Valid && u.GatewayAccount.String != "" && u.GatewayReady
}

// CoachProfile is the public view of a coach: the user row joined with the
// approved application's focus areas and scheduling link.
type CoachProfile struct {
	*User
	FocusAreas  []string    `json:"focusAreas,omitempty"`
	CalendlyURL null.String `json:"calendlyUrl,omitempty"`
}

// UpsertUserInput represents the identity attributes resolved on intake.
type UpsertUserInput struct {
	Email    string
	Name     string
	Timezone string
	Bio      string
}
