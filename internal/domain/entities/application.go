package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ApplicationStatus represents coach application status
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// CoachApplication represents a coach's application. One per user, upserted
// on re-submission.
type CoachApplication struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"userId"`
	FocusAreas  []string          `json:"focusAreas"`
	CalendlyURL null.String       `json:"calendlyUrl,omitempty"`
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// CoachApplyInput represents input for a coach application
type CoachApplyInput struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Timezone    string   `json:"timezone" binding:"required"`
	Bio         string   `json:"bio" binding:"required,min=30"`
	FocusAreas  []string `json:"focusAreas" binding:"required,min=1"`
	CalendlyURL string   `json:"calendlyUrl" binding:"omitempty,url"`
	LinkedinURL string   `json:"linkedinUrl" binding:"omitempty,url"`
}

// CoachApplyResponse represents the outcome of an application submission
type CoachApplyResponse struct {
	UserID      uuid.UUID         `json:"userId"`
	Slug        string            `json:"slug"`
	Status      ApplicationStatus `json:"status"`
	SubmittedAt time.Time         `json:"submittedAt"`
}
