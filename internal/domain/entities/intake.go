package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ClientIntake represents a client intake submission. Append-only: rows are
// created once and never mutated.
type ClientIntake struct {
	ID              uuid.UUID   `json:"id"`
	UserID          uuid.UUID   `json:"userId"`
	Goals           string      `json:"goals"`
	PreferredTopics []string    `json:"preferredTopics,omitempty"`
	BudgetHint      null.Int64  `json:"budgetHint,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// ClientIntakeInput represents input for a client intake submission
type ClientIntakeInput struct {
	Name            string   `json:"name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Goals           string   `json:"goals" binding:"required"`
	PreferredTopics []string `json:"preferredTopics"`
	BudgetHint      *int64   `json:"budgetHint" binding:"omitempty,min=0"`
}
