package models

import (
	"time"

	"github.com/google/uuid"
)

type ClientIntake struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Goals           string    `gorm:"type:text;not null"`
	PreferredTopics string    `gorm:"type:jsonb;default:'[]'"`
	BudgetHint      *int64
	CreatedAt       time.Time

	User User `gorm:"foreignKey:UserID"`
}
