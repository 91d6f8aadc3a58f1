package models

import (
	"time"

	"github.com/google/uuid"
)

type CoachApplication struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	FocusAreas  string    `gorm:"type:jsonb;not null;default:'[]'"`
	CalendlyURL *string   `gorm:"type:varchar(512)"`
	Status      string    `gorm:"type:varchar(50);not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User User `gorm:"foreignKey:UserID"`
}
