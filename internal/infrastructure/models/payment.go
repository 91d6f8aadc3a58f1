package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	StripeSessionID string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	AmountMinor     int64      `gorm:"not null"`
	Currency        string     `gorm:"type:varchar(10);not null"`
	Status          string     `gorm:"type:varchar(50);not null;index"`
	CoachID         *uuid.UUID `gorm:"type:uuid;index"`
	ClientID        *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time
}

type WebhookEvent struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventID     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	EventType   string    `gorm:"type:varchar(100);not null;index"`
	ProcessedAt time.Time
}
