package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Slug             string    `gorm:"type:varchar(255);uniqueIndex"`
	Role             string    `gorm:"type:varchar(50);not null"`
	Bio              *string   `gorm:"type:text"`
	AvatarURL        *string   `gorm:"type:varchar(512)"`
	Timezone         *string   `gorm:"type:varchar(100)"`
	LinkedinURL      *string   `gorm:"type:varchar(512)"`
	StripeAccountID  *string   `gorm:"type:varchar(255);uniqueIndex"`
	StripeOnboarded  bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}
