package utils

import (
	"github.com/google/uuid"
)

// GenerateUUIDv7 returns a time-ordered id for new rows, so primary keys
// sort by creation time without a separate sequence. Falls back to v4 when
// the entropy source fails.
func GenerateUUIDv7() uuid.UUID {
	if id, err := uuid.NewV7(); err == nil {
		return id
	}
	return uuid.New()
}
