package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "jane-doe", Slugify("Jane Doe"))
	assert.Equal(t, "jane-doe", Slugify("  Jane   Doe!  "))
	assert.Equal(t, "coach-42", Slugify("Coach #42"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestGetPaginationParams(t *testing.T) {
	p := GetPaginationParams(0, -5)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Limit)

	p = GetPaginationParams(3, 20)
	assert.Equal(t, 40, p.CalculateOffset())
}

func TestCalculateMeta(t *testing.T) {
	meta := CalculateMeta(45, 2, 20)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, int64(45), meta.TotalCount)

	meta = CalculateMeta(45, 1, 0)
	assert.Equal(t, 1, meta.TotalPages)
	assert.Equal(t, 45, meta.Limit)
}

func TestGenerateUUIDv7(t *testing.T) {
	a := GenerateUUIDv7()
	b := GenerateUUIDv7()
	assert.NotEqual(t, a, b)
}
