package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateOnly(t *testing.T) {
	t.Run("Date Only", func(t *testing.T) {
		parsed, err := ParseDateOnly("2025-01-15")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("RFC3339 Keeps Calendar Day", func(t *testing.T) {
		parsed, err := ParseDateOnly("2025-01-15T22:30:00+07:00")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ParseDateOnly("   ")

		assert.Error(t, err)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ParseDateOnly("2025-13-45")

		assert.Error(t, err)
	})
}

