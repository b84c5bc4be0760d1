package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionJWT(t *testing.T) {
	secret := "test-secret"

	t.Run("Round Trip", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", secret, 1)
		assert.NoError(t, err)

		sessionID, err := ParseJWT(token, secret)

		assert.NoError(t, err)
		assert.Equal(t, "session-123", sessionID)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", secret, 1)
		assert.NoError(t, err)

		_, err = ParseJWT(token, "another-secret")

		assert.Error(t, err)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", secret, -1)
		assert.NoError(t, err)

		_, err = ParseJWT(token, secret)

		assert.Error(t, err)
	})
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("Str0ng!Pass")

	assert.NoError(t, err)
	assert.True(t, CheckPasswordHash("Str0ng!Pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
