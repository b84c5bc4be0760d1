package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionFieldLookup(t *testing.T) {
	sessionData := `{"session_id":"s-1","user_id":"u-1","role":"mom","email":"mom@example.com"}`

	assert.Equal(t, "mom", GetSessionRole(sessionData))
	assert.Equal(t, "u-1", GetSessionUserID(sessionData))
	assert.Equal(t, "", GetSessionRole("not json"))
}
