package utils

import (
	"mommycare-service/internal/pkg/constvars"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Soft Baby Blanket":       "soft-baby-blanket",
		"  Bath & Care Kit!  ":    "bath-care-kit",
		"Stroller -- Deluxe 2000": "stroller-deluxe-2000",
		"":                        "",
	}

	for input, expected := range cases {
		assert.Equal(t, expected, GenerateSlug(input), "slug for %q", input)
	}
}

func TestGenerateUniqueSlug(t *testing.T) {
	first := GenerateUniqueSlug("Soft Baby Blanket")
	second := GenerateUniqueSlug("Soft Baby Blanket")

	assert.True(t, strings.HasPrefix(first, "soft-baby-blanket-"))
	assert.NotEqual(t, first, second, "suffix should make slugs unique")
}

func TestGenerateRequestID(t *testing.T) {
	requestID := GenerateRequestID()

	assert.True(t, strings.HasPrefix(requestID, constvars.REQUEST_ID_PREFIX))
	assert.NotEqual(t, requestID, GenerateRequestID())
}
