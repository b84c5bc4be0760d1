package utils

import (
	"mommycare-service/internal/pkg/constvars"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var slugInvalidCharsRegex = regexp.MustCompile(constvars.RegexSlugInvalidChars)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateResetPasswordToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GenerateSlug lowercases name and joins its alphanumeric runs with dashes.
func GenerateSlug(name string) string {
	slug := slugInvalidCharsRegex.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// GenerateUniqueSlug appends a short random suffix to the slug of name.
func GenerateUniqueSlug(name string) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	slug := GenerateSlug(name)
	if slug == "" {
		return suffix
	}
	return slug + "-" + suffix
}
