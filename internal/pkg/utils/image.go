package utils

import (
	"encoding/base64"
	"errors"
	"mommycare-service/internal/pkg/constvars"
	"regexp"
	"strings"
)

var base64DataURIPrefixRegex = regexp.MustCompile(constvars.RegexBase64DataURIPrefix)

var allowedImageExtensions = map[string]string{
	"png":  ".png",
	"jpg":  ".jpg",
	"jpeg": ".jpg",
	"gif":  ".gif",
	"webp": ".webp",
}

// DecodeBase64Image decodes a data URI such as "data:image/png;base64,...."
// and returns the raw bytes with the matching file extension.
func DecodeBase64Image(dataURI string) ([]byte, string, error) {
	matches := base64DataURIPrefixRegex.FindStringSubmatch(dataURI)
	if len(matches) < 2 {
		return nil, "", errors.New("image is not a base64 data URI")
	}

	extension, ok := allowedImageExtensions[strings.ToLower(matches[1])]
	if !ok {
		return nil, "", errors.New("unsupported image type " + matches[1])
	}

	decoded, err := base64.StdEncoding.DecodeString(dataURI[len(matches[0]):])
	if err != nil {
		return nil, "", err
	}
	if len(decoded) == 0 {
		return nil, "", errors.New("image is empty")
	}

	return decoded, extension, nil
}
