package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeBase64Image(t *testing.T) {
	t.Run("PNG Data URI", func(t *testing.T) {
		data, extension, err := DecodeBase64Image("data:image/png;base64,aGVsbG8=")

		assert.NoError(t, err)
		assert.Equal(t, ".png", extension)
		assert.Equal(t, []byte("hello"), data)
	})

	t.Run("JPEG Normalized To JPG", func(t *testing.T) {
		_, extension, err := DecodeBase64Image("data:image/jpeg;base64,aGVsbG8=")

		assert.NoError(t, err)
		assert.Equal(t, ".jpg", extension)
	})

	t.Run("Missing Prefix", func(t *testing.T) {
		_, _, err := DecodeBase64Image("aGVsbG8=")

		assert.Error(t, err)
	})

	t.Run("Unsupported Type", func(t *testing.T) {
		_, _, err := DecodeBase64Image("data:image/tiff;base64,aGVsbG8=")

		assert.Error(t, err)
	})
}
