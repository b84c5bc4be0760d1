package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, parseLogLevel("debug"))
	assert.Equal(t, zap.WarnLevel, parseLogLevel("warn"))
	assert.Equal(t, zap.ErrorLevel, parseLogLevel("error"))
	assert.Equal(t, zap.InfoLevel, parseLogLevel("verbose"))
}
