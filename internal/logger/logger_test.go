package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, New("debug").GetLevel())
	assert.Equal(t, zerolog.WarnLevel, New("warn").GetLevel())

	// Bad or empty levels fall back to info instead of failing startup.
	assert.Equal(t, zerolog.InfoLevel, New("").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("loud").GetLevel())
}
