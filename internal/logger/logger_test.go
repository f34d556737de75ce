package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rhushya/Kloudmate/internal/errors"
)

func TestInitAppliesConfiguredLevel(t *testing.T) {
	Init("error", false, false, true)
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())

	Init("info", false, false, true)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestInitDebugOverridesConfiguredLevel(t *testing.T) {
	Init("error", true, false, true)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestInitVerboseOverridesConfiguredLevel(t *testing.T) {
	Init("error", false, true, true)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestInitUnknownLevelFallsBackToWarn(t *testing.T) {
	Init("shout", false, false, true)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want LogLevel
	}{
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
	}
	for _, tt := range tests {
		level, err := ParseLevel(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, level, tt.name)
	}
}

func TestParseLevelRejectsUnknown(t *testing.T) {
	_, err := ParseLevel("shout")
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidLogLevel, errors.CodeOf(err))

	_, err = ParseLevel("")
	require.Error(t, err)
}
