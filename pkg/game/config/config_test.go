package config

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 21, cfg.Width)
	assert.Equal(t, 21, cfg.Height)
	assert.Equal(t, ModeTUI, cfg.Mode)
	assert.Equal(t, "fr", cfg.Locale)
	assert.Equal(t, 4*time.Second, cfg.AdvisoryDuration)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv(t *testing.T) {
	cfg, err := FromEnv(Default(), envOf(map[string]string{
		"MAZE_WIDTH":            "31",
		"MAZE_HEIGHT":           "15",
		"MAZE_SEED":             "42",
		"MAZE_MODE":             "serve",
		"MAZE_LOCALE":           "en",
		"MAZE_ADDR":             ":9000",
		"GIN_MODE":              "debug",
		"MAZE_REOFFER_TREASURE": "true",
		"MAZE_ADVISORY_MS":      "1500",
	}))
	require.NoError(t, err)

	assert.Equal(t, 31, cfg.Width)
	assert.Equal(t, 15, cfg.Height)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, ModeServe, cfg.Mode)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.True(t, cfg.ReofferDeclinedTreasure)
	assert.Equal(t, 1500*time.Millisecond, cfg.AdvisoryDuration)
	assert.Equal(t, "locales", cfg.LocaleDir, "unset variables keep their value")
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"width not a number", map[string]string{"MAZE_WIDTH": "wide"}},
		{"seed not a number", map[string]string{"MAZE_SEED": "x"}},
		{"bad boolean", map[string]string{"MAZE_REOFFER_TREASURE": "sometimes"}},
		{"unknown mode", map[string]string{"MAZE_MODE": "web"}},
		{"zero width", map[string]string{"MAZE_WIDTH": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(Default(), envOf(tt.vars))
			assert.Error(t, err)
		})
	}
}

func TestFromEnv_UnknownModeIsErrInvalidMode(t *testing.T) {
	_, err := FromEnv(Default(), envOf(map[string]string{"MAZE_MODE": "web"}))
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestParseFlags(t *testing.T) {
	base, err := FromEnv(Default(), envOf(map[string]string{"MAZE_WIDTH": "31"}))
	require.NoError(t, err)

	cfg, err := ParseFlags(base, []string{"-height", "11", "-mode", "gui", "-seed", "7", "-skip-map", "-advisory", "2s"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 31, cfg.Width, "flags left unset keep the environment value")
	assert.Equal(t, 11, cfg.Height)
	assert.Equal(t, ModeGUI, cfg.Mode)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.True(t, cfg.SkipOverworld)
	assert.Equal(t, 2*time.Second, cfg.AdvisoryDuration)
}

func TestParseFlags_Errors(t *testing.T) {
	_, err := ParseFlags(Default(), []string{"-nope"}, io.Discard)
	assert.Error(t, err)

	_, err = ParseFlags(Default(), []string{"-mode", "batch"}, io.Discard)
	assert.ErrorIs(t, err, ErrInvalidMode)
}
