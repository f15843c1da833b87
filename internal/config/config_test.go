package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sstent/workoutstats/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("WORKOUT_INPUT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ATHLETE_WEIGHT_KG", "")
	t.Setenv("ATHLETE_HEIGHT_CM", "not-a-number")

	cfg, envLoaded := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.False(t, envLoaded)
	assert.Equal(t, config.Config{
		InputPath:       "",
		LogLevel:        "info",
		AthleteWeightKg: 75,
		AthleteHeightCm: 180,
	}, cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("WORKOUT_INPUT", "workouts.toml")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ATHLETE_WEIGHT_KG", "68.5")
	t.Setenv("ATHLETE_HEIGHT_CM", "172")

	cfg, _ := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "workouts.toml", cfg.InputPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 68.5, cfg.AthleteWeightKg)
	assert.Equal(t, 172.0, cfg.AthleteHeightCm)
}

func TestLoad_EnvFile(t *testing.T) {
	// godotenv does not override variables that are already set
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("WORKOUT_INPUT", "")
	require.NoError(t, os.Unsetenv("WORKOUT_INPUT"))

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("WORKOUT_INPUT=from-file.yaml\nLOG_LEVEL=trace\n"), 0o644))

	cfg, envLoaded := config.Load(envFile)
	assert.True(t, envLoaded)
	assert.Equal(t, "from-file.yaml", cfg.InputPath)
	assert.Equal(t, "warn", cfg.LogLevel)
}
