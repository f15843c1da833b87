// Package config centralises configuration parsing for workoutstats.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration values.
type Config struct {
	InputPath       string // empty means the built-in sample packages, "-" reads stdin
	LogLevel        string
	AthleteWeightKg float64 // used for inputs without body measurements
	AthleteHeightCm float64
}

// Load reads an optional .env file and the environment into Config, applying
// defaults for anything unset. The returned bool reports whether a .env file was found.
func Load(envFiles ...string) (Config, bool) {
	envLoaded := godotenv.Load(envFiles...) == nil

	cfg := Config{
		InputPath:       getEnv("WORKOUT_INPUT", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		AthleteWeightKg: getFloatEnv("ATHLETE_WEIGHT_KG", 75),
		AthleteHeightCm: getFloatEnv("ATHLETE_HEIGHT_CM", 180),
	}
	return cfg, envLoaded
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
