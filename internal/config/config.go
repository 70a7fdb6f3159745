package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string

	// Backend selection: "fixture" serves canned development data,
	// "http" talks to a remote backend at BackendURL.
	BackendMode string
	BackendURL  string

	// Daily nutrition goals used for goal completion scoring.
	DailyCalories float64
	DailyProtein  float64
	DailyCarbs    float64
	DailyFat      float64

	// OTLP trace export configuration
	OTLPEndpoint string
	OTLPEnv      string
}

func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		BackendMode: getEnv("BACKEND_MODE", "fixture"),
		BackendURL:  getEnv("BACKEND_URL", "http://localhost:8080"),

		DailyCalories: getEnvFloat("DAILY_CALORIES_GOAL", 1800),
		DailyProtein:  getEnvFloat("DAILY_PROTEIN_GOAL", 120),
		DailyCarbs:    getEnvFloat("DAILY_CARBS_GOAL", 200),
		DailyFat:      getEnvFloat("DAILY_FAT_GOAL", 60),

		OTLPEndpoint: getEnv("OTLP_ENDPOINT", ""),
		OTLPEnv:      getEnv("OTLP_ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
