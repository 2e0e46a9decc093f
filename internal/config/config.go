package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr     string
	DBPath   string
	Timezone string
}

// Load reads an optional .env file, then the environment, falling back to
// defaults suitable for local development.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:     getEnv("VITALOG_ADDR", ":8080"),
		DBPath:   getEnv("VITALOG_DB_PATH", filepath.Join("data", "vitalog.db")),
		Timezone: getEnv("TZ", "UTC"),
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
