package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port               string
	HTSAPIBase         string
	DBPath             string
	CacheTTLHours      int
	HTTPTimeoutSeconds int
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() *Config {
	// Missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "8080"),
		HTSAPIBase:         getEnv("HTS_API_BASE", "https://hts.usitc.gov/reststop"),
		DBPath:             getEnv("HTS_DB_PATH", "hts-helpers.db"),
		CacheTTLHours:      getEnvInt("HTS_CACHE_TTL_HOURS", 24),
		HTTPTimeoutSeconds: getEnvInt("HTS_HTTP_TIMEOUT_SECONDS", 10),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
