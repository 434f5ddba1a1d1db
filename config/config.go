package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the environment-driven settings for the matching engine.
type Config struct {
	Port            string
	AWSRegion       string
	S3Bucket        string
	LogLevel        string
	FreshnessWindow time.Duration
	ResetPageSize   int
	ProfileCacheTTL time.Duration
}

// Load reads configuration from the environment, with a best-effort .env
// load for local development.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "8080"),
		AWSRegion:       os.Getenv("AWS_REGION"),
		S3Bucket:        os.Getenv("S3_BUCKET_NAME"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		FreshnessWindow: getDuration("FEED_FRESHNESS_WINDOW", time.Hour),
		ResetPageSize:   getInt("RESET_PAGE_SIZE", 50),
		ProfileCacheTTL: getDuration("PROFILE_CACHE_TTL", 5*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
