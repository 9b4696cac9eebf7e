// Package config handles application configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string
	UploadDir   string
	SeedPath    string
	// Depot is the fleet's home base, used as the notional route start when
	// a driver has no reported position. Defaults to central Accra.
	DepotLat    float64
	DepotLng    float64
	TrackingTTL time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:        Get("PORT", "8080"),
		DatabaseURL: Get("DATABASE_URL", ""),
		RedisAddr:   Get("REDIS_ADDR", "localhost:6379"),
		UploadDir:   Get("UPLOAD_DIR", "data/uploads"),
		SeedPath:    Get("SEED_PATH", "data/seeds/demo.json"),
		DepotLat:    getFloatEnv("DEPOT_LAT", 5.6037),
		DepotLng:    getFloatEnv("DEPOT_LNG", -0.1870),
		TrackingTTL: getDurationEnv("TRACKING_TTL_SECONDS", 300) * time.Second,
	}
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getDurationEnv(key string, fallbackSeconds int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			return time.Duration(seconds)
		}
	}
	return time.Duration(fallbackSeconds)
}
