package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Lobby authority
	LobbyURL string

	// Simulation
	CatalogPath string
	Seed        int64
	Frame       time.Duration
}

// Load loads configuration from environment variables. Every setting has
// a working default so the server comes up with no environment at all.
func Load() *Config {
	cfg := &Config{
		Port:        getEnvInt("PORT", 8090),
		Env:         getEnv("ENV", "development"),
		LobbyURL:    getEnv("LOBBY_URL", "ws://localhost:8080/ws"),
		CatalogPath: getEnv("CATALOG_PATH", ""),
		Seed:        getEnvInt64("SEED", 0),
		Frame:       getEnvDuration("FRAME", 33*time.Millisecond),
	}

	origins := getEnv("ALLOWED_ORIGINS", "*")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
