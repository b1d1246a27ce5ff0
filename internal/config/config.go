package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = "5000"
	defaultDatabaseURL = "kika_braids.db"
	defaultUploadsDir  = "./uploads"
	defaultWebDir      = "./web"
	defaultJWTTTL      = "24h"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTTTL        time.Duration
	AdminPassword string
	UploadsDir    string
	WebDir        string
}

// Load reads .env if present, then the environment. JWT_SECRET and
// ADMIN_PASSWORD have no safe default and must be set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", defaultPort),
		DatabaseURL:   getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:     strings.TrimSpace(os.Getenv("JWT_SECRET")),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		UploadsDir:    getEnv("UPLOADS_DIR", defaultUploadsDir),
		WebDir:        getEnv("WEB_DIR", defaultWebDir),
	}

	ttlRaw := getEnv("JWT_TTL", defaultJWTTTL)
	ttl, err := time.ParseDuration(ttlRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL value %q: %w", ttlRaw, err)
	}
	cfg.JWTTTL = ttl

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}
	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is empty")
	}

	return cfg, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
