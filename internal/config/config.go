package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// devFallbackSecret is the insecure default the first prototype shipped with.
// It is only accepted when APP_ENV=development.
const devFallbackSecret = "devsecret"

type Config struct {
	Env           string
	HTTPAddr      string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	AIAPIKey      string
}

// Load reads configuration from the environment (and an optional .env file)
// and refuses to start with an unset or known-insecure JWT secret.
func Load() (*Config, error) {
	// .env is optional; real env vars win.
	_ = godotenv.Load()

	cfg := &Config{
		Env:           getEnv("APP_ENV", "production"),
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AIAPIKey:      os.Getenv("AI_API_KEY"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR not set")
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %v", err)
		}
		cfg.RedisDB = n
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}
	if cfg.JWTSecret == devFallbackSecret && cfg.Env != "development" {
		return nil, fmt.Errorf("JWT_SECRET is the development fallback; set a real secret or APP_ENV=development")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
