package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/tutor")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_PASSWORD", "")
	t.Setenv("REDIS_DB", "0")
	t.Setenv("JWT_SECRET", "real-secret")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("AI_API_KEY", "")
}

func TestLoadSuccess(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("REDIS_DB", "2")
	t.Setenv("AI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres://localhost/tutor", cfg.DatabaseURL)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
	require.Equal(t, 2, cfg.RedisDB)
	require.Equal(t, "real-secret", cfg.JWTSecret)
	require.Equal(t, "sk-test", cfg.AIAPIKey)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, "production", cfg.Env)
}

func TestLoadMissingRequired(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DATABASE_URL", "")
	_, err := Load()
	require.Error(t, err)

	setBaseEnv(t)
	t.Setenv("REDIS_ADDR", "")
	_, err = Load()
	require.Error(t, err)

	setBaseEnv(t)
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	require.Error(t, err)

	setBaseEnv(t)
	t.Setenv("REDIS_DB", "nope")
	_, err = Load()
	require.Error(t, err)
}

func TestLoadRejectsDevFallbackSecret(t *testing.T) {
	// the historical insecure default must not start outside development
	setBaseEnv(t)
	t.Setenv("JWT_SECRET", "devsecret")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("APP_ENV", "development")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Env)
}
