package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setPostgresEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PG_HOST", "db")
	t.Setenv("PG_USER", "trivia")
	t.Setenv("PG_PASSWORD", "secret")
	t.Setenv("PG_DATABASE", "trivia")
}

func TestLoadDefaults(t *testing.T) {
	setPostgresEnv(t)

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "trivia-bank", cfg.Name)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, 10, cfg.Quiz.PageSize)
	assert.Equal(t, 5*time.Minute, cfg.Quiz.CategoryCacheTTL)
	assert.False(t, cfg.Redis.Enabled())
	assert.Zero(t, cfg.Import.Interval)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}, cfg.CORS.AllowedMethods)
	assert.Equal(t, "host=db port=5432 user=trivia password=secret dbname=trivia sslmode=disable", cfg.Postgres.DSN())
}

func TestLoadOverrides(t *testing.T) {
	setPostgresEnv(t)
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("QUESTIONS_PER_PAGE", "25")
	t.Setenv("IMPORT_INTERVAL", "30m")
	t.Setenv("IMPORT_SOURCE", "triviaapi")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://quiz.example.com")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 25, cfg.Quiz.PageSize)
	assert.Equal(t, 30*time.Minute, cfg.Import.Interval)
	assert.Equal(t, "triviaapi", cfg.Import.Source)
	assert.Equal(t, []string{"http://localhost:3000", "https://quiz.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoadRequiresPostgres(t *testing.T) {
	t.Setenv("PG_HOST", "")
	t.Setenv("PG_USER", "")
	t.Setenv("PG_PASSWORD", "")
	t.Setenv("PG_DATABASE", "")

	_, err := Load(context.Background())
	assert.Error(t, err)
}

func TestLoadRejectsNonPositivePageSize(t *testing.T) {
	setPostgresEnv(t)
	t.Setenv("QUESTIONS_PER_PAGE", "0")

	_, err := Load(context.Background())
	assert.ErrorContains(t, err, "QUESTIONS_PER_PAGE")
}
