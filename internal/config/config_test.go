package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "SITE_URL", "POSTS_BACKEND", "CONTENT_CACHE_TTL", "CACHE_SWR", "LOG_LEVEL", "GENERATION_FALLBACK"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "", cfg.SiteURL)
	assert.Equal(t, PostsBackendFile, cfg.PostsBackend)
	assert.Equal(t, 5*time.Minute, cfg.ContentCacheTTL)
	assert.True(t, cfg.CacheSWR)
	assert.True(t, cfg.GenerationFallback)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SITE_URL", "https://example.dev/")
	t.Setenv("POSTS_BACKEND", "Postgres")
	t.Setenv("CONTENT_CACHE_TTL", "30")
	t.Setenv("SEO_CACHE_TTL", "2h")
	t.Setenv("CACHE_SWR", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "https://example.dev", cfg.SiteURL)
	assert.Equal(t, PostsBackendPostgres, cfg.PostsBackend)
	assert.Equal(t, 30*time.Second, cfg.ContentCacheTTL)
	assert.Equal(t, 2*time.Hour, cfg.SEOCacheTTL)
	assert.False(t, cfg.CacheSWR)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestGetEnvDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("X_DURATION", "soon")
	assert.Equal(t, time.Second, getEnvDuration("X_DURATION", time.Second))

	t.Setenv("X_DURATION", "-5")
	assert.Equal(t, time.Second, getEnvDuration("X_DURATION", time.Second))
}
