package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost/storefront")
	t.Setenv("CATALOG_CACHE_TTL", "90s")
	t.Setenv("CATALOG_CACHE_CLEANUP_INTERVAL", "120")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres://localhost/storefront", cfg.Database.Connection)
	assert.Equal(t, "warn", cfg.Database.LogLevel)
	assert.Equal(t, 90*time.Second, cfg.Catalog.CacheTTL)
	assert.Equal(t, 2*time.Minute, cfg.Catalog.CacheCleanupInterval)
}

func TestGetEnvAsDurationFallback(t *testing.T) {
	t.Setenv("CATALOG_CACHE_TTL", "soon")
	assert.Equal(t, 5*time.Minute, getEnvAsDuration("CATALOG_CACHE_TTL", 5*time.Minute))
}
