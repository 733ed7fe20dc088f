package config_test

import (
	"testing"

	"tribaltides/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "database.sqlite3", cfg.DatabaseDSN)
	assert.Equal(t, "./static/images", cfg.StaticImagesDir)
	assert.Equal(t, "./dist", cfg.FrontendDist)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.True(t, cfg.SeedOnStart)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", ":9000")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "host=db user=shop dbname=shop")
	t.Setenv("SEED_ON_START", "false")

	cfg := config.Load()

	assert.Equal(t, ":9000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, "host=db user=shop dbname=shop", cfg.DatabaseDSN)
	assert.False(t, cfg.SeedOnStart)
}
