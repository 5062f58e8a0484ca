package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "storefront-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxFileSize)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.Equal(t, "/uploads", cfg.Upload.PublicPath)
	assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("STORE_APP_PORT", "8081")
	t.Setenv("STORE_DATABASE_DBNAME", "storefront_test")
	t.Setenv("STORE_JWT_EXPIRATION", "2h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.App.Port)
	assert.Equal(t, "storefront_test", cfg.Database.DBName)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
}

func TestValidate_Production(t *testing.T) {
	t.Run("requires strong jwt secret", func(t *testing.T) {
		t.Setenv("STORE_APP_ENV", "production")
		t.Setenv("STORE_JWT_SECRET", "short")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects disabled ssl", func(t *testing.T) {
		t.Setenv("STORE_APP_ENV", "production")
		t.Setenv("STORE_JWT_SECRET", "0123456789abcdef0123456789abcdef")
		t.Setenv("STORE_DATABASE_PASSWORD", "pw")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("accepts complete production config", func(t *testing.T) {
		t.Setenv("STORE_APP_ENV", "production")
		t.Setenv("STORE_JWT_SECRET", "0123456789abcdef0123456789abcdef")
		t.Setenv("STORE_DATABASE_PASSWORD", "pw")
		t.Setenv("STORE_DATABASE_SSLMODE", "require")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "store",
		Password: "p@ss/word",
		DBName:   "storefront",
		SSLMode:  "require",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5433")
	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "p@ss/word") // must be escaped
}
