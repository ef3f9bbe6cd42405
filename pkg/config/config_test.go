package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "database.db", cfg.DB.Path)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoadDesdeEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PATH", "/var/lib/almacen/prod.db")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("JWT_SECRET", "super-secreto")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "/var/lib/almacen/prod.db", cfg.DB.Path)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "super-secreto", cfg.JWT.Secret)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}
