package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, Development, cfg.Env)
	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "notifications_queue", cfg.AMQP.Queue)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)
	assert.False(t, cfg.Strava.Configured())
}

func TestFromViper_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("JWT_EXPIRES_IN", "2h")
	t.Setenv("FRONTEND_URL", "https://bank.example.com/")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("STRAVA_CLIENT_ID", "12345")
	t.Setenv("STRAVA_CLIENT_SECRET", "shh")

	cfg, err := FromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, "https://bank.example.com", cfg.FrontendURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSOrigins)
	assert.True(t, cfg.Strava.Configured())
}

func TestFromViper_Invalid(t *testing.T) {
	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("JWT_EXPIRES_IN", "forever")
		_, err := FromViper(newViper())
		assert.ErrorContains(t, err, "JWT_EXPIRES_IN")
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")
		_, err := FromViper(newViper())
		assert.ErrorContains(t, err, "DB_DRIVER")
	})

	t.Run("default secret in production", func(t *testing.T) {
		t.Setenv("ENV", "production")
		_, err := FromViper(newViper())
		assert.ErrorContains(t, err, "JWT_SECRET")
	})
}
