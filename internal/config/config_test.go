package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldwd) })
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_ENV", "PORT", "DB_PATH", "JWT_SECRET", "TOKEN_TTL", "LOG_LEVEL", "METRICS_ENABLED"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir()) // no stray .env

	cfg := Load()

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "./data/potluck.db", cfg.DBPath)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 30*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, ":8080", cfg.Addr())
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/p.db")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := Load()

	assert.Equal(t, EnvProduction, cfg.Environment)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/tmp/p.db", cfg.DBPath)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.MetricsEnabled)
	require.NoError(t, cfg.Validate())
}

func TestLoad_ProductionNeedsSecret(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", "production")

	cfg := Load()

	assert.Empty(t, cfg.JWTSecret)
	assert.ErrorContains(t, cfg.Validate(), "JWT_SECRET is required")
}

func TestLoad_UnparseableValues(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("PORT", "abc")
	t.Setenv("TOKEN_TTL", "forever")
	t.Setenv("METRICS_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid PORT 'abc'")
	assert.ErrorContains(t, err, "invalid TOKEN_TTL 'forever'")
	assert.ErrorContains(t, err, "invalid METRICS_ENABLED 'maybe'")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment: EnvDevelopment,
			Port:        8080,
			DBPath:      "db",
			JWTSecret:   "secret",
			TokenTTL:    time.Hour,
			LogLevel:    "info",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad port", func(c *Config) { c.Port = 70000 }, "invalid port"},
		{"empty db path", func(c *Config) { c.DBPath = "" }, "database path"},
		{"short production secret", func(c *Config) { c.Environment = EnvProduction }, "at least 32"},
		{"zero ttl", func(c *Config) { c.TokenTTL = 0 }, "token TTL"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log level"},
		{"warning log level", func(c *Config) { c.LogLevel = "WARNING" }, ""},
		{"bad environment", func(c *Config) { c.Environment = "staging" }, "invalid environment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
