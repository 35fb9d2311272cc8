// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable ParseFlags reads so the host environment can't leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "DATABASE_URL", "DATABASE_TYPE", "APP_NAME", "ORG_NAME", "BASE_URL",
		"TRUST_PROXY", "APP_ENV", "LOG_LEVEL", "LOG_FORMAT",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_IDLE_TIMEOUT", "DB_QUERY_TIMEOUT",
		"DB_RETRY_DELAY", "DB_RETRY_ATTEMPTS",
	} {
		t.Setenv(k, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultDatabaseURL, cfg.DatabaseURL)
	assert.Equal(t, "sqlite", cfg.DatabaseType)
	assert.Equal(t, DefaultAppName, cfg.AppName)
	assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
	assert.False(t, cfg.TrustProxy)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, 30*time.Second, cfg.DB.IdleTimeout)
	assert.Equal(t, 5*time.Second, cfg.DB.RetryDelay)
	assert.Equal(t, 10, cfg.DB.RetryAttempts)
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test@localhost/votes")
	t.Setenv("APP_NAME", "Feira de Ciências")
	t.Setenv("ORG_NAME", "Escola")
	t.Setenv("BASE_URL", "https://vote.example.org/")
	t.Setenv("TRUST_PROXY", "true")
	t.Setenv("DB_QUERY_TIMEOUT", "2s")

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "postgres", cfg.DatabaseType, "type should be inferred from URL")
	assert.Equal(t, "Feira de Ciências", cfg.AppName)
	assert.Equal(t, "Escola", cfg.OrgName)
	assert.Equal(t, "https://vote.example.org", cfg.BaseURL, "trailing slash should be trimmed")
	assert.True(t, cfg.TrustProxy)
	assert.Equal(t, 2*time.Second, cfg.DB.QueryTimeout)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("BASE_URL", "http://env.example")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-base-url", "http://cli.example", "-trust-proxy"})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "file:test.db", cfg.DatabaseURL)
	assert.Equal(t, "http://cli.example", cfg.BaseURL)
	assert.True(t, cfg.TrustProxy)
}

func TestParseFlags_BaseURLFollowsPort(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-p", "4000"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000", cfg.BaseURL)
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"non-numeric port", map[string]string{"PORT": "abc"}, nil},
		{"port out of range", nil, []string{"-p", "70000"}},
		{"unknown database type", map[string]string{"DATABASE_TYPE": "mysql"}, nil},
		{"bad duration", map[string]string{"DB_RETRY_DELAY": "soon"}, nil},
		{"bad bool", map[string]string{"TRUST_PROXY": "maybe"}, nil},
		{"unknown flag", nil, []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := ParseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"garbage", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{LogLevel: tt.in}.SlogLevel())
		})
	}
}
