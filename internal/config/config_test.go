package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-tracker/internal/config"
)

var allVars = []string{
	"PORT", "LOG_LEVEL", "CORS_ORIGINS", "DB_DRIVER", "DATABASE_URL", "MAX_BODY_BYTES",
	"ASSISTANT_API_KEY", "ASSISTANT_BASE_URL", "ASSISTANT_MODEL", "ASSISTANT_TIMEOUT",
	"CHAT_SESSION_STORE", "REDIS_ADDR", "REDIS_PASSWORD", "CHAT_SESSION_TTL",
}

// clearEnv blanks every variable Load reads and moves into an empty
// directory so no stray .env file is picked up.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allVars {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())
}

// TestLoad_defaults verifies that every variable falls back to its default
// when unset or set to the empty string.
func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:8081"}, cfg.CORSOrigins)
	require.Equal(t, "sqlite", cfg.DBDriver)
	require.Equal(t, "file:TravelTracker.db", cfg.DatabaseURL)
	require.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	require.Equal(t, "gemini-1.5-flash", cfg.AssistantModel)
	require.Equal(t, 30*time.Second, cfg.AssistantTimeout)
	require.Equal(t, config.SessionStoreMemory, cfg.ChatSessionStore)
	require.Equal(t, 24*time.Hour, cfg.ChatSessionTTL)
}

// TestLoad_overrides verifies that values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, ,https://admin.example.com")
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/travel")
	t.Setenv("ASSISTANT_TIMEOUT", "5s")
	t.Setenv("CHAT_SESSION_STORE", "redis")
	t.Setenv("REDIS_ADDR", "cache:6379")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, "postgres", cfg.DBDriver)
	require.Equal(t, "postgres://user:pass@db:5432/travel", cfg.DatabaseURL)
	require.Equal(t, 5*time.Second, cfg.AssistantTimeout)
	require.Equal(t, config.SessionStoreRedis, cfg.ChatSessionStore)
	require.Equal(t, "cache:6379", cfg.RedisAddr)
}

func TestLoad_dotenvUnderProcessEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7070\nASSISTANT_API_KEY=from-file\n"), 0o600))
	t.Setenv("PORT", "6060")

	cfg, err := config.LoadFrom(path)

	require.NoError(t, err)
	require.Equal(t, "6060", cfg.Port)
	require.Equal(t, "from-file", cfg.AssistantAPIKey)
}

func TestLoad_postgresNeedsDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "postgres")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "DATABASE_URL")
}

// TestLoad_invalid verifies that each rejected value names its variable.
func TestLoad_invalid(t *testing.T) {
	cases := map[string]string{
		"LOG_LEVEL":          "verbose",
		"DB_DRIVER":          "mysql",
		"CHAT_SESSION_STORE": "disk",
		"MAX_BODY_BYTES":     "-1",
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(name, value)

			_, err := config.Load()

			require.Error(t, err)
			require.ErrorContains(t, err, name)
		})
	}
}
