// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/pkordes/travel-tracker/internal/store"
)

// Session store kinds accepted by CHAT_SESSION_STORE.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables and an optional .env file.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// LogLevel controls the minimum log level: debug, info, warn or error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to the Expo dev server. Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:8081" envSeparator:","`

	// DBDriver selects the store dialect. Normalised to "sqlite" or "postgres".
	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"`

	// DatabaseURL is the DSN. The default is a SQLite file in the working directory;
	// it must be set explicitly for postgres.
	DatabaseURL string `env:"DATABASE_URL" envDefault:"file:TravelTracker.db"`

	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	AssistantAPIKey  string        `env:"ASSISTANT_API_KEY"`
	AssistantBaseURL string        `env:"ASSISTANT_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/openai/"`
	AssistantModel   string        `env:"ASSISTANT_MODEL" envDefault:"gemini-1.5-flash"`
	AssistantTimeout time.Duration `env:"ASSISTANT_TIMEOUT" envDefault:"30s"`

	// ChatSessionStore is "memory" or "redis".
	ChatSessionStore string        `env:"CHAT_SESSION_STORE" envDefault:"memory"`
	RedisAddr        string        `env:"REDIS_ADDR" envDefault:"127.0.0.1:6379"`
	RedisPassword    string        `env:"REDIS_PASSWORD"`
	ChatSessionTTL   time.Duration `env:"CHAT_SESSION_TTL" envDefault:"24h"`
}

// Load reads configuration from the process environment, falling back to
// ./.env for variables the environment does not set.
func Load() (Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path. A missing file is not an
// error; an empty path skips the file entirely.
//
// A variable set to the empty string counts as unset, so its default applies.
func LoadFrom(dotenv string) (Config, error) {
	vars, err := environment(dotenv)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.Parse(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg.CORSOrigins = cleanList(cfg.CORSOrigins)

	if err := cfg.validate(vars); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate(vars map[string]string) error {
	var problems []string

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL: unknown level %q", c.LogLevel))
	}

	dialect, err := store.NormalizeDialect(c.DBDriver)
	if err != nil {
		problems = append(problems, fmt.Sprintf("DB_DRIVER: unsupported driver %q", c.DBDriver))
	} else {
		c.DBDriver = dialect
		if _, set := vars["DATABASE_URL"]; dialect == store.DialectPostgres && !set {
			problems = append(problems, "DATABASE_URL: required when DB_DRIVER is postgres")
		}
	}

	switch c.ChatSessionStore {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		problems = append(problems, fmt.Sprintf("CHAT_SESSION_STORE: unknown store %q", c.ChatSessionStore))
	}

	if c.MaxBodyBytes <= 0 {
		problems = append(problems, "MAX_BODY_BYTES: must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// environment merges the dotenv file under the process environment, dropping empty values.
func environment(dotenv string) (map[string]string, error) {
	vars := map[string]string{}
	if dotenv != "" {
		file, err := godotenv.Read(dotenv)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: read %s: %w", dotenv, err)
		}
		for k, v := range file {
			if v != "" {
				vars[k] = v
			}
		}
	}
	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		if v != "" {
			vars[k] = v
		}
	}
	return vars, nil
}

// cleanList trims entries and drops empty ones.
func cleanList(in []string) []string {
	var out []string
	for _, part := range in {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
