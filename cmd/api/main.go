// Package main is the entry point for the Travel Tracker API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pkordes/travel-tracker/internal/assistant"
	"github.com/pkordes/travel-tracker/internal/chat"
	"github.com/pkordes/travel-tracker/internal/config"
	"github.com/pkordes/travel-tracker/internal/handler"
	"github.com/pkordes/travel-tracker/internal/middleware"
	"github.com/pkordes/travel-tracker/internal/repo"
	"github.com/pkordes/travel-tracker/internal/service"
	"github.com/pkordes/travel-tracker/internal/store"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// The level is not known yet; log at the default.
		log.Fatal().Err(err).Msg("configuration error")
	}

	// --- Logger -----------------------------------------------------------
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(parseLogLevel(cfg.LogLevel))
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	logger := log.Logger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database ---------------------------------------------------------
	// Open pings and migrates before returning.
	db, err := store.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("failed to open database")
	}
	defer db.Close()
	logger.Info().Str("driver", db.Dialect()).Msg("database ready")

	trips := service.NewTripService(repo.NewTripRepo(db.DB(), db.Builder()))
	logs := service.NewChatLogService(repo.NewChatLogRepo(db.DB(), db.Builder()))

	// --- Assistant --------------------------------------------------------
	if cfg.AssistantAPIKey == "" {
		logger.Warn().Msg("ASSISTANT_API_KEY is not set; assistant requests will fail")
	}
	gateway := assistant.NewOpenAIGateway(assistant.Config{
		APIKey:  cfg.AssistantAPIKey,
		BaseURL: cfg.AssistantBaseURL,
		Model:   cfg.AssistantModel,
		Timeout: cfg.AssistantTimeout,
	})

	sessions, closeSessions := sessionStore(ctx, cfg, logger)
	defer closeSessions()

	chatSvc := chat.NewService(sessions, gateway, logs, logger)

	// --- Router -----------------------------------------------------------
	// Middleware order: RequestID, RealIP, request log, Recoverer, CORS, body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewRequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Mount("/", handler.NewServer(trips, logs, chatSvc, logger).Routes())

	// --- HTTP Server ------------------------------------------------------
	// A chat send holds the request open for up to the assistant timeout.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.AssistantTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
		return
	}
	logger.Info().Msg("server stopped")
}

// sessionStore builds the configured chat session store and its cleanup func.
func sessionStore(ctx context.Context, cfg config.Config, logger zerolog.Logger) (chat.SessionStore, func()) {
	if cfg.ChatSessionStore != config.SessionStoreRedis {
		return chat.NewMemoryStore(), func() {}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("failed to connect to redis")
	}
	logger.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.ChatSessionTTL).Msg("chat sessions in redis")

	return chat.NewRedisStore(rdb, cfg.ChatSessionTTL), func() { _ = rdb.Close() }
}

func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
