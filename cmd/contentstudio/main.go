// Package main is the entry point for the content studio server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"contentstudio/internal/ai"
	"contentstudio/internal/cache"
	"contentstudio/internal/config"
	"contentstudio/internal/database"
	"contentstudio/internal/generate"
	"contentstudio/internal/geo"
	"contentstudio/internal/handlers"
	"contentstudio/internal/prompt"
	"contentstudio/internal/router"
	"contentstudio/internal/store"
)

func main() {
	// Structured logger for everything below.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Local development convenience; the file is optional.
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded environment from .env")
	}

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"model", cfg.AIModel,
	)

	if cfg.OpenRouterKey == "" {
		slog.Warn("OPENROUTER_API_KEY not set — generation requests will fail")
	}

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the stock rubrics and tone of voice (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Initialize data stores.
	rubricStore := store.NewRubricStore(db)
	postStore := store.NewPostStore(db)
	settingStore := store.NewSettingStore(db)

	// Rubric templates and conditioning examples are served through the
	// read-through cache; the admin write path invalidates it.
	rubricCache := cache.NewRubricCache(valkeyClient, rubricStore, postStore, cache.DefaultRubricTTL)

	// Model backend.
	provider := ai.NewOpenRouter(ai.ProviderConfig{
		APIKey:  cfg.OpenRouterKey,
		Model:   cfg.AIModel,
		BaseURL: cfg.OpenRouterBaseURL,
	})

	// Generation pipeline.
	pipeline := generate.NewService(rubricCache, settingStore, provider, prompt.NewComposer())

	// City resolution against Nominatim.
	resolver := geo.NewResolver(geo.NewClient(cfg.NominatimBaseURL))

	// Handler group and router.
	api := handlers.NewAPI(pipeline, rubricStore, postStore, resolver, rubricCache)
	r := router.New(api, cfg.AllowedOrigins)

	// WriteTimeout must accommodate the generation endpoint, which waits on
	// model responses for up to 60 seconds.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
