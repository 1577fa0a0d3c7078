package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/victorconsulting/diagnosis-engine/internal/adapters"
	"github.com/victorconsulting/diagnosis-engine/internal/cache"
	"github.com/victorconsulting/diagnosis-engine/internal/database"
	"github.com/victorconsulting/diagnosis-engine/internal/errors"
	"github.com/victorconsulting/diagnosis-engine/internal/middleware"
	"github.com/victorconsulting/diagnosis-engine/internal/monitoring"
	"github.com/victorconsulting/diagnosis-engine/internal/privacy"
	"github.com/victorconsulting/diagnosis-engine/internal/resilience"
	"github.com/victorconsulting/diagnosis-engine/internal/security"
	"github.com/victorconsulting/diagnosis-engine/internal/themes"
)

func main() {
	// Structured logging setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Configuration from environment with defaults
	dataDir := getEnvOrDefault("DATA_DIR", "./data")
	port := getEnvOrDefault("PORT", "8080")
	openaiKey := os.Getenv("OPENAI_API_KEY")
	openaiModel := getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini")
	openaiBaseURL := os.Getenv("OPENAI_BASE_URL")
	adminToken := os.Getenv("ADMIN_TOKEN")

	// Initialize database
	db, err := database.NewDB(dataDir)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer errors.SafeClose(db, "database")

	repo := database.NewRepository(db)
	privacyService := privacy.NewService(db)

	// Load the theme catalog. A definition that fails validation is a
	// deployment error, not something to limp past.
	registry, err := themes.NewDefaultRegistry()
	if err != nil {
		slog.Error("Failed to load theme catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("Theme catalog loaded", "themes", registry.IDs())

	commentClient := adapters.NewCommentClient(openaiKey, openaiModel, openaiBaseURL)
	if !commentClient.IsConfigured() {
		slog.Warn("OPENAI_API_KEY not set, narrative comments disabled")
	}

	appMetrics := monitoring.NewMetrics()
	appLogger := monitoring.NewLogger()

	// Track the comment dependency so repeated failures stop slowing
	// down submissions.
	degradationManager := resilience.NewDegradationManager(resilience.DefaultDegradationConfig())
	degradationManager.RegisterService("openai")

	securityMiddleware := security.NewSecurityMiddleware(security.DefaultSecurityConfig())
	rateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimitConfig(), appMetrics)

	// Theme catalog cache (15 minutes TTL)
	appCache := cache.NewCache(15 * time.Minute)

	if adminToken == "" {
		slog.Warn("ADMIN_TOKEN not set, admin endpoints disabled")
	}

	r := newRouter(&serverDeps{
		registry:    registry,
		db:          db,
		repo:        repo,
		privacy:     privacyService,
		comments:    commentClient,
		metrics:     appMetrics,
		logger:      appLogger,
		cache:       appCache,
		degradation: degradationManager,
		security:    securityMiddleware,
		rateLimiter: rateLimiter,
		adminToken:  adminToken,
	})

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		slog.Info("Starting server", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exited")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
