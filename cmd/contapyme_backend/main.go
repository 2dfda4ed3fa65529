package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contapyme/contapyme_backend/internal/core/services"
	"github.com/contapyme/contapyme_backend/internal/handlers"
	"github.com/contapyme/contapyme_backend/internal/jobs"
	"github.com/contapyme/contapyme_backend/internal/middleware"
	"github.com/contapyme/contapyme_backend/internal/platform/config"
	"github.com/contapyme/contapyme_backend/internal/platform/metrics"
	"github.com/contapyme/contapyme_backend/internal/repositories/database/pgsql"
	"github.com/contapyme/contapyme_backend/internal/utils"
	"github.com/contapyme/contapyme_backend/internal/validation"
	"github.com/contapyme/contapyme_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 15 * time.Second

// @title ContaPyme Backend API
// @version 1.0
// @description Accounting, payroll and fixed-asset backend for Chilean SMEs.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name contapyme_session
// @description Session cookie set by POST /auth/login.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := validation.RegisterCustomValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Run Database Migrations ---
	logger.Info("Running database migrations...")
	if _, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck, database.PoolOptions{
		MaxConns:       cfg.DBMaxConns,
		ConnectTimeout: 10 * time.Second,
	})
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	// The schema inspector behind /debug needs a database/sql handle.
	var stdDB *sql.DB
	if !cfg.IsProduction {
		stdDB, err = database.OpenStdDB(cfg.DatabaseURL)
		if err != nil {
			logger.Warn("Schema inspector disabled", slog.String("error", err.Error()))
			stdDB = nil
		} else {
			defer func() {
				if cerr := stdDB.Close(); cerr != nil {
					logger.Error("Error closing inspector DB connection", slog.String("error", cerr.Error()))
				}
			}()
		}
	}

	repos := pgsql.NewRepositoryProvider(dbPool, stdDB)
	container := services.NewServiceContainer(cfg, repos)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		metrics.GinMiddleware(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.SessionMiddleware(cfg.SessionCookieName, cfg.SessionSecret),
		middleware.PosthogMiddleware(posthogClient),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	handlers.RegisterRoutes(r, cfg, container)

	var syncJob *jobs.IndicatorSyncJob
	if cfg.IndicatorSyncEnabled {
		source := jobs.NewMindicadorSource(cfg.IndicatorSourceURL, cfg.IndicatorFetchTimeout)
		syncJob = jobs.NewIndicatorSyncJob(source, container.Indicator, logger, 2*cfg.IndicatorFetchTimeout)
		if err := syncJob.Start(cfg.IndicatorSyncSchedule); err != nil {
			logger.Error("Failed to start indicator sync", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if syncJob != nil {
		syncJob.Stop(shutdownCtx)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", slog.String("error", err.Error()))
		return
	}
	logger.Info("Server stopped")
}
