package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/diary_app/internal/core/ports/repositories"
	"github.com/SscSPs/diary_app/internal/core/services"
	"github.com/SscSPs/diary_app/internal/handlers"
	"github.com/SscSPs/diary_app/internal/middleware"
	"github.com/SscSPs/diary_app/internal/platform/config"
	"github.com/SscSPs/diary_app/internal/repositories/database/mongodb"
	"github.com/SscSPs/diary_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/diary_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Daily Diary API
// @version 1.0
// @description Journal entries with mood tracking.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := middleware.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize store", slog.String("backend", cfg.StoreBackend), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	serviceContainer := services.NewServiceContainer(services.ContainerConfig{
		ListTimeout:    cfg.ListTimeout,
		GratitudeLimit: cfg.GratitudeLimit,
	}, &repos)
	logger.Info("Services configured",
		slog.String("store_backend", cfg.StoreBackend),
		slog.Int("gratitude_limit", cfg.GratitudeLimit),
		slog.Duration("list_timeout", cfg.ListTimeout),
	)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	metrics := middleware.NewMetrics()

	// Global middleware (logging, recovery, metrics, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), metrics.Middleware(), cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, metrics); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// openStore builds the repositories for the configured backend and returns a func releasing its resources.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.RepositoryProvider, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			return repositories.RepositoryProvider{}, nil, err
		}

		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PgxPoolOptions{
			MinConns: int32(cfg.DBMinPool),
			MaxConns: int32(cfg.DBMaxPool),
		})
		if err != nil {
			return repositories.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil

	default:
		connector := database.NewConnector(database.MongoOptions{
			URI:                    cfg.MongoURI,
			Database:               cfg.MongoDatabase,
			Collection:             cfg.MongoCollection,
			MinPoolSize:            cfg.DBMinPool,
			MaxPoolSize:            cfg.DBMaxPool,
			ServerSelectionTimeout: cfg.DBServerSelectionTimeout,
			SocketTimeout:          cfg.DBSocketTimeout,
		}, logger)

		// The connector is lazy; a failed warm-up is retried on the first request.
		if _, err := connector.Connect(ctx); err != nil {
			logger.Warn("Initial MongoDB connection failed", slog.String("error", err.Error()))
		}

		closeFn := func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := connector.Disconnect(shutdownCtx); err != nil {
				logger.Error("Failed to disconnect from MongoDB", slog.String("error", err.Error()))
			}
		}
		return mongodb.NewRepositoryProvider(connector), closeFn, nil
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{middleware.RequestIDHeader, "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
