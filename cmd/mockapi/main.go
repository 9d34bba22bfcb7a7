package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Didine-06/travel-agency-sub000/internal/mockapi"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/di"
	"github.com/Didine-06/travel-agency-sub000/pkg/config"
	"github.com/Didine-06/travel-agency-sub000/pkg/logger"
	"github.com/Didine-06/travel-agency-sub000/pkg/token"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logCfg := &logger.Config{
		Level:       cfg.App.Environment,
		ServiceName: "mockapi",
		Development: cfg.IsDevelopment(),
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting dev API server...")

	ctx := context.Background()

	// Initialize database connection when enabled, otherwise stay in memory
	var pool *pgxpool.Pool
	if cfg.Database.Enabled {
		pool, err = pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			appLog.Fatal(fmt.Sprintf("Database ping failed: %v", err))
		}
		appLog.Info(fmt.Sprintf("Database connected (%s:%d)", cfg.Database.Host, cfg.Database.Port))
	} else {
		appLog.Info("Database disabled, using in-memory repositories")
	}

	// Initialize Redis connection when enabled
	var redisClient *goredis.Client
	if cfg.Redis.Enabled {
		redisClient = goredis.NewClient(&goredis.Options{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			appLog.Warn(fmt.Sprintf("Redis connection failed (revocation kept in memory): %v", err))
			redisClient = nil
		} else {
			defer redisClient.Close()
			appLog.Info(fmt.Sprintf("Redis connected (%s)", cfg.Redis.Addr()))
		}
	}

	// Build dependency injection container
	container := di.NewContainer(&di.ContainerConfig{
		Pool:   pool,
		Redis:  redisClient,
		Tokens: token.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL, cfg.JWT.Issuer),
	})

	// Seed demo data so the client has something to log into
	if err := di.Seed(ctx, container); err != nil {
		appLog.Fatal(fmt.Sprintf("Seeding failed: %v", err))
	}
	appLog.Info("Demo data seeded")

	// Setup Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := mockapi.NewRouter(container)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		appLog.Info(fmt.Sprintf("Dev API server listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	appLog.Info("Server exited gracefully")
}
