package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fonebridge/config"
	foneGateway "fonebridge/internal/adapter/gateway/fone"
	httpHandler "fonebridge/internal/adapter/http/handler"
	pgStorage "fonebridge/internal/adapter/storage/postgres"
	redisStorage "fonebridge/internal/adapter/storage/redis"
	"fonebridge/internal/core/ports"
	"fonebridge/internal/service"
	"fonebridge/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Bool("fone_configured", cfg.Fone.Configured()).
		Bool("db_configured", cfg.Database.Configured()).
		Msg("Starting Fone Bridge")

	ctx := context.Background()

	// Remote node gateway. Missing credentials are reported per call,
	// never at startup, so the ledger half keeps working without them.
	gateway := foneGateway.NewClient(cfg.Fone, &http.Client{Timeout: cfg.Fone.Timeout}, log)

	// PostgreSQL ledger (optional). When no database URL is configured
	// the ledger endpoints report a DB error and everything else runs.
	var (
		ledgerSvc ports.LedgerService
		dbHealth  ports.HealthChecker
	)
	if cfg.Database.Configured() {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		if err := pgStorage.InitSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize database schema")
		}
		log.Info().Msg("PostgreSQL connected")

		ledgerRepo := pgStorage.NewLedgerRepo(pool)
		ledgerSvc = service.NewLedgerService(ledgerRepo, log)
		dbHealth = pgStorage.NewHealthCheck(pool)
	} else {
		log.Warn().Msg("No database configured, ledger endpoints disabled")
	}

	// Redis rate limiting (optional).
	var (
		rateLimitStore *redisStorage.RateLimitStore
		redisHealth    ports.HealthChecker
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		redisHealth = redisStorage.NewHealthCheck(rdb)
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Gateway:        gateway,
		Ledger:         ledgerSvc,
		DBHealth:       dbHealth,
		RedisHealth:    redisHealth,
		RateLimitStore: rateLimitStore,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
