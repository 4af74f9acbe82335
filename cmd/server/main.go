// Package main is the entry point for the arremate identifier API server.
// Shared-database multi-tenancy: every tenant-scoped table carries tenant_id.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"arremate/internal/config"
	"arremate/internal/core/tenant"
	domainpubid "arremate/internal/domain/pubid"
	v1 "arremate/internal/infrastructure/http/v1"
	"arremate/internal/infrastructure/storage/postgres"
	"arremate/internal/infrastructure/storage/postgres/pubid_repo"
	"arremate/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting arremate identifier server")

	// --- Database connection ---
	poolCfg := postgres.DefaultPoolConfig(cfg.DatabaseURL)
	poolCfg.MaxConns = cfg.DBMaxConns
	poolCfg.MinConns = cfg.DBMinConns

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	// --- Tenant registry ---
	registry := tenant.NewCachedRegistry(
		tenant.NewPostgresRegistry(pool.Unwrap()),
		cfg.TenantCacheTTL,
	)

	// --- Public identifier service ---
	txManager := postgres.NewTxManager(pool)
	maskRepo := pubid_repo.NewMaskRepo(txManager)
	counterRepo := pubid_repo.NewCounterRepo(txManager)
	pubidService := domainpubid.NewService(maskRepo, counterRepo, txManager, log)

	// --- HTTP server ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:            pool,
		TenantRegistry:  registry,
		PublicIDService: pubidService,
		Logger:          log,
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		log.Infow("http server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("http server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("forced shutdown", "error", err)
	}
	log.Info("server stopped")
}
