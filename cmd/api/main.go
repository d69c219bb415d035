package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	delivery "tokenmeta-proxy/internal/adapter/delivery/http"
	handler "tokenmeta-proxy/internal/adapter/handler/http"
	"tokenmeta-proxy/internal/adapter/storage/dexscreener"
	"tokenmeta-proxy/internal/adapter/storage/geckoterminal"
	"tokenmeta-proxy/internal/adapter/storage/memory"
	"tokenmeta-proxy/internal/application"
	"tokenmeta-proxy/internal/config"
	"tokenmeta-proxy/internal/logger"
	"tokenmeta-proxy/internal/observability"
)

func main() {
	// --- Configuration ---
	cfgPath := "configs"
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration from %s: %v", cfgPath, err)
	}

	// --- Logger ---
	appLogger, err := logger.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()
	appLogger.Info("Logger initialized", zap.Any("config", cfg.Logger))

	// --- Dependency Injection (Manual) ---
	appLogger.Info("Initializing dependencies...")

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics(cfg.Metrics.Namespace)
	}

	// Providers
	primary := dexscreener.NewRepository(cfg.Providers, appLogger)
	secondary := geckoterminal.NewRepository(cfg.Providers, appLogger)
	cacheRepo := memory.NewCacheRepository(cfg.Cache, appLogger)

	// Services
	metadataService := application.NewMetadataService(primary, secondary, metrics, appLogger)

	// Handlers
	tokenHandler := handler.NewTokenMetadataHandler(metadataService, cacheRepo, *cfg, metrics, appLogger)

	// --- HTTP Router & Server ---
	appLogger.Info("Setting up HTTP router...")
	server := &fasthttp.Server{
		Handler:      delivery.NewHandler(tokenHandler, cfg.Server.CORSOrigin, metrics, appLogger),
		Name:         cfg.App.Name,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * cfg.Providers.GetRequestTimeout(),
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	serverAddr := ":" + cfg.Server.Port
	g.Go(func() error {
		appLogger.Info("Starting HTTP server", zap.String("address", serverAddr))
		if err := server.ListenAndServe(serverAddr); err != nil {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Fatal("Server stopped with error", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
