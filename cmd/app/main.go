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

	_ "github.com/osse101/JackpotEngine_Go/docs"
	"github.com/osse101/JackpotEngine_Go/internal/bootstrap"
	"github.com/osse101/JackpotEngine_Go/internal/config"
	"github.com/osse101/JackpotEngine_Go/internal/eventlog"
	"github.com/osse101/JackpotEngine_Go/internal/server"
)

const shutdownTimeout = 30 * time.Second

// @title Jackpot Engine API
// @version 1.0
// @description Jackpot contribution and reward engine
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	initEarlyLogger()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment validation failed", "error", err)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logger", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	ctx := context.Background()

	storage, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}

	if err := bootstrap.SyncJackpots(ctx, cfg.JackpotConfigPath, storage.Store); err != nil {
		slog.Error("Failed to sync jackpots", "error", err)
		storage.Close()
		os.Exit(1)
	}

	eventBus, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		storage.Close()
		os.Exit(1)
	}

	var eventLogService eventlog.Service
	if storage.EventLog != nil {
		eventLogService = eventlog.NewService(storage.EventLog)
	}
	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        eventBus,
		EventLogService: eventLogService,
	}); err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		storage.Close()
		os.Exit(1)
	}

	jackpotService := bootstrap.InitializeServices(cfg, storage.Store, resilientPublisher)
	background := bootstrap.StartBackground(cfg, jackpotService, eventLogService)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, storage.Store, jackpotService, background.Publisher, eventLogService)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	sig := <-stop
	slog.Info("Shutdown signal received", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Background:         background,
		JackpotService:     jackpotService,
		ResilientPublisher: resilientPublisher,
		Storage:            storage,
	})
}
