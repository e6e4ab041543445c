package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/JackpotEngine_Go/internal/event"
	"github.com/osse101/JackpotEngine_Go/internal/jackpot"
	"github.com/osse101/JackpotEngine_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	Background         *Background
	JackpotService     jackpot.Service
	ResilientPublisher *event.ResilientPublisher
	Storage            *Storage
}

// GracefulShutdown stops components in dependency order:
//  1. HTTP server (stop accepting new bets)
//  2. Kafka consumer, scheduler, then the worker pool (drains queued bets)
//  3. the jackpot service
//  4. event publisher (flush pending events)
//  5. bet writer and store
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if bg := components.Background; bg != nil {
		if bg.Consumer != nil {
			if err := bg.Consumer.Stop(); err != nil {
				slog.Error(LogMsgConsumerStopFailed, "error", err)
			}
		}
		bg.Scheduler.Stop()
		bg.Pool.Stop()
	}

	if components.JackpotService != nil {
		shutdownService(ctx, ServiceNameJackpot, components.JackpotService)
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if bg := components.Background; bg != nil && bg.Writer != nil {
		if err := bg.Writer.Close(); err != nil {
			slog.Error(LogMsgBetWriterCloseFailed, "error", err)
		}
	}

	if components.Storage != nil {
		if err := components.Storage.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
