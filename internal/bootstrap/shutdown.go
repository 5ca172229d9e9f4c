package bootstrap

import (
	"context"
	"io"

	"github.com/osse101/Lockbox_Go/internal/event"
	"github.com/osse101/Lockbox_Go/internal/lockbox"
	"github.com/osse101/Lockbox_Go/internal/logger"
	"github.com/osse101/Lockbox_Go/internal/scheduler"
	"github.com/osse101/Lockbox_Go/internal/server"
	"github.com/osse101/Lockbox_Go/internal/sse"
	"github.com/osse101/Lockbox_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Events             *sse.Hub
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	Ledger             lockbox.Service
	ResilientPublisher *event.ResilientPublisher
	Storage            *Storage
	LogFile            io.Closer
}

// GracefulShutdown stops components in dependency order:
// 1. Event streams, then the HTTP server (streams would otherwise hold
//    Shutdown open until the deadline)
// 2. Scheduler and worker pool (no new reclaims or cleanups)
// 3. Ledger (wait for in-flight writes)
// 4. Event publisher (flush pending events to the journal)
// 5. Storage and the log file
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	logger.Info(LogMsgShuttingDownServer)
	if c.Events != nil {
		c.Events.Stop()
	}
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	logger.Info(LogMsgShuttingDownWorkers)
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.WorkerPool != nil {
		c.WorkerPool.Stop()
	}

	if c.Ledger != nil {
		if err := c.Ledger.Shutdown(ctx); err != nil {
			logger.Error(LogMsgLedgerShutdownFailed, "error", err)
		}
	}

	if c.ResilientPublisher != nil {
		logger.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			logger.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Storage != nil {
		c.Storage.Close()
	}

	logger.Info(LogMsgServerStopped)

	if c.LogFile != nil {
		_ = c.LogFile.Close()
	}
}
