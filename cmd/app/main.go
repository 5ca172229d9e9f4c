package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/Lockbox_Go/internal/bootstrap"
	"github.com/osse101/Lockbox_Go/internal/clock"
	"github.com/osse101/Lockbox_Go/internal/config"
	"github.com/osse101/Lockbox_Go/internal/eventlog"
	"github.com/osse101/Lockbox_Go/internal/handler"
	"github.com/osse101/Lockbox_Go/internal/identity"
	"github.com/osse101/Lockbox_Go/internal/lockbox"
	"github.com/osse101/Lockbox_Go/internal/logger"
	"github.com/osse101/Lockbox_Go/internal/metrics"
	"github.com/osse101/Lockbox_Go/internal/scheduler"
	"github.com/osse101/Lockbox_Go/internal/server"
	"github.com/osse101/Lockbox_Go/internal/sse"
	"github.com/osse101/Lockbox_Go/internal/worker"

	_ "github.com/osse101/Lockbox_Go/docs"
)

// Scheduling
const (
	JournalCleanupInterval = 24 * time.Hour
	WorkerQueueSize        = 16
	ShutdownTimeout        = 30 * time.Second
)

// @title Lockbox API
// @version 1.0
// @description Time-windowed reward ledger. Amounts are decimal strings of token units.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		logger.Error("Lockbox exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn(w)
	}

	// Released in reverse order if startup fails before the server runs
	var undo []func()
	started := false
	defer func() {
		if started {
			return
		}
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
	}()
	undo = append(undo, func() { _ = logFile.Close() })

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clk := clock.System{}

	storage, err := bootstrap.InitializeStorage(ctx, cfg, clk)
	if err != nil {
		return err
	}
	undo = append(undo, storage.Close)

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}
	undo = append(undo, func() { _ = publisher.Shutdown(context.Background()) })

	journal := eventlog.NewService(storage.Journal)
	if err := bootstrap.RegisterEventHandlers(bus, journal); err != nil {
		return err
	}

	gate, err := lockbox.NewGate(cfg.Administrator)
	if err != nil {
		return err
	}
	ledger := lockbox.NewService(storage.Lockbox, storage.Vault, clk, gate, publisher)

	verifier, err := identity.NewVerifier(identity.Config{
		Secret:    cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		ClockSkew: identity.DefaultClockSkew,
	})
	if err != nil {
		return err
	}

	started = true
	pool := worker.NewPool(cfg.WorkerCount, WorkerQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule("auto-reclaim", cfg.AutoReclaimInterval, lockbox.NewReclaimJob(ledger))
	sched.Schedule("journal-cleanup", JournalCleanupInterval, eventlog.NewCleanupJob(journal, cfg.JournalRetention))

	events := sse.NewHub(clk)
	events.Start()
	sse.NewSubscriber(events).Subscribe(bus)

	metrics.SetBuildInfo(cfg.Version, cfg.RewardToken, cfg.StorageDriver)

	srv := server.NewServer(
		server.Options{
			Port:           cfg.Port,
			APIKey:         cfg.APIKey,
			TrustedProxies: cfg.TrustedProxies,
			Version:        cfg.Version,
			Clock:          clk,
		},
		server.Dependencies{
			DBPool:   storage.DBPool,
			Lockbox:  ledger,
			Journal:  journal,
			Verifier: verifier,
			Events:   events,
		},
	)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	logger.Info("Lockbox ready",
		"port", cfg.Port,
		"administrator", gate.Administrator(),
		"build_time", handler.BuildTime,
		"git_commit", handler.GitCommit)

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Events:             events,
		Scheduler:          sched,
		WorkerPool:         pool,
		Ledger:             ledger,
		ResilientPublisher: publisher,
		Storage:            storage,
		LogFile:            logFile,
	})

	return runErr
}
