package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/osse101/Lockbox_Go/internal/config"
	"github.com/osse101/Lockbox_Go/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// The file is rotated by size and old files are pruned, so LOG_DIR stays bounded.
// Returns the log file writer (caller must close).
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	return setupLogger(cfg, os.Stdout)
}

func setupLogger(cfg *config.Config, console io.Writer) (io.Closer, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir, LogFileName),
		MaxSize:    LogFileMaxSizeMB,
		MaxBackups: LogFileRetentionCount,
		MaxAge:     LogFileMaxAgeDays,
		Compress:   true,
	}

	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	), io.MultiWriter(console, logFile))

	logger.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "file", logFile.Filename)
	logger.Info(LogMsgStartingLockbox,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version,
		"storage", cfg.StorageDriver)

	logger.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"administrator", cfg.Administrator,
		"custody_account", cfg.CustodyAccount,
		"expiration_duration", cfg.ExpirationDuration,
		"auto_reclaim_interval", cfg.AutoReclaimInterval)

	return logFile, nil
}
