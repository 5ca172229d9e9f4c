package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileName is the active log file inside LOG_DIR; rotated files sit beside it
	LogFileName = "lockbox.log"

	// LogFileMaxSizeMB is the size at which the log file is rotated
	LogFileMaxSizeMB = 100

	// LogFileRetentionCount is the number of rotated log files to keep
	LogFileRetentionCount = 9

	// LogFileMaxAgeDays removes rotated files older than this
	LogFileMaxAgeDays = 28
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingLockbox     = "Starting Lockbox"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
)

// =============================================================================
// Storage
// =============================================================================

const (
	LogMsgStorageInitialized = "Storage initialized"
	LogMsgPolicyInitialized  = "Expiration policy initialized"
	ErrMsgFailedOpenDatabase = "failed to open database"
	ErrMsgFailedMigrate      = "failed to migrate database"
	ErrMsgFailedEnsurePolicy = "failed to initialize expiration policy"
	ErrMsgUnknownDriver      = "unknown storage driver"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventLoggerInitialized     = "Event logger initialized"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedSubscribeEventLogger = "failed to subscribe event logger"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownWorkers        = "Stopping scheduler and workers..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgLedgerShutdownFailed       = "Ledger shutdown failed"
)
