package config

import "time"

// Environment variable names
const (
	EnvConfigFile          = "LOCKBOX_CONFIG_FILE"
	EnvSchemaVersion       = "ENV_SCHEMA_VERSION"
	EnvPort                = "PORT"
	EnvLogLevel            = "LOG_LEVEL"
	EnvLogFormat           = "LOG_FORMAT"
	EnvLogDir              = "LOG_DIR"
	EnvEnvironment         = "ENVIRONMENT"
	EnvVersion             = "VERSION"
	EnvServiceName         = "SERVICE_NAME"
	EnvDBUser              = "DB_USER"
	EnvDBPassword          = "DB_PASSWORD"
	EnvDBHost              = "DB_HOST"
	EnvDBPort              = "DB_PORT"
	EnvDBName              = "DB_NAME"
	EnvDBMaxConns          = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime   = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime   = "DB_MAX_CONN_LIFETIME"
	EnvStorageDriver       = "STORAGE_DRIVER"
	EnvAPIKey              = "API_KEY"
	EnvJWTSecret           = "JWT_SECRET"
	EnvJWTIssuer           = "JWT_ISSUER"
	EnvAdministrator       = "ADMINISTRATOR"
	EnvCustodyAccount      = "CUSTODY_ACCOUNT"
	EnvRewardToken         = "REWARD_TOKEN"
	EnvExpirationDuration  = "EXPIRATION_DURATION"
	EnvAutoReclaimInterval = "AUTO_RECLAIM_INTERVAL"
	EnvJournalRetention    = "JOURNAL_RETENTION_DAYS"
	EnvTrustedProxies      = "TRUSTED_PROXIES"
	EnvDeadLetterPath      = "DEAD_LETTER_PATH"
	EnvWorkerCount         = "WORKER_COUNT"
)

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Defaults
const (
	DefaultPort                 = "8080"
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "text"
	DefaultLogDir               = "logs"
	DefaultEnvironment          = "dev"
	DefaultVersion              = "dev"
	DefaultServiceName          = "lockbox"
	DefaultDBUser               = "postgres"
	DefaultDBPassword           = "postgres"
	DefaultDBHost               = "localhost"
	DefaultDBPort               = "5432"
	DefaultDBName               = "lockbox"
	DefaultDBMaxConns           = 20
	DefaultDBMaxConnIdleTime    = 5 * time.Minute
	DefaultDBMaxConnLifetime    = 30 * time.Minute
	DefaultStorageDriver        = StorageDriverPostgres
	DefaultJWTIssuer            = "lockbox"
	DefaultCustodyAccount       = "lockbox-custody"
	DefaultRewardToken          = "REWARD"
	DefaultExpirationDuration   = 30 * 24 * time.Hour
	DefaultAutoReclaimInterval  = time.Duration(0)
	DefaultJournalRetentionDays = 90
	DefaultDeadLetterPath       = "logs/event_deadletter.jsonl"
	DefaultWorkerCount          = 2
)

// Error messages
const (
	ErrMsgInvalidPort          = "invalid PORT value"
	ErrMsgAPIKeyRequired       = "API_KEY environment variable must be set for security"
	ErrMsgUnknownStorageDriver = "unknown STORAGE_DRIVER"
	ErrMsgReadConfigFile       = "failed to read config file"
	ErrMsgSecretInConfigFile   = "secrets must come from the environment, not the config file"
	ErrMsgUnsupportedFileValue = "unsupported value type in config file"
	ErrMsgInvalidConfigFile    = "config file failed validation"
	ErrMsgCompileSchema        = "failed to compile config file schema"

	ErrMsgInvalidExpiration      = "EXPIRATION_DURATION must be a positive whole number of milliseconds"
	ErrMsgAdministratorIsCustody = "ADMINISTRATOR must differ from CUSTODY_ACCOUNT"
)
