package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	Version     string
	ServiceName string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// StorageDriver selects postgres or the in-process memory store
	StorageDriver string

	APIKey    string // API key for authentication
	JWTSecret string
	JWTIssuer string

	Administrator       string
	CustodyAccount      string
	RewardToken         string
	ExpirationDuration  time.Duration
	AutoReclaimInterval time.Duration // zero disables the job
	JournalRetention    int           // days

	TrustedProxies []string
	DeadLetterPath string
	WorkerCount    int
}

// Load loads the configuration. Precedence is environment, then the optional
// TOML file named by LOCKBOX_CONFIG_FILE, then built-in defaults.
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	file, err := loadFile(os.Getenv(EnvConfigFile))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, file.str(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   getEnv(EnvLogFormat, file.str(EnvLogFormat, DefaultLogFormat)),
		LogDir:      getEnv(EnvLogDir, file.str(EnvLogDir, DefaultLogDir)),
		Environment: getEnv(EnvEnvironment, file.str(EnvEnvironment, DefaultEnvironment)),
		Version:     getEnv(EnvVersion, file.str(EnvVersion, DefaultVersion)),
		ServiceName: getEnv(EnvServiceName, file.str(EnvServiceName, DefaultServiceName)),

		DBUser:            getEnv(EnvDBUser, file.str(EnvDBUser, DefaultDBUser)),
		DBPassword:        getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:            getEnv(EnvDBHost, file.str(EnvDBHost, DefaultDBHost)),
		DBPort:            getEnv(EnvDBPort, file.str(EnvDBPort, DefaultDBPort)),
		DBName:            getEnv(EnvDBName, file.str(EnvDBName, DefaultDBName)),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, file.integer(EnvDBMaxConns, DefaultDBMaxConns)),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, file.duration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime)),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, file.duration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime)),

		StorageDriver: strings.ToLower(getEnv(EnvStorageDriver, file.str(EnvStorageDriver, DefaultStorageDriver))),

		APIKey:    getEnv(EnvAPIKey, ""),
		JWTSecret: getEnv(EnvJWTSecret, ""),
		JWTIssuer: getEnv(EnvJWTIssuer, file.str(EnvJWTIssuer, DefaultJWTIssuer)),

		Administrator:       getEnv(EnvAdministrator, file.str(EnvAdministrator, "")),
		CustodyAccount:      getEnv(EnvCustodyAccount, file.str(EnvCustodyAccount, DefaultCustodyAccount)),
		RewardToken:         getEnv(EnvRewardToken, file.str(EnvRewardToken, DefaultRewardToken)),
		ExpirationDuration:  getEnvAsDuration(EnvExpirationDuration, file.duration(EnvExpirationDuration, DefaultExpirationDuration)),
		AutoReclaimInterval: getEnvAsDuration(EnvAutoReclaimInterval, file.duration(EnvAutoReclaimInterval, DefaultAutoReclaimInterval)),
		JournalRetention:    getEnvAsInt(EnvJournalRetention, file.integer(EnvJournalRetention, DefaultJournalRetentionDays)),

		TrustedProxies: splitList(getEnv(EnvTrustedProxies, file.str(EnvTrustedProxies, ""))),
		DeadLetterPath: getEnv(EnvDeadLetterPath, file.str(EnvDeadLetterPath, DefaultDeadLetterPath)),
		WorkerCount:    getEnvAsInt(EnvWorkerCount, file.integer(EnvWorkerCount, DefaultWorkerCount)),
	}

	portStr := getEnv(EnvPort, file.str(EnvPort, DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, errors.New(ErrMsgAPIKeyRequired)
	}

	switch cfg.StorageDriver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorageDriver, cfg.StorageDriver)
	}

	// the policy is stored in milliseconds
	if cfg.ExpirationDuration <= 0 || cfg.ExpirationDuration%time.Millisecond != 0 {
		return nil, fmt.Errorf("%s: %s", ErrMsgInvalidExpiration, cfg.ExpirationDuration)
	}

	if cfg.Administrator != "" && cfg.Administrator == cfg.CustodyAccount {
		return nil, fmt.Errorf("%s: %q", ErrMsgAdministratorIsCustody, cfg.Administrator)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns defaultValue when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration returns defaultValue when the variable is unset or not a
// Go duration string
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsDevelopment reports whether source locations should be logged
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
