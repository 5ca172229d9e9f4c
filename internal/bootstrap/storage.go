package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/Lockbox_Go/internal/clock"
	"github.com/osse101/Lockbox_Go/internal/config"
	"github.com/osse101/Lockbox_Go/internal/custody"
	"github.com/osse101/Lockbox_Go/internal/database"
	"github.com/osse101/Lockbox_Go/internal/database/memory"
	"github.com/osse101/Lockbox_Go/internal/database/postgres"
	"github.com/osse101/Lockbox_Go/internal/eventlog"
	"github.com/osse101/Lockbox_Go/internal/logger"
	"github.com/osse101/Lockbox_Go/internal/metrics"
	"github.com/osse101/Lockbox_Go/internal/repository"
)

// Storage holds the backends the ledger, custody and journal run on.
// DBPool is nil for memory storage.
type Storage struct {
	Lockbox repository.Lockbox
	Journal eventlog.Repository
	Vault   custody.Vault
	DBPool  database.Pool
}

// Close releases the database pool, if any
func (s *Storage) Close() {
	if s.DBPool != nil {
		s.DBPool.Close()
	}
}

// InitializeStorage opens the configured backend, applies migrations for
// postgres, and makes sure an expiration policy exists.
func InitializeStorage(ctx context.Context, cfg *config.Config, clk clock.Clock) (*Storage, error) {
	var st *Storage

	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenDatabase, err)
		}
		if _, err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		st = &Storage{
			Lockbox: postgres.NewLockboxRepository(pool),
			Journal: postgres.NewEventLogRepository(pool),
			Vault:   postgres.NewCustodyVault(pool, cfg.CustodyAccount),
			DBPool:  pool,
		}
	case config.StorageDriverMemory:
		st = &Storage{
			Lockbox: memory.NewLockboxStore(),
			Journal: memory.NewJournalStore(clk),
			Vault:   custody.NewMemoryVault(cfg.CustodyAccount),
		}
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownDriver, cfg.StorageDriver)
	}

	d, err := st.Lockbox.EnsureExpirationDuration(ctx, cfg.ExpirationDuration)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedEnsurePolicy, err)
	}
	metrics.SetExpirationDuration(d)

	logger.Info(LogMsgStorageInitialized, "driver", cfg.StorageDriver, "custody_account", cfg.CustodyAccount)
	logger.Info(LogMsgPolicyInitialized, "expiration_duration", d, "configured", cfg.ExpirationDuration)

	return st, nil
}
