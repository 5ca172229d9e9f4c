package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Lockbox_Go/internal/domain"
)

// Lockbox is the storage behind the reward ledger.
// Entry slices are always in grant order, oldest first.
type Lockbox interface {
	// GetSnapshot returns the expiration duration and a beneficiary's entries
	// as seen by a single consistent read.
	GetSnapshot(ctx context.Context, beneficiary string) (time.Duration, []domain.RewardEntry, error)

	// GetAllEntries returns every entry, expired or not
	GetAllEntries(ctx context.Context) ([]domain.RewardEntry, error)

	// GetExpirationDuration returns the current policy
	GetExpirationDuration(ctx context.Context) (time.Duration, error)

	// EnsureExpirationDuration stores d only if no policy exists yet and
	// returns whichever value is in effect.
	EnsureExpirationDuration(ctx context.Context, d time.Duration) (time.Duration, error)

	// BeginTx starts a write transaction. Writers are serialized.
	BeginTx(ctx context.Context) (LockboxTx, error)
}

// LockboxTx is a write transaction on the ledger. Nothing is visible to
// readers until Commit.
type LockboxTx interface {
	Tx

	GetExpirationDuration(ctx context.Context) (time.Duration, error)
	GetEntriesForUpdate(ctx context.Context, beneficiary string) ([]domain.RewardEntry, error)
	GetAllEntriesForUpdate(ctx context.Context) ([]domain.RewardEntry, error)
	InsertEntry(ctx context.Context, entry domain.RewardEntry) error
	DeleteEntries(ctx context.Context, ids []uuid.UUID) error
	SetExpirationDuration(ctx context.Context, d time.Duration) error
}
