package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Lockbox_Go/internal/domain"
	"github.com/osse101/Lockbox_Go/internal/repository"
)

const (
	entryColumns = `entry_id, beneficiary, amount::text, kind, granted_at`

	selectEntriesByBeneficiary = `SELECT ` + entryColumns + ` FROM reward_entries WHERE beneficiary = $1 ORDER BY seq`
	selectAllEntries           = `SELECT ` + entryColumns + ` FROM reward_entries ORDER BY seq`

	selectPolicy = `SELECT expiration_duration_ms FROM lockbox_policy WHERE policy_id = 1`
	ensurePolicy = `
		INSERT INTO lockbox_policy (policy_id, expiration_duration_ms)
		VALUES (1, $1)
		ON CONFLICT (policy_id) DO NOTHING`
	upsertPolicy = `
		INSERT INTO lockbox_policy (policy_id, expiration_duration_ms)
		VALUES (1, $1)
		ON CONFLICT (policy_id) DO UPDATE
		SET expiration_duration_ms = EXCLUDED.expiration_duration_ms, updated_at = NOW()`

	insertEntry = `
		INSERT INTO reward_entries (entry_id, beneficiary, amount, kind, granted_at)
		VALUES ($1, $2, $3::numeric, $4, $5)`
	deleteEntries = `DELETE FROM reward_entries WHERE entry_id = ANY($1::uuid[])`

	acquireWriterLock = `SELECT pg_advisory_xact_lock($1)`
)

type lockboxRepository struct {
	db *pgxpool.Pool
}

// NewLockboxRepository creates a PostgreSQL-backed ledger store
func NewLockboxRepository(db *pgxpool.Pool) repository.Lockbox {
	return &lockboxRepository{db: db}
}

// GetSnapshot reads the policy and entries inside one repeatable-read
// transaction so both come from the same database snapshot.
func (r *lockboxRepository) GetSnapshot(ctx context.Context, beneficiary string) (time.Duration, []domain.RewardEntry, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	d, err := getPolicy(ctx, tx)
	if err != nil {
		return 0, nil, err
	}
	entries, err := queryEntries(ctx, tx, selectEntriesByBeneficiary, beneficiary)
	if err != nil {
		return 0, nil, err
	}
	return d, entries, nil
}

func (r *lockboxRepository) GetAllEntries(ctx context.Context) ([]domain.RewardEntry, error) {
	return queryEntries(ctx, r.db, selectAllEntries)
}

func (r *lockboxRepository) GetExpirationDuration(ctx context.Context) (time.Duration, error) {
	return getPolicy(ctx, r.db)
}

func (r *lockboxRepository) EnsureExpirationDuration(ctx context.Context, d time.Duration) (time.Duration, error) {
	if err := domain.ValidateExpirationDuration(d); err != nil {
		return 0, err
	}
	if _, err := r.db.Exec(ctx, ensurePolicy, durationToMillis(d)); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToEnsurePolicy, err)
	}
	return getPolicy(ctx, r.db)
}

// BeginTx opens a write transaction holding the ledger writer lock until it ends
func (r *lockboxRepository) BeginTx(ctx context.Context) (repository.LockboxTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	if _, err := tx.Exec(ctx, acquireWriterLock, LedgerWriterLockKey); err != nil {
		SafeRollback(ctx, tx)
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAcquireWriterLock, err)
	}
	return &lockboxTx{tx: tx}, nil
}

type lockboxTx struct {
	tx pgx.Tx
}

func (t *lockboxTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *lockboxTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *lockboxTx) GetExpirationDuration(ctx context.Context) (time.Duration, error) {
	return getPolicy(ctx, t.tx)
}

func (t *lockboxTx) GetEntriesForUpdate(ctx context.Context, beneficiary string) ([]domain.RewardEntry, error) {
	return queryEntries(ctx, t.tx, selectEntriesByBeneficiary+" FOR UPDATE", beneficiary)
}

func (t *lockboxTx) GetAllEntriesForUpdate(ctx context.Context) ([]domain.RewardEntry, error) {
	return queryEntries(ctx, t.tx, selectAllEntries+" FOR UPDATE")
}

func (t *lockboxTx) InsertEntry(ctx context.Context, e domain.RewardEntry) error {
	_, err := t.tx.Exec(ctx, insertEntry,
		e.ID, e.Beneficiary, domain.FormatAmount(e.Amount), int32(e.Kind), e.GrantedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEntry, err)
	}
	return nil
}

func (t *lockboxTx) DeleteEntries(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	tag, err := t.tx.Exec(ctx, deleteEntries, keys)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteEntries, err)
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return fmt.Errorf(ErrMsgDeletedEntriesMismatch, tag.RowsAffected(), len(ids))
	}
	return nil
}

func (t *lockboxTx) SetExpirationDuration(ctx context.Context, d time.Duration) error {
	if err := domain.ValidateExpirationDuration(d); err != nil {
		return err
	}
	if _, err := t.tx.Exec(ctx, upsertPolicy, durationToMillis(d)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePolicy, err)
	}
	return nil
}

func getPolicy(ctx context.Context, q querier) (time.Duration, error) {
	var ms int64
	if err := q.QueryRow(ctx, selectPolicy).Scan(&ms); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrPolicyNotFound
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToGetPolicy, err)
	}
	return millisToDuration(ms), nil
}

func queryEntries(ctx context.Context, q querier, sql string, args ...any) ([]domain.RewardEntry, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEntries, err)
	}
	return scanEntries(rows)
}
