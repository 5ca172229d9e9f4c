package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/Lockbox_Go/internal/domain"
	"github.com/osse101/Lockbox_Go/internal/logger"
)

// querier is satisfied by both the pool and a transaction
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// parseAmount converts a NUMERIC(78,0) rendered as text
func parseAmount(s string) (*uint256.Int, error) {
	amount, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToParseAmount+": %w", s, err)
	}
	return amount, nil
}

// durationToMillis and millisToDuration convert the stored policy
func durationToMillis(d time.Duration) int64 {
	return d.Milliseconds()
}

func millisToDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// scanEntries reads reward_entries rows selected with entryColumns
func scanEntries(rows pgx.Rows) ([]domain.RewardEntry, error) {
	defer rows.Close()

	entries := make([]domain.RewardEntry, 0)
	for rows.Next() {
		var (
			e      domain.RewardEntry
			amount string
			kind   int32
		)
		if err := rows.Scan(&e.ID, &e.Beneficiary, &amount, &kind, &e.GrantedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanEntry, err)
		}
		parsed, err := parseAmount(amount)
		if err != nil {
			return nil, err
		}
		e.Amount = parsed
		e.Kind = domain.RewardKind(kind)
		e.GrantedAt = e.GrantedAt.UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEntries, err)
	}
	return entries, nil
}
