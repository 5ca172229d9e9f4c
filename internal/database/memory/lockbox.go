// Package memory holds in-process storage used by the memory driver and tests.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Lockbox_Go/internal/domain"
	"github.com/osse101/Lockbox_Go/internal/repository"
)

// LockboxStore keeps the ledger in process memory
type LockboxStore struct {
	mu        sync.RWMutex
	entries   []domain.RewardEntry
	duration  time.Duration
	hasPolicy bool

	// writer admits one transaction at a time
	writer chan struct{}
}

// NewLockboxStore creates an empty store with no policy
func NewLockboxStore() *LockboxStore {
	return &LockboxStore{writer: make(chan struct{}, 1)}
}

var _ repository.Lockbox = (*LockboxStore)(nil)

func (s *LockboxStore) GetSnapshot(ctx context.Context, beneficiary string) (time.Duration, []domain.RewardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasPolicy {
		return 0, nil, domain.ErrPolicyNotFound
	}
	return s.duration, filterEntries(s.entries, beneficiary, nil), nil
}

func (s *LockboxStore) GetAllEntries(ctx context.Context) ([]domain.RewardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEntries(s.entries), nil
}

func (s *LockboxStore) GetExpirationDuration(ctx context.Context) (time.Duration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasPolicy {
		return 0, domain.ErrPolicyNotFound
	}
	return s.duration, nil
}

func (s *LockboxStore) EnsureExpirationDuration(ctx context.Context, d time.Duration) (time.Duration, error) {
	if err := domain.ValidateExpirationDuration(d); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasPolicy {
		s.duration = d
		s.hasPolicy = true
	}
	return s.duration, nil
}

func (s *LockboxStore) BeginTx(ctx context.Context) (repository.LockboxTx, error) {
	select {
	case s.writer <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &lockboxTx{store: s, deleted: make(map[uuid.UUID]struct{})}, nil
}

// lockboxTx buffers writes and applies them to the store on Commit
type lockboxTx struct {
	store    *LockboxStore
	inserted []domain.RewardEntry
	deleted  map[uuid.UUID]struct{}
	duration *time.Duration
	done     bool
}

var errTxClosed = errors.New(domain.ErrMsgTxClosed)

func (tx *lockboxTx) GetExpirationDuration(ctx context.Context) (time.Duration, error) {
	if tx.done {
		return 0, errTxClosed
	}
	if tx.duration != nil {
		return *tx.duration, nil
	}
	return tx.store.GetExpirationDuration(ctx)
}

func (tx *lockboxTx) GetEntriesForUpdate(ctx context.Context, beneficiary string) ([]domain.RewardEntry, error) {
	if tx.done {
		return nil, errTxClosed
	}
	tx.store.mu.RLock()
	out := filterEntries(tx.store.entries, beneficiary, tx.deleted)
	tx.store.mu.RUnlock()

	return append(out, filterEntries(tx.inserted, beneficiary, tx.deleted)...), nil
}

func (tx *lockboxTx) GetAllEntriesForUpdate(ctx context.Context) ([]domain.RewardEntry, error) {
	return tx.GetEntriesForUpdate(ctx, "")
}

func (tx *lockboxTx) InsertEntry(ctx context.Context, entry domain.RewardEntry) error {
	if tx.done {
		return errTxClosed
	}
	tx.inserted = append(tx.inserted, entry.Clone())
	return nil
}

func (tx *lockboxTx) DeleteEntries(ctx context.Context, ids []uuid.UUID) error {
	if tx.done {
		return errTxClosed
	}
	for _, id := range ids {
		tx.deleted[id] = struct{}{}
	}
	return nil
}

func (tx *lockboxTx) SetExpirationDuration(ctx context.Context, d time.Duration) error {
	if tx.done {
		return errTxClosed
	}
	if err := domain.ValidateExpirationDuration(d); err != nil {
		return err
	}
	tx.duration = &d
	return nil
}

func (tx *lockboxTx) Commit(ctx context.Context) error {
	if tx.done {
		return errTxClosed
	}

	s := tx.store
	s.mu.Lock()
	kept := s.entries[:0:0]
	for _, e := range s.entries {
		if _, gone := tx.deleted[e.ID]; !gone {
			kept = append(kept, e)
		}
	}
	for _, e := range tx.inserted {
		if _, gone := tx.deleted[e.ID]; !gone {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	if tx.duration != nil {
		s.duration = *tx.duration
		s.hasPolicy = true
	}
	s.mu.Unlock()

	tx.finish()
	return nil
}

func (tx *lockboxTx) Rollback(ctx context.Context) error {
	if tx.done {
		return errTxClosed
	}
	tx.finish()
	return nil
}

func (tx *lockboxTx) finish() {
	tx.done = true
	<-tx.store.writer
}

// filterEntries copies the entries of one beneficiary ("" means all),
// skipping any in skip.
func filterEntries(entries []domain.RewardEntry, beneficiary string, skip map[uuid.UUID]struct{}) []domain.RewardEntry {
	out := make([]domain.RewardEntry, 0)
	for _, e := range entries {
		if beneficiary != "" && e.Beneficiary != beneficiary {
			continue
		}
		if _, gone := skip[e.ID]; gone {
			continue
		}
		out = append(out, e.Clone())
	}
	return out
}

func cloneEntries(entries []domain.RewardEntry) []domain.RewardEntry {
	return filterEntries(entries, "", nil)
}
