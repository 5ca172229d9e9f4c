// Package lockbox implements the time-windowed reward ledger.
//
// Entries are granted by the administrator and become claimable by their
// beneficiary until grantedAt+duration, where duration is a single global
// policy read at evaluation time. Changing the policy therefore reclassifies
// every stored entry on the next read. Claim pays out the claimable entries
// and reclaim sweeps the expired ones to the administrator; in both cases the
// removal is committed only after custody has paid.
package lockbox

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/holiman/uint256"

	"github.com/osse101/Lockbox_Go/internal/clock"
	"github.com/osse101/Lockbox_Go/internal/custody"
	"github.com/osse101/Lockbox_Go/internal/domain"
	"github.com/osse101/Lockbox_Go/internal/event"
	"github.com/osse101/Lockbox_Go/internal/logger"
	"github.com/osse101/Lockbox_Go/internal/repository"
)

// Querier is the read side of the ledger. It has no caller restriction.
type Querier interface {
	ClaimableTotal(ctx context.Context, beneficiary string) (*uint256.Int, error)
	ActiveEntries(ctx context.Context, beneficiary string) ([]domain.RewardEntry, error)
	ExpirationDuration(ctx context.Context) (time.Duration, error)
}

// Service defines the reward ledger operations
type Service interface {
	Querier

	Grant(ctx context.Context, caller, beneficiary string, amount *uint256.Int, kind domain.RewardKind) (*domain.RewardEntry, error)
	Claim(ctx context.Context, caller string) (*uint256.Int, error)
	Reclaim(ctx context.Context, caller string) (*uint256.Int, error)
	SetExpirationDuration(ctx context.Context, caller string, d time.Duration) error
	Deposit(ctx context.Context, caller string, amount *uint256.Int) error
	Audit(ctx context.Context) (*domain.AuditReport, error)
	Administrator() string
	Shutdown(ctx context.Context) error
}

type service struct {
	// mu serializes mutations and gives readers a consistent view
	mu sync.RWMutex

	repo  repository.Lockbox
	vault custody.Vault
	clock clock.Clock
	gate  *Gate
	bus   event.Bus
}

// settlement is the outcome of a claim or reclaim
type settlement struct {
	amount  *uint256.Int
	entries []domain.RewardEntry
	at      time.Time
}

// NewService creates a new ledger. bus may be nil.
func NewService(repo repository.Lockbox, vault custody.Vault, clk clock.Clock, gate *Gate, bus event.Bus) Service {
	return &service{
		repo:  repo,
		vault: vault,
		clock: clk,
		gate:  gate,
		bus:   bus,
	}
}

func (s *service) Administrator() string {
	return s.gate.Administrator()
}

func (s *service) Grant(ctx context.Context, caller, beneficiary string, amount *uint256.Int, kind domain.RewardKind) (*domain.RewardEntry, error) {
	if err := s.authorize(ctx, caller, "grant"); err != nil {
		return nil, err
	}
	if amount == nil || amount.IsZero() {
		return nil, domain.ErrNonPositiveAmount
	}
	if err := domain.ValidateIdentity(beneficiary); err != nil {
		return nil, fmt.Errorf("%w: %q", err, beneficiary)
	}

	entry, err := s.grant(ctx, beneficiary, amount, kind)
	if err != nil {
		logger.FromContext(ctx).Error("Grant failed", LogFieldError, err, LogFieldBeneficiary, beneficiary)
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgGranted,
		LogFieldBeneficiary, beneficiary,
		LogFieldAmount, entry.Amount.Dec(),
		LogFieldKind, entry.Kind,
		LogFieldEntryID, entry.ID)
	s.publish(ctx, event.NewRewardGrantedEvent(caller, *entry))

	return entry, nil
}

func (s *service) grant(ctx context.Context, beneficiary string, amount *uint256.Int, kind domain.RewardKind) (*domain.RewardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	entry := domain.RewardEntry{
		ID:          uuid.New(),
		Beneficiary: beneficiary,
		Amount:      new(uint256.Int).Set(amount),
		GrantedAt:   s.clock.Now().UTC().Truncate(domain.StoragePrecision),
		Kind:        kind,
	}
	if err := tx.InsertEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf(ErrMsgInsertEntryFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	out := entry.Clone()
	return &out, nil
}

func (s *service) Claim(ctx context.Context, caller string) (*uint256.Int, error) {
	log := logger.FromContext(ctx)

	if err := domain.ValidateIdentity(caller); err != nil {
		return nil, domain.ErrUnauthenticated
	}

	result, err := s.claim(ctx, caller)
	if err != nil {
		log.Error("Claim failed", LogFieldError, err, LogFieldBeneficiary, caller)
		return nil, err
	}
	if result.amount.IsZero() {
		log.Debug(LogMsgNothingToClaim, LogFieldBeneficiary, caller)
		return result.amount, nil
	}

	log.Info(LogMsgClaimed,
		LogFieldBeneficiary, caller,
		LogFieldAmount, result.amount.Dec(),
		LogFieldEntryCount, len(result.entries))
	s.publish(ctx, event.NewRewardClaimedEvent(caller, result.amount, len(result.entries), result.at))

	return result.amount, nil
}

func (s *service) claim(ctx context.Context, beneficiary string) (*settlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	duration, err := tx.GetExpirationDuration(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPolicyFailed, err)
	}
	entries, err := tx.GetEntriesForUpdate(ctx, beneficiary)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEntriesFailed, err)
	}

	now := s.clock.Now()
	active, _ := partition(entries, now, duration)

	return s.settle(ctx, tx, beneficiary, active, now)
}

func (s *service) Reclaim(ctx context.Context, caller string) (*uint256.Int, error) {
	log := logger.FromContext(ctx)

	if err := s.authorize(ctx, caller, "reclaim"); err != nil {
		return nil, err
	}

	result, err := s.reclaim(ctx, caller)
	if err != nil {
		log.Error("Reclaim failed", LogFieldError, err)
		return nil, err
	}
	if result.amount.IsZero() {
		log.Debug(LogMsgNothingToReclaim)
		return result.amount, nil
	}

	perBeneficiary, err := totalsByBeneficiary(result.entries)
	if err != nil {
		// Cannot happen once the overall sum fitted
		perBeneficiary = map[string]string{}
	}

	log.Info(LogMsgReclaimed,
		LogFieldAmount, result.amount.Dec(),
		LogFieldEntryCount, len(result.entries))
	s.publish(ctx, event.NewRewardsReclaimedEvent(caller, result.amount, len(result.entries), perBeneficiary, result.at))

	return result.amount, nil
}

func (s *service) reclaim(ctx context.Context, admin string) (*settlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	duration, err := tx.GetExpirationDuration(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPolicyFailed, err)
	}
	entries, err := tx.GetAllEntriesForUpdate(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEntriesFailed, err)
	}

	now := s.clock.Now()
	_, expired := partition(entries, now, duration)

	return s.settle(ctx, tx, admin, expired, now)
}

// settle removes entries, pays their sum to recipient and commits. The
// removal is committed only if the payout succeeded; an empty selection
// touches neither the ledger nor custody.
func (s *service) settle(ctx context.Context, tx repository.LockboxTx, recipient string, entries []domain.RewardEntry, at time.Time) (*settlement, error) {
	log := logger.FromContext(ctx)

	total, err := domain.SumAmounts(entries)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSumFailed, err)
	}
	if total.IsZero() {
		return &settlement{amount: total, at: at}, nil
	}

	if err := tx.DeleteEntries(ctx, entryIDs(entries)); err != nil {
		return nil, fmt.Errorf(ErrMsgDeleteEntriesFailed, err)
	}

	if err := s.vault.PayOut(ctx, recipient, total); err != nil {
		log.Warn(LogMsgPayOutFailed, LogFieldBeneficiary, recipient, LogFieldAmount, total.Dec(), LogFieldError, err)
		return nil, fmt.Errorf(ErrMsgPayOutFailed, total.Dec(), recipient, err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(LogMsgCommitAfterPayout, LogFieldBeneficiary, recipient, LogFieldAmount, total.Dec(), LogFieldError, err)
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	return &settlement{amount: total, entries: entries, at: at}, nil
}

func (s *service) SetExpirationDuration(ctx context.Context, caller string, d time.Duration) error {
	log := logger.FromContext(ctx)

	if err := s.authorize(ctx, caller, "setExpirationDuration"); err != nil {
		return err
	}
	if err := domain.ValidateExpirationDuration(d); err != nil {
		return err
	}

	previous, err := s.setExpirationDuration(ctx, d)
	if err != nil {
		log.Error("Set expiration duration failed", LogFieldError, err)
		return err
	}

	log.Info(LogMsgExpirationChanged, LogFieldPrevious, previous, LogFieldDuration, d)
	s.publish(ctx, event.NewExpirationChangedEvent(caller, previous, d))
	return nil
}

func (s *service) setExpirationDuration(ctx context.Context, d time.Duration) (time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	previous, err := tx.GetExpirationDuration(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgGetPolicyFailed, err)
	}
	if err := tx.SetExpirationDuration(ctx, d); err != nil {
		return 0, fmt.Errorf(ErrMsgSetPolicyFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return previous, nil
}

func (s *service) ExpirationDuration(ctx context.Context) (time.Duration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, err := s.repo.GetExpirationDuration(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgGetPolicyFailed, err)
	}
	return d, nil
}

func (s *service) Deposit(ctx context.Context, caller string, amount *uint256.Int) error {
	if err := s.authorize(ctx, caller, "deposit"); err != nil {
		return err
	}
	if amount == nil || amount.IsZero() {
		return domain.ErrNonPositiveAmount
	}

	s.mu.Lock()
	err := s.vault.Deposit(ctx, amount)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf(ErrMsgDepositFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgDeposited, LogFieldAmount, amount.Dec())
	s.publish(ctx, event.NewCustodyDepositedEvent(caller, amount))
	return nil
}

func (s *service) ClaimableTotal(ctx context.Context, beneficiary string) (*uint256.Int, error) {
	active, err := s.ActiveEntries(ctx, beneficiary)
	if err != nil {
		return nil, err
	}
	total, err := domain.SumAmounts(active)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSumFailed, err)
	}
	return total, nil
}

func (s *service) ActiveEntries(ctx context.Context, beneficiary string) ([]domain.RewardEntry, error) {
	if err := domain.ValidateIdentity(beneficiary); err != nil {
		return nil, fmt.Errorf("%w: %q", err, beneficiary)
	}

	s.mu.RLock()
	duration, entries, err := s.repo.GetSnapshot(ctx, beneficiary)
	s.mu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEntriesFailed, err)
	}

	active, _ := partition(entries, s.clock.Now(), duration)
	return active, nil
}

func (s *service) Audit(ctx context.Context) (*domain.AuditReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := s.repo.GetAllEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEntriesFailed, err)
	}
	total, err := domain.SumAmounts(entries)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSumFailed, err)
	}
	held, err := s.vault.BalanceHeld(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCustodyBalanceFailed, err)
	}

	report := &domain.AuditReport{
		LedgerTotal:    total,
		CustodyBalance: held,
		EntryCount:     len(entries),
		Consistent:     total.Eq(held),
		CheckedAt:      s.clock.Now().UTC(),
	}
	if !report.Consistent {
		logger.FromContext(ctx).Warn(LogMsgAuditMismatch, LogFieldLedgerTotal, total.Dec(), LogFieldCustody, held.Dec())
	}
	return report, nil
}

// Shutdown waits for an in-flight mutation to finish
func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgShuttingDown)

	done := make(chan struct{})
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

func (s *service) authorize(ctx context.Context, caller, operation string) error {
	if err := s.gate.Authorize(caller); err != nil {
		logger.FromContext(ctx).Warn(LogMsgUnauthorized, LogFieldCaller, caller, "operation", operation)
		return fmt.Errorf("%w: %s", err, operation)
	}
	return nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error(LogMsgPublishFailed, LogFieldEventType, evt.Type, LogFieldError, err)
	}
}
