package custody

import (
	"context"
	"fmt"
	"sync"

	"github.com/holiman/uint256"

	"github.com/osse101/Lockbox_Go/internal/domain"
	"github.com/osse101/Lockbox_Go/internal/logger"
)

// MemoryVault is an in-process token account set. It holds the ledger's
// custody balance and credits recipients on payout.
type MemoryVault struct {
	mu       sync.Mutex
	account  string
	balances map[string]*uint256.Int
}

// NewMemoryVault creates a vault whose custody account is named account
func NewMemoryVault(account string) *MemoryVault {
	return &MemoryVault{
		account:  account,
		balances: map[string]*uint256.Int{account: new(uint256.Int)},
	}
}

// Deposit adds amount to custody
func (v *MemoryVault) Deposit(ctx context.Context, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return domain.ErrNonPositiveAmount
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	next, err := domain.AddAmount(v.balances[v.account], amount)
	if err != nil {
		return err
	}
	v.balances[v.account] = next

	logger.FromContext(ctx).Debug(LogMsgDeposit, "account", v.account, "amount", amount.Dec())
	return nil
}

// PayOut debits custody and credits recipient, which may not be custody itself
func (v *MemoryVault) PayOut(ctx context.Context, recipient string, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return nil
	}

	if recipient == v.account {
		return fmt.Errorf("%w: %s", domain.ErrCustodyRecipient, recipient)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	held := v.balances[v.account]
	if held.Lt(amount) {
		return fmt.Errorf("%w: held %s, requested %s", domain.ErrInsufficientCustody, held.Dec(), amount.Dec())
	}

	current, ok := v.balances[recipient]
	if !ok {
		current = new(uint256.Int)
	}
	credited, err := domain.AddAmount(current, amount)
	if err != nil {
		return err
	}

	v.balances[v.account] = new(uint256.Int).Sub(held, amount)
	v.balances[recipient] = credited

	logger.FromContext(ctx).Debug(LogMsgPayOut, "recipient", recipient, "amount", amount.Dec())
	return nil
}

// BalanceHeld returns the custody balance
func (v *MemoryVault) BalanceHeld(ctx context.Context) (*uint256.Int, error) {
	return v.BalanceOf(ctx, v.account)
}

// BalanceOf returns the balance of any account known to the vault
func (v *MemoryVault) BalanceOf(_ context.Context, account string) (*uint256.Int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if b, ok := v.balances[account]; ok {
		return new(uint256.Int).Set(b), nil
	}
	return new(uint256.Int), nil
}
