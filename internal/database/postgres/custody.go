package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Lockbox_Go/internal/custody"
	"github.com/osse101/Lockbox_Go/internal/domain"
	"github.com/osse101/Lockbox_Go/internal/logger"
)

const (
	ensureAccount = `INSERT INTO custody_accounts (account) VALUES ($1) ON CONFLICT (account) DO NOTHING`
	selectBalance = `SELECT balance::text FROM custody_accounts WHERE account = $1`
	lockBalance   = selectBalance + ` FOR UPDATE`
	updateBalance = `UPDATE custody_accounts SET balance = $2::numeric, updated_at = NOW() WHERE account = $1`
)

const (
	logMsgVaultCredit = "Custody account credited"
	logMsgVaultDebit  = "Custody account debited"
)

// CustodyVault keeps token balances in the custody_accounts table.
// The ledger's own holding is the row named by account.
type CustodyVault struct {
	db      *pgxpool.Pool
	account string
}

var _ custody.Vault = (*CustodyVault)(nil)

// NewCustodyVault creates a vault whose custody row is account
func NewCustodyVault(db *pgxpool.Pool, account string) *CustodyVault {
	return &CustodyVault{db: db, account: account}
}

// Deposit credits the custody account
func (v *CustodyVault) Deposit(ctx context.Context, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return domain.ErrNonPositiveAmount
	}

	tx, err := v.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if err := credit(ctx, tx, v.account, amount); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransfer, err)
	}

	logger.FromContext(ctx).Debug(logMsgVaultCredit, "account", v.account, "amount", amount.Dec())
	return nil
}

// PayOut debits custody and credits recipient in one transaction.
// Nothing moves when custody holds less than amount.
func (v *CustodyVault) PayOut(ctx context.Context, recipient string, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return nil
	}
	if recipient == v.account {
		return fmt.Errorf("%w: %s", domain.ErrCustodyRecipient, recipient)
	}

	tx, err := v.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	held, err := lockAccount(ctx, tx, v.account)
	if err != nil {
		return err
	}
	if held.Lt(amount) {
		return fmt.Errorf("%w: held %s, requested %s", domain.ErrInsufficientCustody, held.Dec(), amount.Dec())
	}

	remaining := new(uint256.Int).Sub(held, amount)
	if _, err := tx.Exec(ctx, updateBalance, v.account, remaining.Dec()); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDebitAccount, err)
	}
	if err := credit(ctx, tx, recipient, amount); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransfer, err)
	}

	logger.FromContext(ctx).Debug(logMsgVaultDebit, "recipient", recipient, "amount", amount.Dec())
	return nil
}

// BalanceHeld returns the custody balance
func (v *CustodyVault) BalanceHeld(ctx context.Context) (*uint256.Int, error) {
	return v.BalanceOf(ctx, v.account)
}

// BalanceOf returns any account's balance, zero when the account has never been used
func (v *CustodyVault) BalanceOf(ctx context.Context, account string) (*uint256.Int, error) {
	var balance string
	if err := v.db.QueryRow(ctx, selectBalance, account).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return new(uint256.Int), nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetBalance, err)
	}
	return parseAmount(balance)
}

// lockAccount creates the account row if needed and locks it for the rest of tx
func lockAccount(ctx context.Context, tx pgx.Tx, account string) (*uint256.Int, error) {
	if _, err := tx.Exec(ctx, ensureAccount, account); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEnsureAccount, err)
	}
	var balance string
	if err := tx.QueryRow(ctx, lockBalance, account).Scan(&balance); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockAccount, err)
	}
	return parseAmount(balance)
}

func credit(ctx context.Context, tx pgx.Tx, account string, amount *uint256.Int) error {
	current, err := lockAccount(ctx, tx, account)
	if err != nil {
		return err
	}
	next, err := domain.AddAmount(current, amount)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, updateBalance, account, next.Dec()); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreditAccount, err)
	}
	return nil
}
