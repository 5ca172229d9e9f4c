package custody

import (
	"context"

	"github.com/holiman/uint256"
)

// Port moves value out of the ledger's custody and reports what custody holds.
// PayOut must fail with domain.ErrInsufficientCustody, and move nothing, when
// custody cannot cover the amount, and with domain.ErrCustodyRecipient when
// recipient is the custody account.
type Port interface {
	PayOut(ctx context.Context, recipient string, amount *uint256.Int) error
	BalanceHeld(ctx context.Context) (*uint256.Int, error)
}

// Funder moves value into custody ahead of grants
type Funder interface {
	Deposit(ctx context.Context, amount *uint256.Int) error
}

// Vault is a custody backend that can both fund and pay out
type Vault interface {
	Port
	Funder
}
