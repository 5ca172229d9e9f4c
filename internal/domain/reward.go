package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// RewardKind is an opaque classification tag carried on each entry.
// It has no effect on expiration or claim logic.
type RewardKind int32

// RewardEntry is one grant awaiting claim
type RewardEntry struct {
	ID          uuid.UUID
	Beneficiary string
	Amount      *uint256.Int
	GrantedAt   time.Time
	Kind        RewardKind
}

// ExpiresAt returns the instant at which the entry stops being claimable
// under the given expiration duration.
func (e RewardEntry) ExpiresAt(duration time.Duration) time.Time {
	return e.GrantedAt.Add(duration)
}

// Clone returns a copy that shares no memory with e
func (e RewardEntry) Clone() RewardEntry {
	out := e
	if e.Amount != nil {
		out.Amount = new(uint256.Int).Set(e.Amount)
	} else {
		out.Amount = new(uint256.Int)
	}
	return out
}

// AuditReport compares the ledger's bookkeeping with custody
type AuditReport struct {
	LedgerTotal    *uint256.Int
	CustodyBalance *uint256.Int
	EntryCount     int
	Consistent     bool
	CheckedAt      time.Time
}

// ValidateIdentity checks that an identity (beneficiary or administrator) is usable
func ValidateIdentity(id string) error {
	if id == "" || len(id) > MaxIdentityLength {
		return ErrInvalidBeneficiary
	}
	return nil
}

// ValidateExpirationDuration accepts positive durations in whole milliseconds,
// the resolution the policy is stored at.
func ValidateExpirationDuration(d time.Duration) error {
	if d <= 0 || d%time.Millisecond != 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDuration, d)
	}
	return nil
}
