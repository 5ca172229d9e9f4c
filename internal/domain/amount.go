package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// ParseAmount parses a decimal token amount. Anything that is not a
// strictly positive integer is reported as ErrNonPositiveAmount, except
// integers wider than 256 bits which are ErrAmountOverflow.
func ParseAmount(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") {
		return nil, fmt.Errorf("%w: %q", ErrNonPositiveAmount, s)
	}
	amount, err := uint256.FromDecimal(s)
	if err != nil {
		if isDigits(s) {
			return nil, fmt.Errorf("%w: %q", ErrAmountOverflow, s)
		}
		return nil, fmt.Errorf("%w: invalid amount %q", ErrNonPositiveAmount, s)
	}
	if amount.IsZero() {
		return nil, fmt.Errorf("%w: %q", ErrNonPositiveAmount, s)
	}
	return amount, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

// AddAmount returns a+b, failing instead of wrapping around
func AddAmount(a, b *uint256.Int) (*uint256.Int, error) {
	sum, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		return nil, ErrAmountOverflow
	}
	return sum, nil
}

// SumAmounts totals the amounts of the given entries
func SumAmounts(entries []RewardEntry) (*uint256.Int, error) {
	total := new(uint256.Int)
	for _, e := range entries {
		if e.Amount == nil {
			continue
		}
		var err error
		if total, err = AddAmount(total, e.Amount); err != nil {
			return nil, err
		}
	}
	return total, nil
}

// AmountToFloat64 converts an amount for metrics, where precision loss is acceptable
func AmountToFloat64(a *uint256.Int) float64 {
	if a == nil {
		return 0
	}
	f, _ := new(big.Float).SetInt(a.ToBig()).Float64()
	return f
}

// FormatAmount renders an amount as a decimal string
func FormatAmount(a *uint256.Int) string {
	if a == nil {
		return "0"
	}
	return a.Dec()
}
