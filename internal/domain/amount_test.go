package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"small", "5", "5", nil},
		{"padded", " 42 ", "42", nil},
		{"eighteen decimals", "1000000000000000000", "1000000000000000000", nil},
		{"max uint256", "115792089237316195423570985008687907853269984665640564039457584007913129639935",
			"115792089237316195423570985008687907853269984665640564039457584007913129639935", nil},

		{"zero", "0", "", ErrNonPositiveAmount},
		{"empty", "", "", ErrNonPositiveAmount},
		{"negative", "-5", "", ErrNonPositiveAmount},
		{"fraction", "1.5", "", ErrNonPositiveAmount},
		{"above max uint256", "115792089237316195423570985008687907853269984665640564039457584007913129639936", "", ErrAmountOverflow},
		{"far too wide", strings.Repeat("9", 90), "", ErrAmountOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Dec())
		})
	}
}

func TestAddAmount_Overflow(t *testing.T) {
	maxAmount := new(uint256.Int).SetAllOne()

	_, err := AddAmount(maxAmount, uint256.NewInt(1))
	assert.ErrorIs(t, err, ErrAmountOverflow)

	sum, err := AddAmount(uint256.NewInt(2), uint256.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, uint64(5), sum.Uint64())
}

func TestSumAmounts(t *testing.T) {
	entries := []RewardEntry{
		{Amount: uint256.NewInt(5)},
		{Amount: nil},
		{Amount: uint256.NewInt(10)},
	}
	total, err := SumAmounts(entries)
	require.NoError(t, err)
	assert.Equal(t, uint64(15), total.Uint64())

	empty, err := SumAmounts(nil)
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", FormatAmount(nil))
	assert.Equal(t, "7", FormatAmount(uint256.NewInt(7)))
	assert.InDelta(t, 1e18, AmountToFloat64(uint256.NewInt(1e18)), 1)
	assert.Zero(t, AmountToFloat64(nil))
}

func TestRewardEntry_CloneDoesNotAlias(t *testing.T) {
	e := RewardEntry{ID: uuid.New(), Beneficiary: "alice", Amount: uint256.NewInt(5), GrantedAt: time.Now()}
	c := e.Clone()
	c.Amount.SetUint64(99)

	assert.Equal(t, uint64(5), e.Amount.Uint64())
}

func TestRewardEntry_ExpiresAt(t *testing.T) {
	granted := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	e := RewardEntry{GrantedAt: granted}
	assert.Equal(t, granted.Add(10*time.Second), e.ExpiresAt(10*time.Second))
}

func TestValidateIdentity(t *testing.T) {
	assert.NoError(t, ValidateIdentity("alice"))
	assert.NoError(t, ValidateIdentity(strings.Repeat("a", MaxIdentityLength)))
	assert.ErrorIs(t, ValidateIdentity(""), ErrInvalidBeneficiary)
	assert.ErrorIs(t, ValidateIdentity(strings.Repeat("a", MaxIdentityLength+1)), ErrInvalidBeneficiary)
}

func TestValidateExpirationDuration(t *testing.T) {
	tests := []struct {
		name    string
		d       time.Duration
		wantErr bool
	}{
		{"one millisecond", time.Millisecond, false},
		{"fractional seconds", 1500 * time.Millisecond, false},
		{"zero", 0, true},
		{"negative", -time.Hour, true},
		{"below a millisecond", 500 * time.Microsecond, true},
		{"not whole milliseconds", 1500 * time.Microsecond, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExpirationDuration(tt.d)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDuration)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
