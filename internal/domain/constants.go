package domain

import "time"

// Identity limits
const (
	// MaxIdentityLength matches the VARCHAR width of identity columns
	MaxIdentityLength = 255
)

// MaxAmountDigits is the decimal width of the largest 256-bit amount
const MaxAmountDigits = 78

// Expiration policy defaults
const (
	// DefaultExpirationDuration is used when no policy has been configured
	DefaultExpirationDuration = 30 * 24 * time.Hour

	// StoragePrecision is the timestamp resolution of the durable store.
	// Grant timestamps are truncated to it so memory and postgres agree.
	StoragePrecision = time.Microsecond
)

// Journal defaults
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)
