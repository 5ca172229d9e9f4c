package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Authorization errors
	ErrMsgNotAdministrator = "caller is not the administrator"
	ErrMsgUnauthenticated  = "caller identity missing or invalid"

	// Grant validation errors
	ErrMsgNonPositiveAmount  = "amount must be positive"
	ErrMsgInvalidBeneficiary = "invalid beneficiary"
	ErrMsgAmountOverflow     = "amount overflows 256 bits"

	// Policy errors
	ErrMsgInvalidDuration = "expiration duration must be a positive whole number of milliseconds"
	ErrMsgPolicyNotFound  = "expiration policy not initialized"

	// Custody errors
	ErrMsgInsufficientCustody = "insufficient custody balance"
	ErrMsgCustodyRecipient    = "custody account cannot receive payouts"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotAdministrator = errors.New(ErrMsgNotAdministrator)
	ErrUnauthenticated  = errors.New(ErrMsgUnauthenticated)

	ErrNonPositiveAmount  = errors.New(ErrMsgNonPositiveAmount)
	ErrInvalidBeneficiary = errors.New(ErrMsgInvalidBeneficiary)
	ErrAmountOverflow     = errors.New(ErrMsgAmountOverflow)

	ErrInvalidDuration = errors.New(ErrMsgInvalidDuration)
	ErrPolicyNotFound  = errors.New(ErrMsgPolicyNotFound)

	ErrInsufficientCustody = errors.New(ErrMsgInsufficientCustody)
	ErrCustodyRecipient    = errors.New(ErrMsgCustodyRecipient)
)
