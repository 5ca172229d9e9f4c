package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
)

// Success messages
const (
	MsgGrantSuccess   = "Reward granted"
	MsgClaimSuccess   = "Rewards claimed"
	MsgClaimNothing   = "Nothing to claim"
	MsgReclaimSuccess = "Expired rewards reclaimed"
	MsgReclaimNothing = "Nothing to reclaim"
	MsgDepositSuccess = "Tokens deposited into custody"
)

// Operation names used in logs
const (
	OpClaimable     = "Claimable total"
	OpEntries       = "Active entries"
	OpHistory       = "Ledger history"
	OpPolicy        = "Expiration policy"
	OpAudit         = "Custody audit"
	OpClaim         = "Claim"
	OpGrant         = "Grant"
	OpReclaim       = "Reclaim"
	OpSetExpiration = "Set expiration"
	OpDeposit       = "Custody deposit"
)

// Query parameters
const (
	QueryParamBeneficiary = "beneficiary"
	QueryParamLimit       = "limit"
)
