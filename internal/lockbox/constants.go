package lockbox

// Formatted error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgGetPolicyFailed         = "failed to get expiration duration: %w"
	ErrMsgSetPolicyFailed         = "failed to set expiration duration: %w"
	ErrMsgGetEntriesFailed        = "failed to get reward entries: %w"
	ErrMsgInsertEntryFailed       = "failed to insert reward entry: %w"
	ErrMsgDeleteEntriesFailed     = "failed to delete reward entries: %w"
	ErrMsgPayOutFailed            = "failed to pay out %s to %s: %w"
	ErrMsgDepositFailed           = "failed to deposit into custody: %w"
	ErrMsgCustodyBalanceFailed    = "failed to read custody balance: %w"
	ErrMsgSumFailed               = "failed to total reward entries: %w"
)

// Log messages
const (
	LogMsgGranted             = "Reward granted"
	LogMsgClaimed             = "Rewards claimed"
	LogMsgNothingToClaim      = "Nothing to claim"
	LogMsgReclaimed           = "Expired rewards reclaimed"
	LogMsgNothingToReclaim    = "Nothing to reclaim"
	LogMsgExpirationChanged   = "Expiration duration changed"
	LogMsgDeposited           = "Custody deposit recorded"
	LogMsgUnauthorized        = "Rejected restricted operation"
	LogMsgPayOutFailed        = "Payout failed, rolling back"
	LogMsgCommitAfterPayout   = "Commit failed after payout succeeded; ledger and custody have diverged"
	LogMsgPublishFailed       = "Failed to publish ledger event"
	LogMsgAuditMismatch       = "Ledger total does not match custody balance"
	LogMsgShuttingDown        = "Lockbox service shutting down"
	LogMsgReclaimJobStarting  = "Starting scheduled reclaim"
	LogMsgReclaimJobFailed    = "Scheduled reclaim failed"
	LogMsgReclaimJobCompleted = "Scheduled reclaim completed"
)

// Log field keys
const (
	LogFieldCaller      = "caller"
	LogFieldBeneficiary = "beneficiary"
	LogFieldAmount      = "amount"
	LogFieldEntryID     = "entry_id"
	LogFieldEntryCount  = "entry_count"
	LogFieldKind        = "kind"
	LogFieldDuration    = "duration"
	LogFieldPrevious    = "previous"
	LogFieldError       = "error"
	LogFieldEventType   = "event_type"
	LogFieldLedgerTotal = "ledger_total"
	LogFieldCustody     = "custody_balance"
)
