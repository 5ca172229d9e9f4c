package postgres

// LedgerWriterLockKey is the advisory lock serializing ledger writers across processes
const LedgerWriterLockKey int64 = 0x4c6f636b626f78 // "Lockbox"

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToAcquireWriterLock = "failed to acquire ledger writer lock"
)

// Error Messages - Ledger Operations
const (
	ErrMsgFailedToGetPolicy      = "failed to get expiration policy"
	ErrMsgFailedToEnsurePolicy   = "failed to ensure expiration policy"
	ErrMsgFailedToUpdatePolicy   = "failed to update expiration policy"
	ErrMsgFailedToQueryEntries   = "failed to query reward entries"
	ErrMsgFailedToScanEntry      = "failed to scan reward entry"
	ErrMsgFailedToInsertEntry    = "failed to insert reward entry"
	ErrMsgFailedToDeleteEntries  = "failed to delete reward entries"
	ErrMsgDeletedEntriesMismatch = "deleted %d reward entries, expected %d"
	ErrMsgFailedToParseAmount    = "failed to parse stored amount %q"
)

// Error Messages - Custody Operations
const (
	ErrMsgFailedToEnsureAccount  = "failed to ensure custody account"
	ErrMsgFailedToLockAccount    = "failed to lock custody account"
	ErrMsgFailedToCreditAccount  = "failed to credit custody account"
	ErrMsgFailedToDebitAccount   = "failed to debit custody account"
	ErrMsgFailedToGetBalance     = "failed to get custody balance"
	ErrMsgFailedToCommitTransfer = "failed to commit custody transfer"
)

// Error Messages - Journal Operations
const (
	ErrMsgFailedToMarshalEventData   = "failed to marshal event data"
	ErrMsgFailedToInsertEvent        = "failed to insert event"
	ErrMsgFailedToQueryEvents        = "failed to query events"
	ErrMsgFailedToUnmarshalEventData = "failed to unmarshal event data"
	ErrMsgFailedToCleanupEvents      = "failed to cleanup events"
)
