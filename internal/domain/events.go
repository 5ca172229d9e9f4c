package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking. These represent ledger events that are published after
// a state change has been committed.
//
// Event types follow the pattern: <entity>.<action> (e.g., "reward.granted")
const (
	// EventTypeRewardGranted is published when the administrator grants a reward entry
	EventTypeRewardGranted = "reward.granted"

	// EventTypeRewardClaimed is published when a beneficiary claims its active entries
	EventTypeRewardClaimed = "reward.claimed"

	// EventTypeRewardsReclaimed is published when expired entries are swept to the administrator
	EventTypeRewardsReclaimed = "rewards.reclaimed"

	// EventTypeExpirationChanged is published when the global expiration duration changes
	EventTypeExpirationChanged = "policy.expiration_changed"

	// EventTypeCustodyDeposited is published when value is moved into custody
	EventTypeCustodyDeposited = "custody.deposited"
)

// LedgerEventTypes lists every event type the ledger publishes
var LedgerEventTypes = []string{
	EventTypeRewardGranted,
	EventTypeRewardClaimed,
	EventTypeRewardsReclaimed,
	EventTypeExpirationChanged,
	EventTypeCustodyDeposited,
}
