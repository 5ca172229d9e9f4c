package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/holiman/uint256"

	"github.com/osse101/Lockbox_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Ledger event types
const (
	RewardGranted     Type = Type(domain.EventTypeRewardGranted)
	RewardClaimed     Type = Type(domain.EventTypeRewardClaimed)
	RewardsReclaimed  Type = Type(domain.EventTypeRewardsReclaimed)
	ExpirationChanged Type = Type(domain.EventTypeExpirationChanged)
	CustodyDeposited  Type = Type(domain.EventTypeCustodyDeposited)
)

// Typed event payloads. Amounts are decimal strings so they survive JSON
// without losing precision.

// RewardGrantedPayloadV1 is the payload for reward.granted
type RewardGrantedPayloadV1 struct {
	EntryID     string    `json:"entry_id"`
	Beneficiary string    `json:"beneficiary"`
	Amount      string    `json:"amount"`
	Kind        int32     `json:"kind"`
	GrantedAt   time.Time `json:"granted_at"`
	Caller      string    `json:"caller"`
}

// RewardClaimedPayloadV1 is the payload for reward.claimed
type RewardClaimedPayloadV1 struct {
	Beneficiary string    `json:"beneficiary"`
	Amount      string    `json:"amount"`
	EntryCount  int       `json:"entry_count"`
	ClaimedAt   time.Time `json:"claimed_at"`
}

// RewardsReclaimedPayloadV1 is the payload for rewards.reclaimed
type RewardsReclaimedPayloadV1 struct {
	Administrator  string            `json:"administrator"`
	Amount         string            `json:"amount"`
	EntryCount     int               `json:"entry_count"`
	PerBeneficiary map[string]string `json:"per_beneficiary"`
	ReclaimedAt    time.Time         `json:"reclaimed_at"`
}

// ExpirationChangedPayloadV1 is the payload for policy.expiration_changed
type ExpirationChangedPayloadV1 struct {
	Caller         string `json:"caller"`
	PreviousMillis int64  `json:"previous_ms"`
	DurationMillis int64  `json:"duration_ms"`
}

// CustodyDepositedPayloadV1 is the payload for custody.deposited
type CustodyDepositedPayloadV1 struct {
	Caller string `json:"caller"`
	Amount string `json:"amount"`
}

// NewRewardGrantedEvent creates a reward.granted event
func NewRewardGrantedEvent(caller string, entry domain.RewardEntry) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RewardGranted,
		Payload: RewardGrantedPayloadV1{
			EntryID:     entry.ID.String(),
			Beneficiary: entry.Beneficiary,
			Amount:      domain.FormatAmount(entry.Amount),
			Kind:        int32(entry.Kind),
			GrantedAt:   entry.GrantedAt,
			Caller:      caller,
		},
	}
}

// NewRewardClaimedEvent creates a reward.claimed event
func NewRewardClaimedEvent(beneficiary string, paid *uint256.Int, entryCount int, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RewardClaimed,
		Payload: RewardClaimedPayloadV1{
			Beneficiary: beneficiary,
			Amount:      domain.FormatAmount(paid),
			EntryCount:  entryCount,
			ClaimedAt:   at,
		},
	}
}

// NewRewardsReclaimedEvent creates a rewards.reclaimed event
func NewRewardsReclaimedEvent(admin string, swept *uint256.Int, entryCount int, perBeneficiary map[string]string, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RewardsReclaimed,
		Payload: RewardsReclaimedPayloadV1{
			Administrator:  admin,
			Amount:         domain.FormatAmount(swept),
			EntryCount:     entryCount,
			PerBeneficiary: perBeneficiary,
			ReclaimedAt:    at,
		},
	}
}

// NewExpirationChangedEvent creates a policy.expiration_changed event
func NewExpirationChangedEvent(caller string, previous, next time.Duration) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ExpirationChanged,
		Payload: ExpirationChangedPayloadV1{
			Caller:         caller,
			PreviousMillis: previous.Milliseconds(),
			DurationMillis: next.Milliseconds(),
		},
	}
}

// NewCustodyDepositedEvent creates a custody.deposited event
func NewCustodyDepositedEvent(caller string, amount *uint256.Int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CustodyDeposited,
		Payload: CustodyDepositedPayloadV1{
			Caller: caller,
			Amount: domain.FormatAmount(amount),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
