package eventlog

import (
	"context"
	"time"
)

// Event is one journal row
type Event struct {
	ID          int64                  `json:"id"`
	EventType   string                 `json:"event_type"`
	Beneficiary *string                `json:"beneficiary,omitempty"`
	Payload     map[string]interface{} `json:"payload"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

// EventFilter filters journal queries
type EventFilter struct {
	Beneficiary *string
	EventType   *string
	Since       *time.Time
	Until       *time.Time
	Limit       int
}

// Repository defines the journal storage
type Repository interface {
	// LogEvent stores an event
	LogEvent(ctx context.Context, eventType string, beneficiary *string, payload, metadata map[string]interface{}) error

	// GetEvents retrieves events based on filter criteria, newest first
	GetEvents(ctx context.Context, filter EventFilter) ([]Event, error)

	// GetEventsByBeneficiary retrieves the newest events touching one beneficiary
	GetEventsByBeneficiary(ctx context.Context, beneficiary string, limit int) ([]Event, error)

	// CleanupOldEvents removes events older than the specified number of days
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}
