package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Lockbox_Go/internal/eventlog"
)

const journalColumns = `id, event_type, beneficiary, payload, metadata, created_at`

type eventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new PostgreSQL ledger journal
func NewEventLogRepository(db *pgxpool.Pool) eventlog.Repository {
	return &eventLogRepository{db: db}
}

// LogEvent stores an event in the journal
func (r *eventLogRepository) LogEvent(ctx context.Context, eventType string, beneficiary *string, payload, metadata map[string]interface{}) error {
	query := `
		INSERT INTO ledger_events (event_type, beneficiary, payload, metadata)
		VALUES ($1, $2, $3, $4)
	`

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalEventData, err)
	}

	var metadataJSON []byte
	if metadata != nil {
		if metadataJSON, err = json.Marshal(metadata); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalEventData, err)
		}
	}

	if _, err := r.db.Exec(ctx, query, eventType, beneficiary, payloadJSON, metadataJSON); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEvent, err)
	}
	return nil
}

// GetEvents retrieves events based on filter criteria
func (r *eventLogRepository) GetEvents(ctx context.Context, filter eventlog.EventFilter) ([]eventlog.Event, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + journalColumns + ` FROM ledger_events WHERE 1=1`)

	args := []interface{}{}
	arg := func(clause string, v interface{}) {
		args = append(args, v)
		fmt.Fprintf(&sb, clause, len(args))
	}

	if filter.Beneficiary != nil {
		arg(" AND beneficiary = $%d", *filter.Beneficiary)
	}
	if filter.EventType != nil {
		arg(" AND event_type = $%d", *filter.EventType)
	}
	if filter.Since != nil {
		arg(" AND created_at >= $%d", *filter.Since)
	}
	if filter.Until != nil {
		arg(" AND created_at <= $%d", *filter.Until)
	}

	sb.WriteString(" ORDER BY id DESC")

	if filter.Limit > 0 {
		arg(" LIMIT $%d", filter.Limit)
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	return scanEvents(rows)
}

// GetEventsByBeneficiary retrieves the newest events for one beneficiary
func (r *eventLogRepository) GetEventsByBeneficiary(ctx context.Context, beneficiary string, limit int) ([]eventlog.Event, error) {
	return r.GetEvents(ctx, eventlog.EventFilter{Beneficiary: &beneficiary, Limit: limit})
}

// CleanupOldEvents removes events older than the specified number of days
func (r *eventLogRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	query := `
		DELETE FROM ledger_events
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`

	result, err := r.db.Exec(ctx, query, retentionDays)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCleanupEvents, err)
	}
	return result.RowsAffected(), nil
}

func scanEvents(rows pgx.Rows) ([]eventlog.Event, error) {
	defer rows.Close()

	events := make([]eventlog.Event, 0)
	for rows.Next() {
		var evt eventlog.Event
		var payloadJSON, metadataJSON []byte

		if err := rows.Scan(&evt.ID, &evt.EventType, &evt.Beneficiary, &payloadJSON, &metadataJSON, &evt.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
		}

		if err := json.Unmarshal(payloadJSON, &evt.Payload); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalEventData, err)
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &evt.Metadata); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalEventData, err)
			}
		}

		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	return events, nil
}
