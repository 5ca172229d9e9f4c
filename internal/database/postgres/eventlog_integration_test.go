package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Lockbox_Go/internal/domain"
	"github.com/osse101/Lockbox_Go/internal/eventlog"
)

func TestEventLogRepository_LogAndQuery(t *testing.T) {
	repo := NewEventLogRepository(requireDB(t))
	ctx := context.Background()

	alice := "alice"
	bob := "bob"
	require.NoError(t, repo.LogEvent(ctx, domain.EventTypeRewardGranted, &alice, map[string]interface{}{"amount": "5"}, nil))
	require.NoError(t, repo.LogEvent(ctx, domain.EventTypeRewardGranted, &bob, map[string]interface{}{"amount": "7"}, nil))
	require.NoError(t, repo.LogEvent(ctx, domain.EventTypeRewardClaimed, &alice, map[string]interface{}{"amount": "5"},
		map[string]interface{}{"source": "test"}))

	events, err := repo.GetEventsByBeneficiary(ctx, alice, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventTypeRewardClaimed, events[0].EventType)
	assert.Equal(t, "test", events[0].Metadata["source"])
	assert.Equal(t, "5", events[1].Payload["amount"])

	eventType := domain.EventTypeRewardGranted
	granted, err := repo.GetEvents(ctx, eventlog.EventFilter{EventType: &eventType, Limit: 1})
	require.NoError(t, err)
	require.Len(t, granted, 1)
	assert.Equal(t, bob, *granted[0].Beneficiary)
}

func TestEventLogRepository_CleanupKeepsRecent(t *testing.T) {
	pool := requireDB(t)
	repo := NewEventLogRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.LogEvent(ctx, domain.EventTypeExpirationChanged, nil, map[string]interface{}{}, nil))
	_, err := pool.Exec(ctx, `UPDATE ledger_events SET created_at = NOW() - INTERVAL '40 days'`)
	require.NoError(t, err)
	require.NoError(t, repo.LogEvent(ctx, domain.EventTypeExpirationChanged, nil, map[string]interface{}{}, nil))

	deleted, err := repo.CleanupOldEvents(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := repo.GetEvents(ctx, eventlog.EventFilter{})
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
