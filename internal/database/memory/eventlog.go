package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/osse101/Lockbox_Go/internal/clock"
	"github.com/osse101/Lockbox_Go/internal/eventlog"
)

// JournalStore keeps journal rows in memory
type JournalStore struct {
	mu     sync.RWMutex
	clock  clock.Clock
	nextID int64
	events []eventlog.Event
}

// NewJournalStore creates an empty journal stamped by clk
func NewJournalStore(clk clock.Clock) *JournalStore {
	return &JournalStore{clock: clk}
}

var _ eventlog.Repository = (*JournalStore)(nil)

func (s *JournalStore) LogEvent(ctx context.Context, eventType string, beneficiary *string, payload, metadata map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	evt := eventlog.Event{
		ID:        s.nextID,
		EventType: eventType,
		Payload:   payload,
		Metadata:  metadata,
		CreatedAt: s.clock.Now(),
	}
	if beneficiary != nil {
		b := *beneficiary
		evt.Beneficiary = &b
	}
	s.events = append(s.events, evt)
	return nil
}

func (s *JournalStore) GetEvents(ctx context.Context, filter eventlog.EventFilter) ([]eventlog.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]eventlog.Event, 0)
	for _, evt := range s.events {
		if filter.Beneficiary != nil && (evt.Beneficiary == nil || *evt.Beneficiary != *filter.Beneficiary) {
			continue
		}
		if filter.EventType != nil && evt.EventType != *filter.EventType {
			continue
		}
		if filter.Since != nil && evt.CreatedAt.Before(*filter.Since) {
			continue
		}
		if filter.Until != nil && evt.CreatedAt.After(*filter.Until) {
			continue
		}
		out = append(out, evt)
	}

	// Newest first; ties broken by insertion order
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *JournalStore) GetEventsByBeneficiary(ctx context.Context, beneficiary string, limit int) ([]eventlog.Event, error) {
	return s.GetEvents(ctx, eventlog.EventFilter{Beneficiary: &beneficiary, Limit: limit})
}

func (s *JournalStore) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := s.clock.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.events[:0:0]
	for _, evt := range s.events {
		if !evt.CreatedAt.Before(cutoff) {
			kept = append(kept, evt)
		}
	}
	deleted := int64(len(s.events) - len(kept))
	s.events = kept
	return deleted, nil
}
