package eventlog

import (
	"context"
	"sort"

	"github.com/osse101/Lockbox_Go/internal/domain"
	"github.com/osse101/Lockbox_Go/internal/event"
	"github.com/osse101/Lockbox_Go/internal/logger"
)

// Service is the ledger journal
type Service interface {
	// Subscribe registers the journal on every ledger event type
	Subscribe(bus event.Bus) error

	// History returns the newest journal rows for a beneficiary
	History(ctx context.Context, beneficiary string, limit int) ([]Event, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new journal service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range domain.LedgerEventTypes {
		bus.Subscribe(event.Type(eventType), s.handleEvent)
	}
	return nil
}

// handleEvent writes one row per party the event concerns
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil || payload == nil {
		log.Debug(LogMsgEventPayloadUndecodable, LogFieldType, evt.Type)
		return nil
	}

	metadata, _ := evt.Metadata.(map[string]interface{})

	for _, subject := range subjects(payload) {
		var beneficiary *string
		if subject != "" {
			b := subject
			beneficiary = &b
		}
		if err := s.repo.LogEvent(ctx, string(evt.Type), beneficiary, payload, metadata); err != nil {
			log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
			return err
		}
		log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldBeneficiary, subject)
	}
	return nil
}

// subjects lists who an event is about. A reclaim touches every
// beneficiary it swept from.
func subjects(payload map[string]interface{}) []string {
	if b, ok := payload[PayloadKeyBeneficiary].(string); ok && b != "" {
		return []string{b}
	}
	if per, ok := payload[PayloadKeyPerBeneficiary].(map[string]interface{}); ok && len(per) > 0 {
		out := make([]string, 0, len(per))
		for b := range per {
			out = append(out, b)
		}
		sort.Strings(out)
		return out
	}
	for _, key := range []string{PayloadKeyAdministrator, PayloadKeyCaller} {
		if v, ok := payload[key].(string); ok && v != "" {
			return []string{v}
		}
	}
	return []string{""}
}

func (s *service) History(ctx context.Context, beneficiary string, limit int) ([]Event, error) {
	if err := domain.ValidateIdentity(beneficiary); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = domain.DefaultHistoryLimit
	}
	if limit > domain.MaxHistoryLimit {
		limit = domain.MaxHistoryLimit
	}

	events, err := s.repo.GetEventsByBeneficiary(ctx, beneficiary, limit)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []Event{}
	}
	return events, nil
}

func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
