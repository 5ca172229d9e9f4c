package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/osse101/Lockbox_Go/internal/domain"
	"github.com/osse101/Lockbox_Go/internal/event"
	"github.com/osse101/Lockbox_Go/internal/logger"
)

// EventMetricsCollector subscribes to ledger events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all ledger events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range domain.LedgerEventTypes {
		bus.Subscribe(event.Type(eventType), e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.RewardGranted:
		var p event.RewardGrantedPayloadV1
		if p, err = event.DecodePayload[event.RewardGrantedPayloadV1](evt.Payload); err == nil {
			RewardsGranted.WithLabelValues(strconv.Itoa(int(p.Kind))).Inc()
			TokensGranted.Add(amountValue(p.Amount))
		}

	case event.RewardClaimed:
		var p event.RewardClaimedPayloadV1
		if p, err = event.DecodePayload[event.RewardClaimedPayloadV1](evt.Payload); err == nil {
			Claims.Inc()
			TokensClaimed.Add(amountValue(p.Amount))
		}

	case event.RewardsReclaimed:
		var p event.RewardsReclaimedPayloadV1
		if p, err = event.DecodePayload[event.RewardsReclaimedPayloadV1](evt.Payload); err == nil {
			Reclaims.Inc()
			TokensReclaimed.Add(amountValue(p.Amount))
		}

	case event.CustodyDeposited:
		var p event.CustodyDepositedPayloadV1
		if p, err = event.DecodePayload[event.CustodyDepositedPayloadV1](evt.Payload); err == nil {
			TokensDeposited.Add(amountValue(p.Amount))
		}

	case event.ExpirationChanged:
		var p event.ExpirationChangedPayloadV1
		if p, err = event.DecodePayload[event.ExpirationChangedPayloadV1](evt.Payload); err == nil {
			SetExpirationDuration(time.Duration(p.DurationMillis) * time.Millisecond)
		}
	}

	if err != nil {
		log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// SetExpirationDuration publishes the current policy as a gauge
func SetExpirationDuration(d time.Duration) {
	ExpirationDurationSeconds.Set(d.Seconds())
}

// SetBuildInfo records what this process is serving
func SetBuildInfo(version, token, storage string) {
	BuildInfo.WithLabelValues(version, token, storage).Set(1)
}

func amountValue(s string) float64 {
	amount, err := domain.ParseAmount(s)
	if err != nil {
		return 0
	}
	return domain.AmountToFloat64(amount)
}
