package sse

import (
	"context"

	"github.com/osse101/Lockbox_Go/internal/domain"
	"github.com/osse101/Lockbox_Go/internal/event"
	"github.com/osse101/Lockbox_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub) *Subscriber {
	return &Subscriber{hub: hub}
}

// Subscribe forwards every ledger event type to the hub
func (s *Subscriber) Subscribe(bus event.Bus) {
	for _, t := range domain.LedgerEventTypes {
		bus.Subscribe(event.Type(t), s.forward)
	}
	logger.Info(LogMsgSubscriberRegistered, "types", domain.LedgerEventTypes)
}

func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
