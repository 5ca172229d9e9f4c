package sse

import (
	"encoding/json"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/Lockbox_Go/internal/clock"
	"github.com/osse101/Lockbox_Go/internal/logger"
)

// Event is one message on the stream
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is a connected stream consumer
type Client struct {
	ID           string
	EventChannel chan Event
	EventFilter  map[string]bool // nil means all events
}

func (c *Client) wants(eventType string) bool {
	return c.EventFilter == nil || c.EventFilter[eventType]
}

// Hub fans ledger events out to stream clients. Slow clients miss events
// rather than stall the ledger.
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Event
	unregister chan string
	mu         sync.RWMutex
	stopped    bool // guarded by mu
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	clock      clock.Clock
}

// NewHub creates a new hub stamping events with clk
func NewHub(clk clock.Clock) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
		clock:      clk,
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop shuts the hub down and closes every client channel. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		h.stopped = true
		for _, client := range h.clients {
			close(client.EventChannel)
		}
		h.clients = make(map[string]*Client)
		h.mu.Unlock()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.EventChannel)
				delete(h.clients, clientID)
			}
			h.mu.Unlock()

		case evt := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if !client.wants(evt.Type) {
					continue
				}
				select {
				case client.EventChannel <- evt:
				default:
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a client interested in eventTypes, or in everything when
// eventTypes is empty. After Stop the client's channel comes back closed.
func (h *Hub) Register(eventTypes []string) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}

	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}

	// added under the lock so Stop either sees the client or it sees stopped
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		close(client.EventChannel)
		return client
	}
	h.clients[client.ID] = client
	return client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues an event for every interested client
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	evt := h.newEvent(uuid.New().String(), eventType, payload)

	select {
	case h.broadcast <- evt:
	default:
		logger.Warn(LogMsgBroadcastDropped, "event_type", eventType)
	}
}

func (h *Hub) newEvent(id, eventType string, payload interface{}) Event {
	return Event{
		ID:        id,
		Type:      eventType,
		Timestamp: h.clock.Now().Unix(),
		Payload:   payload,
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders an event in text/event-stream framing
func FormatSSEMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}

	msg := make([]byte, 0, len(data)+len(evt.ID)+len(evt.Type)+32)
	if evt.ID != "" {
		msg = append(msg, "id: "+evt.ID+"\n"...)
	}
	msg = append(msg, "event: "+evt.Type+"\n"...)
	msg = append(msg, "data: "...)
	msg = append(msg, data...)
	msg = append(msg, "\n\n"...)
	return msg, nil
}

// retryHint tells clients how long to wait before reconnecting
func retryHint() []byte {
	return []byte("retry: " + strconv.FormatInt(ReconnectDelay.Milliseconds(), 10) + "\n\n")
}
