package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Lockbox_Go/internal/clock"
	"github.com/osse101/Lockbox_Go/internal/domain"
	"github.com/osse101/Lockbox_Go/internal/event"
	"github.com/osse101/Lockbox_Go/internal/testing/leaktest"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(clock.NewManual(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	hub.Start()
	t.Cleanup(hub.Stop)
	return hub
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func TestHub_FiltersByType(t *testing.T) {
	hub := startHub(t)

	all := hub.Register(nil)
	claimsOnly := hub.Register([]string{domain.EventTypeRewardClaimed})
	waitForClients(t, hub, 2)

	hub.Broadcast(domain.EventTypeRewardGranted, "g")
	hub.Broadcast(domain.EventTypeRewardClaimed, "c")

	got := <-all.EventChannel
	assert.Equal(t, domain.EventTypeRewardGranted, got.Type)
	assert.Equal(t, int64(1767225600), got.Timestamp)
	got = <-all.EventChannel
	assert.Equal(t, domain.EventTypeRewardClaimed, got.Type)

	got = <-claimsOnly.EventChannel
	assert.Equal(t, domain.EventTypeRewardClaimed, got.Type)
	assert.Equal(t, "c", got.Payload)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := startHub(t)

	c := hub.Register(nil)
	waitForClients(t, hub, 1)
	hub.Unregister(c.ID)
	waitForClients(t, hub, 0)

	_, open := <-c.EventChannel
	assert.False(t, open)
}

func TestHub_StopIsIdempotent(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	hub := NewHub(clock.System{})
	hub.Start()
	c := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Stop()
	hub.Stop()

	_, open := <-c.EventChannel
	assert.False(t, open)
	checker.Check(0)
}

// Every client registered around Stop must end with a closed channel
func TestHub_RegisterRacingStop(t *testing.T) {
	hub := NewHub(clock.System{})
	hub.Start()

	const registrants = 50
	clients := make(chan *Client, registrants)
	var wg sync.WaitGroup
	for i := 0; i < registrants; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			clients <- hub.Register(nil)
		}()
	}
	hub.Stop()
	wg.Wait()
	close(clients)

	for c := range clients {
		select {
		case _, open := <-c.EventChannel:
			assert.False(t, open, "client %s", c.ID)
		case <-time.After(time.Second):
			t.Fatalf("client %s channel never closed", c.ID)
		}
	}
	assert.Zero(t, hub.ClientCount())
}

func TestHub_RegisterAfterStop(t *testing.T) {
	hub := NewHub(clock.System{})
	hub.Start()
	hub.Stop()

	c := hub.Register(nil)

	_, open := <-c.EventChannel
	assert.False(t, open)
	assert.Zero(t, hub.ClientCount())
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "1", Type: "reward.granted", Timestamp: 5, Payload: map[string]string{"amount": "7"}})
	require.NoError(t, err)
	assert.Equal(t,
		"id: 1\nevent: reward.granted\ndata: {\"id\":\"1\",\"type\":\"reward.granted\",\"timestamp\":5,\"payload\":{\"amount\":\"7\"}}\n\n",
		string(msg))

	msg, err = FormatSSEMessage(Event{Type: EventTypeKeepalive})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(msg), "event: keepalive\n"), "keepalives carry no id")
}

func TestSubscriber_ForwardsLedgerEvents(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub).Subscribe(bus)

	c := hub.Register(nil)
	waitForClients(t, hub, 1)

	payload := event.CustodyDepositedPayloadV1{Caller: "admin", Amount: "10"}
	require.NoError(t, bus.Publish(context.Background(), event.Event{Type: event.CustodyDeposited, Payload: payload}))

	select {
	case got := <-c.EventChannel:
		assert.Equal(t, domain.EventTypeCustodyDeposited, got.Type)
		assert.Equal(t, payload, got.Payload)
	case <-time.After(time.Second):
		t.Fatal("event was not forwarded")
	}
}

func TestHandler_StreamsEvents(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(handler(hub, time.Hour))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types="+domain.EventTypeRewardGranted, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := bufio.NewScanner(resp.Body)
	nextEvent := func() string {
		for lines.Scan() {
			if strings.HasPrefix(lines.Text(), "event: ") {
				return strings.TrimPrefix(lines.Text(), "event: ")
			}
		}
		return ""
	}

	require.Equal(t, EventTypeConnected, nextEvent())
	waitForClients(t, hub, 1)

	hub.Broadcast(domain.EventTypeRewardClaimed, nil)
	hub.Broadcast(domain.EventTypeRewardGranted, nil)
	assert.Equal(t, domain.EventTypeRewardGranted, nextEvent(), "filtered types are skipped")

	cancel()
	waitForClients(t, hub, 0)
}
