package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/Lockbox_Go/internal/logger"
)

// Handler streams ledger events. `?types=reward.granted,reward.claimed`
// narrows the stream.
// @Summary Ledger event stream
// @Description Server-sent events for grants, claims, reclaims, policy changes and deposits
// @Tags events
// @Produce text/event-stream
// @Param types query string false "Comma separated event types"
// @Success 200 {string} string "event stream"
// @Router /api/v1/events/stream [get]
func Handler(hub *Hub) http.HandlerFunc {
	return handler(hub, KeepaliveInterval)
}

func handler(hub *Hub, keepalive time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		var eventTypes []string
		for _, t := range strings.Split(r.URL.Query().Get(QueryParamTypes), ",") {
			if t = strings.TrimSpace(t); t != "" {
				eventTypes = append(eventTypes, t)
			}
		}

		log := logger.FromContext(r.Context())
		client := hub.Register(eventTypes)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", eventTypes,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		write := func(evt Event) bool {
			msg, err := FormatSSEMessage(evt)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		if _, err := w.Write(retryHint()); err != nil {
			return
		}
		if !write(hub.newEvent(client.ID, EventTypeConnected, map[string]interface{}{
			"client_id": client.ID,
			"filters":   eventTypes,
		})) {
			return
		}

		ticker := time.NewTicker(keepalive)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case evt, ok := <-client.EventChannel:
				if !ok {
					// hub stopped
					return
				}
				if !write(evt) {
					return
				}

			case <-ticker.C:
				if !write(hub.newEvent("", EventTypeKeepalive, nil)) {
					return
				}
			}
		}
	}
}
