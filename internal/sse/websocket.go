package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/Lockbox_Go/internal/logger"
)

// Callers authenticate with the API key header, which browsers cannot attach
// to a cross-site upgrade, so the origin is not checked here.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  ReadBufferSize,
	WriteBufferSize: WriteBufferSize,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// WebSocketHandler streams the same events as Handler, one JSON object per
// text frame.
// @Summary Ledger event stream over WebSocket
// @Description Same events as the SSE stream, framed as JSON text messages
// @Tags events
// @Param types query string false "Comma separated event types"
// @Success 101 {string} string "switching protocols"
// @Router /api/v1/events/ws [get]
func WebSocketHandler(hub *Hub) http.HandlerFunc {
	return socketHandler(hub, PingInterval)
}

func socketHandler(hub *Hub, pingInterval time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already written the error response
			log.Warn(LogMsgUpgradeFailed, "error", err)
			return
		}
		defer conn.Close()

		var eventTypes []string
		for _, t := range strings.Split(r.URL.Query().Get(QueryParamTypes), ",") {
			if t = strings.TrimSpace(t); t != "" {
				eventTypes = append(eventTypes, t)
			}
		}

		client := hub.Register(eventTypes)
		log.Info(LogMsgSocketConnected,
			"client_id", client.ID,
			"filters", eventTypes,
			"total_clients", hub.ClientCount())
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgSocketDisconnected, "client_id", client.ID)
		}()

		// The stream is one way. Reading still has to happen so pongs and
		// close frames are processed.
		closed := make(chan struct{})
		conn.SetReadLimit(MaxInboundBytes)
		_ = conn.SetReadDeadline(time.Now().Add(PongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(PongWait))
		})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.NextReader(); err != nil {
					return
				}
			}
		}()

		write := func(evt Event) bool {
			_ = conn.SetWriteDeadline(time.Now().Add(WriteWait))
			if err := conn.WriteJSON(evt); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Warn(LogMsgSocketWriteError, "error", err)
				}
				return false
			}
			return true
		}

		if !write(hub.newEvent(client.ID, EventTypeConnected, map[string]interface{}{
			"client_id": client.ID,
			"filters":   eventTypes,
		})) {
			return
		}

		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				return

			case <-closed:
				return

			case evt, ok := <-client.EventChannel:
				if !ok {
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
						time.Now().Add(WriteWait))
					return
				}
				if !write(evt) {
					return
				}

			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(WriteWait)); err != nil {
					return
				}
			}
		}
	}
}
