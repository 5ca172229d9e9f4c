package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size of the unregister channel
	ClientChannelBuffer = 10
)

// Stream timing
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second

	// ReconnectDelay is the retry hint sent to clients on connect
	ReconnectDelay = 3 * time.Second
)

// WebSocket settings
const (
	ReadBufferSize  = 1024
	WriteBufferSize = 4096
	WriteWait       = 10 * time.Second
	PongWait        = 60 * time.Second
	PingInterval    = PongWait * 9 / 10
	MaxInboundBytes = 512
)

// Stream event types besides the ledger's own
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// QueryParamTypes is a comma separated list of event types a client wants
const QueryParamTypes = "types"

// Log messages
const (
	LogMsgClientConnected      = "SSE client connected"
	LogMsgClientDisconnected   = "SSE client disconnected"
	LogMsgEventBroadcast       = "Broadcasting SSE event"
	LogMsgBroadcastDropped     = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError           = "Failed to write SSE event"
	LogMsgSubscriberRegistered = "SSE subscriber registered"
	LogMsgSocketConnected      = "WebSocket client connected"
	LogMsgSocketDisconnected   = "WebSocket client disconnected"
	LogMsgUpgradeFailed        = "WebSocket upgrade failed"
	LogMsgSocketWriteError     = "Failed to write WebSocket message"
	ErrMsgStreamingUnsupported = "streaming not supported"
)
