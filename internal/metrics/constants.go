package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Ledger metric names
const (
	MetricNameRewardsGranted     = "lockbox_rewards_granted_total"
	MetricNameClaims             = "lockbox_claims_total"
	MetricNameReclaims           = "lockbox_reclaims_total"
	MetricNameTokensGranted      = "lockbox_tokens_granted_total"
	MetricNameTokensClaimed      = "lockbox_tokens_claimed_total"
	MetricNameTokensReclaimed    = "lockbox_tokens_reclaimed_total"
	MetricNameTokensDeposited    = "lockbox_tokens_deposited_total"
	MetricNameExpirationDuration = "lockbox_expiration_duration_seconds"
	MetricNameBuildInfo          = "lockbox_build_info"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Ledger metric help text
const (
	HelpTextRewardsGranted     = "Total number of reward entries granted"
	HelpTextClaims             = "Total number of claims that paid out"
	HelpTextReclaims           = "Total number of reclaims that swept expired entries"
	HelpTextTokensGranted      = "Token units granted (approximate, float64)"
	HelpTextTokensClaimed      = "Token units paid out by claims (approximate, float64)"
	HelpTextTokensReclaimed    = "Token units swept by reclaims (approximate, float64)"
	HelpTextTokensDeposited    = "Token units deposited into custody (approximate, float64)"
	HelpTextExpirationDuration = "Current expiration duration in seconds"
	HelpTextBuildInfo          = "Version, reward token and storage driver of the running ledger"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelKind    = "kind"
	LabelVersion = "version"
	LabelToken   = "token"
	LabelStorage = "storage"
)

// HTTPLatencyBuckets spans 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded for metrics"
	LogMsgMetricsRecorded         = "Metrics recorded for event"
)
