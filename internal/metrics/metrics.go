package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Ledger Metrics
var (
	RewardsGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsGranted,
			Help: HelpTextRewardsGranted,
		},
		[]string{LabelKind},
	)

	Claims = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameClaims,
			Help: HelpTextClaims,
		},
	)

	Reclaims = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameReclaims,
			Help: HelpTextReclaims,
		},
	)

	TokensGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTokensGranted,
			Help: HelpTextTokensGranted,
		},
	)

	TokensClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTokensClaimed,
			Help: HelpTextTokensClaimed,
		},
	)

	TokensReclaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTokensReclaimed,
			Help: HelpTextTokensReclaimed,
		},
	)

	TokensDeposited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTokensDeposited,
			Help: HelpTextTokensDeposited,
		},
	)

	ExpirationDurationSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameExpirationDuration,
			Help: HelpTextExpirationDuration,
		},
	)
)

// BuildInfo is always 1; its labels describe the running ledger
var BuildInfo = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: MetricNameBuildInfo,
		Help: HelpTextBuildInfo,
	},
	[]string{LabelVersion, LabelToken, LabelStorage},
)
