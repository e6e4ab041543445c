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

// Jackpot Metrics
var (
	Contributions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameContributions,
			Help: HelpTextContributions,
		},
		[]string{LabelJackpotID},
	)

	ContributionAmount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameContributionAmount,
			Help: HelpTextContributionAmount,
		},
		[]string{LabelJackpotID},
	)

	RewardEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardEvaluations,
			Help: HelpTextRewardEvaluations,
		},
		[]string{LabelJackpotID, LabelOutcome},
	)

	Rewards = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewards,
			Help: HelpTextRewards,
		},
		[]string{LabelJackpotID},
	)

	ConcurrencyConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameConcurrencyConflicts,
			Help: HelpTextConcurrencyConflicts,
		},
		[]string{LabelOperation},
	)

	RetriesExhausted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRetriesExhausted,
			Help: HelpTextRetriesExhausted,
		},
		[]string{LabelOperation},
	)
)

// Bet Queue Metrics
var (
	BetsEnqueued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBetsEnqueued,
			Help: HelpTextBetsEnqueued,
		},
		[]string{LabelTransport},
	)

	BetsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBetsFailed,
			Help: HelpTextBetsFailed,
		},
		[]string{LabelReason},
	)
)
