package metrics

// ============================================================================
// Metric Names
// ============================================================================

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

// Jackpot metric names
const (
	MetricNameContributions        = "jackpot_contributions_total"
	MetricNameContributionAmount   = "jackpot_contribution_amount_total"
	MetricNameRewardEvaluations    = "jackpot_reward_evaluations_total"
	MetricNameRewards              = "jackpot_rewards_total"
	MetricNameConcurrencyConflicts = "jackpot_concurrency_conflicts_total"
	MetricNameRetriesExhausted     = "jackpot_retries_exhausted_total"
	MetricNameBetsEnqueued         = "jackpot_bets_enqueued_total"
	MetricNameBetsFailed           = "jackpot_bets_failed_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

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

// Jackpot metric help text
const (
	HelpTextContributions        = "Total number of contributions committed"
	HelpTextContributionAmount   = "Total money contributed to jackpot pools"
	HelpTextRewardEvaluations    = "Total number of reward evaluations by outcome"
	HelpTextRewards              = "Total number of jackpot rewards committed"
	HelpTextConcurrencyConflicts = "Total number of optimistic version conflicts"
	HelpTextRetriesExhausted     = "Total number of operations that ran out of conflict retries"
	HelpTextBetsEnqueued         = "Total number of bets accepted for asynchronous processing"
	HelpTextBetsFailed           = "Total number of bets that failed processing"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelJackpotID = "jackpot_id"
	LabelOutcome   = "outcome"
	LabelOperation = "operation"
	LabelTransport = "transport"
	LabelReason    = "reason"
)

// Label values
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"

	OperationContribution = "contribution"
	OperationReward       = "reward"

	TransportKafka = "kafka"
	TransportLocal = "local"

	// PathUnmatched labels requests that matched no route
	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded for metrics"
	LogMsgMetricsRecorded         = "Metrics recorded for event"
)
