package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidUserID     = "userId must be a positive integer"
	ErrMsgInvalidLimit      = "limit must be a positive integer"
	ErrMsgInvalidEventType  = "type must be one of jackpot.contribution.applied, jackpot.reward.won"

	// Operation error messages
	ErrMsgPublishBetFailed    = "Failed to queue bet"
	ErrMsgEventLogUnavailable = "Event log is not available for this store backend"
	ErrMsgEventLogQueryFailed = "Failed to read event log"
)

// Response messages
const (
	MsgBetAccepted = "Bet accepted for processing"
)

// Log messages
const (
	LogMsgRequestDecodeFailed  = "Failed to decode request"
	LogMsgRequestDecoded       = "Request decoded"
	LogMsgServiceCallFailed    = "Service call failed"
	LogMsgBetPublishFailed     = "Failed to publish bet"
	LogMsgBetAccepted          = "Bet accepted"
	LogMsgReadinessCheckFailed = "Readiness check failed"
	LogMsgEncodeResponseFailed = "Failed to write JSON response"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgStoreFailed    = "store connection failed"
)
