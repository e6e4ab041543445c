package eventlog

import "errors"

var errEmptyPayload = errors.New("event payload is empty")

// Payload keys lifted into their own columns
const (
	PayloadKeyUserID    = "user_id"
	PayloadKeyJackpotID = "jackpot_id"
)

// Log messages
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded, skipping log"
	LogMsgFailedToLogEvent        = "Failed to log event"
	LogMsgEventLogged             = "Event logged"
	LogMsgCleanupJobDisabled      = "Event log retention disabled, skipping cleanup"
	LogMsgCleanupJobFailed        = "Event log cleanup failed"
	LogMsgCleanupJobCompleted     = "Event log cleanup completed"
)

// Log field keys
const (
	LogFieldType          = "type"
	LogFieldUserID        = "user_id"
	LogFieldJackpotID     = "jackpot_id"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retention_days"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deleted"
)
