package scheduler

// Log messages
const (
	LogMsgJobScheduled   = "Job scheduled"
	LogMsgJobSkipped     = "Scheduled job skipped"
	LogMsgSchedulerStop  = "Scheduler stopping"
	LogMsgSchedulerStart = "Scheduler started"
)
