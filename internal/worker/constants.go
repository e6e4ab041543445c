package worker

import (
	"errors"
	"time"
)

// ============================================================================
// Pool Defaults
// ============================================================================

const (
	DefaultWorkers   = 4
	DefaultQueueSize = 1024

	// JobTimeout bounds a single job run
	JobTimeout = 30 * time.Second
)

// ============================================================================
// Errors
// ============================================================================

var (
	ErrPoolStopped = errors.New("worker pool stopped")
	ErrQueueFull   = errors.New("worker queue full")
)

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
	LogMsgPoolStarted       = "Worker pool started"
	LogMsgPoolStopping      = "Worker pool stopping, draining queued jobs"
	LogMsgPoolStopped       = "Worker pool stopped"
)

// ============================================================================
// Log Messages - Contribution Job
// ============================================================================

const (
	LogMsgBetProcessed = "Queued bet processed"
	LogMsgBetFailed    = "Queued bet failed"
)

// Bet failure reasons, used as metric label values
const (
	ReasonValidation    = "validation"
	ReasonNotFound      = "not_found"
	ReasonConfiguration = "configuration"
	ReasonConflict      = "conflict"
	ReasonInternal      = "internal"
)
