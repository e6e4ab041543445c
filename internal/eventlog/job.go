package eventlog

import (
	"context"
	"time"

	"github.com/osse101/JackpotEngine_Go/internal/logger"
)

// CleanupJob is the scheduled worker job that trims the event log
type CleanupJob struct {
	service       Service
	retentionDays int
}

func NewCleanupJob(service Service, retentionDays int) *CleanupJob {
	return &CleanupJob{service: service, retentionDays: retentionDays}
}

// Process implements worker.Job. A non-positive retention keeps everything.
func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx).With(LogFieldRetentionDays, j.retentionDays)
	if j.retentionDays <= 0 {
		log.Debug(LogMsgCleanupJobDisabled)
		return nil
	}

	start := time.Now()
	deleted, err := j.service.CleanupOldEvents(ctx, j.retentionDays)
	if err != nil {
		log.Error(LogMsgCleanupJobFailed, LogFieldError, err, LogFieldDuration, time.Since(start))
		return err
	}

	log.Info(LogMsgCleanupJobCompleted, LogFieldDeletedCount, deleted, LogFieldDuration, time.Since(start))
	return nil
}
