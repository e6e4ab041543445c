// Package scheduler runs interval jobs on the worker pool.
package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/osse101/JackpotEngine_Go/internal/logger"
	"github.com/osse101/JackpotEngine_Go/internal/worker"
)

// Enqueuer accepts jobs without blocking
type Enqueuer interface {
	TryEnqueue(job worker.Job) error
}

type entry struct {
	interval time.Duration
	job      worker.Job
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	pool    Enqueuer
	entries []entry
	quit    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval once Start is called
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.entries = append(s.entries, entry{interval: interval, job: job})
	logger.Info(LogMsgJobScheduled, "job", fmt.Sprintf("%T", job), "interval", interval)
}

// Start launches one ticker per scheduled job
func (s *Scheduler) Start() {
	for _, e := range s.entries {
		s.wg.Add(1)
		go s.loop(e)
	}
	logger.Info(LogMsgSchedulerStart, "jobs", len(s.entries))
}

// loop never blocks on a full pool; a tick that cannot be queued is skipped
func (s *Scheduler) loop(e entry) {
	defer s.wg.Done()
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.pool.TryEnqueue(e.job); err != nil {
				logger.Warn(LogMsgJobSkipped, "job", fmt.Sprintf("%T", e.job), "error", err)
			}
		case <-s.quit:
			return
		}
	}
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.once.Do(func() {
		logger.Info(LogMsgSchedulerStop)
		close(s.quit)
	})
	s.wg.Wait()
}
