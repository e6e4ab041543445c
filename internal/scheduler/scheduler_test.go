package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JackpotEngine_Go/internal/testing/leaktest"
	"github.com/osse101/JackpotEngine_Go/internal/worker"
)

type signalJob struct {
	done chan struct{}
}

func (m *signalJob) Process(ctx context.Context) error {
	select {
	case m.done <- struct{}{}:
	default:
	}
	return nil
}

// fullPool rejects every job
type fullPool struct {
	mu       sync.Mutex
	attempts int
}

func (p *fullPool) TryEnqueue(job worker.Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.attempts++
	return worker.ErrQueueFull
}

func (p *fullPool) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.attempts
}

func TestScheduler_RunsJobOnPool(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	job := &signalJob{done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)
	sched.Start()
	defer sched.Stop()

	timeout := time.After(time.Second)
	for runs := 0; runs < 2; {
		select {
		case <-job.done:
			runs++
		case <-timeout:
			t.Fatal("timeout waiting for job execution")
		}
	}
}

func TestScheduler_SkipsWhenPoolFull(t *testing.T) {
	pool := &fullPool{}
	sched := New(pool)
	sched.Schedule(5*time.Millisecond, &signalJob{done: make(chan struct{}, 1)})
	sched.Start()

	require.Eventually(t, func() bool { return pool.count() >= 2 }, time.Second, 5*time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		sched.Stop()
		sched.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.GreaterOrEqual(t, pool.count(), 2)
}

func TestScheduler_StopReleasesLoops(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		sched := New(&fullPool{})
		for i := 0; i < 3; i++ {
			sched.Schedule(time.Hour, &signalJob{done: make(chan struct{}, 1)})
		}
		sched.Start()
		sched.Stop()
		sched.Stop()
	})
}
