package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JackpotEngine_Go/internal/testing/leaktest"
)

type countingJob struct {
	executed *int32
}

func (j *countingJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

type blockingJob struct {
	started chan struct{}
	release chan struct{}
}

func (j *blockingJob) Process(ctx context.Context) error {
	close(j.started)
	<-j.release
	return nil
}

type failingJob struct {
	panics bool
	done   chan struct{}
}

func (j *failingJob) Process(ctx context.Context) error {
	defer close(j.done)
	if j.panics {
		panic("boom")
	}
	return errors.New("failed")
}

func TestPool_RunsJobs(t *testing.T) {
	var executed int32
	pool := NewPool(2, 10)
	pool.Start()

	job := &countingJob{executed: &executed}
	require.NoError(t, pool.Enqueue(context.Background(), job))
	require.NoError(t, pool.Enqueue(context.Background(), job))

	pool.Stop()
	assert.Equal(t, int32(2), atomic.LoadInt32(&executed))
}

func TestPool_StopDrainsQueuedJobs(t *testing.T) {
	var executed int32
	pool := NewPool(1, 100)
	pool.Start()

	block := &blockingJob{started: make(chan struct{}), release: make(chan struct{})}
	require.NoError(t, pool.Enqueue(context.Background(), block))
	<-block.started

	for i := 0; i < 20; i++ {
		require.NoError(t, pool.TryEnqueue(&countingJob{executed: &executed}))
	}

	stopped := make(chan struct{})
	go func() {
		pool.Stop()
		close(stopped)
	}()

	close(block.release)
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("pool did not stop")
	}
	assert.Equal(t, int32(20), atomic.LoadInt32(&executed))
}

func TestPool_RejectsAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()
	pool.Stop()

	var executed int32
	assert.ErrorIs(t, pool.Enqueue(context.Background(), &countingJob{executed: &executed}), ErrPoolStopped)
	assert.ErrorIs(t, pool.TryEnqueue(&countingJob{executed: &executed}), ErrPoolStopped)
}

func TestPool_TryEnqueueFull(t *testing.T) {
	// Not started, so nothing consumes the queue
	pool := NewPool(1, 1)
	var executed int32

	require.NoError(t, pool.TryEnqueue(&countingJob{executed: &executed}))
	assert.ErrorIs(t, pool.TryEnqueue(&countingJob{executed: &executed}), ErrQueueFull)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, pool.Enqueue(ctx, &countingJob{executed: &executed}), context.DeadlineExceeded)

	pool.Start()
	pool.Stop()
	assert.Equal(t, int32(1), atomic.LoadInt32(&executed))
}

func TestPool_SurvivesFailingJobs(t *testing.T) {
	pool := NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	for _, panics := range []bool{true, false} {
		job := &failingJob{panics: panics, done: make(chan struct{})}
		require.NoError(t, pool.Enqueue(context.Background(), job))
		select {
		case <-job.done:
		case <-time.After(time.Second):
			t.Fatalf("job (panics=%v) never ran", panics)
		}
	}

	var executed int32
	require.NoError(t, pool.Enqueue(context.Background(), &countingJob{executed: &executed}))
	require.Eventually(t, func() bool { return atomic.LoadInt32(&executed) == 1 }, time.Second, 5*time.Millisecond)
}

func TestPool_StopLeavesNoGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		var executed int32
		pool := NewPool(8, 16)
		pool.Start()
		for i := 0; i < 16; i++ {
			require.NoError(t, pool.Enqueue(context.Background(), &countingJob{executed: &executed}))
		}
		pool.Stop()
		assert.Equal(t, int32(16), atomic.LoadInt32(&executed))
	})
}
