package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsnyderaustin/poe-craftsim/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start(context.Background())

	job := &testJob{executed: &executed}
	require.NoError(t, pool.Enqueue(context.Background(), job))
	require.NoError(t, pool.Enqueue(context.Background(), job))

	// Stop drains the queue before returning.
	pool.Stop()

	assert.Equal(t, int32(TestExpectedJobCount), atomic.LoadInt32(&executed))
}

func TestPool_FailingJobDoesNotStopWorker(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)
	pool.Start(context.Background())

	require.NoError(t, pool.Enqueue(context.Background(), JobFunc(func(context.Context) error {
		return errors.New("boom")
	})))
	require.NoError(t, pool.Enqueue(context.Background(), &testJob{executed: &executed}))
	pool.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&executed))
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start(context.Background())
	pool.Stop()
	pool.Stop()

	err := pool.Enqueue(context.Background(), JobFunc(func(context.Context) error { return nil }))
	assert.ErrorIs(t, err, ErrPoolStopped)
}

func TestPool_EnqueueRespectsContext(t *testing.T) {
	// No workers started and no buffer: the send can never complete.
	pool := NewPool(1, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := pool.Enqueue(ctx, JobFunc(func(context.Context) error { return nil }))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPool_CancelledContextSkipsQueuedJobs(t *testing.T) {
	var executed int32
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewPool(TestWorkerCount, TestQueueSize)
	require.NoError(t, pool.Enqueue(context.Background(), &testJob{executed: &executed}))
	pool.Start(ctx)
	pool.Stop()

	assert.Equal(t, int32(0), atomic.LoadInt32(&executed))
}

func TestNewPool_Defaults(t *testing.T) {
	pool := NewPool(0, -1)
	assert.Equal(t, DefaultWorkers, pool.Workers())
}

func TestPool_StopReleasesWorkers(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(8, TestQueueSize)
		pool.Start(context.Background())
		for i := 0; i < TestQueueSize; i++ {
			require.NoError(t, pool.Enqueue(context.Background(), JobFunc(func(context.Context) error { return nil })))
		}
		pool.Stop()
	})
}
