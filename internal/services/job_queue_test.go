package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobQueueExecutesJobs(t *testing.T) {
	queue := NewJobQueueService(context.Background(), 10, 1)

	done := make(chan struct{})
	require.NoError(t, queue.Enqueue(func(ctx context.Context) {
		close(done)
	}))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job was not executed")
	}

	queue.Shutdown()
}

func TestJobQueueFull(t *testing.T) {
	// No workers, so the single slot never drains.
	queue := NewJobQueueService(context.Background(), 1, 0)

	require.NoError(t, queue.Enqueue(func(ctx context.Context) {}))
	assert.ErrorIs(t, queue.Enqueue(func(ctx context.Context) {}), ErrJobQueueIsFull)
}

func TestJobQueueClosed(t *testing.T) {
	queue := NewJobQueueService(context.Background(), 1, 1)
	queue.Shutdown()

	assert.ErrorIs(t, queue.Enqueue(func(ctx context.Context) {}), ErrJobQueueClosed)
}
