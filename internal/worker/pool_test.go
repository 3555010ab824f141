package worker_test

import (
	"sync/atomic"
	"testing"

	"github.com/vchartered/backend/internal/worker"
)

func TestPool_RunsSubmittedJobs(t *testing.T) {
	pool := worker.NewPool(3, 10)

	var ran atomic.Int32
	for i := 0; i < 10; i++ {
		pool.Submit(func() { ran.Add(1) })
	}

	pool.Close()

	if ran.Load() != 10 {
		t.Errorf("expected 10 jobs to run, got %d", ran.Load())
	}
}

func TestPool_SubmitAfterCloseIsDropped(t *testing.T) {
	pool := worker.NewPool(1, 4)
	pool.Close()

	var ran atomic.Int32
	pool.Submit(func() { ran.Add(1) })

	if ran.Load() != 0 {
		t.Error("expected job submitted after Close to be dropped")
	}

	// A second Close must also be harmless.
	pool.Close()
}

func TestPool_DropsWhenFull(t *testing.T) {
	// Zero workers: nothing drains the queue, so submits beyond the buffer
	// must be dropped instead of blocking.
	pool := worker.NewPool(0, 1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			pool.Submit(func() {})
		}
		close(done)
	}()

	<-done
}
