package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

type countingJob struct {
	counter *atomic.Int64
	fail    bool
}

type countingResult struct {
	err error
}

func (r *countingResult) GetError() error { return r.err }

func (j *countingJob) Execute(ctx context.Context) Result {
	j.counter.Add(1)
	if j.fail {
		return &countingResult{err: errors.New("job failed")}
	}
	return &countingResult{}
}

func TestPool_RunsAllJobs(t *testing.T) {
	pool := NewPool(4)
	pool.Start()

	var counter atomic.Int64
	const jobs = 50

	go func() {
		defer pool.Close()
		for i := 0; i < jobs; i++ {
			pool.Submit(&countingJob{counter: &counter})
		}
	}()

	results := pool.Wait()
	if len(results) != jobs {
		t.Fatalf("Expected %d results, got %d", jobs, len(results))
	}
	if counter.Load() != jobs {
		t.Errorf("Expected %d executions, got %d", jobs, counter.Load())
	}
}

func TestPool_CollectsErrors(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	var counter atomic.Int64
	go func() {
		defer pool.Close()
		pool.Submit(&countingJob{counter: &counter, fail: true})
		pool.Submit(&countingJob{counter: &counter})
	}()

	results := pool.Wait()
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	failures := 0
	for _, r := range results {
		if r.GetError() != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("Expected 1 failure, got %d", failures)
	}
}

func TestPool_ZeroWorkersDefaultsToOne(t *testing.T) {
	pool := NewPool(0)
	pool.Start()

	var counter atomic.Int64
	go func() {
		defer pool.Close()
		pool.Submit(&countingJob{counter: &counter})
	}()

	results := pool.Wait()
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
}

func TestPool_ManyMoreJobsThanBuffer(t *testing.T) {
	// Submission and draining overlap, so job counts far beyond the channel
	// buffers must not deadlock
	pool := NewPool(2)
	pool.Start()

	var counter atomic.Int64
	const jobs = 500

	go func() {
		defer pool.Close()
		for i := 0; i < jobs; i++ {
			pool.Submit(&countingJob{counter: &counter})
		}
	}()

	results := pool.Wait()
	if len(results) != jobs {
		t.Fatalf("Expected %d results, got %d", jobs, len(results))
	}
}
