// Package worker runs lint jobs across a bounded pool of goroutines.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
)

// Job is one unit of lint work, typically a single source file.
type Job struct {
	// Index is the job's position in the submitted batch. Results are
	// reassembled in index order regardless of completion order.
	Index int
	// Path identifies the job in logs.
	Path string
}

// Result pairs a job with its outcome.
type Result[T any] struct {
	Job   Job
	Value T
	Err   error
}

// Pool fans a batch of jobs out to a fixed number of goroutines.
type Pool struct {
	size int
}

// NewPool creates a pool of the given size. Zero or negative means one
// goroutine per CPU.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	return &Pool{size: size}
}

// Size returns the number of goroutines the pool runs.
func (p *Pool) Size() int { return p.size }

// Run executes fn for every path and returns the results in input order.
// Individual job failures land in their Result; Run itself fails only when
// the context is cancelled before the batch drains.
func Run[T any](ctx context.Context, p *Pool, paths []string, fn func(ctx context.Context, job Job) (T, error)) ([]Result[T], error) {
	jobs := make(chan Job)
	results := make([]Result[T], len(paths))

	var wg sync.WaitGroup
	for i := 0; i < p.size; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				value, err := fn(ctx, job)
				if err != nil {
					log.Debug().Err(err).Str("path", job.Path).Msg("job failed")
				}
				results[job.Index] = Result[T]{Job: job, Value: value, Err: err}
			}
		}()
	}

	var cancelled error
feed:
	for i, path := range paths {
		select {
		case jobs <- Job{Index: i, Path: path}:
		case <-ctx.Done():
			cancelled = fmt.Errorf("pool cancelled: %w", ctx.Err())
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if cancelled != nil {
		return nil, cancelled
	}
	return results, nil
}
