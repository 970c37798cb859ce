// Package worker provides a worker pool for running independent jobs in parallel.
package worker

import (
	"sync"
	"sync/atomic"
)

// WorkItem is a unit of work with its submission index.
type WorkItem[T any] struct {
	Payload T
	Index   int // Original index for tracking
}

// ProcessResult is the outcome of processing one WorkItem.
type ProcessResult[R any] struct {
	Value R
	Index int
	Error error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc[T, R any] func(item WorkItem[T]) ProcessResult[R]

// Pool manages a pool of workers.
type Pool[T, R any] struct {
	numWorkers  int
	workChan    chan WorkItem[T]
	resultChan  chan ProcessResult[R]
	processFunc ProcessFunc[T, R]
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// NewPool creates a new worker pool with the specified number of workers and buffer size.
func NewPool[T, R any](numWorkers, bufferSize int, processFunc ProcessFunc[T, R]) *Pool[T, R] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool[T, R]{
		numWorkers:  numWorkers,
		workChan:    make(chan WorkItem[T], bufferSize),
		resultChan:  make(chan ProcessResult[R], bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool[T, R]) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool[T, R]) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool[T, R]) Submit(item WorkItem[T]) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool[T, R]) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool[T, R]) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool[T, R]) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool[T, R]) Results() <-chan ProcessResult[R] {
	return p.resultChan
}

// Run processes every payload and returns the results in submission order.
// The first error reported by any item stops the pool: items not yet picked
// up are skipped and keep the zero value in the returned slice.
func Run[T, R any](numWorkers int, payloads []T, processFunc ProcessFunc[T, R]) ([]R, error) {
	var pool *Pool[T, R]
	pool = NewPool(numWorkers, len(payloads), func(item WorkItem[T]) ProcessResult[R] {
		result := processFunc(item)
		if result.Error != nil {
			pool.Stop()
		}
		return result
	})
	pool.Start()
	for i, payload := range payloads {
		pool.Submit(WorkItem[T]{Payload: payload, Index: i})
	}
	go pool.Close()

	out := make([]R, len(payloads))
	var firstErr error
	for result := range pool.Results() {
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
		}
		out[result.Index] = result.Value
	}
	return out, firstErr
}
