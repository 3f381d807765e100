// Package worker runs rule evaluators concurrently for
// internal/rules.Dispatch (§5: rule dispatch may run in parallel because
// every Evaluator only ever reads Context, never mutates shared state).
package worker

import (
	"fmt"
	"sync"
	"sync/atomic"

	customlog "nooa/pkg/nooalog"
)

// Task is one rule evaluation: Func runs the bound Evaluator and returns
// its violations as Value.
type Task struct {
	ID   string // the rule name, for logging
	Data interface{}
	Func func(data interface{}) (interface{}, error)
}

// Result holds the outcome of a completed Task.
type Result struct {
	TaskID string
	Value  interface{}
	Error  error
}

// Pool runs Tasks across a fixed number of worker goroutines and forwards
// their Results to a single output channel.
type Pool struct {
	numWorkers     int
	taskQueue      chan Task
	resultQueue    chan Result // workers write here
	results        chan Result // consumer reads here
	wg             sync.WaitGroup
	stopOnce       sync.Once
	stopped        chan struct{}
	running        bool
	mu             sync.Mutex
	isShuttingDown atomic.Bool
	started        sync.Once
}

// NewPool creates a Pool with numWorkers workers. The task/result queues
// are buffered generously (10x the worker count, 100 minimum) since
// Dispatch submits at most one task per grammar rule and never blocks on
// a full queue in practice.
func NewPool(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = 1
	}

	bufferSize := numWorkers * 10
	if bufferSize < 100 {
		bufferSize = 100
	}

	pool := &Pool{
		numWorkers:  numWorkers,
		taskQueue:   make(chan Task, bufferSize),
		resultQueue: make(chan Result, bufferSize),
		results:     make(chan Result, bufferSize),
		stopped:     make(chan struct{}),
		running:     false,
	}

	pool.isShuttingDown.Store(false)

	return pool
}

// Run starts the worker pool, spawning numWorkers goroutines. Safe to call
// only once; later calls are no-ops.
func (p *Pool) Run() {
	customlog.Debugf("Starting worker pool with %d workers...", p.numWorkers)
	p.started.Do(func() {
		p.mu.Lock()
		p.running = true
		p.mu.Unlock()

		go func() {
			defer close(p.results)

			var forwarded int
			for result := range p.resultQueue {
				forwarded++
				p.results <- result
			}

			customlog.Debugf("Forwarded %d rule results to the consumer", forwarded)
		}()

		for i := 0; i < p.numWorkers; i++ {
			p.startWorker(i + 1)
		}
	})
}

func (p *Pool) startWorker(workerID int) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		customlog.Debugf("Worker %d started", workerID)

		for task := range p.taskQueue {
			if p.isShuttingDown.Load() {
				customlog.Debugf("Worker %d skipping rule %q, pool is shutting down", workerID, task.ID)
				continue
			}

			customlog.Debugf("Worker %d evaluating rule %q", workerID, task.ID)
			value, err := task.Func(task.Data)

			if p.isShuttingDown.Load() {
				customlog.Debugf("Worker %d discarding result for rule %q, pool is shutting down", workerID, task.ID)
				continue
			}

			select {
			case p.resultQueue <- Result{TaskID: task.ID, Value: value, Error: err}:
				customlog.Debugf("Worker %d finished rule %q (error: %v)", workerID, task.ID, err != nil)
			default:
				customlog.Debugf("Worker %d could not record result for rule %q, queue full or closed", workerID, task.ID)
			}
		}

		customlog.Debugf("Worker %d shutting down (task queue closed)", workerID)
	}()
}

// SubmitTask enqueues task for evaluation. Returns an error if the pool
// has not been started, or has already been stopped.
func (p *Pool) SubmitTask(task Task) error {
	p.mu.Lock()
	running := p.running
	p.mu.Unlock()

	if !running {
		return fmt.Errorf("worker pool not running, cannot submit tasks")
	}

	if p.isShuttingDown.Load() {
		return fmt.Errorf("worker pool is shutting down, cannot submit new tasks")
	}

	select {
	case <-p.stopped:
		return fmt.Errorf("worker pool stopped, cannot submit new tasks")
	case p.taskQueue <- task:
		return nil
	}
}

// Results returns the channel of Results. It closes once Stop has drained
// every worker and forwarded their output.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Stop closes the task queue, waits for every worker to finish the tasks
// already queued, then closes the result channel. Synchronous; safe to
// call more than once.
func (p *Pool) Stop() {
	customlog.Debugf("Stop called on worker pool")

	p.mu.Lock()
	p.running = false
	p.mu.Unlock()

	p.stopOnce.Do(func() {
		customlog.Debugf("Closing task queue to stop workers")
		close(p.taskQueue)

		customlog.Debugf("Waiting for all workers to complete...")
		p.wg.Wait()

		p.isShuttingDown.Store(true)

		customlog.Debugf("All workers completed, closing internal result queue")
		close(p.resultQueue)

		customlog.Debugf("Worker pool stopped, consumer can now read all results")

		close(p.stopped)

		customlog.Debugf("Worker pool stopped completely")
	})
}
