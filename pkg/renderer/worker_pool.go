package renderer

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// queueSize bounds the number of tasks waiting for a worker
const queueSize = 256

// WorkerPool runs batches of independent tasks on a bounded set of
// reusable goroutines
type WorkerPool struct {
	pool       worker.DynamicWorkerPool
	numWorkers int
	nextID     int
}

// NewWorkerPool creates a pool with numWorkers workers; 0 or less means one
// per CPU
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		pool:       worker.NewDynamicWorkerPool(numWorkers, queueSize, 1*time.Second),
		numWorkers: numWorkers,
	}
}

// Run calls task(i) for every i in [0, n) and returns once all calls have
// finished. Calls may run in any order and concurrently.
func (wp *WorkerPool) Run(n int, task func(i int)) {
	var wg sync.WaitGroup
	wg.Add(n)

	for i := 0; i < n; i++ {
		index := i
		wp.pool.SubmitTask(worker.Task{
			ID: wp.nextID,
			Do: func() (any, error) {
				defer wg.Done()
				task(index)
				return nil, nil
			},
		})
		wp.nextID++
	}

	wg.Wait()
}

// Stop shuts down the pool's workers. The pool must not be used afterwards.
func (wp *WorkerPool) Stop() {
	wp.pool.Stop()
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}
