// worker/pool.go
package worker

import "sync"

// Pool runs fire-and-forget jobs on a fixed set of workers. Callers never
// observe a job's outcome.
type Pool struct {
	mu     sync.RWMutex
	closed bool
	jobs   chan func()
	wg     sync.WaitGroup
}

func NewPool(workerCount int, bufferSize int) *Pool {
	p := &Pool{
		jobs: make(chan func(), bufferSize),
	}

	for i := 0; i < workerCount; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		job()
	}
}

// Submit enqueues a job. When the queue is full, or the pool is already
// closed, the job is dropped: to a best-effort caller a dropped job and a
// failed one look the same.
func (p *Pool) Submit(fn func()) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return
	}
	select {
	case p.jobs <- fn:
	default:
	}
}

// Close stops accepting jobs and waits for queued ones to finish. Safe to
// call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
}
