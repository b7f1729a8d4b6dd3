// Package pool demonstrates the object pool pattern: a fixed-limit pool of
// reusable workers checked out for use and returned when done, resizable
// without disturbing active workers.
package pool

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/prateeksan/patterns/internal/log"
)

// Limit caps the total number of workers a pool may hold.
const Limit = 8

// Pool errors
var (
	ErrOverLimit   = errors.New("worker count out of range")
	ErrBusyWorkers = errors.New("cannot resize due to busy workers")
	ErrExhausted   = errors.New("no idle workers available")
)

// Worker is a pooled resource. Construction is presumed expensive, which is
// the point of keeping deactivated workers around for reuse.
type Worker struct {
	ID string
}

func newWorker() *Worker {
	return &Worker{ID: uuid.NewString()}
}

// WorkerPool maintains idle workers and an active count under one mutex.
type WorkerPool struct {
	mu      sync.Mutex
	idle    []*Worker
	actives int
}

// NewWorkerPool creates a pool pre-filled with count idle workers.
func NewWorkerPool(count int) (*WorkerPool, error) {
	if err := withinLimit(count); err != nil {
		return nil, err
	}
	p := &WorkerPool{idle: make([]*Worker, 0, count)}
	for i := 0; i < count; i++ {
		p.idle = append(p.idle, newWorker())
	}
	return p, nil
}

func withinLimit(count int) error {
	if count <= 0 || count > Limit {
		return fmt.Errorf("%w: valid worker count range: 1 - %d", ErrOverLimit, Limit)
	}
	return nil
}

// Activate checks an idle worker out of the pool.
func (p *WorkerPool) Activate() (*Worker, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.idle) == 0 {
		return nil, ErrExhausted
	}
	w := p.idle[len(p.idle)-1]
	p.idle = p.idle[:len(p.idle)-1]
	p.actives++
	return w, nil
}

// Deactivate returns a worker to the pool for reuse. A worker with internal
// state would be reset here.
func (p *WorkerPool) Deactivate(w *Worker) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.actives--
	p.idle = append(p.idle, w)
}

// Resize grows or shrinks the pool to newCount total workers. Shrinking
// only ever discards idle workers; a resize that would need to evict active
// workers fails with ErrBusyWorkers.
func (p *WorkerPool) Resize(newCount int) error {
	if err := withinLimit(newCount); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	diff := newCount - (len(p.idle) + p.actives)
	switch {
	case diff > 0:
		for i := 0; i < diff; i++ {
			p.idle = append(p.idle, newWorker())
		}
	case diff < 0:
		if -diff > len(p.idle) {
			log.Warn(log.CatPool, "resize refused", "target", newCount, "active", p.actives)
			return ErrBusyWorkers
		}
		p.idle = p.idle[:len(p.idle)+diff]
	}
	log.Debug(log.CatPool, "pool resized", "total", newCount)
	return nil
}

// ActiveCount returns the number of checked-out workers.
func (p *WorkerPool) ActiveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.actives
}

// TotalCount returns idle plus active workers.
func (p *WorkerPool) TotalCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.idle) + p.actives
}

// IdleCount returns the number of workers waiting in the pool.
func (p *WorkerPool) IdleCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.idle)
}
