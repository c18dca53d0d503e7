package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/kinematic/oerror"
)

// Pool runs CPU-bound tasks on a fixed set of goroutines. A panicking task is reported to sentry and recovered, so
// one bad task never takes the pool down.
type Pool struct {
	queue chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

// New starts a pool with the given number of workers. A non-positive size uses one worker per CPU.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	p := &Pool{queue: make(chan func(), size)}
	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for f := range p.queue {
		f()
	}
}

// Submit queues f for execution. It blocks while every worker is busy and the queue is full.
func (p *Pool) Submit(f func()) {
	p.queue <- f
}

// Run executes every task on the pool and returns once all of them finished. It reports, for each task, whether
// it panicked.
func (p *Pool) Run(tasks []func()) []bool {
	panicked := make([]bool, len(tasks))

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, task := range tasks {
		p.Submit(func() {
			defer wg.Done()
			defer func() {
				if err := recover(); err != nil {
					panicked[i] = true
					hub := sentry.CurrentHub().Clone()
					hub.Recover(oerror.New("worker task panicked: %v", err))
				}
			}()
			task()
		})
	}
	wg.Wait()
	return panicked
}

// Close stops the workers once the queued tasks have run.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.queue)
	})
	p.wg.Wait()
}
