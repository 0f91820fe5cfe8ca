package assets

import (
	"context"
	"sync"
	"time"
)

type completion struct {
	data    []byte
	err     error
	onLoad  func([]byte)
	onError func(error)
}

// Loader runs fetches on goroutines and queues their results. Callbacks
// only ever run inside Poll, on the goroutine that calls it, so they may
// touch the scene graph without locking.
type Loader struct {
	fetcher Fetcher
	timeout time.Duration
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	mu       sync.Mutex
	queue    []completion
	inFlight int
}

// NewLoader creates a loader whose fetches are aborted when ctx is done or
// Close is called. A zero timeout means fetches never time out.
func NewLoader(ctx context.Context, fetcher Fetcher, timeout time.Duration) *Loader {
	ctx, cancel := context.WithCancel(ctx)
	return &Loader{
		fetcher: fetcher,
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Load starts fetching path. Exactly one of onLoad or onError is called
// from a later Poll. A nil onError drops the failure.
func (l *Loader) Load(path string, onLoad func([]byte), onError func(error)) {
	l.mu.Lock()
	l.inFlight++
	l.mu.Unlock()

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		ctx := l.ctx
		if l.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, l.timeout)
			defer cancel()
		}
		data, err := l.fetcher.Fetch(ctx, path)

		l.mu.Lock()
		l.queue = append(l.queue, completion{data: data, err: err, onLoad: onLoad, onError: onError})
		l.mu.Unlock()
	}()
}

// Poll runs the callbacks of every fetch that has finished since the last
// call and returns how many ran.
func (l *Loader) Poll() int {
	l.mu.Lock()
	ready := l.queue
	l.queue = nil
	l.inFlight -= len(ready)
	l.mu.Unlock()

	for _, c := range ready {
		if c.err != nil {
			if c.onError != nil {
				c.onError(c.err)
			}
			continue
		}
		if c.onLoad != nil {
			c.onLoad(c.data)
		}
	}
	return len(ready)
}

// Pending returns the number of loads whose callbacks have not run yet.
func (l *Loader) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inFlight
}

// Drain waits for every in-flight fetch and runs the callbacks, including
// those of loads started by callbacks.
func (l *Loader) Drain() {
	for l.Pending() > 0 {
		l.wg.Wait()
		l.Poll()
	}
}

// Close aborts in-flight fetches and waits for their goroutines. Queued
// callbacks are discarded.
func (l *Loader) Close() {
	l.cancel()
	l.wg.Wait()
	l.mu.Lock()
	l.inFlight -= len(l.queue)
	l.queue = nil
	l.mu.Unlock()
}
