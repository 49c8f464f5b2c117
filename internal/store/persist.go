package store

import (
	"context"
	"errors"
	"sync"

	"github.com/asteroid-belt/zelenko/internal/kv"
)

// ErrPersisterClosed is reported for snapshots queued after Close.
var ErrPersisterClosed = errors.New("persister closed")

// Persister writes snapshots to a kv.Store from a single background goroutine.
// Saving is fire-and-forget: Enqueue returns immediately, and pending writes
// for the same key collapse to the newest snapshot. Failures go to the error
// handler; nothing is rolled back.
type Persister struct {
	store   kv.Store
	onError func(key string, err error)

	mu      sync.Mutex
	pending map[string][]byte
	order   []string
	waiters []chan struct{}
	closed  bool

	wake    chan struct{}
	quit    chan struct{}
	stopped chan struct{}
}

// PersisterOption configures a Persister.
type PersisterOption func(*Persister)

// WithErrorHandler sets the callback for failed writes.
func WithErrorHandler(fn func(key string, err error)) PersisterOption {
	return func(p *Persister) {
		p.onError = fn
	}
}

// NewPersister starts a persister writing to store.
func NewPersister(store kv.Store, opts ...PersisterOption) *Persister {
	p := &Persister{
		store:   store,
		onError: func(string, error) {},
		pending: make(map[string][]byte),
		wake:    make(chan struct{}, 1),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	go p.run()
	return p
}

// Enqueue schedules data to be written under key.
func (p *Persister) Enqueue(key string, data []byte) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.onError(key, ErrPersisterClosed)
		return
	}
	if _, queued := p.pending[key]; !queued {
		p.order = append(p.order, key)
	}
	p.pending[key] = data
	p.mu.Unlock()

	p.signal()
}

// SaveSnapshot encodes state with version and enqueues it.
func (p *Persister) SaveSnapshot(key string, state any, version int) {
	data, err := EncodeSnapshot(state, version)
	if err != nil {
		p.onError(key, err)
		return
	}
	p.Enqueue(key, data)
}

// Flush blocks until every snapshot queued before the call has been written.
func (p *Persister) Flush(ctx context.Context) error {
	done := make(chan struct{})

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.waiters = append(p.waiters, done)
	p.mu.Unlock()

	p.signal()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close flushes pending writes and stops the writer goroutine.
func (p *Persister) Close(ctx context.Context) error {
	flushErr := p.Flush(ctx)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return flushErr
	}
	p.closed = true
	p.mu.Unlock()

	close(p.quit)

	select {
	case <-p.stopped:
		return flushErr
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Persister) signal() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *Persister) run() {
	defer close(p.stopped)

	for {
		select {
		case <-p.wake:
			p.drain()
			p.releaseWaiters()
		case <-p.quit:
			p.drain()
			p.releaseWaiters()
			return
		}
	}
}

// drain writes until nothing is pending.
func (p *Persister) drain() {
	for {
		p.mu.Lock()
		if len(p.order) == 0 {
			p.mu.Unlock()
			return
		}
		key := p.order[0]
		p.order = p.order[1:]
		data := p.pending[key]
		delete(p.pending, key)
		p.mu.Unlock()

		if err := p.store.Save(context.Background(), key, data); err != nil {
			p.onError(key, err)
		}
	}
}

func (p *Persister) releaseWaiters() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.order) > 0 {
		return
	}
	for _, w := range p.waiters {
		close(w)
	}
	p.waiters = nil
}

// PersistPlants subscribes p to every change of r.
func PersistPlants(r *Registry, p *Persister) {
	r.Subscribe(func(s PlantsState) {
		p.SaveSnapshot(PlantsKey, s, PlantsVersion)
	})
}

// PersistOnboarding subscribes p to every change of o.
func PersistOnboarding(o *OnboardingStore, p *Persister) {
	o.Subscribe(func(s UserState) {
		p.SaveSnapshot(UserKey, s, UserVersion)
	})
}
