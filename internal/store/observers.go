package store

import "sync"

// observers fans a new state out to subscribers.
type observers[S any] struct {
	mu  sync.RWMutex
	fns []func(S)
}

func (o *observers[S]) add(fn func(S)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fns = append(o.fns, fn)
}

func (o *observers[S]) notify(state S) {
	o.mu.RLock()
	fns := make([]func(S), len(o.fns))
	copy(fns, o.fns)
	o.mu.RUnlock()

	for _, fn := range fns {
		fn(state)
	}
}
