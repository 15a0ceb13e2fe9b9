package pool

import "sync"

// Pool is a typed wrapper around sync.Pool.
//
// Values returned by Get are either freshly created by the constructor or were
// previously handed to Put, which runs the reset function before pooling them so no
// state leaks between users.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(T)
}

// New creates a pool that builds values with newFn and clears them with reset.
// reset may be nil.
func New[T any](newFn func() T, reset func(T)) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any { return newFn() },
		},
		reset: reset,
	}
}

// Get retrieves a value from the pool.
func (p *Pool[T]) Get() T {
	v, _ := p.pool.Get().(T)
	return v
}

// Put resets v and returns it to the pool for reuse.
func (p *Pool[T]) Put(v T) {
	if p.reset != nil {
		p.reset(v)
	}
	p.pool.Put(v)
}
