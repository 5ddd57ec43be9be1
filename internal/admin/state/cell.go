// Package state holds the admin console's in-memory session state: the
// authenticated user's standing, display settings, and the admin-mode toggle.
// Values are observable so the UI can re-render when they change, and the
// durable ones write through to the local cache.
package state

import "sync"

// Cell is a thread-safe observable value. Subscribers are invoked
// synchronously, in registration order, on every Set or Update.
type Cell[T any] struct {
	mu     sync.RWMutex
	value  T
	subs   map[uint64]func(T)
	nextID uint64
}

// NewCell creates a Cell holding the given initial value.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{
		value: initial,
		subs:  make(map[uint64]func(T)),
	}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the value and notifies subscribers.
func (c *Cell[T]) Set(value T) {
	c.mu.Lock()
	c.value = value
	subs := c.snapshotSubs()
	c.mu.Unlock()

	for _, fn := range subs {
		fn(value)
	}
}

// Update applies fn to the current value and stores the result, notifying
// subscribers. The whole exchange happens under the lock, so concurrent
// updates never lose writes.
func (c *Cell[T]) Update(fn func(T) T) T {
	c.mu.Lock()
	c.value = fn(c.value)
	value := c.value
	subs := c.snapshotSubs()
	c.mu.Unlock()

	for _, sub := range subs {
		sub(value)
	}

	return value
}

// Subscribe registers fn to be called on every change. The returned function
// removes the subscription; calling it more than once is harmless.
func (c *Cell[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// snapshotSubs copies the subscriber list in registration order.
// Callers must hold the lock.
func (c *Cell[T]) snapshotSubs() []func(T) {
	subs := make([]func(T), 0, len(c.subs))
	for id := uint64(0); id < c.nextID; id++ {
		if fn, ok := c.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	return subs
}
