// file: internal/cache/cache.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7a8b-9c0d-1e2f3a4b5c6d

package cache

import (
	"sync"
	"sync/atomic"
)

// Memo remembers the result of a keyed computation for the lifetime of one
// batch call. It is safe for concurrent use; failed computations are not
// stored.
type Memo[T any] struct {
	mu     sync.RWMutex
	items  map[string]T
	hits   atomic.Int64
	misses atomic.Int64
}

// NewMemo creates an empty memo.
func NewMemo[T any]() *Memo[T] {
	return &Memo[T]{items: make(map[string]T)}
}

// Get returns the stored value for key, computing and storing it on a miss.
// Two goroutines missing on the same key may both compute it; the first
// stored value wins.
func (m *Memo[T]) Get(key string, compute func(string) (T, error)) (T, error) {
	m.mu.RLock()
	v, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		m.hits.Add(1)
		return v, nil
	}

	m.misses.Add(1)
	v, err := compute(key)
	if err != nil {
		var zero T
		return zero, err
	}

	m.mu.Lock()
	if existing, ok := m.items[key]; ok {
		v = existing
	} else {
		m.items[key] = v
	}
	m.mu.Unlock()
	return v, nil
}

// Len reports the number of stored keys.
func (m *Memo[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Stats reports how many lookups were served from the memo and how many
// had to compute.
func (m *Memo[T]) Stats() (hits, misses int64) {
	return m.hits.Load(), m.misses.Load()
}
