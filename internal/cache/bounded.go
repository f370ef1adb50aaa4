package cache

import (
	"sync/atomic"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// Bounded keeps at most Config.Capacity entries, evicting the least recently
// used, and drops entries not read for Config.TTL. Expired entries are also
// swept in the background by the underlying LRU.
//
// Computation runs at most once at a time per key; distinct keys compute in
// parallel.
type Bounded[T any] struct {
	lru         *expirable.LRU[string, T]
	inflight    singleflight.Group
	initialized atomic.Bool
}

// NewBounded builds a store sized and timed by cfg.
func NewBounded[T any](cfg Config) *Bounded[T] {
	return &Bounded[T]{
		lru: expirable.NewLRU[string, T](cfg.Capacity(), nil, cfg.TTL()),
	}
}

// IsInitialized reports whether at least one entry has been stored.
func (b *Bounded[T]) IsInitialized() bool {
	return b.initialized.Load()
}

func (b *Bounded[T]) Get(key string, compute func() T) T {
	if v, ok := b.lru.Get(key); ok {
		// re-adding restarts the entry's expiry from this access
		b.lru.Add(key, v)
		return v
	}

	v, _, _ := b.inflight.Do(key, func() (any, error) {
		if v, ok := b.lru.Get(key); ok {
			return v, nil
		}
		v := compute()
		b.lru.Add(key, v)
		b.initialized.Store(true)
		return v, nil
	})
	out, _ := v.(T)
	return out
}

func (b *Bounded[T]) Clean() {
	b.lru.Purge()
}

// Len returns the number of entries, possibly including expired ones not yet swept.
func (b *Bounded[T]) Len() int {
	return b.lru.Len()
}
