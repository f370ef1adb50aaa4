// Package cache provides get-or-compute stores keyed by string.
package cache

// Cache is a get-or-compute store.
type Cache[T any] interface {
	// IsInitialized reports whether the store is ready to serve cached values.
	IsInitialized() bool

	// Get returns the cached value for key, or calls compute once, stores its
	// result and returns it.
	Get(key string, compute func() T) T

	// Clean evicts every entry.
	Clean()
}

// Noop never stores anything; every Get calls compute.
type Noop[T any] struct{}

// NewNoop returns a store that always recomputes.
func NewNoop[T any]() Noop[T] {
	return Noop[T]{}
}

// IsInitialized is always true: there is nothing to warm up.
func (Noop[T]) IsInitialized() bool { return true }

// Get calls compute.
func (Noop[T]) Get(_ string, compute func() T) T { return compute() }

// Clean does nothing.
func (Noop[T]) Clean() {}

// Delegating forwards every call to a store chosen when it is constructed, so
// owners can hand out one handle type whatever the backing store is.
type Delegating[T any] struct {
	delegate Cache[T]
}

// NewDelegating wraps delegate.
func NewDelegating[T any](delegate Cache[T]) *Delegating[T] {
	return &Delegating[T]{delegate: delegate}
}

// Delegate returns the backing store.
func (d *Delegating[T]) Delegate() Cache[T] {
	return d.delegate
}

func (d *Delegating[T]) IsInitialized() bool {
	return d.delegate.IsInitialized()
}

func (d *Delegating[T]) Get(key string, compute func() T) T {
	return d.delegate.Get(key, compute)
}

func (d *Delegating[T]) Clean() {
	d.delegate.Clean()
}

var (
	_ Cache[any] = Noop[any]{}
	_ Cache[any] = (*Delegating[any])(nil)
	_ Cache[any] = (*Bounded[any])(nil)
)
