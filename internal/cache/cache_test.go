package cache_test

import (
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/currency_registry/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counter(n *atomic.Int32) func() int {
	return func() int {
		return int(n.Add(1))
	}
}

func TestNoop_AlwaysRecomputes(t *testing.T) {
	c := cache.NewNoop[int]()
	var calls atomic.Int32

	assert.True(t, c.IsInitialized())
	assert.Equal(t, 1, c.Get("k", counter(&calls)))
	assert.Equal(t, 2, c.Get("k", counter(&calls)))
	c.Clean()
	assert.True(t, c.IsInitialized())
}

func TestBounded_ComputesOncePerKey(t *testing.T) {
	c := cache.NewBounded[int](cache.NewConfig())
	var calls atomic.Int32

	assert.False(t, c.IsInitialized())
	assert.Equal(t, 1, c.Get("k", counter(&calls)))
	assert.Equal(t, 1, c.Get("k", counter(&calls)))
	assert.True(t, c.IsInitialized())
	assert.Equal(t, int32(1), calls.Load())

	assert.Equal(t, 2, c.Get("other", counter(&calls)))
}

func TestBounded_Clean(t *testing.T) {
	c := cache.NewBounded[int](cache.NewConfig())
	var calls atomic.Int32

	c.Get("k", counter(&calls))
	c.Clean()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 2, c.Get("k", counter(&calls)))
}

func TestBounded_EvictsLeastRecentlyUsed(t *testing.T) {
	cfg := cache.NewConfig()
	require.NoError(t, cfg.SetCapacity(2))
	c := cache.NewBounded[string](cfg)

	c.Get("a", func() string { return "a1" })
	c.Get("b", func() string { return "b1" })
	c.Get("a", func() string { return "a2" }) // a is now most recent
	c.Get("c", func() string { return "c1" }) // evicts b

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "a1", c.Get("a", func() string { return "a3" }))
	assert.Equal(t, "b2", c.Get("b", func() string { return "b2" }))
}

func TestBounded_ExpiresByAccessAge(t *testing.T) {
	cfg := cache.NewConfig()
	require.NoError(t, cfg.SetExpiration(50))
	cfg.SetUnit(time.Millisecond)
	c := cache.NewBounded[int](cfg)
	var calls atomic.Int32

	assert.Equal(t, 1, c.Get("k", counter(&calls)))
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 2, c.Get("k", counter(&calls)), "idle entry should have expired")
}

func TestBounded_ReadsRestartExpiry(t *testing.T) {
	cfg := cache.NewConfig()
	require.NoError(t, cfg.SetExpiration(100))
	cfg.SetUnit(time.Millisecond)
	c := cache.NewBounded[int](cfg)
	var calls atomic.Int32

	c.Get("k", counter(&calls))
	for i := 0; i < 6; i++ {
		time.Sleep(60 * time.Millisecond)
		assert.Equal(t, 1, c.Get("k", counter(&calls)), "read %d", i)
	}

	assert.Equal(t, int32(1), calls.Load(), "an entry read within its ttl should never be recomputed")
}

func TestBounded_ConcurrentGetComputesOnce(t *testing.T) {
	c := cache.NewBounded[int](cache.NewConfig())
	var calls atomic.Int32
	release := make(chan struct{})

	slow := func() int {
		<-release
		return int(calls.Add(1))
	}

	const readers = 32
	results := make([]int, readers)
	var started, done sync.WaitGroup
	started.Add(readers)
	done.Add(readers)
	for i := 0; i < readers; i++ {
		go func(i int) {
			defer done.Done()
			started.Done()
			results[i] = c.Get("shared", slow)
		}(i)
	}
	started.Wait()
	time.Sleep(20 * time.Millisecond)
	close(release)
	done.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, 1, r)
	}
}

func TestBounded_DistinctKeysDoNotBlockEachOther(t *testing.T) {
	c := cache.NewBounded[string](cache.NewConfig())
	block := make(chan struct{})
	defer close(block)

	go c.Get("slow", func() string {
		<-block
		return "slow"
	})

	done := make(chan string)
	go func() {
		done <- c.Get("fast", func() string { return "fast" })
	}()

	select {
	case v := <-done:
		assert.Equal(t, "fast", v)
	case <-time.After(time.Second):
		t.Fatal("computation for an unrelated key blocked")
	}
}

func TestDelegating_Forwards(t *testing.T) {
	backing := cache.NewBounded[string](cache.NewConfig())
	d := cache.NewDelegating[string](backing)

	assert.Same(t, backing, d.Delegate())
	assert.False(t, d.IsInitialized())
	for i := 0; i < 3; i++ {
		assert.Equal(t, "v0", d.Get("k", func() string { return "v" + strconv.Itoa(i) }))
	}
	assert.True(t, d.IsInitialized())

	d.Clean()
	assert.Equal(t, 0, backing.Len())
}
