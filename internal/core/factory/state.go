// Package factory hands out shared currency instances, backed by a cache that
// can be configured or disabled exactly once before first use.
package factory

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/SscSPs/currency_registry/internal/apperrors"
	"github.com/SscSPs/currency_registry/internal/cache"
	"github.com/SscSPs/currency_registry/internal/core/domain"
)

type cacheState int

const (
	unconfigured cacheState = iota
	configured
	disabled
	initialized
)

func (s cacheState) String() string {
	switch s {
	case unconfigured:
		return "unconfigured"
	case configured:
		return "configured"
	case disabled:
		return "disabled"
	case initialized:
		return "initialized"
	}
	return fmt.Sprintf("cacheState(%d)", int(s))
}

const replaceMessage = "The factory cache can't be replaced once it is configured or initialized"

// CacheState guards the currency cache lifecycle. The cache may be configured
// or disabled once while unconfigured; the first read fixes the backing store
// for the rest of the process.
type CacheState struct {
	mu     sync.Mutex
	state  cacheState
	config cache.Config
	store  atomic.Pointer[cache.Delegating[*domain.Currency]]
	logger *slog.Logger
}

// NewCacheState returns an unconfigured state. A nil logger uses slog.Default.
func NewCacheState(logger *slog.Logger) *CacheState {
	if logger == nil {
		logger = slog.Default()
	}
	return &CacheState{logger: logger}
}

// Configure applies block to a default config and keeps the result for the
// first read. It fails with ErrIllegalState unless the state is unconfigured;
// an error from block leaves the state unconfigured.
func (s *CacheState) Configure(block func(*cache.Config) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != unconfigured {
		return s.illegal("configure")
	}
	cfg := cache.NewConfig()
	if block != nil {
		if err := block(&cfg); err != nil {
			return fmt.Errorf("failed to configure factory cache: %w", err)
		}
	}
	s.config = cfg
	s.state = configured
	s.logger.Info("Factory cache configured",
		slog.Int("capacity", cfg.Capacity()),
		slog.Duration("ttl", cfg.TTL()))
	return nil
}

// Disable makes the factory build a fresh instance on every call. It fails
// with ErrIllegalState unless the state is unconfigured.
func (s *CacheState) Disable() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != unconfigured {
		return s.illegal("disable")
	}
	s.state = disabled
	s.logger.Info("Factory cache disabled")
	return nil
}

// Store returns the backing store, choosing it on the first call.
func (s *CacheState) Store() cache.Cache[*domain.Currency] {
	if store := s.store.Load(); store != nil {
		return store
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if store := s.store.Load(); store != nil {
		return store
	}

	var backing cache.Cache[*domain.Currency]
	switch s.state {
	case configured:
		backing = cache.NewBounded[*domain.Currency](s.config)
	case disabled:
		backing = cache.NewNoop[*domain.Currency]()
	default:
		s.config = cache.NewConfig()
		backing = cache.NewBounded[*domain.Currency](s.config)
	}
	s.logger.Debug("Factory cache initialized", slog.String("from", s.state.String()))

	store := cache.NewDelegating(backing)
	s.state = initialized
	s.store.Store(store)
	return store
}

func (s *CacheState) illegal(op string) error {
	s.logger.Warn("Rejected factory cache change",
		slog.String("operation", op),
		slog.String("state", s.state.String()))
	return fmt.Errorf("%w: %s", apperrors.ErrIllegalState, replaceMessage)
}

// reset returns the state to unconfigured. Tests only.
func (s *CacheState) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if store := s.store.Load(); store != nil {
		store.Clean()
	}
	s.store.Store(nil)
	s.state = unconfigured
	s.config = cache.Config{}
}
