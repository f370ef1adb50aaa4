package factory

import (
	"github.com/SscSPs/currency_registry/internal/cache"
	"github.com/SscSPs/currency_registry/internal/core/domain"
	"github.com/SscSPs/currency_registry/internal/core/resolution"
)

// Factory returns *domain.Currency instances for codes. With a caching store,
// repeated calls for the same record return the same instance; with the cache
// disabled each call returns a new one.
type Factory struct {
	chains *resolution.Chains
	state  *CacheState
}

// New builds a factory resolving through chains and caching through state.
func New(chains *resolution.Chains, state *CacheState) *Factory {
	return &Factory{chains: chains, state: state}
}

// ConfigureCache configures the instance cache. See CacheState.Configure.
func (f *Factory) ConfigureCache(block func(*cache.Config) error) error {
	return f.state.Configure(block)
}

// DisableCache turns instance caching off. See CacheState.Disable.
func (f *Factory) DisableCache() error {
	return f.state.Disable()
}

// Of resolves code through the thorough chain.
func (f *Factory) Of(code string) (*domain.Currency, error) {
	return f.of(f.chains.Thorough, code)
}

// OfClassification resolves code within a single classification, or through
// the thorough chain when classification is empty.
func (f *Factory) OfClassification(code string, classification domain.Classification) (*domain.Currency, error) {
	chain, err := f.chains.ForClassification(classification)
	if err != nil {
		return nil, err
	}
	return f.of(chain, code)
}

func (f *Factory) of(chain *resolution.Chain, code string) (*domain.Currency, error) {
	rec, err := chain.Resolve(code)
	if err != nil {
		return nil, err
	}
	// keyed by the resolved record so secondary-code lookups share the instance
	key := string(rec.Classification) + ":" + rec.Code
	return f.state.Store().Get(key, func() *domain.Currency {
		c := rec
		return &c
	}), nil
}
