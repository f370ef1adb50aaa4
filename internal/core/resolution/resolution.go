// Package resolution resolves currency codes and free-text fragments against
// an ordered chain of bundles.
package resolution

import (
	"fmt"

	"github.com/SscSPs/currency_registry/internal/apperrors"
	"github.com/SscSPs/currency_registry/internal/core/bundle"
	"github.com/SscSPs/currency_registry/internal/core/domain"
	"github.com/SscSPs/currency_registry/internal/core/identifier"
	"github.com/shopspring/decimal"
)

// ThoroughOrder is the order in which the thorough chain consults
// classifications. It decides which record wins for a code present in more
// than one classification.
var ThoroughOrder = []domain.Classification{
	domain.Circulating,
	domain.Historical,
	domain.Crypto,
}

// Chain is an ordered list of bundles; the first bundle holding a code wins.
// A Chain holds no mutable state and is safe for concurrent use.
type Chain struct {
	bundles []*bundle.Bundle
}

// NewChain returns a chain consulting bundles in the given order.
func NewChain(bundles ...*bundle.Bundle) *Chain {
	c := &Chain{bundles: make([]*bundle.Bundle, len(bundles))}
	copy(c.bundles, bundles)
	return c
}

// Classifications returns the classification of each bundle in chain order.
func (c *Chain) Classifications() []domain.Classification {
	out := make([]domain.Classification, len(c.bundles))
	for i, b := range c.bundles {
		out[i] = b.Classification()
	}
	return out
}

// Resolve returns the first record matching code, trying each bundle's
// primary index and then its secondary index.
func (c *Chain) Resolve(code string) (domain.Currency, error) {
	if rec := c.lookup(code); rec.IsDefined() {
		return rec, nil
	}
	return domain.Currency{}, fmt.Errorf(
		"%w: no currency with code %q; use domain.NewCustomCurrency to build one that is not part of the bundled datasets",
		apperrors.ErrNotFound, code)
}

// Identify extracts a code from text and returns it, as written, when the
// chain knows it, or "" otherwise.
func (c *Chain) Identify(text string) string {
	m, ok := identifier.Find(text)
	if !ok || !c.lookup(m.Code).IsDefined() {
		return ""
	}
	return m.Code
}

// Find identifies the currency named in text and returns its record together
// with the amount written beside the code.
func (c *Chain) Find(text string) (domain.Currency, decimal.Decimal, bool) {
	m, ok := identifier.Find(text)
	if !ok {
		return domain.Currency{}, decimal.Decimal{}, false
	}
	rec := c.lookup(m.Code)
	if !rec.IsDefined() {
		return domain.Currency{}, decimal.Decimal{}, false
	}
	return rec, m.Amount, true
}

func (c *Chain) lookup(code string) domain.Currency {
	for _, b := range c.bundles {
		if rec := b.ByCode(code); rec.IsDefined() {
			return rec
		}
		if rec := b.BySecondaryCode(code); rec.IsDefined() {
			return rec
		}
	}
	return domain.Undefined(code)
}
