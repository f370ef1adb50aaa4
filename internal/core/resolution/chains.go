package resolution

import (
	"fmt"

	"github.com/SscSPs/currency_registry/internal/apperrors"
	"github.com/SscSPs/currency_registry/internal/core/bundle"
	"github.com/SscSPs/currency_registry/internal/core/domain"
)

// Chains holds the fixed chains built over one bundle set.
type Chains struct {
	Circulating *Chain
	Historical  *Chain
	Crypto      *Chain
	Thorough    *Chain
}

// NewChains builds the single-classification chains and the thorough chain,
// which follows ThoroughOrder.
func NewChains(set *bundle.Set) *Chains {
	thorough := make([]*bundle.Bundle, len(ThoroughOrder))
	for i, c := range ThoroughOrder {
		thorough[i] = set.Bundle(c)
	}
	return &Chains{
		Circulating: NewChain(set.Bundle(domain.Circulating)),
		Historical:  NewChain(set.Bundle(domain.Historical)),
		Crypto:      NewChain(set.Bundle(domain.Crypto)),
		Thorough:    NewChain(thorough...),
	}
}

// ForClassification returns the chain of a single classification, or the
// thorough chain when classification is empty.
func (c *Chains) ForClassification(classification domain.Classification) (*Chain, error) {
	switch classification {
	case "":
		return c.Thorough, nil
	case domain.Circulating:
		return c.Circulating, nil
	case domain.Historical:
		return c.Historical, nil
	case domain.Crypto:
		return c.Crypto, nil
	}
	return nil, fmt.Errorf("%w: no resolution chain for classification %q", apperrors.ErrValidation, classification)
}
