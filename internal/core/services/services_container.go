package services

import (
	"github.com/SscSPs/currency_registry/internal/core/bundle"
	"github.com/SscSPs/currency_registry/internal/core/factory"
	portssvc "github.com/SscSPs/currency_registry/internal/core/ports/services"
	"github.com/SscSPs/currency_registry/internal/core/resolution"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(set *bundle.Set, chains *resolution.Chains, currencyFactory *factory.Factory) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency: NewCurrencyService(set, chains, currencyFactory),
	}
}

// Helper to check interface implementations at compile time
var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)
