package services

import (
	"context"

	"github.com/SscSPs/currency_registry/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode resolves a primary or secondary code. An empty
	// classification searches every classification.
	GetCurrencyByCode(ctx context.Context, code string, classification domain.Classification) (*domain.Currency, error)

	// ListCurrencies retrieves the records of one classification.
	ListCurrencies(ctx context.Context, classification domain.Classification) ([]domain.Currency, error)
}

// CurrencyIdentifierSvc defines free-text identification of currencies
type CurrencyIdentifierSvc interface {
	// IdentifyCurrency finds the currency named in text such as "USD 1.00",
	// along with the amount. It returns nil and no error when text names no
	// known currency.
	IdentifyCurrency(ctx context.Context, text string) (*domain.Identification, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyIdentifierSvc
}
