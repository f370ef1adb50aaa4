package repositories

import (
	"context"

	"github.com/SscSPs/currency_registry/internal/core/domain"
)

// CurrencyReader defines read operations for the reference currency dataset.
type CurrencyReader interface {
	// ListCurrencies retrieves every record of the dataset, all classifications included.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
