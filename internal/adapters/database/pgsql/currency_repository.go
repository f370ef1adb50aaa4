package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/currency_registry/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_registry/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCurrencyRepository struct {
	Pool *pgxpool.Pool
}

// NewCurrencyRepository creates a new repository for the currency reference dataset.
func NewCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{Pool: pool}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyReader = (*PgxCurrencyRepository)(nil)

// ListCurrencies retrieves all currencies, grouped by classification.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT code, secondary_code, numeric_code, name, symbol, classification, minor_units
		FROM currencies
		ORDER BY classification, code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	currencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Currency, error) {
		var currency domain.Currency
		err := row.Scan(
			&currency.Code,
			&currency.SecondaryCode,
			&currency.NumericCode,
			&currency.Name,
			&currency.Symbol,
			&currency.Classification,
			&currency.MinorUnits,
		)
		return currency, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return currencies, nil
}
