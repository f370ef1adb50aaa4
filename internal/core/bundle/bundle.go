// Package bundle holds the immutable per-classification currency datasets and
// their primary and secondary code indexes.
package bundle

import (
	"fmt"

	"github.com/SscSPs/currency_registry/internal/apperrors"
	"github.com/SscSPs/currency_registry/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Bundle is the dataset of a single classification. It is built once by New
// and never mutated, so it can be shared freely between goroutines.
type Bundle struct {
	classification domain.Classification
	records        []domain.Currency
	byCode         map[string]int
	bySecondary    map[string]int
}

// New validates records and indexes them by primary and secondary code.
// Every record must carry the bundle's classification, and codes must be
// unique within the bundle.
func New(classification domain.Classification, records []domain.Currency) (*Bundle, error) {
	b := &Bundle{
		classification: classification,
		records:        make([]domain.Currency, len(records)),
		byCode:         make(map[string]int, len(records)),
		bySecondary:    make(map[string]int),
	}
	copy(b.records, records)

	for i, rec := range b.records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: invalid %s record %q: %v", apperrors.ErrValidation, classification, rec.Code, err)
		}
		if rec.Classification != classification {
			return nil, fmt.Errorf("%w: record %q is %s, bundle is %s", apperrors.ErrValidation, rec.Code, rec.Classification, classification)
		}
		if _, dup := b.byCode[rec.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate code %q in %s bundle", apperrors.ErrValidation, rec.Code, classification)
		}
		b.byCode[rec.Code] = i

		if rec.SecondaryCode == "" {
			continue
		}
		if _, dup := b.bySecondary[rec.SecondaryCode]; dup {
			return nil, fmt.Errorf("%w: duplicate secondary code %q in %s bundle", apperrors.ErrValidation, rec.SecondaryCode, classification)
		}
		b.bySecondary[rec.SecondaryCode] = i
	}
	return b, nil
}

// Classification returns the classification shared by all records of the bundle.
func (b *Bundle) Classification() domain.Classification {
	return b.classification
}

// ByCode looks up a record by primary code. Misses return domain.Undefined.
func (b *Bundle) ByCode(code string) domain.Currency {
	if i, ok := b.byCode[code]; ok {
		return b.records[i]
	}
	return domain.Undefined(code)
}

// BySecondaryCode looks up a record by secondary code. Misses return domain.Undefined.
func (b *Bundle) BySecondaryCode(code string) domain.Currency {
	if i, ok := b.bySecondary[code]; ok {
		return b.records[i]
	}
	return domain.Undefined(code)
}

// Records returns a copy of the bundle's records in dataset order.
func (b *Bundle) Records() []domain.Currency {
	out := make([]domain.Currency, len(b.records))
	copy(out, b.records)
	return out
}

// Len returns the number of records in the bundle.
func (b *Bundle) Len() int {
	return len(b.records)
}
