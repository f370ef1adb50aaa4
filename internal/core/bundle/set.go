package bundle

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/currency_registry/internal/apperrors"
	"github.com/SscSPs/currency_registry/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_registry/internal/core/ports/repositories"
)

// Set maps each classification to its bundle. Like Bundle it is read-only
// after construction.
type Set struct {
	bundles map[domain.Classification]*Bundle
}

// NewSet groups records by classification and builds one bundle per group.
// Custom records are rejected: they are built by callers, not bundled.
func NewSet(records []domain.Currency) (*Set, error) {
	grouped := make(map[domain.Classification][]domain.Currency)
	for _, rec := range records {
		if rec.Classification == domain.Custom {
			return nil, fmt.Errorf("%w: custom record %q cannot be bundled", apperrors.ErrValidation, rec.Code)
		}
		grouped[rec.Classification] = append(grouped[rec.Classification], rec)
	}

	s := &Set{bundles: make(map[domain.Classification]*Bundle, len(grouped))}
	for classification, recs := range grouped {
		b, err := New(classification, recs)
		if err != nil {
			return nil, err
		}
		s.bundles[classification] = b
	}
	return s, nil
}

// Load builds a Set from the records of src.
func Load(ctx context.Context, src portsrepo.CurrencyReader) (*Set, error) {
	records, err := src.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency dataset: %w", err)
	}
	return NewSet(records)
}

// Bundle returns the bundle of a classification. A classification with no
// records yields an empty bundle, never nil.
func (s *Set) Bundle(classification domain.Classification) *Bundle {
	if b, ok := s.bundles[classification]; ok {
		return b
	}
	return &Bundle{classification: classification}
}

// Classifications lists the classifications present in the set, sorted by name.
func (s *Set) Classifications() []domain.Classification {
	out := make([]domain.Classification, 0, len(s.bundles))
	for c := range s.bundles {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
