package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_registry/internal/apperrors"
	"github.com/SscSPs/currency_registry/internal/core/bundle"
	"github.com/SscSPs/currency_registry/internal/core/domain"
	"github.com/SscSPs/currency_registry/internal/core/factory"
	"github.com/SscSPs/currency_registry/internal/core/resolution"
)

type CurrencyService struct {
	BaseService
	set     *bundle.Set
	chains  *resolution.Chains
	factory *factory.Factory
}

func NewCurrencyService(set *bundle.Set, chains *resolution.Chains, currencyFactory *factory.Factory) *CurrencyService {
	return &CurrencyService{set: set, chains: chains, factory: currencyFactory}
}

func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, code string, classification domain.Classification) (*domain.Currency, error) {
	currency, err := s.factory.OfClassification(code, classification)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Currency code not resolved", slog.String("currency_code", code), slog.String("classification", string(classification)))
		} else {
			s.LogError(ctx, err, "Failed to resolve currency", slog.String("currency_code", code))
		}
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

func (s *CurrencyService) IdentifyCurrency(ctx context.Context, text string) (*domain.Identification, error) {
	rec, amount, ok := s.chains.Thorough.Find(text)
	if !ok {
		s.LogDebug(ctx, "No currency identified", slog.String("text", text))
		return nil, nil
	}

	currency, err := s.factory.OfClassification(rec.Code, rec.Classification)
	if err != nil {
		s.LogError(ctx, err, "Identified code failed to resolve", slog.String("currency_code", rec.Code))
		return nil, fmt.Errorf("failed to identify currency in service: %w", err)
	}
	return &domain.Identification{Currency: currency, Amount: amount}, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context, classification domain.Classification) ([]domain.Currency, error) {
	if classification == domain.Custom {
		return nil, fmt.Errorf("%w: custom currencies are not listed", apperrors.ErrValidation)
	}
	currencies := s.set.Bundle(classification).Records()
	s.LogDebug(ctx, "Listed currencies", slog.String("classification", string(classification)), slog.Int("count", len(currencies)))
	return currencies, nil
}
