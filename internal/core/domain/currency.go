package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/currency_registry/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Classification groups currency records into the datasets they come from.
type Classification string

const (
	Circulating Classification = "circulating" // legal tender in current use
	Historical  Classification = "historical"  // withdrawn legal tender
	Crypto      Classification = "crypto"      // native and auxiliary chain assets
	Custom      Classification = "custom"      // built by callers, never bundled
)

// ParseClassification maps a name (case-insensitive) to a Classification.
func ParseClassification(name string) (Classification, error) {
	switch c := Classification(strings.ToLower(strings.TrimSpace(name))); c {
	case Circulating, Historical, Crypto, Custom:
		return c, nil
	}
	return "", fmt.Errorf("%w: unknown classification %q", apperrors.ErrValidation, name)
}

// Currency represents a currency record in the domain.
type Currency struct {
	Code           string         `json:"code" validate:"required"`                           // Primary code (e.g., "USD")
	SecondaryCode  string         `json:"secondaryCode,omitempty"`                            // Alternate lookup code (e.g., "$")
	NumericCode    string         `json:"numericCode,omitempty" validate:"omitempty,numeric"` // e.g., "840"
	Name           string         `json:"name"`                                               // e.g., "US Dollar"
	Symbol         string         `json:"symbol"`                                             // e.g., "$"
	Classification Classification `json:"classification" validate:"required,oneof=circulating historical crypto custom"`
	MinorUnits     int            `json:"minorUnits" validate:"gte=0"` // digits after the decimal point
}

// Undefined returns the placeholder record for a code that could not be located.
// Only the code is kept.
func Undefined(code string) Currency {
	return Currency{Code: code}
}

// IsDefined reports whether c is a located record rather than the Undefined placeholder.
func (c Currency) IsDefined() bool {
	return c.Classification != ""
}

// NewCustomCurrency builds a record for a code that is not part of any bundled dataset.
func NewCustomCurrency(code, name, symbol string, minorUnits int) (Currency, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Currency{}, fmt.Errorf("%w: custom currency code cannot be empty", apperrors.ErrValidation)
	}
	if minorUnits < 0 {
		return Currency{}, fmt.Errorf("%w: minor units must not be negative, got %d", apperrors.ErrValidation, minorUnits)
	}
	return Currency{
		Code:           code,
		Name:           name,
		Symbol:         symbol,
		Classification: Custom,
		MinorUnits:     minorUnits,
	}, nil
}

// Identification is a currency found in free text with the amount written
// beside its code.
type Identification struct {
	Currency *Currency
	Amount   decimal.Decimal
}
