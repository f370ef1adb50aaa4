package dto

import (
	"fmt"

	"github.com/SscSPs/currency_registry/internal/apperrors"
	"github.com/SscSPs/currency_registry/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyQuery carries the optional classification filter.
type CurrencyQuery struct {
	Classification string `form:"classification" binding:"omitempty,max=32"`
}

// Parse maps the filter, case-insensitively, to a bundled classification.
// An empty filter yields "".
func (q CurrencyQuery) Parse() (domain.Classification, error) {
	if q.Classification == "" {
		return "", nil
	}
	c, err := domain.ParseClassification(q.Classification)
	if err != nil {
		return "", err
	}
	if c == domain.Custom {
		return "", fmt.Errorf("%w: custom currencies are not bundled", apperrors.ErrValidation)
	}
	return c, nil
}

// IdentifyRequest carries the text to scan for a currency code.
type IdentifyRequest struct {
	Text string `form:"text" binding:"required,max=256"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code           string          `json:"code"`
	SecondaryCode  string          `json:"secondaryCode,omitempty"`
	NumericCode    string          `json:"numericCode,omitempty"`
	Name           string          `json:"name"`
	Symbol         string          `json:"symbol"`
	Classification string          `json:"classification"`
	MinorUnits     int             `json:"minorUnits"`
	MinorUnit      decimal.Decimal `json:"minorUnit"` // smallest representable amount, e.g. "0.01"
}

// IdentifyResponse defines the result of identifying a currency in text.
// Code is empty when nothing was identified.
type IdentifyResponse struct {
	Code     string            `json:"code"`
	Amount   *decimal.Decimal  `json:"amount,omitempty"`
	Currency *CurrencyResponse `json:"currency,omitempty"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:           curr.Code,
		SecondaryCode:  curr.SecondaryCode,
		NumericCode:    curr.NumericCode,
		Name:           curr.Name,
		Symbol:         curr.Symbol,
		Classification: string(curr.Classification),
		MinorUnits:     curr.MinorUnits,
		MinorUnit:      decimal.New(1, -int32(curr.MinorUnits)),
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i]) // Reuse the single converter
	}
	return res
}

// ToIdentifyResponse converts an identification result, possibly nil, to its DTO.
func ToIdentifyResponse(id *domain.Identification) IdentifyResponse {
	if id == nil || id.Currency == nil {
		return IdentifyResponse{}
	}
	res := ToCurrencyResponse(id.Currency)
	amount := id.Amount
	return IdentifyResponse{Code: id.Currency.Code, Amount: &amount, Currency: &res}
}
