package bundle

import (
	"github.com/SscSPs/currency_registry/internal/core/domain"
)

// defaultRecords is the reference dataset compiled into the binary. It is used
// when no database source is configured.
var defaultRecords = []domain.Currency{
	{Code: "USD", SecondaryCode: "$", NumericCode: "840", Name: "US Dollar", Symbol: "$", Classification: domain.Circulating, MinorUnits: 2},
	{Code: "EUR", SecondaryCode: "€", NumericCode: "978", Name: "Euro", Symbol: "€", Classification: domain.Circulating, MinorUnits: 2},
	{Code: "BRL", SecondaryCode: "R$", NumericCode: "986", Name: "Brazilian Real", Symbol: "R$", Classification: domain.Circulating, MinorUnits: 2},
	{Code: "GBP", SecondaryCode: "£", NumericCode: "826", Name: "Pound Sterling", Symbol: "£", Classification: domain.Circulating, MinorUnits: 2},
	{Code: "JPY", SecondaryCode: "¥", NumericCode: "392", Name: "Yen", Symbol: "¥", Classification: domain.Circulating, MinorUnits: 0},
	{Code: "CHF", NumericCode: "756", Name: "Swiss Franc", Symbol: "CHF", Classification: domain.Circulating, MinorUnits: 2},
	{Code: "CAD", SecondaryCode: "C$", NumericCode: "124", Name: "Canadian Dollar", Symbol: "$", Classification: domain.Circulating, MinorUnits: 2},
	{Code: "AUD", SecondaryCode: "A$", NumericCode: "036", Name: "Australian Dollar", Symbol: "$", Classification: domain.Circulating, MinorUnits: 2},
	{Code: "INR", SecondaryCode: "₹", NumericCode: "356", Name: "Indian Rupee", Symbol: "₹", Classification: domain.Circulating, MinorUnits: 2},
	{Code: "MXN", SecondaryCode: "MX$", NumericCode: "484", Name: "Mexican Peso", Symbol: "$", Classification: domain.Circulating, MinorUnits: 2},
	{Code: "KWD", NumericCode: "414", Name: "Kuwaiti Dinar", Symbol: "KD", Classification: domain.Circulating, MinorUnits: 3},
	{Code: "CLF", NumericCode: "990", Name: "Unidad de Fomento", Symbol: "UF", Classification: domain.Circulating, MinorUnits: 4},

	{Code: "DEM", SecondaryCode: "DM", NumericCode: "276", Name: "Deutsche Mark", Symbol: "DM", Classification: domain.Historical, MinorUnits: 2},
	{Code: "FRF", NumericCode: "250", Name: "French Franc", Symbol: "F", Classification: domain.Historical, MinorUnits: 2},
	{Code: "ITL", NumericCode: "380", Name: "Italian Lira", Symbol: "L", Classification: domain.Historical, MinorUnits: 0},
	{Code: "ESP", SecondaryCode: "Pta", NumericCode: "724", Name: "Spanish Peseta", Symbol: "Pta", Classification: domain.Historical, MinorUnits: 0},
	{Code: "NLG", NumericCode: "528", Name: "Netherlands Guilder", Symbol: "ƒ", Classification: domain.Historical, MinorUnits: 2},
	{Code: "BRR", NumericCode: "987", Name: "Cruzeiro Real", Symbol: "CR$", Classification: domain.Historical, MinorUnits: 2},

	{Code: "BTC", SecondaryCode: "XBT", Name: "Bitcoin", Symbol: "₿", Classification: domain.Crypto, MinorUnits: 8},
	{Code: "ETH", Name: "Ether", Symbol: "Ξ", Classification: domain.Crypto, MinorUnits: 18},
	{Code: "LTC", Name: "Litecoin", Symbol: "Ł", Classification: domain.Crypto, MinorUnits: 8},
	{Code: "XRP", Name: "XRP", Symbol: "XRP", Classification: domain.Crypto, MinorUnits: 6},
	{Code: "SOL", Name: "Solana", Symbol: "◎", Classification: domain.Crypto, MinorUnits: 9},
	{Code: "USDT", Name: "Tether USD", Symbol: "₮", Classification: domain.Crypto, MinorUnits: 6},
}

// DefaultRecords returns a copy of the compiled-in reference dataset.
func DefaultRecords() []domain.Currency {
	out := make([]domain.Currency, len(defaultRecords))
	copy(out, defaultRecords)
	return out
}

// DefaultSet builds a Set from the compiled-in reference dataset.
func DefaultSet() (*Set, error) {
	return NewSet(defaultRecords)
}
