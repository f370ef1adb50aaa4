package identifier

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "code before amount", text: "USD 1.23", want: "USD"},
		{name: "code after amount", text: "1,23 EUR", want: "EUR"},
		{name: "grouped amount", text: "BRL 1.234,56", want: "BRL"},
		{name: "signed amount", text: "-1.234 JPY", want: "JPY"},
		{name: "plus sign", text: "+1,23 GBP", want: "GBP"},
		{name: "extra whitespace", text: "  USD \t  10  ", want: "USD"},
		{name: "secondary code with symbol", text: "R$ 10,00", want: "R$"},
		{name: "trailing unrelated words", text: "USD 1.00 per unit", want: "USD"},
		{name: "uppercase beats lowercase", text: "per 1.00 USD", want: "USD"},
		{name: "lowercase letters accepted", text: "10 usd", want: "usd"},
		{name: "leftmost wins on tie", text: "EUR 1.00 USD", want: "EUR"},
		{name: "bare code", text: "USD", want: ""},
		{name: "empty", text: "", want: ""},
		{name: "whitespace only", text: "   ", want: ""},
		{name: "punctuation is never a candidate", text: "$ 1.00", want: ""},
		{name: "two amounts", text: "1.00 2.00", want: ""},
		{name: "no amount", text: "USD EUR", want: ""},
		{name: "candidate not adjacent to amount", text: "1.00 per USD", want: "per"},
		{name: "leading capitalised word wins tie", text: "Price 10.00 USD", want: "Price"},
		{name: "malformed amount", text: "USD 1..00", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Identify(tt.text))
		})
	}
}

func TestIdentify_AmountFormats(t *testing.T) {
	amounts := []string{"1.23", "1,23", "1.234", "1.234,56"}
	for _, amount := range amounts {
		for _, sign := range []string{"", "-", "+"} {
			signed := sign + amount
			assert.Equal(t, "CHF", Identify("CHF "+signed), "code first with %q", signed)
			assert.Equal(t, "CHF", Identify(signed+" CHF"), "code last with %q", signed)
		}
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		code   string
		amount string
	}{
		{name: "amount after code", text: "USD 1,234.56", code: "USD", amount: "1234.56"},
		{name: "amount before code", text: "-12,50 BRL", code: "BRL", amount: "-12.50"},
		{name: "code last in text", text: "pay 3 EUR", code: "EUR", amount: "3"},
		{name: "amounts on both sides", text: "1.00 USD 2.00", code: "USD", amount: "1.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Find(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.code, m.Code)
			assert.True(t, decimal.RequireFromString(tt.amount).Equal(m.Amount), "got %s", m.Amount)
		})
	}
}

func TestFind_NoCandidate(t *testing.T) {
	for _, text := range []string{"", "USD", "USD EUR", "1.00 2.00", "$ 1.00"} {
		m, ok := Find(text)
		assert.False(t, ok, text)
		assert.Equal(t, Match{}, m, text)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		tok  string
		want string
		ok   bool
	}{
		{tok: "1.23", want: "1.23", ok: true},
		{tok: "1,23", want: "1.23", ok: true},
		{tok: "1.234,56", want: "1234.56", ok: true},
		{tok: "1,234.56", want: "1234.56", ok: true},
		{tok: "-42", want: "-42", ok: true},
		{tok: "+7", want: "7", ok: true},
		{tok: "1.", ok: false},
		{tok: ".5", ok: false},
		{tok: "1..2", ok: false},
		{tok: "-", ok: false},
		{tok: "12a", ok: false},
		{tok: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got, ok := parseAmount(tt.tok)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
			}
		})
	}
}
