// Package identifier finds the currency code inside short free-text fragments
// such as "USD 1,234.56" or "-12,50 BRL".
//
// The fragment is expected to hold one amount and one code separated by
// whitespace, in either order. Identify only proposes a token; deciding
// whether that token is a known code is the caller's job.
package identifier

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

const (
	rankNone = iota
	rankLetter
	rankUpper
)

// Match is a code candidate together with the amount written beside it.
type Match struct {
	Code   string
	Amount decimal.Decimal
}

// Identify returns the token of text most likely to be a currency code, or ""
// when there is none. A lone token is never identified, even a valid code:
// a candidate must sit directly next to an amount.
func Identify(text string) string {
	m, _ := Find(text)
	return m.Code
}

// Find is Identify that also returns the amount next to the candidate. When
// amounts sit on both sides, the one on the left is taken.
func Find(text string) (Match, bool) {
	tokens := strings.Fields(text)
	if len(tokens) < 2 {
		return Match{}, false
	}

	values := make([]decimal.Decimal, len(tokens))
	amounts := make([]bool, len(tokens))
	for i, tok := range tokens {
		values[i], amounts[i] = parseAmount(tok)
	}

	best, bestRank := -1, rankNone
	for i, tok := range tokens {
		if amounts[i] || !nextToAmount(amounts, i) {
			continue
		}
		// strictly greater keeps the leftmost token on ties
		if r := rank(tok); r > bestRank {
			best, bestRank = i, r
		}
	}
	if best < 0 {
		return Match{}, false
	}

	side := best + 1
	if best > 0 && amounts[best-1] {
		side = best - 1
	}
	return Match{Code: tokens[best], Amount: values[side]}, true
}

func nextToAmount(amounts []bool, i int) bool {
	return (i > 0 && amounts[i-1]) || (i+1 < len(amounts) && amounts[i+1])
}

func rank(tok string) int {
	r := rankNone
	for _, c := range tok {
		if unicode.IsUpper(c) {
			return rankUpper
		}
		if unicode.IsLetter(c) {
			r = rankLetter
		}
	}
	return r
}

// parseAmount reports whether tok looks like a numeric amount, an optional
// sign followed by digit groups joined by '.' or ',', and returns its value.
// It reads the last separator as the decimal point and every earlier
// one as a grouping separator, so "1.234,56" and "1,234.56" agree.
func parseAmount(tok string) (decimal.Decimal, bool) {
	sign := ""
	if strings.HasPrefix(tok, "-") || strings.HasPrefix(tok, "+") {
		sign, tok = tok[:1], tok[1:]
	}
	groups := strings.FieldsFunc(tok, func(r rune) bool { return r == '.' || r == ',' })
	if len(groups) == 0 || strings.Count(tok, ".")+strings.Count(tok, ",") != len(groups)-1 {
		return decimal.Decimal{}, false
	}
	for _, g := range groups {
		for _, c := range g {
			if c < '0' || c > '9' {
				return decimal.Decimal{}, false
			}
		}
	}

	normalized := strings.Join(groups, "")
	if n := len(groups); n > 1 {
		normalized = strings.Join(groups[:n-1], "") + "." + groups[n-1]
	}
	if sign == "-" {
		normalized = sign + normalized
	}
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
