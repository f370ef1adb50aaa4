package bundle_test

import (
	"context"
	"testing"

	"github.com/SscSPs/currency_registry/internal/apperrors"
	"github.com/SscSPs/currency_registry/internal/core/bundle"
	"github.com/SscSPs/currency_registry/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usd() domain.Currency {
	return domain.Currency{Code: "USD", SecondaryCode: "$", NumericCode: "840", Name: "US Dollar", Symbol: "$", Classification: domain.Circulating, MinorUnits: 2}
}

func TestNew_IndexesPrimaryAndSecondaryCodes(t *testing.T) {
	b, err := bundle.New(domain.Circulating, []domain.Currency{usd()})
	require.NoError(t, err)

	assert.Equal(t, domain.Circulating, b.Classification())
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, usd(), b.ByCode("USD"))
	assert.Equal(t, usd(), b.BySecondaryCode("$"))
}

func TestNew_MissesReturnUndefined(t *testing.T) {
	b, err := bundle.New(domain.Circulating, []domain.Currency{usd()})
	require.NoError(t, err)

	for _, code := range []string{"EUR", "", "$"} {
		rec := b.ByCode(code)
		assert.False(t, rec.IsDefined(), "code %q", code)
		assert.Equal(t, code, rec.Code)
	}
	assert.False(t, b.BySecondaryCode("").IsDefined(), "empty secondary codes are never indexed")
}

func TestNew_RejectsInvalidRecords(t *testing.T) {
	negative := usd()
	negative.MinorUnits = -1

	noCode := usd()
	noCode.Code = ""

	badNumeric := usd()
	badNumeric.NumericCode = "84O"

	wrongClass := usd()
	wrongClass.Classification = domain.Crypto

	dupSecondary := domain.Currency{Code: "XUS", SecondaryCode: "$", Classification: domain.Circulating}

	tests := []struct {
		name    string
		records []domain.Currency
	}{
		{name: "negative minor units", records: []domain.Currency{negative}},
		{name: "missing code", records: []domain.Currency{noCode}},
		{name: "non numeric numeric code", records: []domain.Currency{badNumeric}},
		{name: "classification mismatch", records: []domain.Currency{wrongClass}},
		{name: "duplicate code", records: []domain.Currency{usd(), usd()}},
		{name: "duplicate secondary code", records: []domain.Currency{usd(), dupSecondary}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bundle.New(domain.Circulating, tt.records)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	records := []domain.Currency{usd()}
	b, err := bundle.New(domain.Circulating, records)
	require.NoError(t, err)

	records[0].Name = "changed"
	assert.Equal(t, "US Dollar", b.ByCode("USD").Name)

	out := b.Records()
	out[0].Name = "changed again"
	assert.Equal(t, "US Dollar", b.ByCode("USD").Name)
}

func TestNewSet_GroupsByClassification(t *testing.T) {
	set, err := bundle.DefaultSet()
	require.NoError(t, err)

	assert.Equal(t, []domain.Classification{domain.Circulating, domain.Crypto, domain.Historical}, set.Classifications())

	total := 0
	for _, c := range set.Classifications() {
		b := set.Bundle(c)
		for _, rec := range b.Records() {
			assert.Equal(t, c, rec.Classification)
		}
		total += b.Len()
	}
	assert.Equal(t, len(bundle.DefaultRecords()), total)
}

func TestNewSet_RejectsCustomRecords(t *testing.T) {
	custom, err := domain.NewCustomCurrency("ABC", "Custom", "¤", 2)
	require.NoError(t, err)

	_, err = bundle.NewSet([]domain.Currency{custom})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSet_MissingClassificationIsEmpty(t *testing.T) {
	set, err := bundle.NewSet([]domain.Currency{usd()})
	require.NoError(t, err)

	b := set.Bundle(domain.Crypto)
	require.NotNil(t, b)
	assert.Equal(t, 0, b.Len())
	assert.False(t, b.ByCode("BTC").IsDefined())
}

type staticSource struct {
	records []domain.Currency
	err     error
}

func (s staticSource) ListCurrencies(context.Context) ([]domain.Currency, error) {
	return s.records, s.err
}

func TestLoad(t *testing.T) {
	set, err := bundle.Load(context.Background(), staticSource{records: []domain.Currency{usd()}})
	require.NoError(t, err)
	assert.Equal(t, usd(), set.Bundle(domain.Circulating).ByCode("USD"))

	_, err = bundle.Load(context.Background(), staticSource{err: assert.AnError})
	assert.ErrorIs(t, err, assert.AnError)
}
