package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in    float64
		full  string
		whole string
	}{
		{0, "$0.00", "$0"},
		{22500, "$22,500.00", "$22,500"},
		{657500, "$657,500.00", "$657,500"},
		{0.6, "$0.60", "$1"},
		{1234.567, "$1,234.57", "$1,235"},
		{-42, "-$42.00", "-$42"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.full, Currency(tt.in), "Currency(%v)", tt.in)
		assert.Equal(t, tt.whole, CurrencyWhole(tt.in), "CurrencyWhole(%v)", tt.in)
	}
}

func TestCompactThousands(t *testing.T) {
	assert.Equal(t, "$22.5k", CompactThousands(22500))
	assert.Equal(t, "$630k", CompactThousands(630000))
	assert.Equal(t, "$0k", CompactThousands(0))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "90%", Percent(90))
	assert.Equal(t, "125%", Percent(125))
	assert.Equal(t, "51%", Percent(50.56))
	assert.Equal(t, "0%", Percent(0))
}

func TestDates(t *testing.T) {
	d := time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "1/15/2023", Date(d))
	assert.Equal(t, "Jan 15", ShortDate(d))
	assert.Equal(t, "January 15, 2023", LongDate(d))
}

func TestPeriod(t *testing.T) {
	jan1 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	mar31 := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	dec1 := time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Jan 1 - Mar 31, 2024", Period(jan1, mar31))
	assert.Equal(t, "Dec 1, 2023 - Mar 31, 2024", Period(dec1, mar31))
}

func TestNew(t *testing.T) {
	f, err := New("EUR")
	require.NoError(t, err)
	assert.Equal(t, currency.EUR, f.Unit())
	assert.Equal(t, "€1,000.00", f.Currency(1000))

	_, err = New("XYZ")
	assert.Error(t, err)

	assert.Equal(t, currency.USD, Default().Unit())
}
