package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMinor(t *testing.T) {
	tests := []struct {
		minor  int64
		symbol string
		want   string
	}{
		{265148, "€", "€2651.48"},
		{313414, "$", "$3134.14"},
		{5, "$", "$0.05"},
		{0, "€", "€0.00"},
		{-500, "€", "-€5.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinor(tt.minor, tt.symbol))
	}
	assert.Equal(t, "2651.48", FormatFromCents(265148))
}

func TestConvertMinor(t *testing.T) {
	tests := []struct {
		name  string
		minor int64
		rate  string
		want  int64
	}{
		// rates are source per reporting: 1.1818 EUR per USD turns €10.00
		// into $8.46, while the ING row's €2651.48 -> $3134.14 is a quote of
		// 0.846 EUR per USD, the inverse direction of a 1.1818 USD per EUR quote
		{name: "rate 1.1818", minor: 1000, rate: "1.1818", want: 846},
		{name: "ing row", minor: 265148, rate: "0.846", want: 313414},
		{name: "identity", minor: 12345, rate: "1", want: 12345},
		{name: "half rounds up", minor: 5, rate: "2", want: 3},
		{name: "half rounds away from zero", minor: -5, rate: "2", want: -3},
		{name: "below half", minor: 7, rate: "4", want: 2},
		{name: "just below half rounds down", minor: 1, rate: "2.00000000016", want: 0},
		{name: "just above half rounds up", minor: 1, rate: "1.99999999984", want: 1},
		{name: "negative just below half", minor: -1, rate: "2.00000000016", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertMinor(tt.minor, decimal.RequireFromString(tt.rate))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects non-positive rate", func(t *testing.T) {
		_, err := ConvertMinor(100, decimal.Zero)
		assert.Error(t, err)
	})
}

func TestMilliunitsToMinor(t *testing.T) {
	assert.Equal(t, int64(265148), MilliunitsToMinor(2651480))
	assert.Equal(t, int64(-1999), MilliunitsToMinor(-19990))
	assert.Equal(t, int64(1), MilliunitsToMinor(5))
	assert.Equal(t, int64(-1), MilliunitsToMinor(-5))
	assert.Equal(t, int64(0), MilliunitsToMinor(4))
}
