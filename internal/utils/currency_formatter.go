package utils

import (
	"fmt"

	"github.com/hance08/fbar/internal/constants"
	"github.com/shopspring/decimal"
)

// FormatMinor renders minor units with a currency symbol, e.g. "€2651.48".
func FormatMinor(minor int64, symbol string) string {
	amount := decimal.New(minor, -2)
	if amount.IsNegative() {
		return "-" + symbol + amount.Neg().StringFixed(2)
	}
	return symbol + amount.StringFixed(2)
}

// FormatFromCents renders minor units without a symbol, e.g. "2651.48".
func FormatFromCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// ConvertMinor converts an amount in source minor units into reporting minor
// units. rate is source-currency-per-reporting-currency, so the amount is
// divided by it. Half-way values round away from zero.
func ConvertMinor(minor int64, rate decimal.Decimal) (int64, error) {
	if !rate.IsPositive() {
		return 0, fmt.Errorf("conversion rate must be positive, got %s", rate)
	}

	return decimal.NewFromInt(minor).DivRound(rate, 0).IntPart(), nil
}

// MilliunitsToMinor converts YNAB milliunits into cents.
func MilliunitsToMinor(milli int64) int64 {
	factor := int64(constants.MilliunitsPerUnit / constants.CentsPerUnit)
	return decimal.NewFromInt(milli).Div(decimal.NewFromInt(factor)).Round(0).IntPart()
}
