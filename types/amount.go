package types

import (
	"github.com/shopspring/decimal"
)

var minorUnitFactor = decimal.NewFromInt(100)

// ToMinorUnits converts a major-unit amount (e.g. 12.50 USD) into the
// smallest currency unit (paise/cents) integer the API expects.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(minorUnitFactor).IntPart()
}

// FromMinorUnits converts a smallest-currency-unit integer back into a
// major-unit decimal amount.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Div(minorUnitFactor)
}
