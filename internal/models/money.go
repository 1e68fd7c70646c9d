package models

import "github.com/shopspring/decimal"

// Vendor amounts are integral minor units (kopecks). Display values divide
// by 100 and follow the vendor's own rounding conventions.

var hundred = decimal.NewFromInt(100)

// MinorToUAH converts minor units to hryvnias without additional rounding.
func MinorToUAH(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Div(hundred)
}

// RoundedMinorToUAH rounds a possibly fractional minor-unit amount to whole
// kopecks first, then divides by 100. This mirrors the vendor dashboard's
// round(revenue)/100 convention for category totals.
func RoundedMinorToUAH(minor float64) decimal.Decimal {
	return decimal.NewFromFloat(minor).Round(0).Div(hundred)
}

// VendorRound applies the vendor's round(x*100)/100 rule, used for derived
// values such as average receipts.
func VendorRound(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
