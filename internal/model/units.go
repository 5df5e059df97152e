package model

import (
	"fmt"
	"math"
)

// fractionDenominator is the finest fraction shown to the user. Shop
// measurements for sheet goods bottom out at 32nds.
const fractionDenominator = 32

// FormatInches renders an inch value as a shop-style fraction, e.g.
// 28.65625 -> `28-21/32"`, 0.71875 -> `23/32"`, 15.0 -> `15"`.
// Values are rounded to the nearest 1/32.
func FormatInches(v float64) string {
	neg := v < 0
	v = math.Abs(v)

	total := int(math.Round(v * fractionDenominator))
	whole := total / fractionDenominator
	num := total % fractionDenominator

	sign := ""
	if neg {
		sign = "-"
	}

	if num == 0 {
		return fmt.Sprintf(`%s%d"`, sign, whole)
	}

	den := fractionDenominator
	g := gcd(num, den)
	num /= g
	den /= g

	if whole == 0 {
		return fmt.Sprintf(`%s%d/%d"`, sign, num, den)
	}
	return fmt.Sprintf(`%s%d-%d/%d"`, sign, whole, num, den)
}

// FormatDimension renders an inch value in the user's preferred unit
// system: fractional inches for imperial, whole millimeters for metric.
func FormatDimension(inches float64, unit UnitSystem) string {
	if unit == UnitMetric {
		return fmt.Sprintf("%.0f mm", inches*MMPerInch)
	}
	return FormatInches(inches)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
