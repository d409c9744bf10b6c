// Package money keeps all amounts in the smallest currency unit (cents,
// int64) to avoid floating point drift in financial code.
package money

import "fmt"

// ApplyRate multiplies an amount in cents by a fractional rate and rounds
// half away from zero to the nearest cent.
func ApplyRate(amount int64, rate float64) int64 {
	v := float64(amount) * rate
	if v >= 0 {
		return int64(v + 0.5)
	}
	return int64(v - 0.5)
}

// Format renders cents with two-decimal display precision.
func Format(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}
