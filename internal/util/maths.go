package util

import "math"

// FixedRound rounds num to the given number of decimal places, rounding halves up.
// Negative decimals are treated as zero.
func FixedRound(num float64, decimals int) float64 {
	if decimals < 0 {
		decimals = 0
	}
	factor := math.Pow(10, float64(decimals))
	return math.Floor(num*factor+0.5) / factor
}
