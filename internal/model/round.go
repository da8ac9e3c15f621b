package model

import "math"

// Round2 rounds to two decimals, half away from zero. All money values in the
// closed-trade table are stored at this precision.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Round1 rounds to one decimal (used for percentage rates).
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}
