package parser

import "math"

// round rounds v to n decimal digits, half away from zero.
func round(v float64, n int) float64 {
	mul := math.Pow(10, float64(n))
	return math.Round(v*mul) / mul
}
