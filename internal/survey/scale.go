package survey

import "math"

// ApplySGS converts a raw CDP coordinate to ground units using the SEGY
// coordinate scalar convention: zero means no scaling, a negative value is a
// divisor, a positive value is a multiplier.
//
// Every coordinate that leaves this package goes through this one function.
// Corners, metrics and grid lines must never rescale on their own.
func ApplySGS(raw, factor float64) float64 {
	if factor == 0 {
		return raw
	}
	if factor < 0 {
		return raw / math.Abs(factor)
	}
	return raw * factor
}
