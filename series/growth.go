// Package series derives growth analytics from cumulative case-count
// series. Counts are clamped to a floor of 1 before taking logarithms, so
// zero and negative values read as "no growth"; this distorts results for
// regions with near-zero counts and is kept for compatibility with the
// published charts.
package series

import "math"

const logFloor = 1

// SlidingWindowRate returns, at every index, the geometric mean daily growth
// multiplier over the trailing w-day window. A lookback falling before the
// start of the series reads as 0.
func SlidingWindowRate(data []float64, w int) []float64 {
	rates := make([]float64, len(data))
	for i := range data {
		var prior float64
		if i-w >= 0 {
			prior = data[i-w]
		}
		rates[i] = math.Exp((math.Log(math.Max(logFloor, data[i])) - math.Log(math.Max(logFloor, prior))) / float64(w))
	}
	return rates
}

// Frac2Pcnt converts a growth multiplier into a percentage with one decimal
// place of precision.
func Frac2Pcnt(ratio float64) float64 {
	return math.Round(1000*(ratio-1)) / 10
}
