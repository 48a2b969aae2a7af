package series

import "math"

// DayChange returns the absolute day-over-day change at index i. A missing
// prior value reads as 0.
func DayChange(data []float64, i int) float64 {
	var prior float64
	if i-1 >= 0 {
		prior = data[i-1]
	}
	return data[i] - prior
}

// WeekOverWeek returns the ratio of the trailing seven days' new cases to
// the seven days before that, at index i. Lookbacks falling before the
// series read as 0 and the denominator is floored at 1.
func WeekOverWeek(data []float64, i int) float64 {
	var d7, d14 float64
	if i-7 >= 0 {
		d7 = data[i-7]
	}
	if i-14 >= 0 {
		d14 = data[i-14]
	}
	return (data[i] - d7) / math.Max(1, d7-d14)
}
