package series

// PeriodUnavailable marks indexes where no doubling period can be computed.
const PeriodUnavailable = -1

// DoublingPeriod returns the number of days between index i and the earliest
// index whose count had already reached half of data[i]. Cumulative series
// are non-decreasing, so this is how long the current level took to double.
// Returns PeriodUnavailable when no index qualifies, which only happens when
// data[i] is NaN. Linear scan per point; series run a few hundred days.
func DoublingPeriod(data []float64, i int) int {
	half := data[i] / 2
	for j := 0; j <= i; j++ {
		if data[j] >= half {
			return i - j
		}
	}
	return PeriodUnavailable
}
