package schema

// RegionReport holds the derived sequences for one region. All five slices
// have the same length and are aligned to the owning ReportSet's date axis.
// A DoublingPeriod of -1 means the period is not available at that point.
type RegionReport struct {
	GrowthRate     []float64 `json:"growth_rate"`
	DoublingPeriod []int     `json:"doubling_period"`
	Cumulative     []float64 `json:"cumulative"`
	DailyChange    []float64 `json:"daily_change"`
	WeekOverWeek   []float64 `json:"week_over_week"`
}

// ReportSet is the aggregator output: one RegionReport per requested
// country, sharing a trimmed date axis.
type ReportSet struct {
	Dates   []string                `json:"dates"`
	Window  int                     `json:"window"`
	Limit   int                     `json:"limit"`
	Reports map[string]RegionReport `json:"reports"`
}
