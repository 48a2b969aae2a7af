package schema

// TimeSeriesSet holds the shared date axis of the primary source and one
// cumulative series per region. Every RegionSeries.Data has the same length
// as Timestamps.
type TimeSeriesSet struct {
	Timestamps []string
	Regions    []RegionSeries
}

// RegionSeries is one row of the confirmed-case time-series CSV. Data[i] is
// the cumulative confirmed count at Timestamps[i]. An empty Province means
// the country-level aggregate.
type RegionSeries struct {
	Province string    `json:"province"`
	Country  string    `json:"country"`
	Lat      float64   `json:"lat"`
	Long     float64   `json:"long"`
	Data     []float64 `json:"data"`
}

// RegionKey identifies a series within a TimeSeriesSet.
type RegionKey struct {
	Province string
	Country  string
}

// Region returns the series identified by (province, country), or nil when
// no such series exists.
func (s *TimeSeriesSet) Region(province, country string) *RegionSeries {
	for i := range s.Regions {
		if s.Regions[i].Province == province && s.Regions[i].Country == country {
			return &s.Regions[i]
		}
	}
	return nil
}
