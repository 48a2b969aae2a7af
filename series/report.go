package series

import (
	"fmt"

	"github.com/covidtrend/trend-api/schema"
)

var (
	ErrRegionNotFound = fmt.Errorf("region not found")
	ErrInvalidWindow  = fmt.Errorf("window must be at least one day")
)

// BuildReport computes growth rate, doubling period, cumulative count,
// day-over-day change and week-over-week ratio for every requested country,
// then trims all derived sequences and the shared date axis to the most
// recent limit points. Countries resolve against the country-level
// aggregate (empty province); an unknown country is an explicit error.
func BuildReport(limit, window int, ts *schema.TimeSeriesSet, countries ...string) (*schema.ReportSet, error) {
	if window < 1 {
		return nil, ErrInvalidWindow
	}

	index := make(map[schema.RegionKey]*schema.RegionSeries, len(ts.Regions))
	for i := range ts.Regions {
		r := &ts.Regions[i]
		index[schema.RegionKey{Province: r.Province, Country: r.Country}] = r
	}

	start := len(ts.Timestamps) - limit
	if start < 0 {
		start = 0
	}

	set := &schema.ReportSet{
		Dates:   ts.Timestamps[start:],
		Window:  window,
		Limit:   limit,
		Reports: make(map[string]schema.RegionReport, len(countries)),
	}

	for _, country := range countries {
		region, ok := index[schema.RegionKey{Country: country}]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrRegionNotFound, country)
		}

		n := len(region.Data)
		report := schema.RegionReport{
			GrowthRate:     make([]float64, n),
			DoublingPeriod: make([]int, n),
			Cumulative:     make([]float64, n),
			DailyChange:    make([]float64, n),
			WeekOverWeek:   make([]float64, n),
		}

		rates := SlidingWindowRate(region.Data, window)
		for i := 0; i < n; i++ {
			report.GrowthRate[i] = Frac2Pcnt(rates[i])
			report.DoublingPeriod[i] = DoublingPeriod(region.Data, i)
			report.Cumulative[i] = region.Data[i]
			report.DailyChange[i] = DayChange(region.Data, i)
			report.WeekOverWeek[i] = WeekOverWeek(region.Data, i)
		}

		set.Reports[country] = schema.RegionReport{
			GrowthRate:     report.GrowthRate[start:],
			DoublingPeriod: report.DoublingPeriod[start:],
			Cumulative:     report.Cumulative[start:],
			DailyChange:    report.DailyChange[start:],
			WeekOverWeek:   report.WeekOverWeek[start:],
		}
	}

	return set, nil
}
