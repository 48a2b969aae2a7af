// Package reshape adapts columnar analytics output to the row-record shape
// the charting client consumes.
package reshape

import (
	"fmt"
	"sort"

	"github.com/covidtrend/trend-api/schema"
)

var ErrRaggedColumns = fmt.Errorf("columns have unequal lengths")

// Suffixes attached by Multiplex to the derived values of each
// (time, region) row. Closed set, aligned with schema.RegionReport.
const (
	SuffixDoublingPeriod = "_doubling_period"
	SuffixCumulative     = "_cumulative"
	SuffixDailyChange    = "_daily_change"
	SuffixWeekOverWeek   = "_week_over_week"
)

// Transpose converts a mapping of equal-length columns into one row per
// index, each row carrying every field's value at that index.
func Transpose(columns map[string][]interface{}) ([]schema.Row, error) {
	length := -1
	for _, values := range columns {
		if length == -1 {
			length = len(values)
			continue
		}
		if len(values) != length {
			return nil, ErrRaggedColumns
		}
	}
	if length <= 0 {
		return []schema.Row{}, nil
	}

	rows := make([]schema.Row, length)
	for i := range rows {
		row := make(schema.Row, len(columns))
		for name, values := range columns {
			row[name] = values[i]
		}
		rows[i] = row
	}
	return rows, nil
}

// Multiplex decomposes a multi-region report into one row per (time, region)
// pair. Each row carries the time, the region label, the growth-rate percent
// under valueField and the four derived values under the suffixed field
// names. Row order is time-major with region names sorted.
func Multiplex(dates []string, reports map[string]schema.RegionReport, timeField, valueField, labelField string) []schema.Row {
	names := make([]string, 0, len(reports))
	for name := range reports {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]schema.Row, 0, len(dates)*len(names))
	for i, date := range dates {
		for _, name := range names {
			report := reports[name]
			row := make(schema.Row, 7)
			row[timeField] = date
			row[labelField] = name
			row[valueField] = report.GrowthRate[i]
			row[valueField+SuffixDoublingPeriod] = report.DoublingPeriod[i]
			row[valueField+SuffixCumulative] = report.Cumulative[i]
			row[valueField+SuffixDailyChange] = report.DailyChange[i]
			row[valueField+SuffixWeekOverWeek] = report.WeekOverWeek[i]
			rows = append(rows, row)
		}
	}
	return rows
}
