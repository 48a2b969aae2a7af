package dataset

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/covidtrend/trend-api/schema"
)

var ErrRegionNotFound = fmt.Errorf("region not found")

// PatchCountry overlays corrected cumulative totals onto the country-level
// series of the given country, matching points by normalized date. Points
// without a correction keep their original value and are reported with a
// warning; they never fail the pipeline. Timestamps and every other region
// stay untouched.
func PatchCountry(ts *schema.TimeSeriesSet, country string, records []schema.CorrectionRecord) error {
	target := ts.Region("", country)
	if target == nil {
		return fmt.Errorf("%w: %s", ErrRegionNotFound, country)
	}

	// later duplicates overwrite earlier ones
	corrections := make(map[string]float64, len(records))
	for _, rec := range records {
		date, err := WordDate(rec.Date)
		if nil != err {
			log.WithFields(log.Fields{"prefix": logPrefix, "date": rec.Date, "error": err}).Warn("skip correction record")
			continue
		}
		total, err := strconv.ParseFloat(strings.TrimSpace(rec.TotalConfirmed), 64)
		if nil != err {
			log.WithFields(log.Fields{"prefix": logPrefix, "date": rec.Date, "total": rec.TotalConfirmed, "error": err}).Warn("skip correction record")
			continue
		}
		corrections[date] = total
	}

	for i, stamp := range ts.Timestamps {
		total, ok := corrections[strings.TrimSpace(stamp)]
		if !ok {
			log.WithFields(log.Fields{"prefix": logPrefix, "country": country, "timestamp": stamp, "kept": target.Data[i]}).Warn("no correction point")
			continue
		}
		target.Data[i] = total
	}

	return nil
}
