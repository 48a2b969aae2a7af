package jhu

import (
	"fmt"
	"io/ioutil"
	"math"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/covidtrend/trend-api/schema"
)

const (
	defaultURL = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/csse_covid_19_data/csse_covid_19_time_series/time_series_covid19_confirmed_global.csv"
	logPrefix  = "jhu"

	// province, country, lat, long
	metaColumns = 4
)

var (
	ErrEmptyCSV      = fmt.Errorf("empty csv input")
	ErrNoDateColumns = fmt.Errorf("csv header has no date columns")
)

// Source fetches the confirmed-case time series in the JHU CSV format.
type Source interface {
	Get() (*schema.TimeSeriesSet, error)
}

type client struct {
	url string
}

func (c client) Get() (*schema.TimeSeriesSet, error) {
	resp, err := http.Get(c.url)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": c.url, "error": err}).Error("get time series csv")
		return nil, err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("read time series csv response")
		return nil, err
	}

	return Parse(string(data))
}

// Parse turns raw CSV text into a TimeSeriesSet. The first line is the
// header [province, country, lat, long, date...]; fields are split on commas
// with no quoting support. Non-numeric cells parse to NaN and propagate
// through the downstream arithmetic. Rows with fewer than four columns, or
// with both province and country empty, are skipped.
func Parse(raw string) (*schema.TimeSeriesSet, error) {
	lines := strings.Split(strings.TrimRight(raw, "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, ErrEmptyCSV
	}

	header := strings.Split(strings.TrimRight(lines[0], "\r"), ",")
	if len(header) <= metaColumns {
		return nil, ErrNoDateColumns
	}

	ts := &schema.TimeSeriesSet{
		Timestamps: make([]string, len(header)-metaColumns),
	}
	for i, stamp := range header[metaColumns:] {
		ts.Timestamps[i] = strings.TrimSpace(stamp)
	}

	for _, line := range lines[1:] {
		fields := strings.Split(strings.TrimRight(line, "\r"), ",")
		if len(fields) < metaColumns {
			continue
		}

		province := strings.TrimSpace(fields[0])
		country := strings.TrimSpace(fields[1])
		if "" == province && "" == country {
			continue
		}

		region := schema.RegionSeries{
			Province: province,
			Country:  country,
			Lat:      parseNumber(fields[2]),
			Long:     parseNumber(fields[3]),
			Data:     make([]float64, len(ts.Timestamps)),
		}
		for i := range ts.Timestamps {
			if metaColumns+i < len(fields) {
				region.Data[i] = parseNumber(fields[metaColumns+i])
			} else {
				region.Data[i] = math.NaN()
			}
		}
		ts.Regions = append(ts.Regions, region)
	}

	return ts, nil
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if nil != err {
		return math.NaN()
	}
	return v
}

// New - time series source in the JHU CSV format
func New(url string) Source {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &client{url: u}
}
