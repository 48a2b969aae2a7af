package jhu_test

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/covidtrend/trend-api/external/jhu"
)

const fixtureCSV = `Province/State,Country/Region,Lat,Long,4/5/20,4/6/20,4/7/20
,India,20.59,78.96,100,200,400
Kerala,India,10.85,76.27,1,2,3
,Italy,41.87,12.56,10,20,30
`

func TestParse(t *testing.T) {
	ts, err := jhu.Parse(fixtureCSV)
	assert.Nil(t, err, "wrong Parse")

	assert.Equal(t, []string{"4/5/20", "4/6/20", "4/7/20"}, ts.Timestamps, "wrong timestamps")
	assert.Len(t, ts.Regions, 3, "wrong region count")

	india := ts.Region("", "India")
	assert.NotNil(t, india, "missing country-level India")
	assert.Equal(t, []float64{100, 200, 400}, india.Data, "wrong India data")
	assert.Equal(t, 20.59, india.Lat, "wrong lat")

	kerala := ts.Region("Kerala", "India")
	assert.NotNil(t, kerala, "missing province-level series")
	assert.Equal(t, []float64{1, 2, 3}, kerala.Data, "wrong Kerala data")
}

func TestParseSkipsDegenerateRows(t *testing.T) {
	raw := fixtureCSV + "\n,,,\n\n"
	ts, err := jhu.Parse(raw)
	assert.Nil(t, err, "wrong Parse")
	assert.Len(t, ts.Regions, 3, "degenerate rows not skipped")
}

func TestParseNonNumericCells(t *testing.T) {
	raw := "Province/State,Country/Region,Lat,Long,4/5/20\n,Italy,bad,12.56,n/a\n"
	ts, err := jhu.Parse(raw)
	assert.Nil(t, err, "wrong Parse")

	italy := ts.Region("", "Italy")
	assert.NotNil(t, italy, "missing Italy")
	assert.True(t, math.IsNaN(italy.Lat), "non-numeric lat should be NaN")
	assert.True(t, math.IsNaN(italy.Data[0]), "non-numeric count should be NaN")
}

func TestParseShortRow(t *testing.T) {
	raw := "Province/State,Country/Region,Lat,Long,4/5/20,4/6/20\n,Italy,41.87,12.56,10\n"
	ts, err := jhu.Parse(raw)
	assert.Nil(t, err, "wrong Parse")

	italy := ts.Region("", "Italy")
	assert.Equal(t, float64(10), italy.Data[0], "wrong first value")
	assert.True(t, math.IsNaN(italy.Data[1]), "missing cell should be NaN")
}

func TestParseNoDateColumns(t *testing.T) {
	_, err := jhu.Parse("Province/State,Country/Region,Lat,Long\n")
	assert.Equal(t, jhu.ErrNoDateColumns, err, "wrong error")
}

func TestGet(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(fixtureCSV))
	}))
	defer ts.Close()

	source := jhu.New(ts.URL)
	set, err := source.Get()
	assert.Nil(t, err, "wrong Get")
	assert.Len(t, set.Regions, 3, "wrong region count")
	assert.Len(t, set.Timestamps, 3, "wrong timestamp count")
}
