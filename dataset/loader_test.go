package dataset_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/covidtrend/trend-api/dataset"
	"github.com/covidtrend/trend-api/external/covid19india"
	"github.com/covidtrend/trend-api/external/jhu"
	"github.com/covidtrend/trend-api/external/rtindia"
)

const loaderCSV = `Province/State,Country/Region,Lat,Long,4/5/20,4/6/20,4/7/20
,India,20.59,78.96,100,200,400
,Italy,41.87,12.56,10,20,30
`

func newSources(t *testing.T) (jhu.Source, covid19india.Source, rtindia.Source) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(loaderCSV))
	}))
	t.Cleanup(primary.Close)

	correction := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"cases_time_series": [
			{"date": "05 April ", "totalconfirmed": "150"},
			{"date": "06 April ", "totalconfirmed": "250"},
			{"date": "07 April ", "totalconfirmed": "450"}
		]}`))
	}))
	t.Cleanup(correction.Close)

	rt := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rt_india.json":
			_, _ = w.Write([]byte(`{"rt": [1.1]}`))
		case "/rt_india_states.json":
			_, _ = w.Write([]byte(`{"Kerala": [0.8]}`))
		case "/rt_daily_summary.json":
			_, _ = w.Write([]byte(`{"date": ["4/5/20"], "confirmed": [605]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(rt.Close)

	return jhu.New(primary.URL), covid19india.New(correction.URL), rtindia.New(rt.URL)
}

func TestLoaderLoad(t *testing.T) {
	primary, correction, rt := newSources(t)
	loader := dataset.NewLoader(primary, correction, rt)

	assert.Equal(t, dataset.StateUninitialized, loader.State(), "wrong initial state")

	_, err := loader.Dataset()
	assert.Equal(t, dataset.ErrNotReady, err, "dataset should not be ready")

	err = loader.Load(context.Background())
	assert.Nil(t, err, "wrong Load")
	assert.Equal(t, dataset.StateReady, loader.State(), "wrong state after load")

	handle, err := loader.Dataset()
	assert.Nil(t, err, "wrong Dataset")

	// India carries the corrected totals, Italy the originals
	india := handle.Series().Region("", "India")
	assert.Equal(t, []float64{150, 250, 450}, india.Data, "India not patched")
	italy := handle.Series().Region("", "Italy")
	assert.Equal(t, []float64{10, 20, 30}, italy.Data, "Italy altered")

	blob, ok := handle.Rt("india")
	assert.True(t, ok, "missing rt india blob")
	assert.JSONEq(t, `{"rt": [1.1]}`, string(blob), "wrong rt india blob")

	_, ok = handle.Rt("unknown")
	assert.False(t, ok, "unexpected rt blob")

	assert.Len(t, handle.DailySummary()["date"], 1, "wrong daily summary")
}

func TestLoaderLoadFailure(t *testing.T) {
	_, correction, rt := newSources(t)

	dead := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	dead.Close()

	loader := dataset.NewLoader(jhu.New(dead.URL), correction, rt)
	err := loader.Load(context.Background())
	assert.NotNil(t, err, "expected load failure")
	assert.Equal(t, dataset.StateFailed, loader.State(), "wrong state after failure")

	_, err = loader.Dataset()
	assert.Equal(t, dataset.ErrNotReady, err, "failed loader should not serve")
}
