package rtindia

import (
	"encoding/json"
	"io/ioutil"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const (
	defaultBaseURL = "https://data.covidtrend.in"
	logPrefix      = "rtindia"

	rtIndiaPath       = "/rt_india.json"
	rtIndiaStatesPath = "/rt_india_states.json"
	dailySummaryPath  = "/rt_daily_summary.json"
)

// Source fetches the precomputed Rt estimate blobs published alongside the
// charts. RtIndia and RtIndiaStates pass through to the charting client
// untouched; DailySummary is columnar and gets reshaped downstream.
type Source interface {
	RtIndia() (json.RawMessage, error)
	RtIndiaStates() (json.RawMessage, error)
	DailySummary() (map[string][]interface{}, error)
}

type client struct {
	baseURL string
}

func (c client) get(path string) ([]byte, error) {
	resp, err := http.Get(c.baseURL + path)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "path": path, "error": err}).Error("get rt json")
		return nil, err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "path": path, "error": err}).Error("read rt json response")
		return nil, err
	}
	return data, nil
}

func (c client) RtIndia() (json.RawMessage, error) {
	data, err := c.get(rtIndiaPath)
	return json.RawMessage(data), err
}

func (c client) RtIndiaStates() (json.RawMessage, error) {
	data, err := c.get(rtIndiaStatesPath)
	return json.RawMessage(data), err
}

func (c client) DailySummary() (map[string][]interface{}, error) {
	data, err := c.get(dailySummaryPath)
	if nil != err {
		return nil, err
	}

	var columns map[string][]interface{}
	if err := json.Unmarshal(data, &columns); nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("unmarshal daily summary json")
		return nil, err
	}
	return columns, nil
}

// New - auxiliary Rt estimate source
func New(baseURL string) Source {
	u := defaultBaseURL
	if baseURL != "" {
		u = baseURL
	}

	return &client{baseURL: u}
}
