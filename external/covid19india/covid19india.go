package covid19india

import (
	"encoding/json"
	"io/ioutil"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/covidtrend/trend-api/schema"
)

const (
	defaultURL = "https://api.covid19india.org/data.json"
	logPrefix  = "covid19india"
)

// Source fetches the corrected cumulative totals for India published by the
// covid19india.org volunteers.
type Source interface {
	Get() ([]schema.CorrectionRecord, error)
}

type client struct {
	url string
}

type jsonResponse struct {
	CasesTimeSeries []schema.CorrectionRecord `json:"cases_time_series"`
}

func (c client) Get() ([]schema.CorrectionRecord, error) {
	resp, err := http.Get(c.url)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": c.url, "error": err}).Error("get correction json")
		return nil, err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("read correction json response")
		return nil, err
	}

	var r jsonResponse
	if err := json.Unmarshal(data, &r); nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("unmarshal correction json")
		return nil, err
	}

	return r.CasesTimeSeries, nil
}

// New - correction source for India's cumulative totals
func New(url string) Source {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &client{url: u}
}
