package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/covidtrend/trend-api/external/covid19india"
	"github.com/covidtrend/trend-api/external/jhu"
	"github.com/covidtrend/trend-api/external/rtindia"
	"github.com/covidtrend/trend-api/schema"
)

const (
	logPrefix = "dataset"

	// country whose series the correction source overrides
	patchCountry = "India"
)

var ErrNotReady = fmt.Errorf("dataset not ready")

// State of a Loader.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "uninitialized"
	}
}

// Handle is the immutable dataset published by a successful load. Nothing
// mutates it afterwards; every report is derived from it per call.
type Handle struct {
	series  *schema.TimeSeriesSet
	summary map[string][]interface{}
	rt      map[string]json.RawMessage
}

// Series returns the patched time-series set.
func (h *Handle) Series() *schema.TimeSeriesSet {
	return h.series
}

// DailySummary returns the columnar daily summary blob.
func (h *Handle) DailySummary() map[string][]interface{} {
	return h.summary
}

// Rt returns a pass-through Rt estimate blob by name.
func (h *Handle) Rt(name string) (json.RawMessage, bool) {
	blob, ok := h.rt[name]
	return blob, ok
}

// Loader runs the one-shot fetch of every upstream source and publishes the
// result exactly once for the lifetime of the process. Lifecycle:
// uninitialized -> loading -> ready|failed. There is no retry.
type Loader struct {
	primary    jhu.Source
	correction covid19india.Source
	aux        rtindia.Source

	mu     sync.Mutex
	state  State
	handle *Handle
	err    error
}

// NewLoader - loader over the three upstream sources
func NewLoader(primary jhu.Source, correction covid19india.Source, aux rtindia.Source) *Loader {
	return &Loader{
		primary:    primary,
		correction: correction,
		aux:        aux,
		state:      StateUninitialized,
	}
}

// Load fetches the primary series, the correction feed and the auxiliary
// blobs. The three fetches are independent and run concurrently; the first
// error latches the failed state. Calling Load again after it has started
// returns the latched result.
func (l *Loader) Load(ctx context.Context) error {
	l.mu.Lock()
	if l.state != StateUninitialized {
		err := l.err
		l.mu.Unlock()
		return err
	}
	l.state = StateLoading
	l.mu.Unlock()

	var (
		series  *schema.TimeSeriesSet
		records []schema.CorrectionRecord
		summary map[string][]interface{}
		rtBlobs map[string]json.RawMessage
	)

	errs := make(chan error, 3)
	go func() {
		var err error
		series, err = l.primary.Get()
		errs <- err
	}()
	go func() {
		var err error
		records, err = l.correction.Get()
		errs <- err
	}()
	go func() {
		india, err := l.aux.RtIndia()
		if nil == err {
			var states json.RawMessage
			states, err = l.aux.RtIndiaStates()
			if nil == err {
				rtBlobs = map[string]json.RawMessage{
					"india":        india,
					"india_states": states,
				}
				summary, err = l.aux.DailySummary()
			}
		}
		errs <- err
	}()

	for i := 0; i < 3; i++ {
		select {
		case err := <-errs:
			if nil != err {
				return l.fail(err)
			}
		case <-ctx.Done():
			return l.fail(ctx.Err())
		}
	}

	if err := PatchCountry(series, patchCountry, records); nil != err {
		// correction is best effort; the unpatched series still serves
		log.WithFields(log.Fields{"prefix": logPrefix, "country": patchCountry, "error": err}).Warn("series patch skipped")
	}

	l.mu.Lock()
	l.handle = &Handle{series: series, summary: summary, rt: rtBlobs}
	l.state = StateReady
	l.mu.Unlock()

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"regions": len(series.Regions),
		"points":  len(series.Timestamps),
	}).Info("dataset loaded")
	return nil
}

func (l *Loader) fail(err error) error {
	log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("dataset load failed")
	l.mu.Lock()
	l.state = StateFailed
	l.err = err
	l.mu.Unlock()
	return err
}

// State reports the loader lifecycle state.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Dataset returns the published handle, or ErrNotReady before a successful
// load.
func (l *Loader) Dataset() (*Handle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != StateReady {
		return nil, ErrNotReady
	}
	return l.handle, nil
}
