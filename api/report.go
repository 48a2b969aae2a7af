package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/covidtrend/trend-api/schema"
	"github.com/covidtrend/trend-api/series"
)

const (
	defaultLimit  = 30
	defaultWindow = 5
)

type reportQuery struct {
	countries []string
	limit     int
	window    int
}

// parseReportQuery reads countries, limit and window from the query string.
// It aborts the request itself on invalid input.
func parseReportQuery(c *gin.Context) (*reportQuery, bool) {
	q := &reportQuery{
		limit:  defaultLimit,
		window: defaultWindow,
	}

	for _, name := range strings.Split(c.Query("countries"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			q.countries = append(q.countries, name)
		}
	}
	if len(q.countries) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return nil, false
	}

	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if nil != err || n < 1 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return nil, false
		}
		q.limit = n
	}
	if v := c.Query("window"); v != "" {
		n, err := strconv.Atoi(v)
		if nil != err || n < 1 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return nil, false
		}
		q.window = n
	}

	return q, true
}

func (s *Server) buildReport(c *gin.Context) (*schema.ReportSet, bool) {
	q, ok := parseReportQuery(c)
	if !ok {
		return nil, false
	}

	handle, err := s.loader.Dataset()
	if nil != err {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorDatasetNotReady, err)
		return nil, false
	}

	set, err := series.BuildReport(q.limit, q.window, handle.Series(), q.countries...)
	if nil != err {
		if errors.Is(err, series.ErrRegionNotFound) {
			abortWithEncoding(c, http.StatusNotFound, errorRegionNotFound, err)
			return nil, false
		}
		shouldInterupt(err, c)
		return nil, false
	}

	return set, true
}

func (s *Server) report(c *gin.Context) {
	set, ok := s.buildReport(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, set)
}
