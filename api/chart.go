package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/covidtrend/trend-api/chart"
	"github.com/covidtrend/trend-api/reshape"
)

func (s *Server) growthChart(c *gin.Context) {
	set, ok := s.buildReport(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, chart.GrowthLineChart(set))
}

func (s *Server) dailySummaryChart(c *gin.Context) {
	handle, err := s.loader.Dataset()
	if nil != err {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorDatasetNotReady, err)
		return
	}

	rows, err := reshape.Transpose(handle.DailySummary())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, chart.SummaryBarChart(rows, "date", "confirmed"))
}

func (s *Server) rtBlob(c *gin.Context) {
	handle, err := s.loader.Dataset()
	if nil != err {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorDatasetNotReady, err)
		return
	}

	blob, ok := handle.Rt(c.Param("name"))
	if !ok {
		abortWithEncoding(c, http.StatusNotFound, errorUnknownRtDataset)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", blob)
}
