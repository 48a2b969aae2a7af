package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/covidtrend/trend-api/dataset"
	"github.com/covidtrend/trend-api/logmodule"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Dataset loaded once at startup
	loader *dataset.Loader
}

// NewServer new instance of server
func NewServer(loader *dataset.Loader) *Server {
	return &Server{
		loader: loader,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute.GET("/reports", s.report)

	chartRoute := apiRoute.Group("/charts")
	{
		chartRoute.GET("/growth", s.growthChart)
		chartRoute.GET("/daily-summary", s.dailySummaryChart)
	}

	rtRoute := apiRoute.Group("/rt")
	{
		rtRoute.GET("/:name", s.rtBlob)
	}

	r.GET("/healthz", s.healthz)
	r.GET("/information", s.information)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	state := s.loader.State()

	status := http.StatusOK
	if state != dataset.StateReady {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":  state.String(),
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"sources": map[string]interface{}{
				"primary":    viper.GetString("data.primary_url"),
				"correction": viper.GetString("data.correction_url"),
				"rt":         viper.GetString("data.rt_base_url"),
			},
			"system_version": "Covidtrend 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
