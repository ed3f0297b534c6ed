package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the HTTP routes. Metrics are served from gatherer.
func NewRouter(handler *PowerHandler, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/power", handler.PowerAnalysis)
		v1.POST("/effect-size", handler.EffectSize)
		v1.POST("/repeated-measures", handler.RepeatedMeasures)
		v1.GET("/results", handler.ListResults)
		v1.GET("/results/:id", handler.GetResult)
	}
	return router
}
