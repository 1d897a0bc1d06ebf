// api/handlers/router.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"shoppersignal/api/middleware"
	"shoppersignal/api/web"
)

// NewRouter wires the full HTTP surface: the form UI, the predict flow, the
// chart pages and the health probe.
func NewRouter(ph *PredictHandlers, ch *ChartHandlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.SetHTMLTemplate(web.Templates())

	r.GET("/", ph.ShowForm)
	r.POST("/predict", ph.Predict)
	r.GET("/health", ph.Health)

	charts := r.Group("/charts")
	{
		charts.GET("/gauge", ch.Gauge)
		charts.GET("/comparison", ch.Comparison)
	}

	return r
}
