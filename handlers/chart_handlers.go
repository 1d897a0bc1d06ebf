// api/handlers/chart_handlers.go
package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"shoppersignal/api/insights"
	"shoppersignal/api/utils"
)

// ChartHandlers serves the gauge and comparison charts as self-contained
// pages embedded in the result view. Charts are display-only: they recompute
// everything from the prob query parameter, so nothing is persisted.
type ChartHandlers struct{}

func NewChartHandlers() *ChartHandlers {
	return &ChartHandlers{}
}

// Gauge renders the purchase-probability dial for ?prob= (0-100).
func (h *ChartHandlers) Gauge(c *gin.Context) {
	percent := probParam(c)

	gauge := charts.NewGauge()
	gauge.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Purchase Probability",
			Width:     "620px",
			Height:    "380px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Purchase Probability"}),
	)
	gauge.AddSeries("Purchase Probability", []opts.GaugeData{
		{Name: "Probability %", Value: percent},
	})

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := gauge.Render(c.Writer); err != nil {
		log.Printf("Error rendering gauge chart: %v", err)
	}
}

// Comparison renders the visitor-vs-baseline bar chart for ?prob= (0-100).
func (h *ChartHandlers) Comparison(c *gin.Context) {
	percent := probParam(c)
	rows := insights.Comparison(percent / 100)

	categories := make([]string, 0, len(rows))
	bars := make([]opts.BarData, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.Category)
		bars = append(bars, opts.BarData{
			Value:     row.Percent,
			ItemStyle: &opts.ItemStyle{Color: row.Color},
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Performance Comparison",
			Width:     "620px",
			Height:    "380px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Performance Comparison"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Purchase Probability (%)"}),
	)
	bar.SetXAxis(categories).AddSeries("Probability (%)", bars,
		charts.WithLabelOpts(opts.Label{Show: true, Position: "top", Formatter: "{c}%"}),
	)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := bar.Render(c.Writer); err != nil {
		log.Printf("Error rendering comparison chart: %v", err)
	}
}

func probParam(c *gin.Context) float64 {
	v, err := strconv.ParseFloat(c.Query("prob"), 64)
	if err != nil {
		return 0
	}
	return utils.ClampPercent(v)
}
