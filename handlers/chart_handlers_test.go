package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getChart(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := testRouter(stubSource{clf: stubClassifier{prob: 0.5}})
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGaugeChart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := getChart(t, "/charts/gauge?prob=82.0")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, "echarts")
	assert.Contains(t, body, "Purchase Probability")
}

func TestComparisonChart(t *testing.T) {
	w := getChart(t, "/charts/comparison?prob=42.0")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "This Visitor")
	assert.Contains(t, body, "Average Non-Buyer")
	assert.Contains(t, body, "Average Buyer")
}

func TestChartProbClamping(t *testing.T) {
	// Garbage and out-of-range values degrade to a renderable chart instead
	// of an error page.
	for _, q := range []string{"prob=abc", "prob=-5", "prob=250", ""} {
		w := getChart(t, "/charts/gauge?"+q)
		assert.Equal(t, http.StatusOK, w.Code, q)
	}
}
