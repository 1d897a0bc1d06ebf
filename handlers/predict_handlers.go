// api/handlers/predict_handlers.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shoppersignal/api/classifier"
	"shoppersignal/api/features"
	"shoppersignal/api/insights"
	"shoppersignal/api/models"
)

// ClassifierSource yields the process-wide classifier instance. The loader
// satisfies it in production; tests substitute a stub.
type ClassifierSource interface {
	Get() (classifier.Classifier, error)
	Loaded() bool
}

type PredictHandlers struct {
	Source  ClassifierSource
	Encoder features.Options
}

func NewPredictHandlers(src ClassifierSource, opts features.Options) *PredictHandlers {
	return &PredictHandlers{
		Source:  src,
		Encoder: opts,
	}
}

// formView carries everything the form page needs, including the preset
// selected via the quick-example buttons.
type formView struct {
	Preset          models.SessionInput
	Scenarios       []models.Scenario
	CheckoutOptions []string
	IntentOptions   []string
	VisitorOptions  []string
	BounceOptions   []string
	ExitOptions     []string
	Errors          []string
}

type resultView struct {
	Percent         float64
	Banner          insights.Banner
	Factors         []models.Factor
	Recommendations []string
	WhatIfs         []models.WhatIf
	Warnings        []string
	RequestID       string
}

// ShowForm renders the session form, optionally prefilled from a scenario
// preset (?scenario=hot|casual|cold|default).
func (h *PredictHandlers) ShowForm(c *gin.Context) {
	preset := insights.ScenarioFor(c.Query("scenario"))
	h.renderForm(c, http.StatusOK, preset.Input(), nil)
}

// Predict runs the full pipeline for one form submission: bind and validate,
// encode the feature record, query the classifier, render the result page.
func (h *PredictHandlers) Predict(c *gin.Context) {
	var in models.SessionInput
	if err := c.ShouldBind(&in); err != nil {
		log.Printf("Error binding session form: %v", err)
		h.renderForm(c, http.StatusBadRequest, insights.ScenarioFor("default").Input(),
			[]string{"Invalid input: check the numeric ranges and selections and try again."})
		return
	}

	rec, err := features.Encode(in, h.Encoder)
	if err != nil {
		log.Printf("Error encoding session input: %v", err)
		h.renderForm(c, http.StatusBadRequest, insights.ScenarioFor("default").Input(), []string{err.Error()})
		return
	}

	clf, err := h.Source.Get()
	if err != nil {
		log.Printf("ERROR: Classifier unavailable: %v", err)
		c.HTML(http.StatusServiceUnavailable, "error.html", gin.H{
			"Message": "Error loading model: the classifier artifact could not be loaded. Try again later.",
		})
		return
	}

	prob, err := clf.PredictProbability(rec)
	if err != nil {
		log.Printf("ERROR: Prediction failed: %v", err)
		msg := "Prediction error: the classifier could not score this session."
		if errors.Is(err, classifier.ErrModelUnavailable) {
			msg = "Error loading model: the classifier artifact could not be loaded. Try again later."
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": msg})
		return
	}

	c.HTML(http.StatusOK, "result.html", resultView{
		Percent:         prob * 100,
		Banner:          insights.BannerFor(prob),
		Factors:         insights.Factors(in, rec),
		Recommendations: insights.Recommendations(prob, in, rec),
		WhatIfs:         insights.WhatIfs(prob, in, rec),
		Warnings:        features.Warnings(in),
		RequestID:       c.GetString("request_id"),
	})
}

// Health reports process liveness and whether the model artifact is loaded.
func (h *PredictHandlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"model_loaded": h.Source.Loaded(),
	})
}

func (h *PredictHandlers) renderForm(c *gin.Context, status int, preset models.SessionInput, errs []string) {
	c.HTML(status, "form.html", formView{
		Preset:          preset,
		Scenarios:       insights.Scenarios(),
		CheckoutOptions: features.CheckoutOptions,
		IntentOptions:   features.IntentOptions,
		VisitorOptions:  features.VisitorOptions,
		BounceOptions:   features.BounceOptions,
		ExitOptions:     features.ExitOptions,
		Errors:          errs,
	})
}
