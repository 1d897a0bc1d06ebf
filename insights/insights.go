// api/insights/insights.go
package insights

import (
	"shoppersignal/api/models"
	"shoppersignal/api/utils"
)

// Tone selects the banner styling on the result page.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneError   Tone = "error"
)

// Banner is the headline verdict for a probability.
type Banner struct {
	Level   string
	Message string
	Tone    Tone
}

// BannerFor maps the probability to its verdict band. Thresholds are fixed:
// 0.75, 0.5 and 0.25.
func BannerFor(prob float64) Banner {
	switch {
	case prob >= 0.75:
		return Banner{Level: "VERY LIKELY", Message: "Strong purchase signals detected!", Tone: ToneSuccess}
	case prob >= 0.5:
		return Banner{Level: "LIKELY", Message: "Good chance of purchase", Tone: ToneSuccess}
	case prob >= 0.25:
		return Banner{Level: "UNLIKELY", Message: "Weak purchase signals", Tone: ToneWarning}
	default:
		return Banner{Level: "VERY UNLIKELY", Message: "Very low purchase intent", Tone: ToneError}
	}
}

// maxFactors caps the key-factor list on the result page.
const maxFactors = 4

// Factors derives the heuristic annotations explaining which inputs pushed
// the prediction. Rule order is fixed; at most the first four fire.
func Factors(in models.SessionInput, rec models.FeatureRecord) []models.Factor {
	var factors []models.Factor

	if in.Checkout == "Yes" {
		factors = append(factors, models.Factor{Label: "Visited checkout", Impact: models.ImpactPositive, Magnitude: "+25-35%"})
	} else {
		factors = append(factors, models.Factor{Label: "No checkout visit", Impact: models.ImpactNegative, Magnitude: "-25-35%"})
	}

	if rec.PageValues >= 140 {
		factors = append(factors, models.Factor{Label: "Very high intent", Impact: models.ImpactPositive, Magnitude: "+15-25%"})
	} else if rec.PageValues <= 30 {
		factors = append(factors, models.Factor{Label: "Low intent", Impact: models.ImpactNegative, Magnitude: "-15-25%"})
	}

	if in.BrowsingTime >= 600 {
		factors = append(factors, models.Factor{Label: "Long browsing time", Impact: models.ImpactPositive, Magnitude: "+10-15%"})
	} else if in.BrowsingTime <= 120 {
		factors = append(factors, models.Factor{Label: "Short browsing time", Impact: models.ImpactNegative, Magnitude: "-10-15%"})
	}

	if rec.BounceRates <= 0.1 {
		factors = append(factors, models.Factor{Label: "Low bounce rate", Impact: models.ImpactPositive, Magnitude: "+5-10%"})
	} else if rec.BounceRates >= 0.6 {
		factors = append(factors, models.Factor{Label: "High bounce rate", Impact: models.ImpactNegative, Magnitude: "-5-10%"})
	}

	if in.PagesViewed >= 15 {
		factors = append(factors, models.Factor{Label: "Many pages viewed", Impact: models.ImpactPositive, Magnitude: "+5-10%"})
	} else if in.PagesViewed <= 5 {
		factors = append(factors, models.Factor{Label: "Few pages viewed", Impact: models.ImpactNegative, Magnitude: "-5-10%"})
	}

	if len(factors) > maxFactors {
		factors = factors[:maxFactors]
	}
	return factors
}

// Recommendations selects the actionable suggestions for the result page.
// Below 50% probability the suggestions target the weakest inputs; at or
// above it the visitor is treated as a hot lead.
func Recommendations(prob float64, in models.SessionInput, rec models.FeatureRecord) []string {
	var out []string

	if prob < 0.5 {
		if in.Checkout == "No" {
			out = append(out, "Priority Action: Guide visitor to checkout - could boost probability by 25-35%")
		}
		if rec.PageValues < 80 {
			out = append(out, "Show personalized recommendations to increase engagement")
		}
		if in.BrowsingTime < 300 {
			out = append(out, "Deploy live chat or time-limited offers to retain visitor")
		}
		if rec.BounceRates >= 0.3 {
			out = append(out, "Use exit-intent popup with special discount")
		}
		return out
	}

	return []string{
		"Hot Lead Detected! Recommended actions:",
		"Show limited-time discount to create urgency",
		"Prepare abandoned cart email sequence",
		"Display trust badges and customer reviews",
	}
}

// WhatIfs computes the canned improvement scenarios: fixed offsets in
// percentage points applied to the current probability, clamped at 100.
func WhatIfs(prob float64, in models.SessionInput, rec models.FeatureRecord) []models.WhatIf {
	percent := prob * 100
	var out []models.WhatIf

	add := func(label string, delta float64) {
		out = append(out, models.WhatIf{
			Label:       label,
			DeltaPoints: delta,
			NewPercent:  utils.ClampPercent(percent + delta),
		})
	}

	if in.Checkout == "No" {
		add("Visited checkout page", 30)
	}
	if in.BrowsingTime < 600 {
		add("Browsed for 10+ minutes", 15)
	}
	if rec.PageValues < 140 {
		add("Showed very high intent", 20)
	}
	if in.PagesViewed < 15 {
		add("Viewed 15+ product pages", 10)
	}
	return out
}

// Baseline conversion rates for the comparison chart.
const (
	AvgNonBuyerPercent = 15
	AvgBuyerPercent    = 65
)

// Comparison builds the three bars of the performance-comparison chart.
func Comparison(prob float64) []models.ComparisonRow {
	return []models.ComparisonRow{
		{Category: "This Visitor", Percent: prob * 100, Color: "#636EFA"},
		{Category: "Average Non-Buyer", Percent: AvgNonBuyerPercent, Color: "#EF553B"},
		{Category: "Average Buyer", Percent: AvgBuyerPercent, Color: "#00CC96"},
	}
}
