// api/insights/scenarios.go
package insights

import "shoppersignal/api/models"

// Scenario presets behind the quick-example buttons on the form page.
var scenarios = map[string]models.Scenario{
	"hot": {
		Key: "hot", Label: "High Purchase Intent",
		PagesViewed: 25, BrowsingTime: 1200, Checkout: "Yes",
		Intent: "Very High", Visitor: "Returning Visitor",
		Bounce: "Very Low (Stays, very interested)", Exit: "Very Low (Continues browsing)",
	},
	"casual": {
		Key: "casual", Label: "Moderate Purchase Intent",
		PagesViewed: 10, BrowsingTime: 300, Checkout: "No",
		Intent: "Medium", Visitor: "New Visitor",
		Bounce: "Medium (Unsure)", Exit: "Medium (May leave)",
	},
	"cold": {
		Key: "cold", Label: "Low Purchase Intent",
		PagesViewed: 3, BrowsingTime: 60, Checkout: "No",
		Intent: "Very Low", Visitor: "New Visitor",
		Bounce: "Very High (Leaves quickly)", Exit: "Very High (Exits immediately)",
	},
	"default": {
		Key: "default", Label: "Reset",
		PagesViewed: 10, BrowsingTime: 300, Checkout: "No",
		Intent: "Very Low", Visitor: "New Visitor",
		Bounce: "Very Low (Stays, very interested)", Exit: "Very Low (Continues browsing)",
	},
}

// ScenarioKeys lists the presets in display order.
var ScenarioKeys = []string{"hot", "casual", "cold", "default"}

// Scenarios returns the presets in display order.
func Scenarios() []models.Scenario {
	out := make([]models.Scenario, 0, len(ScenarioKeys))
	for _, k := range ScenarioKeys {
		out = append(out, scenarios[k])
	}
	return out
}

// ScenarioFor returns the preset for key, falling back to the default one.
func ScenarioFor(key string) models.Scenario {
	if s, ok := scenarios[key]; ok {
		return s
	}
	return scenarios["default"]
}
