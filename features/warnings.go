// api/features/warnings.go
package features

import "shoppersignal/api/models"

// Warnings flags logically inconsistent but still valid sessions. These are
// advisory only and never block a prediction.
func Warnings(in models.SessionInput) []string {
	var warnings []string

	if in.Checkout == "Yes" && in.PagesViewed == 0 {
		warnings = append(warnings, "Unusual: Checkout visited but no product pages viewed")
	}
	if in.Checkout == "Yes" && in.BrowsingTime < 60 {
		warnings = append(warnings, "Very quick checkout (under 1 minute)")
	}
	if (in.Intent == "High" || in.Intent == "Very High") && in.PagesViewed < 3 {
		warnings = append(warnings, "High intent but few pages viewed")
	}
	if in.BrowsingTime < 10 && in.PagesViewed > 5 {
		warnings = append(warnings, "Too many pages in too little time (possible bot)")
	}

	return warnings
}
