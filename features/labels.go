// api/features/labels.go
package features

// The form labels are part of the contract: the mapping tables below have no
// defaults, so a label outside these sets is rejected before any lookup.

var CheckoutOptions = []string{"No", "Yes"}

var IntentOptions = []string{"Very Low", "Low", "Medium", "High", "Very High"}

var VisitorOptions = []string{"New Visitor", "Returning Visitor"}

var BounceOptions = []string{
	"Very Low (Stays, very interested)",
	"Low (Interested)",
	"Medium (Unsure)",
	"High (Likely leaving)",
	"Very High (Leaves quickly)",
}

var ExitOptions = []string{
	"Very Low (Continues browsing)",
	"Low (Still browsing)",
	"Medium (May leave)",
	"High (Likely exiting)",
	"Very High (Exits immediately)",
}

// intentMap converts the declared purchase-intent level into the PageValues
// score the classifier was trained on.
var intentMap = map[string]int{
	"Very Low":  0,
	"Low":       30,
	"Medium":    80,
	"High":      140,
	"Very High": 200,
}

var bounceMap = map[string]float64{
	"Very Low (Stays, very interested)": 0.01,
	"Low (Interested)":                  0.1,
	"Medium (Unsure)":                   0.3,
	"High (Likely leaving)":             0.6,
	"Very High (Leaves quickly)":        0.9,
}

var exitMap = map[string]float64{
	"Very Low (Continues browsing)": 0.01,
	"Low (Still browsing)":          0.1,
	"Medium (May leave)":            0.3,
	"High (Likely exiting)":         0.6,
	"Very High (Exits immediately)": 0.9,
}

// IntentScore returns the PageValues score for a valid intent label.
func IntentScore(label string) (int, bool) {
	v, ok := intentMap[label]
	return v, ok
}

// BounceRate returns the bounce-rate value for a valid bounce label.
func BounceRate(label string) (float64, bool) {
	v, ok := bounceMap[label]
	return v, ok
}

// ExitRate returns the exit-rate value for a valid exit label.
func ExitRate(label string) (float64, bool) {
	v, ok := exitMap[label]
	return v, ok
}
