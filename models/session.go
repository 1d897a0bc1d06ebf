// api/models/session.go
package models

// SessionInput holds one visitor session exactly as captured by the form.
// Numeric bounds are enforced at the binding layer so out-of-range values
// never reach the feature encoder.
type SessionInput struct {
	PagesViewed  int    `form:"pages" binding:"min=0,max=100"`
	BrowsingTime int    `form:"time" binding:"min=0,max=3600"`
	Checkout     string `form:"checkout" binding:"required"`
	Intent       string `form:"intent" binding:"required"`
	Visitor      string `form:"visitor" binding:"required"`
	Bounce       string `form:"bounce" binding:"required"`
	Exit         string `form:"exit" binding:"required"`
}

// Scenario is a preset filling of the form used by the quick-example buttons.
type Scenario struct {
	Key          string
	Label        string
	PagesViewed  int
	BrowsingTime int
	Checkout     string
	Intent       string
	Visitor      string
	Bounce       string
	Exit         string
}

// Input returns the scenario as a SessionInput.
func (s Scenario) Input() SessionInput {
	return SessionInput{
		PagesViewed:  s.PagesViewed,
		BrowsingTime: s.BrowsingTime,
		Checkout:     s.Checkout,
		Intent:       s.Intent,
		Visitor:      s.Visitor,
		Bounce:       s.Bounce,
		Exit:         s.Exit,
	}
}
