// api/models/prediction.go
package models

// FactorImpact classifies a key factor's direction.
type FactorImpact string

const (
	ImpactPositive FactorImpact = "POSITIVE"
	ImpactNegative FactorImpact = "NEGATIVE"
)

// Factor is one heuristic annotation explaining the prediction.
type Factor struct {
	Label     string
	Impact    FactorImpact
	Magnitude string
}

// Positive reports whether the factor pushes the probability up.
func (f Factor) Positive() bool { return f.Impact == ImpactPositive }

// WhatIf is one canned improvement scenario: the stated fixed offset applied
// to the current probability, clamped to 100 percent.
type WhatIf struct {
	Label       string
	DeltaPoints float64
	NewPercent  float64
}

// ComparisonRow is one bar of the performance-comparison chart.
type ComparisonRow struct {
	Category string
	Percent  float64
	Color    string
}
