// api/models/feature.go
package models

// FeatureRecord is the flat named-field structure passed to the classifier
// for one prediction. The field set and order must exactly match the schema
// the classifier artifact was fitted against; Extended controls whether the
// Engagement_Ratio column is part of that schema.
type FeatureRecord struct {
	Administrative         int
	AdministrativeDuration int
	Informational          int
	InformationalDuration  int
	ProductRelated         int
	ProductRelatedDuration int
	BounceRates            float64
	ExitRates              float64
	PageValues             int
	SpecialDay             int
	Month                  string
	OperatingSystems       int
	Browser                int
	Region                 int
	TrafficType            int
	VisitorType            string
	Weekend                bool
	EngagementRatio        float64
	TotalDuration          int

	Extended bool
}

// VisitorType values as the training data spells them.
const (
	VisitorReturning = "Returning_Visitor"
	VisitorNew       = "New_Visitor"
)

// FieldNames returns the column names in schema order.
func (r FeatureRecord) FieldNames() []string {
	names := []string{
		"Administrative",
		"Administrative_Duration",
		"Informational",
		"Informational_Duration",
		"ProductRelated",
		"ProductRelated_Duration",
		"BounceRates",
		"ExitRates",
		"PageValues",
		"SpecialDay",
		"Month",
		"OperatingSystems",
		"Browser",
		"Region",
		"TrafficType",
		"VisitorType",
		"Weekend",
	}
	if r.Extended {
		names = append(names, "Engagement_Ratio")
	}
	return append(names, "Total_Duration")
}

// Values returns the field values in the same order as FieldNames.
func (r FeatureRecord) Values() []any {
	vals := []any{
		r.Administrative,
		r.AdministrativeDuration,
		r.Informational,
		r.InformationalDuration,
		r.ProductRelated,
		r.ProductRelatedDuration,
		r.BounceRates,
		r.ExitRates,
		r.PageValues,
		r.SpecialDay,
		r.Month,
		r.OperatingSystems,
		r.Browser,
		r.Region,
		r.TrafficType,
		r.VisitorType,
		r.Weekend,
	}
	if r.Extended {
		vals = append(vals, r.EngagementRatio)
	}
	return append(vals, r.TotalDuration)
}
