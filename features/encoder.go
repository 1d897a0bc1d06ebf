// api/features/encoder.go
package features

import (
	"fmt"

	"shoppersignal/api/models"
)

// Options selects which optional columns the encoder emits. The artifact's
// training schema included the engagement ratio, so ExtendedSchema defaults
// to true via DefaultOptions; the flag exists because a reduced artifact
// without that column is also in circulation.
type Options struct {
	ExtendedSchema bool
}

// DefaultOptions matches the schema of the shipped model artifact.
func DefaultOptions() Options {
	return Options{ExtendedSchema: true}
}

const (
	MaxPages       = 100
	MaxBrowsingSec = 3600

	// A checkout visit is represented by fixed administrative activity.
	checkoutAdminPages    = 3
	checkoutAdminDuration = 120
)

// Encode maps one visitor session to the classifier's feature record. It is
// pure: no state, no I/O. Out-of-range numerics and labels outside the fixed
// enumerations are rejected before any table lookup.
func Encode(in models.SessionInput, opts Options) (models.FeatureRecord, error) {
	var rec models.FeatureRecord

	if in.PagesViewed < 0 || in.PagesViewed > MaxPages {
		return rec, fmt.Errorf("pages viewed must be between 0 and %d, got %d", MaxPages, in.PagesViewed)
	}
	if in.BrowsingTime < 0 || in.BrowsingTime > MaxBrowsingSec {
		return rec, fmt.Errorf("browsing time must be between 0 and %d seconds, got %d", MaxBrowsingSec, in.BrowsingTime)
	}
	if in.Checkout != "Yes" && in.Checkout != "No" {
		return rec, fmt.Errorf("unknown checkout choice %q", in.Checkout)
	}
	if in.Visitor != "New Visitor" && in.Visitor != "Returning Visitor" {
		return rec, fmt.Errorf("unknown visitor type %q", in.Visitor)
	}

	pageValue, ok := IntentScore(in.Intent)
	if !ok {
		return rec, fmt.Errorf("unknown intent level %q", in.Intent)
	}
	bounce, ok := BounceRate(in.Bounce)
	if !ok {
		return rec, fmt.Errorf("unknown bounce behavior %q", in.Bounce)
	}
	exit, ok := ExitRate(in.Exit)
	if !ok {
		return rec, fmt.Errorf("unknown exit behavior %q", in.Exit)
	}

	admin, adminTime := 0, 0
	if in.Checkout == "Yes" {
		admin, adminTime = checkoutAdminPages, checkoutAdminDuration
	}

	visitorType := models.VisitorNew
	if in.Visitor == "Returning Visitor" {
		visitorType = models.VisitorReturning
	}

	rec = models.FeatureRecord{
		Administrative:         admin,
		AdministrativeDuration: adminTime,
		Informational:          0,
		InformationalDuration:  0,
		ProductRelated:         in.PagesViewed,
		ProductRelatedDuration: in.BrowsingTime,
		BounceRates:            bounce,
		ExitRates:              exit,
		PageValues:             pageValue,
		SpecialDay:             0,
		Month:                  "May",
		OperatingSystems:       1,
		Browser:                1,
		Region:                 1,
		TrafficType:            1,
		VisitorType:            visitorType,
		Weekend:                false,
		TotalDuration:          adminTime + in.BrowsingTime,
		Extended:               opts.ExtendedSchema,
	}
	if opts.ExtendedSchema {
		rec.EngagementRatio = float64(in.PagesViewed) / float64(in.BrowsingTime+1)
	}
	return rec, nil
}
