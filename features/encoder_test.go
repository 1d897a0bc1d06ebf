package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoppersignal/api/models"
)

func validInput() models.SessionInput {
	return models.SessionInput{
		PagesViewed:  10,
		BrowsingTime: 300,
		Checkout:     "No",
		Intent:       "Medium",
		Visitor:      "New Visitor",
		Bounce:       "Medium (Unsure)",
		Exit:         "Medium (May leave)",
	}
}

func TestEncode_EndToEnd(t *testing.T) {
	in := models.SessionInput{
		PagesViewed:  25,
		BrowsingTime: 1200,
		Checkout:     "Yes",
		Intent:       "Very High",
		Visitor:      "Returning Visitor",
		Bounce:       "Very Low (Stays, very interested)",
		Exit:         "Very Low (Continues browsing)",
	}

	rec, err := Encode(in, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 25, rec.ProductRelated)
	assert.Equal(t, 1200, rec.ProductRelatedDuration)
	assert.Equal(t, 3, rec.Administrative)
	assert.Equal(t, 120, rec.AdministrativeDuration)
	assert.Equal(t, 200, rec.PageValues)
	assert.Equal(t, 0.01, rec.BounceRates)
	assert.Equal(t, 0.01, rec.ExitRates)
	assert.Equal(t, models.VisitorReturning, rec.VisitorType)
	assert.Equal(t, 1320, rec.TotalDuration)
}

func TestEncode_CheckoutDerivation(t *testing.T) {
	in := validInput()

	in.Checkout = "Yes"
	rec, err := Encode(in, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, rec.Administrative)
	assert.Equal(t, 120, rec.AdministrativeDuration)

	in.Checkout = "No"
	rec, err = Encode(in, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Administrative)
	assert.Equal(t, 0, rec.AdministrativeDuration)
}

func TestEncode_VisitorDerivation(t *testing.T) {
	in := validInput()

	in.Visitor = "Returning Visitor"
	rec, err := Encode(in, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, models.VisitorReturning, rec.VisitorType)

	in.Visitor = "New Visitor"
	rec, err = Encode(in, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, models.VisitorNew, rec.VisitorType)
}

func TestEncode_TotalDurationIdentity(t *testing.T) {
	for _, checkout := range CheckoutOptions {
		for _, browsing := range []int{0, 60, 1200, 3600} {
			in := validInput()
			in.Checkout = checkout
			in.BrowsingTime = browsing

			rec, err := Encode(in, DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, rec.AdministrativeDuration+rec.ProductRelatedDuration, rec.TotalDuration)
		}
	}
}

func TestEncode_ConstantColumns(t *testing.T) {
	rec, err := Encode(validInput(), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 0, rec.Informational)
	assert.Equal(t, 0, rec.InformationalDuration)
	assert.Equal(t, 0, rec.SpecialDay)
	assert.Equal(t, "May", rec.Month)
	assert.Equal(t, 1, rec.OperatingSystems)
	assert.Equal(t, 1, rec.Browser)
	assert.Equal(t, 1, rec.Region)
	assert.Equal(t, 1, rec.TrafficType)
	assert.False(t, rec.Weekend)
}

func TestEncode_EngagementRatio(t *testing.T) {
	in := validInput()
	in.PagesViewed = 25
	in.BrowsingTime = 1200

	rec, err := Encode(in, Options{ExtendedSchema: true})
	require.NoError(t, err)
	assert.InDelta(t, 25.0/1201.0, rec.EngagementRatio, 1e-12)

	rec, err = Encode(in, Options{ExtendedSchema: false})
	require.NoError(t, err)
	assert.Zero(t, rec.EngagementRatio)
	assert.NotContains(t, rec.FieldNames(), "Engagement_Ratio")
}

// The lookup tables have no defaults, so every combination of valid labels
// must map to exactly the fixed values below.
func TestEncode_AllCategoricalCombinations(t *testing.T) {
	wantIntent := map[string]int{
		"Very Low": 0, "Low": 30, "Medium": 80, "High": 140, "Very High": 200,
	}
	wantBounce := map[string]float64{
		"Very Low (Stays, very interested)": 0.01,
		"Low (Interested)":                  0.1,
		"Medium (Unsure)":                   0.3,
		"High (Likely leaving)":             0.6,
		"Very High (Leaves quickly)":        0.9,
	}
	wantExit := map[string]float64{
		"Very Low (Continues browsing)": 0.01,
		"Low (Still browsing)":          0.1,
		"Medium (May leave)":            0.3,
		"High (Likely exiting)":         0.6,
		"Very High (Exits immediately)": 0.9,
	}
	wantVisitor := map[string]string{
		"New Visitor":       models.VisitorNew,
		"Returning Visitor": models.VisitorReturning,
	}

	count := 0
	for _, intent := range IntentOptions {
		for _, visitor := range VisitorOptions {
			for _, bounce := range BounceOptions {
				for _, exit := range ExitOptions {
					in := validInput()
					in.Intent = intent
					in.Visitor = visitor
					in.Bounce = bounce
					in.Exit = exit

					rec, err := Encode(in, DefaultOptions())
					require.NoError(t, err)
					assert.Equal(t, wantIntent[intent], rec.PageValues)
					assert.Equal(t, wantBounce[bounce], rec.BounceRates)
					assert.Equal(t, wantExit[exit], rec.ExitRates)
					assert.Equal(t, wantVisitor[visitor], rec.VisitorType)
					count++
				}
			}
		}
	}
	assert.Equal(t, 5*2*5*5, count)
}

func TestEncode_FieldNamesConstant(t *testing.T) {
	base, err := Encode(validInput(), DefaultOptions())
	require.NoError(t, err)
	wantNames := base.FieldNames()
	assert.Len(t, wantNames, 19)
	assert.Len(t, base.Values(), 19)

	hot := models.SessionInput{
		PagesViewed: 25, BrowsingTime: 1200, Checkout: "Yes",
		Intent: "Very High", Visitor: "Returning Visitor",
		Bounce: "Very Low (Stays, very interested)", Exit: "Very Low (Continues browsing)",
	}
	rec, err := Encode(hot, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, wantNames, rec.FieldNames())
}

func TestEncode_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.SessionInput)
	}{
		{"pages too high", func(in *models.SessionInput) { in.PagesViewed = 101 }},
		{"pages negative", func(in *models.SessionInput) { in.PagesViewed = -1 }},
		{"time too high", func(in *models.SessionInput) { in.BrowsingTime = 3601 }},
		{"time negative", func(in *models.SessionInput) { in.BrowsingTime = -5 }},
		{"unknown checkout", func(in *models.SessionInput) { in.Checkout = "Maybe" }},
		{"unknown intent", func(in *models.SessionInput) { in.Intent = "Extreme" }},
		{"unknown visitor", func(in *models.SessionInput) { in.Visitor = "Robot" }},
		{"unknown bounce", func(in *models.SessionInput) { in.Bounce = "Low" }},
		{"unknown exit", func(in *models.SessionInput) { in.Exit = "High" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := Encode(in, DefaultOptions())
			assert.Error(t, err)
		})
	}
}
