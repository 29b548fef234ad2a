package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gatherspace/models"
)

func filledDraft() models.BookingDraft {
	draft := NewBookingDraft(nil)
	draft.Event.EventType = "wedding"
	draft.Event.EventName = "Smith Reception"
	draft.Event.ExpectedAttendance = "120"
	draft.Space.SelectedSpaces = []string{"sp-a"}
	draft.Contact.ContactInfo.FullName = "Alex Johnson"
	draft.Contact.ContactInfo.Email = "alex.johnson@example.com"
	draft.Contact.ContactInfo.Phone = "(555) 123-4567"
	draft.Review.TermsAccepted = true
	draft.Review.CancellationPolicyAccepted = true
	return draft
}

func TestValidateStepEventDetails(t *testing.T) {
	venue := testVenue()
	draft := filledDraft()

	valid, missing := ValidateStep(venue, draft, models.StepEventDetails)
	assert.True(t, valid)
	assert.Empty(t, missing)
}

func TestValidateStepEventTypeEmptyBlocksStepOne(t *testing.T) {
	venue := testVenue()
	draft := filledDraft()
	draft.Event.EventType = ""

	valid, missing := ValidateStep(venue, draft, models.StepEventDetails)
	assert.False(t, valid)
	assert.Equal(t, []string{"eventType"}, missing)
}

func TestValidateStepSingleFieldFlip(t *testing.T) {
	venue := testVenue()

	// Toggling exactly one required field flips exactly its own step.
	fields := []struct {
		name  string
		clear func(*models.BookingDraft)
		step  int
	}{
		{"eventName", func(d *models.BookingDraft) { d.Event.EventName = "" }, models.StepEventDetails},
		{"expectedAttendance", func(d *models.BookingDraft) { d.Event.ExpectedAttendance = "" }, models.StepEventDetails},
		{"primaryDate", func(d *models.BookingDraft) { d.Event.PrimaryDate = "" }, models.StepEventDetails},
		{"contactInfo.fullName", func(d *models.BookingDraft) { d.Contact.ContactInfo.FullName = "" }, models.StepContactPayment},
		{"contactInfo.email", func(d *models.BookingDraft) { d.Contact.ContactInfo.Email = "" }, models.StepContactPayment},
		{"contactInfo.phone", func(d *models.BookingDraft) { d.Contact.ContactInfo.Phone = "" }, models.StepContactPayment},
		{"termsAccepted", func(d *models.BookingDraft) { d.Review.TermsAccepted = false }, models.StepReviewSubmit},
	}

	for _, f := range fields {
		draft := filledDraft()
		f.clear(&draft)
		for step := 1; step <= models.StepCount; step++ {
			valid, missing := ValidateStep(venue, draft, step)
			if step == f.step {
				assert.False(t, valid, "clearing %s must invalidate step %d", f.name, step)
				assert.Contains(t, missing, f.name)
			} else {
				assert.True(t, valid, "clearing %s must not leak into step %d", f.name, step)
			}
		}
	}
}

func TestValidateStepSpaceSelection(t *testing.T) {
	draft := filledDraft()
	draft.Space.SelectedSpaces = nil

	// Multiple spaces require a selection.
	multi := testVenue()
	valid, missing := ValidateStep(multi, draft, models.StepSpaceSetup)
	assert.False(t, valid)
	assert.Equal(t, []string{"selectedSpaces"}, missing)

	// A single-space venue is always valid for step 2.
	single := testVenue()
	single.Spaces = single.Spaces[:1]
	valid, _ = ValidateStep(single, draft, models.StepSpaceSetup)
	assert.True(t, valid)

	// So is a venue with no spaces at all.
	none := testVenue()
	none.Spaces = nil
	valid, _ = ValidateStep(none, draft, models.StepSpaceSetup)
	assert.True(t, valid)
}

func TestValidateStepOutsideVendors(t *testing.T) {
	venue := testVenue()
	draft := filledDraft()

	draft.Services.VendorInformation.UsingVenuePreferred = false
	valid, missing := ValidateStep(venue, draft, models.StepServicesAddons)
	assert.False(t, valid)
	assert.Equal(t, []string{"outsideVendors"}, missing)

	draft.Services.VendorInformation.OutsideVendors = []models.OutsideVendor{
		{Type: "catering", Name: "Sunrise Kitchen", Contact: "hello@sunrise.example"},
	}
	valid, _ = ValidateStep(venue, draft, models.StepServicesAddons)
	assert.True(t, valid)
}

func TestValidateStepReview(t *testing.T) {
	venue := testVenue()
	draft := filledDraft()
	draft.Review.TermsAccepted = false
	draft.Review.CancellationPolicyAccepted = false

	valid, missing := ValidateStep(venue, draft, models.StepReviewSubmit)
	assert.False(t, valid)
	assert.Equal(t, []string{"termsAccepted", "cancellationPolicyAccepted"}, missing)
}

func TestStepValidityCoversAllSteps(t *testing.T) {
	venue := testVenue()
	statuses := StepValidity(venue, filledDraft())

	assert.Len(t, statuses, models.StepCount)
	for i, st := range statuses {
		assert.Equal(t, i+1, st.Step)
		assert.Equal(t, models.StepNames[i], st.Name)
		assert.True(t, st.Valid)
	}
}
