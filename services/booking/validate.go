package booking

import "gatherspace/models"

// ValidateStep reports whether the given wizard step's required fields are
// satisfied, along with the list of unmet requirements. The list is advisory
// and drives the inline checklist on the client; it is never an error.
// Identical inputs always yield identical results.
func ValidateStep(venue models.Venue, draft models.BookingDraft, step int) (bool, []string) {
	var missing []string

	switch step {
	case models.StepEventDetails:
		if draft.Event.EventType == "" {
			missing = append(missing, "eventType")
		}
		if draft.Event.EventName == "" {
			missing = append(missing, "eventName")
		}
		if draft.Event.ExpectedAttendance == "" {
			missing = append(missing, "expectedAttendance")
		}
		if draft.Event.PrimaryDate == "" {
			missing = append(missing, "primaryDate")
		}
	case models.StepSpaceSetup:
		// Venues exposing more than one space require an explicit selection.
		if len(venue.Spaces) > 1 && len(draft.Space.SelectedSpaces) == 0 {
			missing = append(missing, "selectedSpaces")
		}
	case models.StepServicesAddons:
		// Declining the venue's preferred vendors requires listing at least one
		// outside vendor.
		if !draft.Services.VendorInformation.UsingVenuePreferred &&
			len(draft.Services.VendorInformation.OutsideVendors) == 0 {
			missing = append(missing, "outsideVendors")
		}
	case models.StepContactPayment:
		if draft.Contact.ContactInfo.FullName == "" {
			missing = append(missing, "contactInfo.fullName")
		}
		if draft.Contact.ContactInfo.Email == "" {
			missing = append(missing, "contactInfo.email")
		}
		if draft.Contact.ContactInfo.Phone == "" {
			missing = append(missing, "contactInfo.phone")
		}
	case models.StepReviewSubmit:
		if !draft.Review.TermsAccepted {
			missing = append(missing, "termsAccepted")
		}
		if !draft.Review.CancellationPolicyAccepted {
			missing = append(missing, "cancellationPolicyAccepted")
		}
	}

	return len(missing) == 0, missing
}

// StepValidity evaluates every wizard step against the draft.
func StepValidity(venue models.Venue, draft models.BookingDraft) []models.StepStatus {
	statuses := make([]models.StepStatus, 0, models.StepCount)
	for step := 1; step <= models.StepCount; step++ {
		valid, missing := ValidateStep(venue, draft, step)
		statuses = append(statuses, models.StepStatus{
			Step:    step,
			Name:    models.StepNames[step-1],
			Valid:   valid,
			Missing: missing,
		})
	}
	return statuses
}
