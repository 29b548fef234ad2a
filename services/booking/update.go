package booking

import "gatherspace/models"

// ApplyUpdate applies a tagged draft update and returns the new draft. The
// input draft is not mutated; each touched section is replaced whole, so
// untouched sections remain shared.
func ApplyUpdate(draft models.BookingDraft, upd models.DraftUpdate) models.BookingDraft {
	if upd.Event != nil {
		draft.Event = *upd.Event
	}
	if upd.Space != nil {
		draft.Space = *upd.Space
	}
	if upd.Services != nil {
		draft.Services = *upd.Services
	}
	if upd.Contact != nil {
		draft.Contact = *upd.Contact
	}
	if upd.Review != nil {
		draft.Review = *upd.Review
	}

	if upd.SelectSpace != nil {
		draft.Space.SelectedSpaces = toggleSpace(draft.Space.SelectedSpaces, upd.SelectSpace.SpaceID, upd.SelectSpace.Selected)
	}
	if upd.AddVendor != nil {
		vendors := draft.Services.VendorInformation.OutsideVendors
		draft.Services.VendorInformation.OutsideVendors = append(append([]models.OutsideVendor{}, vendors...), *upd.AddVendor)
	}
	if upd.RemoveVendor != nil {
		draft.Services.VendorInformation.OutsideVendors = removeVendorAt(draft.Services.VendorInformation.OutsideVendors, *upd.RemoveVendor)
	}
	if upd.AlternativeDate != nil && upd.AlternativeDate.Index >= 0 && upd.AlternativeDate.Index < len(draft.Event.AlternativeDates) {
		draft.Event.AlternativeDates[upd.AlternativeDate.Index] = upd.AlternativeDate.Date
	}

	return draft
}

func toggleSpace(spaces []string, spaceID string, selected bool) []string {
	out := make([]string, 0, len(spaces)+1)
	for _, id := range spaces {
		if id != spaceID {
			out = append(out, id)
		}
	}
	if selected {
		out = append(out, spaceID)
	}
	return out
}

func removeVendorAt(vendors []models.OutsideVendor, index int) []models.OutsideVendor {
	if index < 0 || index >= len(vendors) {
		return vendors
	}
	out := make([]models.OutsideVendor, 0, len(vendors)-1)
	out = append(out, vendors[:index]...)
	return append(out, vendors[index+1:]...)
}
