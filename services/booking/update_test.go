package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gatherspace/models"
)

func TestApplyUpdateSectionReplace(t *testing.T) {
	draft := NewBookingDraft(nil)

	event := draft.Event
	event.EventType = "conference"
	event.EventName = "DevCon"

	updated := ApplyUpdate(draft, models.DraftUpdate{Event: &event})

	assert.Equal(t, "conference", updated.Event.EventType)
	assert.Equal(t, "DevCon", updated.Event.EventName)
	// Untouched sections carry over unchanged.
	assert.Equal(t, draft.Space, updated.Space)
	assert.Equal(t, draft.Contact, updated.Contact)
	// The input draft is not mutated.
	assert.Equal(t, "", draft.Event.EventType)
}

func TestApplyUpdateSpaceToggle(t *testing.T) {
	draft := NewBookingDraft(nil)

	draft = ApplyUpdate(draft, models.DraftUpdate{SelectSpace: &models.SpaceSelection{SpaceID: "sp-a", Selected: true}})
	draft = ApplyUpdate(draft, models.DraftUpdate{SelectSpace: &models.SpaceSelection{SpaceID: "sp-b", Selected: true}})
	assert.Equal(t, []string{"sp-a", "sp-b"}, draft.Space.SelectedSpaces)

	// Re-selecting is idempotent.
	draft = ApplyUpdate(draft, models.DraftUpdate{SelectSpace: &models.SpaceSelection{SpaceID: "sp-b", Selected: true}})
	assert.Equal(t, []string{"sp-a", "sp-b"}, draft.Space.SelectedSpaces)

	draft = ApplyUpdate(draft, models.DraftUpdate{SelectSpace: &models.SpaceSelection{SpaceID: "sp-a", Selected: false}})
	assert.Equal(t, []string{"sp-b"}, draft.Space.SelectedSpaces)
}

func TestApplyUpdateVendors(t *testing.T) {
	draft := NewBookingDraft(nil)
	vendor := models.OutsideVendor{Type: "florist", Name: "Bloom & Co", Contact: "555-0100"}

	draft = ApplyUpdate(draft, models.DraftUpdate{AddVendor: &vendor})
	assert.Equal(t, []models.OutsideVendor{vendor}, draft.Services.VendorInformation.OutsideVendors)

	second := models.OutsideVendor{Type: "dj", Name: "Night Beats", Contact: "555-0101"}
	draft = ApplyUpdate(draft, models.DraftUpdate{AddVendor: &second})

	idx := 0
	draft = ApplyUpdate(draft, models.DraftUpdate{RemoveVendor: &idx})
	assert.Equal(t, []models.OutsideVendor{second}, draft.Services.VendorInformation.OutsideVendors)

	// Out-of-range removal is ignored.
	bad := 7
	draft = ApplyUpdate(draft, models.DraftUpdate{RemoveVendor: &bad})
	assert.Len(t, draft.Services.VendorInformation.OutsideVendors, 1)
}

func TestApplyUpdateAlternativeDates(t *testing.T) {
	draft := NewBookingDraft(nil)

	draft = ApplyUpdate(draft, models.DraftUpdate{AlternativeDate: &models.AlternativeDateUpdate{Index: 1, Date: "2026-10-01"}})
	assert.Equal(t, "", draft.Event.AlternativeDates[0])
	assert.Equal(t, "2026-10-01", draft.Event.AlternativeDates[1])

	// An out-of-range index is ignored.
	draft = ApplyUpdate(draft, models.DraftUpdate{AlternativeDate: &models.AlternativeDateUpdate{Index: 2, Date: "2026-10-02"}})
	assert.Equal(t, [2]string{"", "2026-10-01"}, draft.Event.AlternativeDates)
}
