package models

// SpaceSelection toggles a single venue space in or out of the draft.
type SpaceSelection struct {
	SpaceID  string `json:"spaceId"`
	Selected bool   `json:"selected"`
}

// AlternativeDateUpdate replaces one of the two alternative dates.
type AlternativeDateUpdate struct {
	Index int    `json:"index"`
	Date  string `json:"date"`
}

// DraftUpdate is a tagged update message for the booking draft. Each non-nil
// field is applied in declaration order. Section fields replace the whole
// section; the list operations work on one entry at a time so the client can
// keep its ephemeral input rows out of the shared draft until committed.
type DraftUpdate struct {
	Event    *EventDetails   `json:"event,omitempty"`
	Space    *SpaceSetup     `json:"space,omitempty"`
	Services *ServicesAddons `json:"services,omitempty"`
	Contact  *ContactPayment `json:"contact,omitempty"`
	Review   *Review         `json:"review,omitempty"`

	SelectSpace     *SpaceSelection        `json:"selectSpace,omitempty"`
	AddVendor       *OutsideVendor         `json:"addVendor,omitempty"`
	RemoveVendor    *int                   `json:"removeVendor,omitempty"`
	AlternativeDate *AlternativeDateUpdate `json:"alternativeDate,omitempty"`
}
