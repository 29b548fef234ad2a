package models

// Layout preference options for an event space.
const (
	LayoutReception = "reception"
	LayoutBanquet   = "banquet"
	LayoutTheater   = "theater"
	LayoutClassroom = "classroom"
	LayoutBoardroom = "boardroom"
	LayoutUShape    = "u-shape"
	LayoutCabaret   = "cabaret"
	LayoutCustom    = "custom"
)

// Catering service tiers.
const (
	CateringNone  = "none"
	CateringBasic = "basic"
	CateringFull  = "full"
)

// Bar package tiers.
const (
	BarNone     = "none"
	BarBeerWine = "beer-wine"
	BarFull     = "full-bar"
	BarCustom   = "custom"
)

// EventDetails covers step 1 of the booking wizard.
type EventDetails struct {
	EventType          string    `bson:"event_type" json:"eventType"`
	EventName          string    `bson:"event_name" json:"eventName"`
	EventDescription   string    `bson:"event_description" json:"eventDescription"`
	ExpectedAttendance string    `bson:"expected_attendance" json:"expectedAttendance"`
	AgeRange           string    `bson:"age_range" json:"ageRange"`
	IsPublicEvent      bool      `bson:"is_public_event" json:"isPublicEvent"`
	PrimaryDate        string    `bson:"primary_date" json:"primaryDate"`
	AlternativeDates   [2]string `bson:"alternative_dates" json:"alternativeDates"`
	StartTime          string    `bson:"start_time" json:"startTime"`
	EndTime            string    `bson:"end_time" json:"endTime"`
	SetupTime          string    `bson:"setup_time" json:"setupTime"`
	BreakdownTime      string    `bson:"breakdown_time" json:"breakdownTime"`
	IsFlexibleDates    bool      `bson:"is_flexible_dates" json:"isFlexibleDates"`
}

// EquipmentNeeds holds the equipment flags and furniture counts for step 2.
// Table and chair counts are informational and not priced.
type EquipmentNeeds struct {
	Projector   bool `bson:"projector" json:"projector"`
	Microphone  bool `bson:"microphone" json:"microphone"`
	Speakers    bool `bson:"speakers" json:"speakers"`
	Stage       bool `bson:"stage" json:"stage"`
	Lighting    bool `bson:"lighting" json:"lighting"`
	DanceFloor  bool `bson:"dance_floor" json:"danceFloor"`
	Tables      bool `bson:"tables" json:"tables"`
	Chairs      bool `bson:"chairs" json:"chairs"`
	TablesCount int  `bson:"tables_count" json:"tablesCount"`
	ChairsCount int  `bson:"chairs_count" json:"chairsCount"`
}

// CateringNeeds holds the catering selections for step 2. Food service and bar
// package are independent choices and price independently.
type CateringNeeds struct {
	Service             string `bson:"service" json:"service"`
	DietaryRequirements string `bson:"dietary_requirements" json:"dietaryRequirements"`
	BarPackage          string `bson:"bar_package" json:"barPackage"`
}

// SpaceSetup covers step 2 of the booking wizard.
type SpaceSetup struct {
	SelectedSpaces           []string       `bson:"selected_spaces" json:"selectedSpaces"`
	LayoutPreference         string         `bson:"layout_preference" json:"layoutPreference"`
	CustomLayoutRequirements string         `bson:"custom_layout_requirements" json:"customLayoutRequirements"`
	EquipmentNeeds           EquipmentNeeds `bson:"equipment_needs" json:"equipmentNeeds"`
	CateringNeeds            CateringNeeds  `bson:"catering_needs" json:"cateringNeeds"`
}

// AdditionalServices holds the flat-fee add-on selections for step 3.
type AdditionalServices struct {
	EventCoordinator   bool `bson:"event_coordinator" json:"eventCoordinator"`
	SecurityStaff      bool `bson:"security_staff" json:"securityStaff"`
	ValetParking       bool `bson:"valet_parking" json:"valetParking"`
	DecorationServices bool `bson:"decoration_services" json:"decorationServices"`
	CleanupCrew        bool `bson:"cleanup_crew" json:"cleanupCrew"`
}

// OutsideVendor is a third-party vendor supplied by the client when the
// venue's preferred vendors are not used.
type OutsideVendor struct {
	Type    string `bson:"type" json:"type"`
	Name    string `bson:"name" json:"name"`
	Contact string `bson:"contact" json:"contact"`
}

// VendorInformation records whether venue-preferred vendors are used and, if
// not, the ordered list of outside vendors.
type VendorInformation struct {
	UsingVenuePreferred bool            `bson:"using_venue_preferred" json:"usingVenuePreferred"`
	OutsideVendors      []OutsideVendor `bson:"outside_vendors" json:"outsideVendors"`
}

// ServicesAddons covers step 3 of the booking wizard.
type ServicesAddons struct {
	AdditionalServices AdditionalServices `bson:"additional_services" json:"additionalServices"`
	VendorInformation  VendorInformation  `bson:"vendor_information" json:"vendorInformation"`
}

// ContactInfo holds the client's contact details for step 4.
type ContactInfo struct {
	FullName        string `bson:"full_name" json:"fullName"`
	Organization    string `bson:"organization" json:"organization"`
	Email           string `bson:"email" json:"email"`
	Phone           string `bson:"phone" json:"phone"`
	BestContactTime string `bson:"best_contact_time" json:"bestContactTime"`
}

// BudgetRange is the client's stated budget for the event.
type BudgetRange struct {
	Min float64 `bson:"min" json:"min"`
	Max float64 `bson:"max" json:"max"`
}

// ContactPayment covers step 4 of the booking wizard. PaymentMethod is a label
// only; no payment gateway is involved.
type ContactPayment struct {
	ContactInfo   ContactInfo `bson:"contact_info" json:"contactInfo"`
	BudgetRange   BudgetRange `bson:"budget_range" json:"budgetRange"`
	PaymentMethod string      `bson:"payment_method" json:"paymentMethod"`
	SpecialNotes  string      `bson:"special_notes" json:"specialNotes"`
}

// Review covers step 5 of the booking wizard.
type Review struct {
	TermsAccepted              bool `bson:"terms_accepted" json:"termsAccepted"`
	CancellationPolicyAccepted bool `bson:"cancellation_policy_accepted" json:"cancellationPolicyAccepted"`
}

// BookingDraft is the full in-progress booking form state spanning all wizard
// steps. Every field is seeded with a default at session start; updates are
// whole-section replacements, never partial patches of individual leaves.
type BookingDraft struct {
	Event    EventDetails   `bson:"event" json:"event"`
	Space    SpaceSetup     `bson:"space" json:"space"`
	Services ServicesAddons `bson:"services" json:"services"`
	Contact  ContactPayment `bson:"contact" json:"contact"`
	Review   Review         `bson:"review" json:"review"`
}
