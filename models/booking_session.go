package models

// Wizard step numbers. Steps run 1..StepCount; a submitted session is terminal.
const (
	StepEventDetails   = 1
	StepSpaceSetup     = 2
	StepServicesAddons = 3
	StepContactPayment = 4
	StepReviewSubmit   = 5
	StepCount          = 5
)

// StepNames lists the wizard steps in order, for progress rendering.
var StepNames = []string{"Event Details", "Space & Setup", "Services", "Contact", "Review"}

// BookingSession holds the in-progress wizard state between the first request
// and submission. The venue is snapshotted into the session so pricing can be
// recomputed without a catalog round trip.
type BookingSession struct {
	SessionID   string          `json:"sessionId"`
	UserID      string          `json:"userId"`
	Venue       Venue           `json:"venue"`
	CurrentStep int             `json:"currentStep"`
	Draft       BookingDraft    `json:"draft"`
	Pricing     PricingSnapshot `json:"pricing"`
}

// StepStatus reports whether one wizard step's required fields are satisfied.
// Missing is advisory; it lists the unmet requirements for inline display.
type StepStatus struct {
	Step    int      `json:"step"`
	Name    string   `json:"name"`
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing,omitempty"`
}

// BookingSessionResponse is the wire shape returned for every session operation.
type BookingSessionResponse struct {
	SessionID    string          `json:"sessionId"`
	VenueID      string          `json:"venueId"`
	VenueName    string          `json:"venueName"`
	CurrentStep  int             `json:"currentStep"`
	Draft        BookingDraft    `json:"draft"`
	Pricing      PricingSnapshot `json:"pricing"`
	StepValidity []StepStatus    `json:"stepValidity"`
}
