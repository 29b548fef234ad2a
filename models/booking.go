package models

import "time"

// Booking statuses.
const (
	BookingStatusRequested = "Requested"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
)

// Booking represents a submitted booking request record.
type Booking struct {
	Reference string          `bson:"reference" json:"reference"` // e.g. "BK-7F2K9Q"
	VenueID   string          `bson:"venue_id" json:"venueId"`
	VenueName string          `bson:"venue_name" json:"venueName"`
	UserID    string          `bson:"user_id" json:"userId"`
	Draft     BookingDraft    `bson:"draft" json:"draft"`
	Pricing   PricingSnapshot `bson:"pricing" json:"pricing"`
	Status    string          `bson:"status" json:"status"`
	CreatedAt time.Time       `bson:"created_at" json:"createdAt"`
}
