package models

// VenueSpace is an individually bookable space within a venue, with its own
// hourly rate and capacity.
type VenueSpace struct {
	ID           string  `bson:"id" json:"id"`
	Name         string  `bson:"name" json:"name"`
	Capacity     int     `bson:"capacity" json:"capacity"`
	PricePerHour float64 `bson:"price_per_hour" json:"pricePerHour"`
	Description  string  `bson:"description,omitempty" json:"description,omitempty"`
}

// Venue represents a bookable venue in the directory.
type Venue struct {
	ID           string       `bson:"id" json:"id"`
	Name         string       `bson:"name" json:"name"`
	VenueType    string       `bson:"venue_type" json:"venueType"`
	City         string       `bson:"city" json:"city"`
	Address      string       `bson:"address" json:"address"`
	Capacity     int          `bson:"capacity" json:"capacity"`
	PricePerHour float64      `bson:"price_per_hour" json:"pricePerHour"`
	Rating       float64      `bson:"rating,omitempty" json:"rating,omitempty"`
	Images       []string     `bson:"images,omitempty" json:"images,omitempty"`
	Amenities    []string     `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Spaces       []VenueSpace `bson:"spaces,omitempty" json:"spaces,omitempty"`
}

// SpaceByID returns the space with the given ID, if the venue has one.
func (v *Venue) SpaceByID(id string) (VenueSpace, bool) {
	for _, s := range v.Spaces {
		if s.ID == id {
			return s, true
		}
	}
	return VenueSpace{}, false
}

// VenueFilter narrows a directory listing. Zero values mean "no constraint".
type VenueFilter struct {
	VenueType       string  `form:"type" json:"type"`
	City            string  `form:"city" json:"city"`
	MinCapacity     int     `form:"minCapacity" json:"minCapacity"`
	MaxPricePerHour float64 `form:"maxPricePerHour" json:"maxPricePerHour"`
}
