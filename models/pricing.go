package models

// PricingSnapshot is the derived price breakdown for a booking draft. It is
// recomputed whole from the venue and draft on every change, never patched.
// Subtotal always equals the sum of the six price components above it.
type PricingSnapshot struct {
	BasePrice           float64 `bson:"base_price" json:"basePrice"`
	SpacesPrice         float64 `bson:"spaces_price" json:"spacesPrice"`
	SetupBreakdownPrice float64 `bson:"setup_breakdown_price" json:"setupBreakdownPrice"`
	EquipmentPrice      float64 `bson:"equipment_price" json:"equipmentPrice"`
	CateringPrice       float64 `bson:"catering_price" json:"cateringPrice"`
	ServicesPrice       float64 `bson:"services_price" json:"servicesPrice"`
	Subtotal            float64 `bson:"subtotal" json:"subtotal"`
	TaxFees             float64 `bson:"tax_fees" json:"taxFees"`
	Total               float64 `bson:"total" json:"total"`
	Deposit             float64 `bson:"deposit" json:"deposit"`
}
