package booking

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatherspace/models"
)

func testVenue() models.Venue {
	return models.Venue{
		ID:           "vn-test",
		Name:         "Test Hall",
		PricePerHour: 300,
		Spaces: []models.VenueSpace{
			{ID: "sp-a", Name: "Hall A", PricePerHour: 200},
			{ID: "sp-b", Name: "Hall B", PricePerHour: 120},
		},
	}
}

func emptyDraft() models.BookingDraft {
	draft := NewBookingDraft(nil)
	draft.Event.SetupTime = "0 hours"
	draft.Event.BreakdownTime = "0 hours"
	return draft
}

func TestBookedHours(t *testing.T) {
	assert.Equal(t, 5, BookedHours("18:00", "23:00"))
	assert.Equal(t, 0, BookedHours("10:00", "10:30")) // minutes are ignored
	assert.Equal(t, 4, BookedHours("22:00", "02:00")) // wraps past midnight
	assert.Equal(t, 0, BookedHours("00:00", "00:00")) // equal endpoints are zero hours
}

func TestComputePricingBaseOnly(t *testing.T) {
	venue := testVenue()
	venue.Spaces = nil
	draft := emptyDraft()

	p := ComputePricing(venue, draft)

	// 300/hr for 18:00-23:00 is 5 hours.
	assert.Equal(t, 1500.0, p.BasePrice)
	assert.Equal(t, 0.0, p.SpacesPrice)
	assert.Equal(t, 1500.0, p.Subtotal)
	assert.Equal(t, 338.0, p.TaxFees) // round(1500*0.225)
	assert.Equal(t, 1838.0, p.Total)
	assert.Equal(t, 551.0, p.Deposit) // round(1838*0.3)
}

func TestComputePricingSelectedSpacesReplaceBase(t *testing.T) {
	venue := testVenue()
	draft := emptyDraft()
	draft.Space.SelectedSpaces = []string{"sp-a", "sp-b"}

	p := ComputePricing(venue, draft)

	assert.Equal(t, 0.0, p.BasePrice, "base price must be zero once priced spaces are selected")
	assert.Equal(t, (200.0+120.0)*5, p.SpacesPrice)
}

func TestComputePricingUnknownSpaceKeepsBase(t *testing.T) {
	venue := testVenue()
	draft := emptyDraft()
	draft.Space.SelectedSpaces = []string{"sp-nope"}

	p := ComputePricing(venue, draft)

	assert.Equal(t, 1500.0, p.BasePrice)
	assert.Equal(t, 0.0, p.SpacesPrice)
}

func TestComputePricingSetupBreakdown(t *testing.T) {
	venue := testVenue()
	venue.Spaces = nil
	draft := emptyDraft()
	draft.Event.SetupTime = "2 hours"
	draft.Event.BreakdownTime = "1 hour"

	p := ComputePricing(venue, draft)

	// 3 hours at half the 300/hr rate.
	assert.Equal(t, 450.0, p.SetupBreakdownPrice)
}

func TestComputePricingCatering(t *testing.T) {
	venue := testVenue()
	draft := emptyDraft()
	draft.Event.ExpectedAttendance = "100"
	draft.Space.CateringNeeds.Service = models.CateringFull
	draft.Space.CateringNeeds.BarPackage = models.BarFull

	p := ComputePricing(venue, draft)

	// 100*65 food + 100*45 bar; the two price independently.
	assert.Equal(t, 11000.0, p.CateringPrice)
}

func TestComputePricingEquipmentAndServices(t *testing.T) {
	venue := testVenue()
	draft := emptyDraft()
	draft.Space.EquipmentNeeds.Projector = true
	draft.Space.EquipmentNeeds.Stage = true
	draft.Space.EquipmentNeeds.Tables = true // not priced
	draft.Space.EquipmentNeeds.TablesCount = 40
	draft.Services.AdditionalServices.EventCoordinator = true
	draft.Services.AdditionalServices.CleanupCrew = true

	p := ComputePricing(venue, draft)

	assert.Equal(t, 650.0, p.EquipmentPrice)
	assert.Equal(t, 750.0, p.ServicesPrice)
}

func TestComputePricingZeroSubtotal(t *testing.T) {
	venue := models.Venue{ID: "vn-free", PricePerHour: 0}
	draft := emptyDraft()

	p := ComputePricing(venue, draft)

	assert.Equal(t, 0.0, p.Subtotal)
	assert.Equal(t, 0.0, p.TaxFees)
	assert.Equal(t, 0.0, p.Total)
	assert.Equal(t, 0.0, p.Deposit)
}

func TestComputePricingInvariantsRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	venue := testVenue()
	services := []string{models.CateringNone, models.CateringBasic, models.CateringFull}
	bars := []string{models.BarNone, models.BarBeerWine, models.BarFull}
	spaceChoices := [][]string{nil, {"sp-a"}, {"sp-b"}, {"sp-a", "sp-b"}}

	for i := 0; i < 500; i++ {
		draft := emptyDraft()
		draft.Event.StartTime = []string{"08:00", "12:00", "18:00", "22:00"}[rng.Intn(4)]
		draft.Event.EndTime = []string{"02:00", "11:00", "17:00", "23:00"}[rng.Intn(4)]
		draft.Event.SetupTime = []string{"0 hours", "1 hour", "2 hours", "4 hours"}[rng.Intn(4)]
		draft.Event.BreakdownTime = []string{"0 hours", "1 hour", "3 hours"}[rng.Intn(3)]
		draft.Event.ExpectedAttendance = []string{"", "25", "100", "400"}[rng.Intn(4)]
		draft.Space.SelectedSpaces = spaceChoices[rng.Intn(len(spaceChoices))]
		draft.Space.CateringNeeds.Service = services[rng.Intn(3)]
		draft.Space.CateringNeeds.BarPackage = bars[rng.Intn(3)]
		draft.Space.EquipmentNeeds.Projector = rng.Intn(2) == 0
		draft.Space.EquipmentNeeds.Speakers = rng.Intn(2) == 0
		draft.Space.EquipmentNeeds.DanceFloor = rng.Intn(2) == 0
		draft.Services.AdditionalServices.SecurityStaff = rng.Intn(2) == 0
		draft.Services.AdditionalServices.ValetParking = rng.Intn(2) == 0

		p := ComputePricing(venue, draft)

		sum := p.BasePrice + p.SpacesPrice + p.SetupBreakdownPrice + p.EquipmentPrice + p.CateringPrice + p.ServicesPrice
		require.Equal(t, sum, p.Subtotal, "subtotal must equal the sum of its six components")
		require.Equal(t, math.Round(p.Subtotal*0.225), p.TaxFees)
		require.Equal(t, p.Subtotal+p.TaxFees, p.Total)
		require.Equal(t, math.Round(p.Total*0.3), p.Deposit)

		if len(draft.Space.SelectedSpaces) > 0 {
			require.Equal(t, 0.0, p.BasePrice, "spaces and whole-venue pricing are mutually exclusive")
		}

		// Determinism: the derivation is pure.
		require.Equal(t, p, ComputePricing(venue, draft))
	}
}
