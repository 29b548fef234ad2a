package booking

import (
	"math"
	"strconv"
	"strings"

	"gatherspace/models"
)

// Flat equipment fees in USD. Table and chair counts are not priced.
var equipmentFees = []struct {
	selected func(models.EquipmentNeeds) bool
	fee      float64
}{
	{func(e models.EquipmentNeeds) bool { return e.Projector }, 150},
	{func(e models.EquipmentNeeds) bool { return e.Microphone }, 50},
	{func(e models.EquipmentNeeds) bool { return e.Speakers }, 200},
	{func(e models.EquipmentNeeds) bool { return e.Stage }, 500},
	{func(e models.EquipmentNeeds) bool { return e.Lighting }, 300},
	{func(e models.EquipmentNeeds) bool { return e.DanceFloor }, 400},
}

// Per-head catering rates by service tier, USD.
var cateringPerHead = map[string]float64{
	models.CateringBasic: 35,
	models.CateringFull:  65,
}

// Per-head bar rates by package, USD. Priced independently of food service.
var barPerHead = map[string]float64{
	models.BarBeerWine: 25,
	models.BarFull:     45,
}

// Flat additional service fees in USD.
var additionalServiceFees = []struct {
	selected func(models.AdditionalServices) bool
	fee      float64
}{
	{func(s models.AdditionalServices) bool { return s.EventCoordinator }, 500},
	{func(s models.AdditionalServices) bool { return s.SecurityStaff }, 350},
	{func(s models.AdditionalServices) bool { return s.ValetParking }, 600},
	{func(s models.AdditionalServices) bool { return s.DecorationServices }, 800},
	{func(s models.AdditionalServices) bool { return s.CleanupCrew }, 250},
}

const (
	taxFeeRate  = 0.225
	depositRate = 0.3
	// Setup/breakdown hours are billed at half the venue's hourly rate.
	setupBreakdownRateFactor = 0.5
)

// BookedHours returns the whole-hour duration between two "HH:MM" times,
// wrapping past midnight when the end hour precedes the start hour. Only the
// hour component is considered.
func BookedHours(startTime, endTime string) int {
	startHour := leadingInt(strings.SplitN(startTime, ":", 2)[0])
	endHour := leadingInt(strings.SplitN(endTime, ":", 2)[0])
	if endHour >= startHour {
		return endHour - startHour
	}
	return 24 - startHour + endHour
}

// leadingInt parses the integer prefix of s ("2 hours" -> 2), returning 0 when
// there is none.
func leadingInt(s string) int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return n
}

// ComputePricing derives the full price breakdown from the venue and draft.
// It is a pure function and is recomputed whole on every draft change.
func ComputePricing(venue models.Venue, draft models.BookingDraft) models.PricingSnapshot {
	hours := BookedHours(draft.Event.StartTime, draft.Event.EndTime)

	basePrice := venue.PricePerHour * float64(hours)

	// When individually priced spaces are selected, their sum replaces the
	// whole-venue base price. Spaces and whole-venue pricing never add up.
	var spacesPrice float64
	if len(venue.Spaces) > 0 && len(draft.Space.SelectedSpaces) > 0 {
		for _, id := range draft.Space.SelectedSpaces {
			if space, ok := venue.SpaceByID(id); ok {
				spacesPrice += space.PricePerHour * float64(hours)
			}
		}
		if spacesPrice > 0 {
			basePrice = 0
		}
	}

	setupHours := leadingInt(draft.Event.SetupTime)
	breakdownHours := leadingInt(draft.Event.BreakdownTime)
	setupBreakdownPrice := float64(setupHours+breakdownHours) * venue.PricePerHour * setupBreakdownRateFactor

	var equipmentPrice float64
	for _, item := range equipmentFees {
		if item.selected(draft.Space.EquipmentNeeds) {
			equipmentPrice += item.fee
		}
	}

	guests := float64(leadingInt(draft.Event.ExpectedAttendance))
	cateringPrice := guests * cateringPerHead[draft.Space.CateringNeeds.Service]
	cateringPrice += guests * barPerHead[draft.Space.CateringNeeds.BarPackage]

	var servicesPrice float64
	for _, item := range additionalServiceFees {
		if item.selected(draft.Services.AdditionalServices) {
			servicesPrice += item.fee
		}
	}

	subtotal := basePrice + spacesPrice + setupBreakdownPrice + equipmentPrice + cateringPrice + servicesPrice
	taxFees := math.Round(subtotal * taxFeeRate)
	total := subtotal + taxFees
	deposit := math.Round(total * depositRate)

	return models.PricingSnapshot{
		BasePrice:           basePrice,
		SpacesPrice:         spacesPrice,
		SetupBreakdownPrice: setupBreakdownPrice,
		EquipmentPrice:      equipmentPrice,
		CateringPrice:       cateringPrice,
		ServicesPrice:       servicesPrice,
		Subtotal:            subtotal,
		TaxFees:             taxFees,
		Total:               total,
		Deposit:             deposit,
	}
}
