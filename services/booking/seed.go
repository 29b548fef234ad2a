package booking

import (
	"time"

	"gatherspace/models"
)

// NewBookingDraft seeds a draft with the defaults every session starts from.
// All fields are populated; there are no optional leaves. Contact details are
// prefilled from the user when one is known.
func NewBookingDraft(user *models.User) models.BookingDraft {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	draft := models.BookingDraft{
		Event: models.EventDetails{
			AgeRange:      "All ages",
			PrimaryDate:   tomorrow,
			StartTime:     "18:00",
			EndTime:       "23:00",
			SetupTime:     "2 hours",
			BreakdownTime: "1 hour",
		},
		Space: models.SpaceSetup{
			SelectedSpaces:   []string{},
			LayoutPreference: models.LayoutReception,
			EquipmentNeeds: models.EquipmentNeeds{
				TablesCount: 10,
				ChairsCount: 100,
			},
			CateringNeeds: models.CateringNeeds{
				Service:    models.CateringNone,
				BarPackage: models.BarNone,
			},
		},
		Services: models.ServicesAddons{
			VendorInformation: models.VendorInformation{
				UsingVenuePreferred: true,
				OutsideVendors:      []models.OutsideVendor{},
			},
		},
		Contact: models.ContactPayment{
			ContactInfo: models.ContactInfo{
				BestContactTime: "anytime",
			},
			BudgetRange:   models.BudgetRange{Min: 0, Max: 10000},
			PaymentMethod: "creditCard",
		},
	}

	if user != nil {
		draft.Contact.ContactInfo.FullName = user.Name
		draft.Contact.ContactInfo.Organization = user.Organization
		draft.Contact.ContactInfo.Email = user.Email
		draft.Contact.ContactInfo.Phone = user.Phone
	}

	return draft
}
