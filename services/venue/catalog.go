package venue

import (
	"context"
	"fmt"
	"strings"
	"time"

	venueRepo "gatherspace/database/repository/venue"
	"gatherspace/models"
)

// Service exposes the venue directory.
type Service interface {
	GetVenueByID(id string) (*models.Venue, error)
	ListVenues(filter models.VenueFilter) ([]models.Venue, error)
}

// CatalogService serves venues from MongoDB when a repository is configured,
// falling back to the built-in catalog otherwise (tests, local development).
// Single-venue reads go through the cache when one is wired; every session
// start snapshots a venue, so the lookup is the catalog's hot path.
type CatalogService struct {
	Repo     venueRepo.VenueRepository
	Cache    VenueCache
	CacheTTL time.Duration
}

const defaultVenueCacheTTL = 10 * time.Minute

func (svc *CatalogService) cacheTTL() time.Duration {
	if svc.CacheTTL <= 0 {
		return defaultVenueCacheTTL
	}
	return svc.CacheTTL
}

// catalogSeed is the built-in venue catalog. It is also upserted into MongoDB
// at startup via SeedVenues.
var catalogSeed = []models.Venue{
	{
		ID:           "vn-grand-ballroom",
		Name:         "The Grand Ballroom",
		VenueType:    "ballroom",
		City:         "San Francisco",
		Address:      "1290 Market Street",
		Capacity:     500,
		PricePerHour: 300,
		Rating:       4.8,
		Amenities:    []string{"stage", "av-system", "catering-kitchen", "parking"},
		Spaces: []models.VenueSpace{
			{ID: "sp-main-hall", Name: "Main Hall", Capacity: 300, PricePerHour: 200, Description: "The full ballroom floor with stage access."},
			{ID: "sp-garden-terrace", Name: "Garden Terrace", Capacity: 150, PricePerHour: 120, Description: "Covered outdoor terrace adjoining the hall."},
			{ID: "sp-vip-lounge", Name: "VIP Lounge", Capacity: 50, PricePerHour: 80, Description: "Private lounge with its own bar."},
		},
	},
	{
		ID:           "vn-harbor-loft",
		Name:         "Harbor Loft",
		VenueType:    "loft",
		City:         "Oakland",
		Address:      "88 Embarcadero West",
		Capacity:     120,
		PricePerHour: 175,
		Rating:       4.6,
		Amenities:    []string{"waterfront", "av-system", "freight-elevator"},
		Spaces: []models.VenueSpace{
			{ID: "sp-loft-floor", Name: "Loft Floor", Capacity: 120, PricePerHour: 175, Description: "Open-plan industrial loft with harbor views."},
		},
	},
	{
		ID:           "vn-civic-hall",
		Name:         "Civic Hall",
		VenueType:    "hall",
		City:         "San Francisco",
		Address:      "400 Van Ness Avenue",
		Capacity:     350,
		PricePerHour: 220,
		Rating:       4.4,
		Amenities:    []string{"stage", "green-room", "box-office"},
	},
	{
		ID:           "vn-vineyard-estate",
		Name:         "Vineyard Estate",
		VenueType:    "estate",
		City:         "Napa",
		Address:      "3100 Silverado Trail",
		Capacity:     250,
		PricePerHour: 260,
		Rating:       4.9,
		Amenities:    []string{"gardens", "bridal-suite", "parking"},
		Spaces: []models.VenueSpace{
			{ID: "sp-barrel-room", Name: "Barrel Room", Capacity: 150, PricePerHour: 180, Description: "Candle-lit cellar among the barrels."},
			{ID: "sp-lawn", Name: "Great Lawn", Capacity: 250, PricePerHour: 140, Description: "Open lawn overlooking the vines."},
		},
	},
}

// GetVenueByID returns the venue with the given ID. The returned value is a
// copy; callers may mutate it freely.
func (svc *CatalogService) GetVenueByID(id string) (*models.Venue, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if svc.Cache != nil {
		if v, ok := svc.Cache.Get(ctx, id); ok {
			return v, nil
		}
	}

	venue, err := svc.lookupVenue(id)
	if err != nil {
		return nil, err
	}
	if svc.Cache != nil {
		svc.Cache.Set(ctx, venue, svc.cacheTTL())
	}
	return venue, nil
}

func (svc *CatalogService) lookupVenue(id string) (*models.Venue, error) {
	if svc.Repo != nil {
		return svc.Repo.GetByID(id)
	}
	for _, v := range catalogSeed {
		if v.ID == id {
			venue := v
			venue.Spaces = append([]models.VenueSpace{}, v.Spaces...)
			return &venue, nil
		}
	}
	return nil, fmt.Errorf("venue with id %s not found", id)
}

// ListVenues returns venues matching the directory filter.
func (svc *CatalogService) ListVenues(filter models.VenueFilter) ([]models.Venue, error) {
	if svc.Repo != nil {
		return svc.Repo.List(filter)
	}
	venues := make([]models.Venue, 0, len(catalogSeed))
	for _, v := range catalogSeed {
		if matchesFilter(v, filter) {
			venues = append(venues, v)
		}
	}
	return venues, nil
}

func matchesFilter(v models.Venue, f models.VenueFilter) bool {
	if f.VenueType != "" && !strings.EqualFold(v.VenueType, f.VenueType) {
		return false
	}
	if f.City != "" && !strings.EqualFold(v.City, f.City) {
		return false
	}
	if f.MinCapacity > 0 && v.Capacity < f.MinCapacity {
		return false
	}
	if f.MaxPricePerHour > 0 && v.PricePerHour > f.MaxPricePerHour {
		return false
	}
	return true
}

// SeedVenues upserts the built-in catalog into the repository.
func SeedVenues(repo venueRepo.VenueRepository) error {
	for i := range catalogSeed {
		v := catalogSeed[i]
		if err := repo.Upsert(&v); err != nil {
			return fmt.Errorf("failed to seed venue %s: %w", v.ID, err)
		}
	}
	return nil
}
