package venue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatherspace/models"
)

func TestGetVenueByID(t *testing.T) {
	svc := &CatalogService{}

	v, err := svc.GetVenueByID("vn-grand-ballroom")
	require.NoError(t, err)
	assert.Equal(t, "The Grand Ballroom", v.Name)
	assert.Len(t, v.Spaces, 3)

	_, err = svc.GetVenueByID("vn-missing")
	assert.Error(t, err)
}

func TestGetVenueByIDReturnsCopy(t *testing.T) {
	svc := &CatalogService{}

	v, err := svc.GetVenueByID("vn-grand-ballroom")
	require.NoError(t, err)
	v.Spaces[0].PricePerHour = 1

	again, err := svc.GetVenueByID("vn-grand-ballroom")
	require.NoError(t, err)
	assert.Equal(t, 200.0, again.Spaces[0].PricePerHour)
}

func TestListVenuesFilters(t *testing.T) {
	svc := &CatalogService{}

	all, err := svc.ListVenues(models.VenueFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	sf, err := svc.ListVenues(models.VenueFilter{City: "san francisco"})
	require.NoError(t, err)
	assert.Len(t, sf, 2)

	big, err := svc.ListVenues(models.VenueFilter{MinCapacity: 300})
	require.NoError(t, err)
	assert.Len(t, big, 2)

	cheap, err := svc.ListVenues(models.VenueFilter{MaxPricePerHour: 200})
	require.NoError(t, err)
	require.Len(t, cheap, 1)
	assert.Equal(t, "Harbor Loft", cheap[0].Name)

	lofts, err := svc.ListVenues(models.VenueFilter{VenueType: "loft", City: "Oakland"})
	require.NoError(t, err)
	assert.Len(t, lofts, 1)

	none, err := svc.ListVenues(models.VenueFilter{VenueType: "stadium"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

// countingVenueRepo records how often the repository is actually hit.
type countingVenueRepo struct {
	gets int
}

func (r *countingVenueRepo) GetByID(id string) (*models.Venue, error) {
	r.gets++
	if id != "vn-counted" {
		return nil, assert.AnError
	}
	return &models.Venue{ID: "vn-counted", Name: "Counted Hall", PricePerHour: 100}, nil
}

func (r *countingVenueRepo) List(filter models.VenueFilter) ([]models.Venue, error) {
	return nil, nil
}

func (r *countingVenueRepo) Upsert(venue *models.Venue) error {
	return nil
}

func TestGetVenueByIDUsesCache(t *testing.T) {
	repo := &countingVenueRepo{}
	svc := &CatalogService{Repo: repo, Cache: NewMemoryVenueCache()}

	first, err := svc.GetVenueByID("vn-counted")
	require.NoError(t, err)
	assert.Equal(t, "Counted Hall", first.Name)

	second, err := svc.GetVenueByID("vn-counted")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.gets, "second lookup must be served from the cache")

	// Cached reads still hand out copies.
	second.PricePerHour = 1
	third, err := svc.GetVenueByID("vn-counted")
	require.NoError(t, err)
	assert.Equal(t, 100.0, third.PricePerHour)

	// Misses are never cached.
	_, err = svc.GetVenueByID("vn-missing")
	assert.Error(t, err)
	_, err = svc.GetVenueByID("vn-missing")
	assert.Error(t, err)
	assert.Equal(t, 3, repo.gets)
}

func TestSpaceByID(t *testing.T) {
	svc := &CatalogService{}
	v, err := svc.GetVenueByID("vn-vineyard-estate")
	require.NoError(t, err)

	space, ok := v.SpaceByID("sp-lawn")
	assert.True(t, ok)
	assert.Equal(t, "Great Lawn", space.Name)

	_, ok = v.SpaceByID("sp-missing")
	assert.False(t, ok)
}
