package venueRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"gatherspace/database"
	"gatherspace/models"
)

// VenueRepository defines the interface for venue data access.
type VenueRepository interface {
	GetByID(id string) (*models.Venue, error)
	List(filter models.VenueFilter) ([]models.Venue, error)
	Upsert(venue *models.Venue) error
}

// MongoVenueRepo implements VenueRepository using MongoDB.
type MongoVenueRepo struct {
	coll *mongo.Collection
}

// NewMongoVenueRepo returns a VenueRepository backed by the "venues" collection.
func NewMongoVenueRepo() *MongoVenueRepo {
	return &MongoVenueRepo{coll: database.DB().Collection("venues")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
