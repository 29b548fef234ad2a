// File: database/repository/venue/venueMongoCrud.go
package venueRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gatherspace/models"
)

// GetByID fetches a venue document by its ID.
func (r *MongoVenueRepo) GetByID(id string) (*models.Venue, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var venue models.Venue
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&venue)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("venue with id %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch venue with id %s: %w", id, err)
	}
	return &venue, nil
}

// List returns venues matching the directory filter, sorted by rating.
func (r *MongoVenueRepo) List(filter models.VenueFilter) ([]models.Venue, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.VenueType != "" {
		query["venue_type"] = filter.VenueType
	}
	if filter.City != "" {
		query["city"] = filter.City
	}
	if filter.MinCapacity > 0 {
		query["capacity"] = bson.M{"$gte": filter.MinCapacity}
	}
	if filter.MaxPricePerHour > 0 {
		query["price_per_hour"] = bson.M{"$lte": filter.MaxPricePerHour}
	}

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	defer cursor.Close(ctx)

	var venues []models.Venue
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, fmt.Errorf("failed to decode venues: %w", err)
	}
	return venues, nil
}

// Upsert inserts or replaces a venue document by ID. Used to seed the catalog.
func (r *MongoVenueRepo) Upsert(venue *models.Venue) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": venue.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, venue, opts); err != nil {
		return fmt.Errorf("failed to upsert venue with id %s: %w", venue.ID, err)
	}
	return nil
}
