package venue

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"gatherspace/models"
)

// VenueCache is a best-effort read cache in front of the venue repository.
// Misses and storage failures fall through to the repository silently.
type VenueCache interface {
	Get(ctx context.Context, id string) (*models.Venue, bool)
	Set(ctx context.Context, venue *models.Venue, ttl time.Duration)
}

// RedisVenueCache stores venues as JSON on the generic cache DB.
type RedisVenueCache struct {
	Client *redis.Client
}

func NewRedisVenueCache(client *redis.Client) *RedisVenueCache {
	return &RedisVenueCache{Client: client}
}

func venueKey(id string) string {
	return "venue:" + id
}

func (c *RedisVenueCache) Get(ctx context.Context, id string) (*models.Venue, bool) {
	data, err := c.Client.Get(ctx, venueKey(id)).Result()
	if err != nil {
		return nil, false
	}
	var venue models.Venue
	if err := json.Unmarshal([]byte(data), &venue); err != nil {
		return nil, false
	}
	return &venue, true
}

func (c *RedisVenueCache) Set(ctx context.Context, venue *models.Venue, ttl time.Duration) {
	data, err := json.Marshal(venue)
	if err != nil {
		return
	}
	c.Client.Set(ctx, venueKey(venue.ID), data, ttl)
}

// MemoryVenueCache keeps cached venues in process memory. It backs tests and
// single-node development without Redis.
type MemoryVenueCache struct {
	mu      sync.Mutex
	entries map[string]memoryVenueEntry
}

type memoryVenueEntry struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryVenueCache() *MemoryVenueCache {
	return &MemoryVenueCache{entries: make(map[string]memoryVenueEntry)}
}

func (c *MemoryVenueCache) Get(ctx context.Context, id string) (*models.Venue, bool) {
	c.mu.Lock()
	entry, ok := c.entries[id]
	if ok && time.Now().After(entry.expiresAt) {
		delete(c.entries, id)
		ok = false
	}
	c.mu.Unlock()
	if !ok {
		return nil, false
	}
	var venue models.Venue
	if err := json.Unmarshal(entry.data, &venue); err != nil {
		return nil, false
	}
	return &venue, true
}

func (c *MemoryVenueCache) Set(ctx context.Context, venue *models.Venue, ttl time.Duration) {
	data, err := json.Marshal(venue)
	if err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[venue.ID] = memoryVenueEntry{data: data, expiresAt: time.Now().Add(ttl)}
}
