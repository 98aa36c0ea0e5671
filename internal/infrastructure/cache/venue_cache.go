package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"venuehub/internal/domain"
	"venuehub/internal/domain/entities"
	"venuehub/internal/ports/output"
)

var _ output.VenueRepository = (*VenueCache)(nil)

const venueKeyPrefix = "venuehub:venues:"

// cachedLimits are the bounded listings worth caching besides the full list.
var cachedLimits = []int{domain.DashboardVenues}

// VenueCache is a read-through cache in front of a VenueRepository. Listings
// are cached; any created venue drops them. Cache failures fall back to the
// repository.
type VenueCache struct {
	next  output.VenueRepository
	store Store
	ttl   time.Duration
}

func NewVenueCache(next output.VenueRepository, store Store, ttl time.Duration) *VenueCache {
	return &VenueCache{next: next, store: store, ttl: ttl}
}

func listKey(limit int) string {
	if limit <= 0 {
		return venueKeyPrefix + "all"
	}
	return fmt.Sprintf("%sfirst:%d", venueKeyPrefix, limit)
}

func (c *VenueCache) Count(ctx context.Context) (int64, error) {
	return c.next.Count(ctx)
}

func (c *VenueCache) List(ctx context.Context) ([]entities.Venue, error) {
	return c.ListFirst(ctx, 0)
}

func (c *VenueCache) ListFirst(ctx context.Context, limit int) ([]entities.Venue, error) {
	if limit > 0 && !slices.Contains(cachedLimits, limit) {
		return c.next.ListFirst(ctx, limit)
	}
	key := listKey(limit)
	if raw, err := c.store.Get(ctx, key); err == nil {
		var venues []entities.Venue
		if err := json.Unmarshal(raw, &venues); err == nil {
			return venues, nil
		}
	} else if !errors.Is(err, ErrMiss) {
		log.Printf("⚠️ Venue cache read %s: %v", key, err)
	}

	venues, err := c.next.ListFirst(ctx, limit)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(venues); err == nil {
		if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
			log.Printf("⚠️ Venue cache write %s: %v", key, err)
		}
	}
	return venues, nil
}

func (c *VenueCache) FindByID(ctx context.Context, id uint) (*entities.Venue, error) {
	return c.next.FindByID(ctx, id)
}

func (c *VenueCache) GetOrCreateByName(ctx context.Context, venue *entities.Venue) (bool, error) {
	created, err := c.next.GetOrCreateByName(ctx, venue)
	if err != nil || !created {
		return created, err
	}
	c.Invalidate(ctx)
	return true, nil
}

// Invalidate drops every cached listing.
func (c *VenueCache) Invalidate(ctx context.Context) {
	keys := []string{listKey(0)}
	for _, n := range cachedLimits {
		keys = append(keys, listKey(n))
	}
	if err := c.store.Del(ctx, keys...); err != nil {
		log.Printf("⚠️ Venue cache invalidate: %v", err)
	}
}
