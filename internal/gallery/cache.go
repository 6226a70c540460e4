package gallery

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// listingKey is the single cache key; the listing is one cacheable unit.
const listingKey = "listing"

// ListingCache caches the full gallery listing for a short TTL so browse
// traffic does not hit PostgreSQL on every page load. The upload path calls
// Invalidate after a successful insert so a fresh read sees the new piece
// before the TTL expires.
//
// A zero or negative TTL disables caching entirely.
//
// ListingCache is safe for concurrent use.
type ListingCache struct {
	lru *expirable.LRU[string, []Artwork]
}

// NewListingCache creates a listing cache with the given TTL.
func NewListingCache(ttl time.Duration) *ListingCache {
	if ttl <= 0 {
		return &ListingCache{}
	}
	return &ListingCache{lru: expirable.NewLRU[string, []Artwork](1, nil, ttl)}
}

// Get returns the cached listing, if fresh.
func (c *ListingCache) Get() ([]Artwork, bool) {
	if c == nil || c.lru == nil {
		return nil, false
	}
	return c.lru.Get(listingKey)
}

// Put stores the listing.
func (c *ListingCache) Put(artworks []Artwork) {
	if c == nil || c.lru == nil {
		return
	}
	c.lru.Add(listingKey, artworks)
}

// Invalidate drops the cached listing. Called after every successful upload
// so stale listings never outlive a write.
func (c *ListingCache) Invalidate() {
	if c == nil || c.lru == nil {
		return
	}
	c.lru.Remove(listingKey)
}
