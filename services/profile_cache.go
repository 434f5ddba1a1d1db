package services

import (
	"context"
	"sync"
	"time"

	"github.com/BasedOctavian/LayoverApp-sub001/models"
)

// ProfileLoader loads a profile from the backing store.
type ProfileLoader interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
}

type cacheEntry struct {
	profile  *models.UserProfile
	loadedAt time.Time
}

// ProfileCache is an explicit, TTL-bounded cache of loaded profiles keyed
// by user id. It is passed into consumers and invalidated explicitly;
// nothing in the engine relies on process-global state.
type ProfileCache struct {
	mu      sync.Mutex
	loader  ProfileLoader
	ttl     time.Duration
	entries map[string]cacheEntry

	// Now is overridable in tests; nil means time.Now.
	Now func() time.Time
}

// NewProfileCache builds a cache over the given loader.
func NewProfileCache(loader ProfileLoader, ttl time.Duration) *ProfileCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ProfileCache{
		loader:  loader,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *ProfileCache) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Get returns the cached profile when fresh, loading it otherwise.
func (c *ProfileCache) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	c.mu.Lock()
	entry, ok := c.entries[userID]
	c.mu.Unlock()

	if ok && c.now().Sub(entry.loadedAt) < c.ttl {
		return entry.profile, nil
	}

	profile, err := c.loader.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[userID] = cacheEntry{profile: profile, loadedAt: c.now()}
	c.mu.Unlock()

	return profile, nil
}

// Invalidate drops a single cached profile.
func (c *ProfileCache) Invalidate(userID string) {
	c.mu.Lock()
	delete(c.entries, userID)
	c.mu.Unlock()
}

// InvalidateAll drops every cached profile.
func (c *ProfileCache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
