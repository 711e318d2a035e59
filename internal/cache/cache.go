// Package cache holds the single-slot, TTL-bounded cache over the most
// recently parsed draft state.
package cache

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/pmurley/draft-bot/internal/models"
	"github.com/pmurley/draft-bot/pkg/logger"
)

// FetchFunc performs the raw-grid fetch plus format parse for one set of
// sheet coordinates
type FetchFunc func() (*models.DraftState, error)

// DraftStateCache retains only the most recently built draft state, keyed
// by the exact sheet coordinates used to build it. A request with different
// coordinates evicts the old entry outright, but only once its own fetch
// has succeeded; a failed refresh never costs us stale-but-valid data.
type DraftStateCache struct {
	mu     sync.Mutex
	store  *gocache.Cache
	ttl    time.Duration
	logger *logger.Logger
}

func New(ttl time.Duration, log *logger.Logger) *DraftStateCache {
	return &DraftStateCache{
		store:  gocache.New(ttl, ttl*2),
		ttl:    ttl,
		logger: log,
	}
}

// GetOrFetch returns the cached state for the coordinate key when it is
// still within its TTL. On a miss or expiry it invokes fetch, retrying once
// on failure before surfacing the error. The mutex makes concurrent
// refreshes for the same key single-flight and the old-to-new swap atomic
// from a reader's perspective. Callers always receive a deep copy.
func (c *DraftStateCache) GetOrFetch(key string, fetch FetchFunc) (*models.DraftState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, found := c.store.Get(key); found {
		c.logger.Debug("Returning cached draft state for ", key)
		return v.(*models.DraftState).Clone(), nil
	}

	c.logger.Info("Fetching fresh draft state for ", key)
	state, err := fetch()
	if err != nil {
		c.logger.Warn("Draft state fetch failed, retrying once: ", err)
		state, err = fetch()
	}
	if err != nil {
		// Leave the cache exactly as it was so the next call retries cleanly
		return nil, err
	}

	c.store.Flush()
	c.store.Set(key, state.Clone(), c.ttl)
	return state.Clone(), nil
}

// Flush drops the cached entry so the next request refetches
func (c *DraftStateCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Flush()
}
