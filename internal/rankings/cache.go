// Package rankings fetches and caches ranked player lists per position.
// The cache is session-lived: once a position is populated it never expires
// or refetches until the process restarts.
package rankings

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/pmurley/draft-bot/internal/models"
	"github.com/pmurley/draft-bot/pkg/logger"
)

// ErrRankingFetchFailed wraps a provider failure that survived the retry.
// The position's slot is left empty so the next call retries cleanly.
var ErrRankingFetchFailed = errors.New("ranking fetch failed")

// Cache is a position-keyed, in-memory store of ranked players, lazily
// populated from the provider. Concurrent callers for the same uncached
// position collapse into one provider fetch.
type Cache struct {
	provider Provider
	logger   *logger.Logger

	mu         sync.RWMutex
	byPosition map[models.Position]models.PlayerList
	group      singleflight.Group
}

func NewCache(provider Provider, log *logger.Logger) *Cache {
	return &Cache{
		provider:   provider,
		logger:     log,
		byPosition: make(map[models.Position]models.PlayerList),
	}
}

// Get returns the ranked players for a position, fetching from the provider
// on first use. Callers always receive an independent copy. A provider
// failure is retried once; if the retry also fails, nothing is stored and
// the error carries ErrRankingFetchFailed.
func (c *Cache) Get(pos models.Position) (models.PlayerList, error) {
	c.mu.RLock()
	cached, ok := c.byPosition[pos]
	c.mu.RUnlock()
	if ok {
		return cached.Clone(), nil
	}

	v, err, _ := c.group.Do(string(pos), func() (interface{}, error) {
		// A caller that lost the race may arrive after the winner stored
		c.mu.RLock()
		cached, ok := c.byPosition[pos]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		players, err := c.fetchWithRetry(pos)
		if err != nil {
			return nil, fmt.Errorf("%w: position %s: %v", ErrRankingFetchFailed, pos, err)
		}

		c.mu.Lock()
		c.byPosition[pos] = players
		c.mu.Unlock()
		return players, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(models.PlayerList).Clone(), nil
}

func (c *Cache) fetchWithRetry(pos models.Position) (models.PlayerList, error) {
	players, err := c.provider.FetchRankings(pos)
	if err == nil {
		return players, nil
	}
	c.logger.Warn("Rankings fetch failed for ", pos, ", retrying once: ", err)
	return c.provider.FetchRankings(pos)
}

// Positions returns the positions currently populated
func (c *Cache) Positions() []models.Position {
	c.mu.RLock()
	defer c.mu.RUnlock()
	positions := make([]models.Position, 0, len(c.byPosition))
	for pos := range c.byPosition {
		positions = append(positions, pos)
	}
	return positions
}

// SearchPlayers runs a suffix-tolerant name match across every cached
// position without triggering any fetches
func (c *Cache) SearchPlayers(query string) models.PlayerList {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var all models.PlayerList
	for _, players := range c.byPosition {
		all = append(all, players...)
	}
	return models.MatchPlayers(query, all)
}
