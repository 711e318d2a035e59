package draft

import (
	"fmt"
	"time"

	"github.com/pmurley/draft-bot/internal/cache"
	"github.com/pmurley/draft-bot/internal/models"
	"github.com/pmurley/draft-bot/internal/sheets"
	"github.com/pmurley/draft-bot/pkg/logger"
)

// GridFetcher returns the raw cell grid for a set of sheet coordinates
type GridFetcher interface {
	FetchGrid(coords sheets.Coordinates) ([][]string, error)
}

// Board exposes the current draft state for one configured sheet. Every
// read goes through the draft-state cache; a cache miss fetches the grid
// and reparses from scratch (no incremental pick diffing).
type Board struct {
	coords sheets.Coordinates
	client GridFetcher
	parser Parser
	cache  *cache.DraftStateCache
	logger *logger.Logger
}

func NewBoard(format Format, coords sheets.Coordinates, client GridFetcher, rankings RankingSource, ttl time.Duration, log *logger.Logger) (*Board, error) {
	parser, err := NewParser(format, rankings)
	if err != nil {
		return nil, fmt.Errorf("failed to create draft board: %w", err)
	}
	return &Board{
		coords: coords,
		client: client,
		parser: parser,
		cache:  cache.New(ttl, log),
		logger: log,
	}, nil
}

// DraftState returns the current draft state, cached or freshly parsed
func (b *Board) DraftState() (*models.DraftState, error) {
	return b.cache.GetOrFetch(b.coords.Key(), func() (*models.DraftState, error) {
		grid, err := b.client.FetchGrid(b.coords)
		if err != nil {
			return nil, err
		}
		return b.parser.Parse(grid)
	})
}

// Format reports which sheet layout this board is configured for
func (b *Board) Format() Format {
	return b.parser.Format()
}

// Refresh drops the cached state so the next read hits the sheet again
func (b *Board) Refresh() {
	b.cache.Flush()
}
