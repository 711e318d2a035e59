// Package draft turns raw spreadsheet grids into a canonical DraftState.
// Two physical layouts of the same logical draft board are supported, each
// behind its own Parser implementation selected by the configured format
// tag.
package draft

import (
	"fmt"

	"github.com/pmurley/draft-bot/internal/models"
)

// Format identifies one of the two supported sheet layouts
type Format string

const (
	FormatSnake   Format = "snake"
	FormatAuction Format = "auction"
)

// ParseFormat validates a configured format tag. An unrecognized tag is a
// configuration error, caught at startup rather than at parse time.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatSnake, FormatAuction:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unrecognized draft format %q (want %q or %q)", s, FormatSnake, FormatAuction)
	}
}

// RankingSource supplies ranked players per position. The auction parser
// uses it to recover team affiliations that its sheet layout does not carry.
type RankingSource interface {
	Get(pos models.Position) (models.PlayerList, error)
}

// Parser converts a raw cell grid into a DraftState. Validate confirms the
// grid's shape matches this parser's layout without extracting any picks.
type Parser interface {
	Format() Format
	Validate(grid [][]string) error
	Parse(grid [][]string) (*models.DraftState, error)
}

// NewParser selects the parser implementation for a format tag. rankings
// may be nil for the snake format, which never consults it.
func NewParser(format Format, rankings RankingSource) (Parser, error) {
	switch format {
	case FormatSnake:
		return &SnakeParser{}, nil
	case FormatAuction:
		return &AuctionParser{rankings: rankings}, nil
	default:
		return nil, fmt.Errorf("no parser for draft format %q", format)
	}
}

// ParseDraftState validates the grid against the declared format and, only
// if the shape checks out, hands it to that format's parser.
func ParseDraftState(grid [][]string, format Format, rankings RankingSource) (*models.DraftState, error) {
	parser, err := NewParser(format, rankings)
	if err != nil {
		return nil, err
	}
	if err := parser.Validate(grid); err != nil {
		return nil, err
	}
	return parser.Parse(grid)
}
