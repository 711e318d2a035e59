package draft

import (
	"fmt"
	"strings"

	"github.com/pmurley/draft-bot/internal/models"
)

// AuctionParser handles the row-oriented layout. Each owner has a Player
// column and a $ column; names are written "Last, First" with no team
// abbreviation, so team affiliation comes from the rankings cache. Auction
// prices are ignored.
type AuctionParser struct {
	rankings RankingSource
}

type auctionColumn struct {
	owner     string
	playerCol int
}

func (p *AuctionParser) Format() Format { return FormatAuction }

func (p *AuctionParser) Validate(grid [][]string) error {
	if len(grid) < 2 {
		return &ParseError{Reason: "auction sheet is missing its owner and Player/$ header rows"}
	}

	playerCount, dollarCount := 0, 0
	for _, c := range grid[1] {
		switch strings.ToLower(strings.TrimSpace(c)) {
		case "player":
			playerCount++
		case "$":
			dollarCount++
		}
	}

	if playerCount == 0 || dollarCount == 0 || abs(playerCount-dollarCount) > 1 {
		return &FormatMismatchError{
			Format:   FormatAuction,
			Expected: "alternating Player/$ column pairs in the second header row",
			Observed: fmt.Sprintf("%d Player and %d $ headers", playerCount, dollarCount),
		}
	}

	if len(p.columns(grid)) == 0 {
		return &FormatMismatchError{
			Format:   FormatAuction,
			Expected: "owner names above the Player columns",
			Observed: "no populated owner cells",
		}
	}

	return nil
}

// Parse extracts picks in row-major order: each row top to bottom,
// interleaved across owners in header order. An auction has no global turn
// order, so rows represent each owner's personal acquisition sequence and
// no cross-owner reconstruction is attempted. Owner columns may hold
// different numbers of picks; a shorter roster is not an error.
func (p *AuctionParser) Parse(grid [][]string) (*models.DraftState, error) {
	if err := p.Validate(grid); err != nil {
		return nil, err
	}

	cols := p.columns(grid)
	teams := make([]models.TeamEntry, 0, len(cols))
	for _, ac := range cols {
		teams = append(teams, models.TeamEntry{Owner: ac.owner, TeamName: ac.owner + "'s Team"})
	}

	var picks []models.DraftPick
	for rowIdx := 2; rowIdx < len(grid); rowIdx++ {
		for _, ac := range cols {
			name := cell(grid, rowIdx, ac.playerCol)
			if name == "" {
				continue
			}
			picks = append(picks, models.DraftPick{
				Player: p.auctionPlayer(name),
				Owner:  ac.owner,
			})
		}
	}

	state := &models.DraftState{Picks: picks, Teams: teams}
	if err := state.Validate(); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}
	return state, nil
}

// columns finds each owner's Player column from the two header rows
func (p *AuctionParser) columns(grid [][]string) []auctionColumn {
	var cols []auctionColumn
	width := gridWidth(grid)

	for col := 0; col < width; col++ {
		if !strings.EqualFold(cell(grid, 1, col), "player") {
			continue
		}
		owner := cell(grid, 0, col)
		if owner == "" {
			continue
		}
		cols = append(cols, auctionColumn{owner: owner, playerCol: col})
	}

	return cols
}

// auctionPlayer builds a player snapshot from a bare name cell. Defenses
// arrive as "<Franchise> D/ST"; everything else is "Last, First" and needs
// a rankings lookup for team and position. A name no position's rankings
// know stays in the state with an unknown team rather than failing the
// parse.
func (p *AuctionParser) auctionPlayer(raw string) models.Player {
	if isDefense(raw) {
		return defensePlayer(raw)
	}

	name := reverseLastFirst(raw)
	team, pos := p.lookupFromRankings(name)

	return models.Player{
		Name:         name,
		Team:         team,
		Position:     pos,
		InjuryStatus: models.InjuryHealthy,
	}
}

// lookupFromRankings tries each draftable position in fixed priority order
// (RB, WR, TE, QB, K, DST) until one position's rankings contain the name.
// Positions whose rankings cannot be fetched are skipped; the team lookup
// degrades, the parse does not abort.
func (p *AuctionParser) lookupFromRankings(name string) (string, models.Position) {
	if p.rankings == nil {
		return models.TeamUnknown, models.PosUnknown
	}

	for _, pos := range models.DraftablePositions {
		ranked, err := p.rankings.Get(pos)
		if err != nil {
			continue
		}
		if matches := ranked.FindByNormalizedName(name); len(matches) > 0 {
			return matches[0].Team, pos
		}
	}

	return models.TeamUnknown, models.PosUnknown
}

func isDefense(raw string) bool {
	return strings.Contains(strings.ToUpper(raw), "D/ST")
}

// defensePlayer maps "Ravens D/ST" to the franchise's canonical code with
// position DST. The cell text is kept as the display name.
func defensePlayer(raw string) models.Player {
	franchise := strings.TrimSpace(raw)
	upper := strings.ToUpper(franchise)
	if idx := strings.LastIndex(upper, "D/ST"); idx >= 0 {
		franchise = strings.TrimSpace(franchise[:idx])
	}

	team := models.TeamUnknown
	if t, err := models.LookupTeam(franchise); err == nil {
		team = t.Code
	}

	return models.Player{
		Name:         strings.TrimSpace(raw),
		Team:         team,
		Position:     models.PosDST,
		InjuryStatus: models.InjuryHealthy,
	}
}

// reverseLastFirst turns "Hall, Breece" into "Breece Hall" and
// "Harrison Jr., Marvin" into "Marvin Harrison Jr."
func reverseLastFirst(raw string) string {
	raw = strings.TrimSpace(raw)
	last, first, found := strings.Cut(raw, ",")
	if !found {
		return raw
	}
	return strings.TrimSpace(first) + " " + strings.TrimSpace(last)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
