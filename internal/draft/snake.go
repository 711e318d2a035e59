package draft

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pmurley/draft-bot/internal/models"
)

// SnakeParser handles the column-per-team layout. Each team owns two
// adjacent columns, player (with an embedded team abbreviation) and
// position; column zero carries the round number. The first header row is
// the owners, the second their team names.
type SnakeParser struct{}

type snakeColumn struct {
	owner     string
	teamName  string
	playerCol int
	posCol    int
}

func (p *SnakeParser) Format() Format { return FormatSnake }

func (p *SnakeParser) Validate(grid [][]string) error {
	if len(grid) < 2 {
		return &ParseError{Reason: "snake sheet is missing its owner and team header rows"}
	}

	// Auction headers mean the wrong sheet or format tag was configured
	for _, c := range grid[1] {
		lc := strings.ToLower(strings.TrimSpace(c))
		if lc == "player" || lc == "$" {
			return &FormatMismatchError{
				Format:   FormatSnake,
				Expected: "team names in the second header row",
				Observed: "auction-style Player/$ headers",
			}
		}
	}

	dataCols := gridWidth(grid) - 1
	if dataCols < 2 || dataCols%2 != 0 {
		return &FormatMismatchError{
			Format:   FormatSnake,
			Expected: "a leading round column plus an even number of player/position column pairs",
			Observed: fmt.Sprintf("%d data columns", dataCols),
		}
	}

	if len(p.columns(grid)) == 0 {
		return &FormatMismatchError{
			Format:   FormatSnake,
			Expected: "owner names above team names in the header rows",
			Observed: "no populated owner/team column pairs",
		}
	}

	return nil
}

// Parse extracts picks and reconstructs chronological order with the
// standard snake traversal: round 1 runs left to right across owners,
// round 2 right to left, alternating every round. The traversal decides
// sequence regardless of which rows happen to be populated, because sheets
// get filled in by hand and not always in order. A later round populated
// while an earlier one has gaps is preserved as-is; rows are never
// reordered across rounds.
func (p *SnakeParser) Parse(grid [][]string) (*models.DraftState, error) {
	if err := p.Validate(grid); err != nil {
		return nil, err
	}

	cols := p.columns(grid)
	teams := make([]models.TeamEntry, 0, len(cols))
	for _, sc := range cols {
		teams = append(teams, models.TeamEntry{Owner: sc.owner, TeamName: sc.teamName})
	}

	type rawPick struct {
		round    int
		snakePos int
		rowIdx   int
		col      snakeColumn
		name     string
		pos      string
	}

	var found []rawPick
	for rowIdx := 2; rowIdx < len(grid); rowIdx++ {
		round, err := strconv.Atoi(cell(grid, rowIdx, 0))
		if err != nil || round < 1 {
			// spacer rows and repeated column headers between rounds
			continue
		}

		for i, sc := range cols {
			name := cell(grid, rowIdx, sc.playerCol)
			if name == "" || strings.EqualFold(name, "player") {
				// empty cell means not yet picked, never an error
				continue
			}

			snakePos := i
			if round%2 == 0 {
				snakePos = len(cols) - 1 - i
			}

			found = append(found, rawPick{
				round:    round,
				snakePos: snakePos,
				rowIdx:   rowIdx,
				col:      sc,
				name:     name,
				pos:      cell(grid, rowIdx, sc.posCol),
			})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].round != found[j].round {
			return found[i].round < found[j].round
		}
		if found[i].snakePos != found[j].snakePos {
			return found[i].snakePos < found[j].snakePos
		}
		return found[i].rowIdx < found[j].rowIdx
	})

	picks := make([]models.DraftPick, 0, len(found))
	for _, rp := range found {
		picks = append(picks, models.DraftPick{
			Player: snakePlayer(rp.name, rp.pos),
			Owner:  rp.col.owner,
		})
	}

	state := &models.DraftState{Picks: picks, Teams: teams}
	if err := state.Validate(); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}
	return state, nil
}

// columns scans the two header rows for owner/team pairs, left to right.
// Column order is the round-one draft order.
func (p *SnakeParser) columns(grid [][]string) []snakeColumn {
	var cols []snakeColumn
	width := gridWidth(grid)

	for col := 1; col+1 < width; col += 2 {
		owner := cell(grid, 0, col)
		teamName := cell(grid, 1, col)
		if owner == "" {
			continue
		}
		if teamName == "" {
			teamName = owner + "'s Team"
		}
		cols = append(cols, snakeColumn{
			owner:     owner,
			teamName:  teamName,
			playerCol: col,
			posCol:    col + 1,
		})
	}

	return cols
}

var (
	teamParenRe = regexp.MustCompile(`\(([A-Za-z]{2,3})\)\s*$`)
	teamTrailRe = regexp.MustCompile(`[\s\-]+([A-Z]{2,3})\s*$`)
)

// splitNameTeam pulls the embedded team abbreviation off a player cell.
// Handles "Josh Allen (BUF)", "Isiah Pacheco   KC", and "DJ Moore - CHI".
func splitNameTeam(raw string) (name, abbrev string) {
	raw = strings.TrimSpace(raw)
	if m := teamParenRe.FindStringSubmatchIndex(raw); m != nil {
		return strings.TrimSpace(raw[:m[0]]), raw[m[2]:m[3]]
	}
	if m := teamTrailRe.FindStringSubmatchIndex(raw); m != nil {
		return strings.TrimSpace(raw[:m[0]]), raw[m[2]:m[3]]
	}
	return raw, ""
}

// snakePlayer builds the pick's player snapshot. An abbreviation the team
// table does not know is preserved as written, with a note.
func snakePlayer(rawName, rawPos string) models.Player {
	name, abbrev := splitNameTeam(rawName)

	team := models.TeamUnknown
	notes := ""
	if abbrev != "" {
		code, err := models.NormalizeTeamAbbrev(abbrev)
		if err != nil {
			team = abbrev
			notes = "unrecognized team abbreviation from sheet"
		} else {
			team = code
		}
	}

	return models.Player{
		Name:         name,
		Team:         team,
		Position:     models.ParsePosition(rawPos),
		InjuryStatus: models.InjuryHealthy,
		Notes:        notes,
	}
}

func cell(grid [][]string, row, col int) string {
	if row >= len(grid) || col >= len(grid[row]) {
		return ""
	}
	return strings.TrimSpace(grid[row][col])
}

func gridWidth(grid [][]string) int {
	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}
