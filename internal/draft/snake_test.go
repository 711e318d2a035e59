package draft

import (
	"errors"
	"reflect"
	"testing"
)

// snakeGrid builds a full board: a round column plus player/position column
// pairs for Dan, Adam, and Maya.
func snakeGrid() [][]string {
	return [][]string{
		{"Round", "Dan", "", "Adam", "", "Maya", ""},
		{"", "Dan's Dynasty", "", "Adam's Army", "", "Maya's Marauders", ""},
		{"1", "Christian McCaffrey (SF)", "RB", "CeeDee Lamb (DAL)", "WR", "Tyreek Hill (MIA)", "WR"},
		{"2", "Josh Allen (BUF)", "QB", "Breece Hall (NYJ)", "RB", "Bijan Robinson (ATL)", "RB"},
		{"3", "Travis Kelce (KC)", "TE", "Justin Jefferson (MIN)", "WR", "Saquon Barkley (PHI)", "RB"},
	}
}

func auctionShapedGrid() [][]string {
	return [][]string{
		{"Dan", "", "Adam", ""},
		{"Player", "$", "Player", "$"},
		{"Hall, Breece", "52", "Allen, Josh", "38"},
	}
}

func TestSnakeRoundTripFullGrid(t *testing.T) {
	parser := &SnakeParser{}
	state, err := parser.Parse(snakeGrid())
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if len(state.Picks) != 9 {
		t.Fatalf("got %d picks from a full 3x3 grid, want 9", len(state.Picks))
	}
	if len(state.Teams) != 3 {
		t.Fatalf("got %d teams, want 3", len(state.Teams))
	}

	// Snake sequence: round 1 left to right, round 2 right to left, round 3
	// left to right again
	wantOwners := []string{
		"Dan", "Adam", "Maya",
		"Maya", "Adam", "Dan",
		"Dan", "Adam", "Maya",
	}
	for i, want := range wantOwners {
		if state.Picks[i].Owner != want {
			t.Errorf("pick %d owner = %q, want %q", i+1, state.Picks[i].Owner, want)
		}
	}

	// Round two snaps back, so the first pick of round two is Maya's
	fourth := state.Picks[3]
	if fourth.Player.Name != "Bijan Robinson" || fourth.Player.Team != "ATL" {
		t.Errorf("pick 4 = %v, want Bijan Robinson (ATL)", fourth.Player)
	}
}

func TestSnakeParseIdempotent(t *testing.T) {
	parser := &SnakeParser{}
	first, err := parser.Parse(snakeGrid())
	if err != nil {
		t.Fatalf("first parse failed: %v", err)
	}
	second, err := parser.Parse(snakeGrid())
	if err != nil {
		t.Fatalf("second parse failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("parsing the same grid twice produced different draft states")
	}
}

func TestSnakePartialSheet(t *testing.T) {
	grid := snakeGrid()
	grid[3][3] = "" // Adam's round 2 pick not made yet
	grid[3][4] = ""
	grid[4][1] = "" // Dan's round 3 pick not made yet
	grid[4][2] = ""

	parser := &SnakeParser{}
	state, err := parser.Parse(grid)
	if err != nil {
		t.Fatalf("partial sheet should parse cleanly: %v", err)
	}

	if len(state.Picks) != 7 {
		t.Fatalf("got %d picks with 7 populated cells, want 7", len(state.Picks))
	}

	// Round 2 snaps back Maya, (Adam missing), Dan
	round2 := state.Picks[3:5]
	if round2[0].Owner != "Maya" || round2[1].Owner != "Dan" {
		t.Errorf("round 2 order with a gap = %s, %s; want Maya, Dan", round2[0].Owner, round2[1].Owner)
	}
}

func TestSnakeOutOfOrderRowsNotReordered(t *testing.T) {
	grid := snakeGrid()
	// Round 3 fully populated while round 2 has a gap: rounds keep their
	// positions, no reordering across rounds
	grid[3][1] = ""
	grid[3][2] = ""

	parser := &SnakeParser{}
	state, err := parser.Parse(grid)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if len(state.Picks) != 8 {
		t.Fatalf("got %d picks, want 8", len(state.Picks))
	}
	// The last three picks must still be round 3's, in round-3 order
	last := state.Picks[5:]
	if last[0].Player.Name != "Travis Kelce" {
		t.Errorf("round 3 first pick = %q, want Travis Kelce", last[0].Player.Name)
	}
}

func TestSnakeUnknownTeamAbbrevPreserved(t *testing.T) {
	grid := snakeGrid()
	grid[2][1] = "Mystery Player (Xxz)"

	parser := &SnakeParser{}
	state, err := parser.Parse(grid)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	p := state.Picks[0].Player
	if p.Name != "Mystery Player" {
		t.Errorf("name = %q, want Mystery Player", p.Name)
	}
	if p.Team != "Xxz" {
		t.Errorf("unresolvable abbreviation should be preserved as given, casing included, got %q", p.Team)
	}
	if p.Notes == "" {
		t.Error("unresolved team should be flagged in notes")
	}
}

func TestSnakeTrailingAbbrevFormats(t *testing.T) {
	tests := []struct {
		cell     string
		wantName string
		wantTeam string
	}{
		{cell: "Josh Allen (BUF)", wantName: "Josh Allen", wantTeam: "BUF"},
		{cell: "Isiah Pacheco   KC", wantName: "Isiah Pacheco", wantTeam: "KC"},
		{cell: "DJ Moore -  CHI", wantName: "DJ Moore", wantTeam: "CHI"},
		{cell: "No Team Player", wantName: "No Team Player", wantTeam: ""},
	}

	for _, tc := range tests {
		name, team := splitNameTeam(tc.cell)
		if name != tc.wantName || team != tc.wantTeam {
			t.Errorf("splitNameTeam(%q) = (%q, %q), want (%q, %q)",
				tc.cell, name, team, tc.wantName, tc.wantTeam)
		}
	}
}

func TestSnakeRejectsAuctionGrid(t *testing.T) {
	parser := &SnakeParser{}
	_, err := parser.Parse(auctionShapedGrid())

	var mismatch *FormatMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected FormatMismatchError, got %v", err)
	}
	if mismatch.Format != FormatSnake {
		t.Errorf("mismatch names format %s, want %s", mismatch.Format, FormatSnake)
	}
}

func TestSnakeMissingHeaderIsParseError(t *testing.T) {
	parser := &SnakeParser{}
	_, err := parser.Parse([][]string{{"Round", "Dan", ""}})

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError for missing header rows, got %v", err)
	}
}

func TestParseDraftStateSelectsParser(t *testing.T) {
	state, err := ParseDraftState(snakeGrid(), FormatSnake, nil)
	if err != nil {
		t.Fatalf("ParseDraftState failed: %v", err)
	}
	if len(state.Picks) != 9 {
		t.Errorf("got %d picks, want 9", len(state.Picks))
	}

	if _, err := ParseDraftState(snakeGrid(), FormatAuction, nil); err == nil {
		t.Error("snake grid under the auction tag should fail, not fall back")
	}

	if _, err := ParseDraftState(snakeGrid(), Format("keeper"), nil); err == nil {
		t.Error("unknown format tag should be rejected")
	}
}
