package models

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Michael Penix Jr.", expected: "michael penix"},
		{input: "michael penix", expected: "michael penix"},
		{input: "Deebo Samuel Sr.", expected: "deebo samuel"},
		{input: "Marvin Harrison Jr.", expected: "marvin harrison"},
		{input: "Brian Robinson Jr.", expected: "brian robinson"},
		{input: "A'Shawn Robinson", expected: "ashawn robinson"},
		{input: "Amon-Ra St. Brown", expected: "amon ra st brown"},
		{input: "  Josh   Allen ", expected: "josh allen"},
		{input: "Patrick Mahomes II", expected: "patrick mahomes"},
	}

	for _, tc := range tests {
		if got := NormalizeName(tc.input); got != tc.expected {
			t.Errorf("NormalizeName(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestTrimNameSuffix(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Deebo Samuel Sr.", expected: "Deebo Samuel"},
		{input: "Michael Penix Jr.", expected: "Michael Penix"},
		{input: "Josh Allen", expected: "Josh Allen"},
	}

	for _, tc := range tests {
		if got := TrimNameSuffix(tc.input); got != tc.expected {
			t.Errorf("TrimNameSuffix(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestMatchPlayersSuffixTolerance(t *testing.T) {
	candidates := PlayerList{
		{Name: "Michael Penix Jr.", Team: "ATL", Position: PosQB, Ranking: 18},
		{Name: "Josh Allen", Team: "BUF", Position: PosQB, Ranking: 1},
		{Name: "Jayden Daniels", Team: "WAS", Position: PosQB, Ranking: 4},
	}

	matches := MatchPlayers("Penix", candidates)
	if len(matches) != 1 {
		t.Fatalf("MatchPlayers(Penix) returned %d players, want 1", len(matches))
	}
	if matches[0].Name != "Michael Penix Jr." {
		t.Errorf("MatchPlayers(Penix) = %q, want the Jr.-suffixed player", matches[0].Name)
	}
}

func TestMatchPlayersAmbiguousOrderedByRanking(t *testing.T) {
	candidates := PlayerList{
		{Name: "Brian Robinson Jr.", Team: "WAS", Position: PosRB, Ranking: 30},
		{Name: "Bijan Robinson", Team: "ATL", Position: PosRB, Ranking: 2},
		{Name: "Wan'Dale Robinson", Team: "NYG", Position: PosWR, Ranking: 55},
	}

	matches := MatchPlayers("Robinson", candidates)
	if len(matches) != 3 {
		t.Fatalf("MatchPlayers(Robinson) returned %d players, want all 3", len(matches))
	}
	// Ties returned as a list ordered by ranking ascending, best first
	if matches[0].Name != "Bijan Robinson" || matches[2].Name != "Wan'Dale Robinson" {
		t.Errorf("matches not ordered by ranking: %v, %v, %v", matches[0].Name, matches[1].Name, matches[2].Name)
	}
}

func TestMatchPlayersFullName(t *testing.T) {
	candidates := PlayerList{
		{Name: "Brian Robinson Jr.", Team: "WAS", Position: PosRB, Ranking: 30},
		{Name: "Bijan Robinson", Team: "ATL", Position: PosRB, Ranking: 2},
	}

	matches := MatchPlayers("Brian Robinson", candidates)
	if len(matches) != 1 || matches[0].Name != "Brian Robinson Jr." {
		t.Fatalf("MatchPlayers(Brian Robinson) = %v, want only Brian Robinson Jr.", matches)
	}
}

func TestPlayerValidate(t *testing.T) {
	tests := []struct {
		name    string
		player  Player
		wantErr bool
	}{
		{name: "valid", player: Player{Name: "Josh Allen", Team: "BUF", Position: PosQB, ByeWeek: 7, Ranking: 1, ProjectedPoints: 390.5}},
		{name: "bye unknown", player: Player{Name: "Sheet Player", Team: "UNK", Position: PosRB, ByeWeek: 0}},
		{name: "bye too high", player: Player{Name: "Bad Bye", Team: "KC", Position: PosWR, ByeWeek: 15}, wantErr: true},
		{name: "bye negative", player: Player{Name: "Bad Bye", Team: "KC", Position: PosWR, ByeWeek: -1}, wantErr: true},
		{name: "no name", player: Player{Team: "KC", Position: PosWR, ByeWeek: 6}, wantErr: true},
		{name: "negative points", player: Player{Name: "X", Team: "KC", Position: PosWR, ByeWeek: 6, ProjectedPoints: -1}, wantErr: true},
	}

	for _, tc := range tests {
		err := tc.player.Validate()
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected validation error, got nil", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected validation error: %v", tc.name, err)
		}
	}
}

func TestPlayerKeyIdentity(t *testing.T) {
	a := Player{Name: "Josh Allen", Team: "BUF", Position: PosQB, Ranking: 1}
	b := Player{Name: "Josh Allen", Team: "BUF", Position: PosQB, Ranking: 99, Notes: "different snapshot"}
	if a.Key() != b.Key() {
		t.Error("players with the same identity triple should share a key")
	}

	c := Player{Name: "Josh Allen", Team: "BUF", Position: PosWR}
	if a.Key() == c.Key() {
		t.Error("players at different positions should not share a key")
	}
}
