package models

import "fmt"

// DraftPick is one immutable record of a player being claimed. Owner is the
// exact owner string from the source sheet.
type DraftPick struct {
	Player Player
	Owner  string
}

func (dp DraftPick) String() string {
	return fmt.Sprintf("%s: %s", dp.Owner, dp.Player.String())
}

// TeamEntry pairs a sheet owner with their fantasy team name
type TeamEntry struct {
	Owner    string
	TeamName string
}

// DraftState is the canonical parse result: picks in chronological draft
// order plus one team entry per distinct owner found in the sheet.
type DraftState struct {
	Picks []DraftPick
	Teams []TeamEntry
}

// Validate enforces the owner-coverage invariant: every owner appearing in
// Picks must have a team entry. A pick with no matching team is a parse
// error, never a silently dropped record.
func (ds *DraftState) Validate() error {
	owners := make(map[string]bool, len(ds.Teams))
	for _, t := range ds.Teams {
		owners[t.Owner] = true
	}
	for _, p := range ds.Picks {
		if !owners[p.Owner] {
			return fmt.Errorf("pick %q has owner %q with no team entry", p.Player.Name, p.Owner)
		}
	}
	return nil
}

// PicksByOwner returns all picks for a specific owner, in draft order
func (ds *DraftState) PicksByOwner(owner string) []DraftPick {
	var picks []DraftPick
	for _, p := range ds.Picks {
		if p.Owner == owner {
			picks = append(picks, p)
		}
	}
	return picks
}

// DraftedPlayers returns the set of all drafted players keyed by identity
// triple
func (ds *DraftState) DraftedPlayers() map[string]Player {
	drafted := make(map[string]Player, len(ds.Picks))
	for _, p := range ds.Picks {
		drafted[p.Player.Key()] = p.Player
	}
	return drafted
}

// IsPlayerDrafted checks whether a player with the same identity triple has
// already been picked
func (ds *DraftState) IsPlayerDrafted(player Player) bool {
	_, ok := ds.DraftedPlayers()[player.Key()]
	return ok
}

// Clone returns a deep, independent copy. Caches hand out clones so no
// caller ever holds a mutable alias into cache-internal state.
func (ds *DraftState) Clone() *DraftState {
	if ds == nil {
		return nil
	}
	out := &DraftState{
		Picks: make([]DraftPick, len(ds.Picks)),
		Teams: make([]TeamEntry, len(ds.Teams)),
	}
	copy(out.Picks, ds.Picks)
	copy(out.Teams, ds.Teams)
	return out
}
