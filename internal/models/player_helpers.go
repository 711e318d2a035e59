package models

import (
	"sort"
	"strings"
)

// PlayerList is a slice of players with filter and search helpers
type PlayerList []Player

// FilterByPosition returns players at a specific position
func (pl PlayerList) FilterByPosition(pos Position) PlayerList {
	var filtered PlayerList
	for _, p := range pl {
		if p.Position == pos {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterByTeam returns players on a specific NFL team
func (pl PlayerList) FilterByTeam(team string) PlayerList {
	var filtered PlayerList
	teamUpper := strings.ToUpper(strings.TrimSpace(team))
	for _, p := range pl {
		if strings.ToUpper(p.Team) == teamUpper {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FindByNormalizedName returns players whose normalized full name equals the
// normalized query. Suffix differences (Jr., Sr., II-IV) do not break the
// match.
func (pl PlayerList) FindByNormalizedName(name string) PlayerList {
	var matches PlayerList
	want := NormalizeName(name)
	for _, p := range pl {
		if NormalizeName(p.Name) == want {
			matches = append(matches, p)
		}
	}
	return matches
}

// SortByRanking sorts players by ranking ascending (1 = best). Players with
// no ranking sort last.
func (pl PlayerList) SortByRanking() {
	sort.SliceStable(pl, func(i, j int) bool {
		ri, rj := pl[i].Ranking, pl[j].Ranking
		if ri == 0 {
			return false
		}
		if rj == 0 {
			return true
		}
		return ri < rj
	})
}

// Clone returns an independent copy so callers can never mutate
// cache-internal storage through a returned list
func (pl PlayerList) Clone() PlayerList {
	if pl == nil {
		return nil
	}
	out := make(PlayerList, len(pl))
	copy(out, pl)
	return out
}

// MatchPlayers finds candidates whose surname matches the query, ignoring
// generational suffixes on either side. A bare surname query like "Penix"
// matches "Michael Penix Jr.". When the query carries more than a surname,
// the full normalized names must match. Ambiguous results are all returned,
// ordered by ranking ascending, for the caller to narrow by team or
// position.
func MatchPlayers(query string, candidates PlayerList) PlayerList {
	q := NormalizeName(query)
	if q == "" {
		return nil
	}
	qParts := strings.Fields(q)

	var matches PlayerList
	for _, p := range candidates {
		name := NormalizeName(p.Name)
		if name == q {
			matches = append(matches, p)
			continue
		}
		// Surname-only query: match the candidate's last normalized token
		if len(qParts) == 1 {
			nameParts := strings.Fields(name)
			if len(nameParts) > 0 && nameParts[len(nameParts)-1] == q {
				matches = append(matches, p)
			}
		}
	}
	matches.SortByRanking()
	return matches
}
