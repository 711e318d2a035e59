package models

import (
	"fmt"
	"strings"
)

// Player is one NFL player with a snapshot of their ranking data. A player
// is identified by the (Name, Team, Position) triple; every other field is
// informational.
type Player struct {
	Name            string
	Team            string // canonical abbreviation, TeamUnknown, or TeamFreeAgent
	Position        Position
	ByeWeek         int
	InjuryStatus    InjuryStatus
	Ranking         int // 1 = best; ties preserved as scraped
	ProjectedPoints float64
	Notes           string
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%s - %s)", p.Name, p.Position, p.Team)
}

// Key is the identity triple. Two spellings of the same real player must
// normalize to the same key before they meet in a map or comparison.
func (p *Player) Key() string {
	return fmt.Sprintf("%s|%s|%s", p.Name, p.Team, p.Position)
}

// Validate checks field-level constraints on ranking data. Sheet-derived
// players carry ByeWeek 0 (not available from the sheet) which is allowed;
// anything else outside 1-14 is bad data.
func (p *Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player has no name")
	}
	if p.ByeWeek != 0 && (p.ByeWeek < 1 || p.ByeWeek > 14) {
		return fmt.Errorf("player %s: bye week %d out of range 1-14", p.Name, p.ByeWeek)
	}
	if p.Ranking < 0 {
		return fmt.Errorf("player %s: negative ranking %d", p.Name, p.Ranking)
	}
	if p.ProjectedPoints < 0 {
		return fmt.Errorf("player %s: negative projected points %f", p.Name, p.ProjectedPoints)
	}
	return nil
}

var nameSuffixes = []string{"jr", "sr", "ii", "iii", "iv", "v"}

// NormalizeName lowercases a player name and strips punctuation and
// generational suffixes so two spellings of the same player compare equal.
// "Michael Penix Jr." and "michael penix" both come back "michael penix".
func NormalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.NewReplacer(".", "", "'", "", "-", " ", ",", " ").Replace(s)
	parts := strings.Fields(s)
	for len(parts) > 1 {
		last := parts[len(parts)-1]
		if !isNameSuffix(last) {
			break
		}
		parts = parts[:len(parts)-1]
	}
	return strings.Join(parts, " ")
}

func isNameSuffix(s string) bool {
	for _, suf := range nameSuffixes {
		if s == suf {
			return true
		}
	}
	return false
}

// TrimNameSuffix takes a full name like "Deebo Samuel Sr." and returns
// "Deebo Samuel" with the original casing intact.
func TrimNameSuffix(fullName string) string {
	suffixList := []string{"Jr.", "Jr", "Sr.", "Sr", "III", "II", "IV"}
	for _, s := range suffixList {
		fullName = strings.TrimSuffix(strings.TrimSpace(fullName), s)
	}
	return strings.TrimSpace(fullName)
}
