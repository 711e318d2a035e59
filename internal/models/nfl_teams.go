package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTeam is returned when a raw team string matches nothing in the
// team table. Callers decide whether that is fatal or whether to keep the
// raw value.
var ErrUnknownTeam = errors.New("unknown team")

// TeamUnknown is the placeholder code for a player whose NFL team could not
// be determined. It is distinct from TeamFreeAgent.
const (
	TeamUnknown   = "UNK"
	TeamFreeAgent = "FA"
)

// NFLTeam holds every spelling a draft sheet or rankings page uses for a
// franchise. Code is the canonical abbreviation used throughout the bot.
type NFLTeam struct {
	Code    string   // canonical abbreviation, e.g. "KC"
	Loc     string   // location, e.g. "Kansas City"
	Mascot  string   // mascot, e.g. "Chiefs"
	Alt     []string // alternate abbreviations seen in rankings data, e.g. "KCC"
	Nick    []string // informal nicknames, e.g. "Philly"
}

func (t *NFLTeam) String() string {
	return t.Code
}

// Friendly returns the full franchise name
func (t *NFLTeam) Friendly() string {
	if t.Loc == "" {
		return t.Code
	}
	return fmt.Sprintf("%s %s", t.Loc, t.Mascot)
}

var nflTeams = []*NFLTeam{
	// NFC
	{Code: "ARI", Loc: "Arizona", Mascot: "Cardinals", Nick: []string{"Cards"}},
	{Code: "ATL", Loc: "Atlanta", Mascot: "Falcons"},
	{Code: "CAR", Loc: "Carolina", Mascot: "Panthers"},
	{Code: "CHI", Loc: "Chicago", Mascot: "Bears"},
	{Code: "DAL", Loc: "Dallas", Mascot: "Cowboys"},
	{Code: "DET", Loc: "Detroit", Mascot: "Lions"},
	{Code: "GB", Loc: "Green Bay", Mascot: "Packers", Alt: []string{"GBP"}},
	{Code: "LAR", Loc: "Los Angeles", Mascot: "Rams"},
	{Code: "MIN", Loc: "Minnesota", Mascot: "Vikings"},
	{Code: "NO", Loc: "New Orleans", Mascot: "Saints", Alt: []string{"NOS"}},
	{Code: "NYG", Mascot: "Giants", Loc: "New York"},
	{Code: "PHI", Loc: "Philadelphia", Mascot: "Eagles", Nick: []string{"Philly"}},
	{Code: "SF", Loc: "San Francisco", Mascot: "49ers", Alt: []string{"SFO"}, Nick: []string{"Niners", "9ers"}},
	{Code: "SEA", Loc: "Seattle", Mascot: "Seahawks", Nick: []string{"Hawks"}},
	{Code: "TB", Loc: "Tampa Bay", Mascot: "Buccaneers", Alt: []string{"TBB"}, Nick: []string{"Bucs"}},
	{Code: "WAS", Loc: "Washington", Mascot: "Commanders"},

	// AFC
	{Code: "BAL", Loc: "Baltimore", Mascot: "Ravens"},
	{Code: "BUF", Loc: "Buffalo", Mascot: "Bills"},
	{Code: "CIN", Loc: "Cincinnati", Mascot: "Bengals"},
	{Code: "CLE", Loc: "Cleveland", Mascot: "Browns"},
	{Code: "DEN", Loc: "Denver", Mascot: "Broncos"},
	{Code: "HOU", Loc: "Houston", Mascot: "Texans"},
	{Code: "IND", Loc: "Indianapolis", Mascot: "Colts", Nick: []string{"Indy"}},
	{Code: "JAC", Loc: "Jacksonville", Mascot: "Jaguars", Alt: []string{"JAX"}, Nick: []string{"Jags"}},
	{Code: "KC", Loc: "Kansas City", Mascot: "Chiefs", Alt: []string{"KCC"}},
	{Code: "LV", Loc: "Las Vegas", Mascot: "Raiders", Alt: []string{"LVR"}},
	{Code: "LAC", Loc: "Los Angeles", Mascot: "Chargers"},
	{Code: "MIA", Loc: "Miami", Mascot: "Dolphins"},
	{Code: "NE", Loc: "New England", Mascot: "Patriots", Alt: []string{"NEP"}, Nick: []string{"Pats"}},
	{Code: "NYJ", Mascot: "Jets", Loc: "New York"},
	{Code: "PIT", Loc: "Pittsburgh", Mascot: "Steelers"},
	{Code: "TEN", Loc: "Tennessee", Mascot: "Titans"},
}

var teamIndex = buildTeamIndex()

func buildTeamIndex() map[string]*NFLTeam {
	idx := make(map[string]*NFLTeam)
	for _, t := range nflTeams {
		idx[strings.ToLower(t.Code)] = t
		if t.Loc != "" {
			idx[strings.ToLower(t.Loc)] = t
		}
		if t.Mascot != "" {
			idx[strings.ToLower(t.Mascot)] = t
		}
		for _, a := range t.Alt {
			idx[strings.ToLower(a)] = t
		}
		for _, n := range t.Nick {
			idx[strings.ToLower(n)] = t
		}
	}
	return idx
}

// LookupTeam resolves any spelling of a franchise (abbreviation, alternate
// abbreviation, location, mascot, or nickname) to its entry in the team
// table. The two New York teams share a location, so "New York" resolves to
// whichever was indexed last; sheets always use the mascot for those.
func LookupTeam(raw string) (*NFLTeam, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return nil, fmt.Errorf("%w: empty team name", ErrUnknownTeam)
	}
	if t, ok := teamIndex[key]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTeam, raw)
}

// NormalizeTeamAbbrev maps a raw abbreviation to the canonical code. Unknown
// input comes back as TeamUnknown along with ErrUnknownTeam so callers can
// keep the raw value if they prefer partial data over a hard failure.
func NormalizeTeamAbbrev(raw string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" || s == TeamUnknown {
		return TeamUnknown, nil
	}
	if s == TeamFreeAgent || s == "FA*" {
		return TeamFreeAgent, nil
	}
	t, err := LookupTeam(s)
	if err != nil {
		return TeamUnknown, err
	}
	return t.Code, nil
}
