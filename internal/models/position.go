package models

import "strings"

// Position is a fantasy roster position
type Position string

const (
	PosUnknown Position = "UNK"
	PosQB      Position = "QB"
	PosRB      Position = "RB"
	PosWR      Position = "WR"
	PosTE      Position = "TE"
	PosK       Position = "K"
	PosDST     Position = "DST"
)

// DraftablePositions is the fixed lookup priority used when guessing a
// player's position from the rankings cache
var DraftablePositions = []Position{PosRB, PosWR, PosTE, PosQB, PosK, PosDST}

// ParsePosition normalizes a raw position string from a sheet or rankings
// page. Defense variants (D/ST, DEF, D) all map to DST.
func ParsePosition(pos string) Position {
	switch strings.ToUpper(strings.TrimSpace(pos)) {
	case "QB":
		return PosQB
	case "RB":
		return PosRB
	case "WR":
		return PosWR
	case "TE":
		return PosTE
	case "K", "PK":
		return PosK
	case "DST", "D/ST", "DEF", "D":
		return PosDST
	default:
		return PosUnknown
	}
}
