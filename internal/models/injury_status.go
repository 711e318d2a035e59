package models

import "strings"

// InjuryStatus follows the standard NFL injury report designations
type InjuryStatus string

const (
	InjuryHealthy      InjuryStatus = "HEALTHY"
	InjuryQuestionable InjuryStatus = "Q"
	InjuryDoubtful     InjuryStatus = "D"
	InjuryOut          InjuryStatus = "O"
	InjuryReserve      InjuryStatus = "IR"
)

// ParseInjuryStatus maps report text to a status, defaulting to healthy
func ParseInjuryStatus(s string) InjuryStatus {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "Q", "QUESTIONABLE":
		return InjuryQuestionable
	case "D", "DOUBTFUL":
		return InjuryDoubtful
	case "O", "OUT":
		return InjuryOut
	case "IR", "INJURED RESERVE":
		return InjuryReserve
	default:
		return InjuryHealthy
	}
}
