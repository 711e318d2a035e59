package draft

import "fmt"

// FormatMismatchError means the grid's shape disagrees with the declared
// format. It is fatal for the parse attempt; the selector never falls back
// to the other parser, because mis-parsing one format with the other
// format's column semantics corrupts every downstream pick.
type FormatMismatchError struct {
	Format   Format
	Expected string
	Observed string
}

func (e *FormatMismatchError) Error() string {
	return fmt.Sprintf("grid does not match %s format: expected %s, observed %s",
		e.Format, e.Expected, e.Observed)
}

// ParseError means the grid is structurally corrupt beyond what field-level
// best-effort handling can repair, e.g. a header row entirely absent.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "failed to parse draft sheet: " + e.Reason
}
