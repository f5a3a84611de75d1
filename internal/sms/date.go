package sms

import (
	"regexp"
	"time"
)

// datePattern accepts DD-MM-YYYY and DD/MM/YYYY (2- or 4-digit year) as well
// as YYYY-MM-DD. The matched substring is kept verbatim, so downstream
// consumers may see any of the three formats side by side.
var datePattern = regexp.MustCompile(`(\d{2}[/-]\d{2}[/-]\d{2,4}|\d{4}-\d{2}-\d{2})`)

// dateResult distinguishes a date found in the line from the parse-time
// fallback, so callers can tell which path produced the value.
type dateResult struct {
	Value     string
	Defaulted bool
}

// extractDate returns the first date substring in the line, or today's date
// formatted YYYY-MM-DD when no pattern is found.
func extractDate(line string, now time.Time) dateResult {
	if m := datePattern.FindString(line); m != "" {
		return dateResult{Value: m}
	}
	return dateResult{Value: now.Format("2006-01-02"), Defaulted: true}
}
