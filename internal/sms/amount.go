package sms

import (
	"regexp"
	"strconv"
	"strings"
)

// amountPattern matches a currency marker followed by a number with optional
// thousands separators and decimal part, e.g. "INR 500.00", "Rs. 1,200", "₹350".
var amountPattern = regexp.MustCompile(`(?i)(INR|Rs\.?|₹)\s*([0-9,]+\.?[0-9]*)`)

// amountMatch is the result of scanning a line for a currency amount.
type amountMatch struct {
	Marker string
	Value  float64
}

// matchAmount extracts the first currency amount from a line. Lines without
// a recognizable amount are not transactions; callers must skip them.
func matchAmount(line string) (amountMatch, bool) {
	m := amountPattern.FindStringSubmatch(line)
	if m == nil {
		return amountMatch{}, false
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", ""), 64)
	if err != nil {
		return amountMatch{}, false
	}
	return amountMatch{Marker: m[1], Value: value}, true
}
