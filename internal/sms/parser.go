// Package sms turns free-text bank SMS notifications into structured
// transactions. Every classifier in here is an ordered rule table: first
// match wins, and the rule order is part of the contract.
package sms

import (
	"strings"
	"time"

	"github.com/arthaguide/sms-ledger/internal/models"
)

// Parser extracts transactions from a multi-line SMS blob.
type Parser struct {
	// Now supplies the fallback transaction date. Defaults to time.Now.
	Now func() time.Time
}

// NewParser returns a Parser using the wall clock for defaulted dates.
func NewParser() *Parser {
	return &Parser{Now: time.Now}
}

// Report is the outcome of one Parse call. Transactions appear in source-line
// order. Lines without a recognizable amount produce no transaction and no
// error; LinesSkipped counts them.
type Report struct {
	Transactions   []models.Transaction `json:"transactions"`
	LinesSubmitted int                  `json:"linesSubmitted"`
	LinesSkipped   int                  `json:"linesSkipped"`
	DatesDefaulted int                  `json:"datesDefaulted"`
}

// Parse splits the text on newlines and runs every extractor over each
// non-blank line independently.
func (p *Parser) Parse(text string) Report {
	now := p.Now()
	report := Report{Transactions: []models.Transaction{}}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		report.LinesSubmitted++

		amount, ok := matchAmount(line)
		if !ok {
			report.LinesSkipped++
			continue
		}

		direction := classifyDirection(line)
		merchant, _ := extractMerchant(line, direction)
		date := extractDate(line, now)
		if date.Defaulted {
			report.DatesDefaulted++
		}

		report.Transactions = append(report.Transactions, models.Transaction{
			Amount:    amount.Value,
			Direction: direction,
			Merchant:  merchant,
			Category:  categorize(line),
			Date:      date.Value,
			RawText:   line,
		})
	}

	return report
}
