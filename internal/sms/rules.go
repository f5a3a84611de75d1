package sms

import (
	"regexp"
	"strings"

	"github.com/arthaguide/sms-ledger/internal/models"
)

// Direction keywords. The credit set is always tested first: a line carrying
// both "debited" and "refund" is a credit. A line matching neither set is
// treated as a debit, since bank SMS almost always carries an explicit verb.
var (
	creditPattern = regexp.MustCompile(`(?i)(credited|received|deposit|salary|refund)`)
	debitPattern  = regexp.MustCompile(`(?i)(debited|spent|withdrawn|paid)`)
)

// classifyDirection resolves the money flow for a line.
func classifyDirection(line string) models.Direction {
	if creditPattern.MatchString(line) {
		return models.Credit
	}
	if debitPattern.MatchString(line) {
		return models.Debit
	}
	return models.Debit
}

// merchantVocabulary is the fixed counterparty list. It is scanned in this
// declared order and the first entry present anywhere in the line wins,
// regardless of where in the line it occurs.
var merchantVocabulary = []string{
	"Swiggy", "Zomato", "Uber", "Ola", "Amazon", "Flipkart", "IRCTC",
	"Metro", "Fuel", "HP", "IOCL", "Cafe", "Restaurant", "Hotel", "Movie",
	"Netflix", "Spotify", "PhonePe", "GPay", "Paytm",
}

// extractMerchant returns the counterparty display name for a line and
// whether it came from the vocabulary. Unmatched lines get a generic label
// that depends on the resolved direction.
func extractMerchant(line string, dir models.Direction) (string, bool) {
	lower := strings.ToLower(line)
	for _, name := range merchantVocabulary {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name, true
		}
	}
	if dir == models.Credit {
		return "Payment Received", false
	}
	return "Payment", false
}

// categoryRule pairs a keyword group with the category it yields.
type categoryRule struct {
	category models.Category
	pattern  *regexp.Regexp
}

// categoryRules is evaluated top to bottom; the first matching group wins
// and the order is load-bearing ("metro" beats "bill", "salary" beats
// "swiggy"). Unmatched lines fall through to Others.
var categoryRules = []categoryRule{
	{models.CategoryIncome, regexp.MustCompile(`(?i)salary|income|credited|neft|rtgs|imps|received|refund`)},
	{models.CategoryFood, regexp.MustCompile(`(?i)swiggy|zomato|restaurant|cafe|food|dining`)},
	{models.CategoryTravel, regexp.MustCompile(`(?i)uber|ola|metro|irctc|travel|ticket|train|bus|flight`)},
	{models.CategoryTransport, regexp.MustCompile(`(?i)fuel|petrol|diesel|hp|iocl|gas`)},
	{models.CategoryShopping, regexp.MustCompile(`(?i)amazon|flipkart|shopping|mall|store`)},
	{models.CategoryBills, regexp.MustCompile(`(?i)bill|electricity|water|rent|recharge|mobile|internet`)},
	{models.CategoryEntertainment, regexp.MustCompile(`(?i)netflix|spotify|prime|subscription|entertainment|movie|cinema`)},
	{models.CategoryHealthcare, regexp.MustCompile(`(?i)hospital|doctor|medicine|pharmacy|health`)},
}

// categorize maps a full line to a category. Category is decided
// independently from direction, so a credit line can end up outside Income.
func categorize(line string) models.Category {
	for _, rule := range categoryRules {
		if rule.pattern.MatchString(line) {
			return rule.category
		}
	}
	return models.CategoryOthers
}
