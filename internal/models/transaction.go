package models

// Direction states whether a transaction moves money into or out of
// the account.
type Direction string

const (
	Credit Direction = "credit"
	Debit  Direction = "debit"
)

// Category is one of the fixed spending/income buckets.
type Category string

const (
	CategoryIncome        Category = "Income"
	CategoryFood          Category = "Food"
	CategoryTravel        Category = "Travel"
	CategoryTransport     Category = "Transport"
	CategoryShopping      Category = "Shopping"
	CategoryBills         Category = "Bills"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealthcare    Category = "Healthcare"
	CategoryOthers        Category = "Others"
)

// Categories lists every valid category. The order matters nowhere here;
// classification order lives in the sms package rule table.
var Categories = []Category{
	CategoryIncome,
	CategoryFood,
	CategoryTravel,
	CategoryTransport,
	CategoryShopping,
	CategoryBills,
	CategoryEntertainment,
	CategoryHealthcare,
	CategoryOthers,
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Transaction is a single ledger entry. Amounts are unsigned; the sign is
// carried by Direction. Date is kept as the raw matched substring when the
// entry came from an SMS line, so three formats may coexist in one ledger.
type Transaction struct {
	Amount    float64   `json:"amount" bson:"amount"`
	Direction Direction `json:"type" bson:"type"`
	Merchant  string    `json:"merchant" bson:"merchant"`
	Category  Category  `json:"category" bson:"category"`
	Date      string    `json:"date" bson:"date"`
	RawText   string    `json:"raw,omitempty" bson:"raw,omitempty"`
}

// FinancialSummary is derived from a transaction list on demand and never
// stored. CategoryTotals accumulates debit amounts only.
type FinancialSummary struct {
	TotalIncome    float64              `json:"totalIncome"`
	TotalExpenses  float64              `json:"totalExpenses"`
	Balance        float64              `json:"balance"`
	CategoryTotals map[Category]float64 `json:"categoryTotals"`
}
