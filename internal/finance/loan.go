package finance

import (
	"math"
)

// Profile is the financial shape fed into loan scoring.
type Profile struct {
	MonthlyIncome   float64 `json:"monthlyIncome"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	Balance         float64 `json:"balance"`
	CreditHistory   string  `json:"creditHistory"`
}

// EligibilityScore derives a 0-100 loan eligibility score from saving rate,
// expense ratio and credit history. The base is 50 and bonuses never go
// negative, so only the upper bound needs clamping. Zero income skips the
// ratio bonuses entirely instead of dividing.
func EligibilityScore(p Profile) int {
	score := 50

	if p.MonthlyIncome > 0 {
		savingRate := p.Balance / p.MonthlyIncome * 100
		expenseRatio := p.MonthlyExpenses / p.MonthlyIncome * 100

		if savingRate > 20 {
			score += 20
		} else if savingRate > 10 {
			score += 10
		}

		if expenseRatio < 60 {
			score += 15
		} else if expenseRatio < 75 {
			score += 10
		}
	}

	if p.CreditHistory == "Good" {
		score += 15
	}

	if score > 100 {
		return 100
	}
	return score
}

// EMI computes the equated monthly installment for a principal at an annual
// percentage rate over the given number of months, rounded to the nearest
// rupee. A zero rate degenerates to straight division.
func EMI(principal, annualRate float64, months int) int {
	if months <= 0 {
		return 0
	}
	r := annualRate / 12 / 100
	if r == 0 {
		return int(math.Round(principal / float64(months)))
	}
	factor := math.Pow(1+r, float64(months))
	emi := principal * r * factor / (factor - 1)
	return int(math.Round(emi))
}

// Lender describes one marketplace loan offer.
type Lender struct {
	Name           string  `json:"name"`
	MaxAmount      float64 `json:"maxAmount"`
	InterestRate   float64 `json:"interestRate"`
	Tenure         string  `json:"tenure"`
	ProcessingFee  float64 `json:"processingFee"`
	MinScore       int     `json:"minScore"`
	Rating         float64 `json:"rating"`
	DisbursalTime  string  `json:"disbursalTime"`
	PreApprovedLow bool    `json:"-"`
}

// Lenders is the marketplace catalog.
var Lenders = []Lender{
	{Name: "PaySense", MaxAmount: 200000, InterestRate: 16, Tenure: "3-24 months", ProcessingFee: 2.5, MinScore: 65, Rating: 4.2, DisbursalTime: "24 hours"},
	{Name: "MoneyTap", MaxAmount: 500000, InterestRate: 13, Tenure: "2-36 months", ProcessingFee: 2, MinScore: 70, Rating: 4.5, DisbursalTime: "2 hours"},
	{Name: "KreditBee", MaxAmount: 100000, InterestRate: 18, Tenure: "3-15 months", ProcessingFee: 3, MinScore: 60, Rating: 4.0, DisbursalTime: "30 minutes"},
	{Name: "LazyPay", MaxAmount: 150000, InterestRate: 15, Tenure: "1-12 months", ProcessingFee: 1.5, MinScore: 65, Rating: 4.3, DisbursalTime: "1 hour"},
	{Name: "CRED", MaxAmount: 300000, InterestRate: 12, Tenure: "3-36 months", ProcessingFee: 1, MinScore: 75, Rating: 4.6, DisbursalTime: "12 hours", PreApprovedLow: true},
}

// Offer is a lender quoted against a requested principal.
type Offer struct {
	Lender
	Status   string `json:"eligibility"`
	Eligible bool   `json:"isEligible"`
	EMI12    int    `json:"emi12"`
	EMI24    int    `json:"emi24"`
}

// Quote evaluates every lender in the catalog for the requested principal
// and eligibility score.
func Quote(principal float64, score int) []Offer {
	offers := make([]Offer, 0, len(Lenders))
	for _, l := range Lenders {
		status := "Not Eligible"
		if score >= l.MinScore {
			status = "Eligible"
		} else if l.PreApprovedLow {
			status = "Pre-approved"
		}
		offers = append(offers, Offer{
			Lender:   l,
			Status:   status,
			Eligible: score >= l.MinScore && l.MaxAmount >= principal,
			EMI12:    EMI(principal, l.InterestRate, 12),
			EMI24:    EMI(principal, l.InterestRate, 24),
		})
	}
	return offers
}
