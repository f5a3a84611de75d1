package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthaguide/sms-ledger/internal/models"
)

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name    string
		summary models.FinancialSummary
		want    float64
	}{
		{
			name:    "zero income returns exactly zero",
			summary: models.FinancialSummary{TotalIncome: 0, Balance: 0},
			want:    0,
		},
		{
			name:    "negative balance clamps to zero",
			summary: models.FinancialSummary{TotalIncome: 1000, TotalExpenses: 2500, Balance: -1500},
			want:    0,
		},
		{
			name:    "typical savings rate",
			summary: models.FinancialSummary{TotalIncome: 45000, TotalExpenses: 32000, Balance: 13000},
			want:    13000.0 / 45000.0 * 100,
		},
		{
			name:    "all income saved",
			summary: models.FinancialSummary{TotalIncome: 5000, Balance: 5000},
			want:    100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HealthScore(tt.summary)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestEligibilityScore(t *testing.T) {
	tests := []struct {
		name string
		p    Profile
		want int
	}{
		{
			name: "strong saver with good history",
			p:    Profile{MonthlyIncome: 45000, MonthlyExpenses: 32000, Balance: 13000, CreditHistory: "Good"},
			want: 95, // 50 + 20 (saving > 20%) + 10 (expense ratio < 75%) + 15
		},
		{
			name: "modest saver without history bonus",
			p:    Profile{MonthlyIncome: 100, MonthlyExpenses: 85, Balance: 15, CreditHistory: "Fair"},
			want: 60, // 50 + 10 (saving > 10%)
		},
		{
			name: "best case caps at 100",
			p:    Profile{MonthlyIncome: 100, MonthlyExpenses: 50, Balance: 50, CreditHistory: "Good"},
			want: 100,
		},
		{
			name: "zero income keeps base plus history",
			p:    Profile{MonthlyIncome: 0, MonthlyExpenses: 0, Balance: 0, CreditHistory: "Good"},
			want: 65,
		},
		{
			name: "overspender floor is the base score",
			p:    Profile{MonthlyIncome: 1000, MonthlyExpenses: 1800, Balance: -800, CreditHistory: "Poor"},
			want: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EligibilityScore(tt.p))
		})
	}
}

func TestEMI(t *testing.T) {
	tests := []struct {
		principal float64
		rate      float64
		months    int
		want      int
	}{
		// Reference value for the standard amortization formula.
		{100000, 12, 12, 8885},
		{50000, 13, 12, 4466},
		// Zero rate degenerates to straight division.
		{12000, 0, 12, 1000},
		{50000, 0, 24, 2083},
		{50000, 13, 0, 0},
	}

	for _, tt := range tests {
		got := EMI(tt.principal, tt.rate, tt.months)
		assert.Equal(t, tt.want, got, "EMI(%v, %v, %v)", tt.principal, tt.rate, tt.months)
	}
}

func TestQuote(t *testing.T) {
	offers := Quote(50000, 72)

	assert.Len(t, offers, len(Lenders))

	byName := make(map[string]Offer, len(offers))
	for _, o := range offers {
		byName[o.Name] = o
	}

	// Score 72 clears every lender threshold except CRED at 75.
	assert.True(t, byName["PaySense"].Eligible)
	assert.True(t, byName["MoneyTap"].Eligible)
	assert.True(t, byName["KreditBee"].Eligible)
	assert.False(t, byName["CRED"].Eligible)
	assert.Equal(t, "Pre-approved", byName["CRED"].Status)
	assert.Equal(t, "Eligible", byName["KreditBee"].Status)

	// Quoted installments come straight from the amortization formula.
	assert.Equal(t, EMI(50000, 13, 12), byName["MoneyTap"].EMI12)
	assert.Equal(t, EMI(50000, 13, 24), byName["MoneyTap"].EMI24)
}

func TestQuoteAmountAboveLenderCap(t *testing.T) {
	offers := Quote(250000, 100)
	for _, o := range offers {
		if o.MaxAmount < 250000 {
			assert.False(t, o.Eligible, "%s caps at %v", o.Name, o.MaxAmount)
		} else {
			assert.True(t, o.Eligible, "%s should clear a perfect score", o.Name)
		}
	}
}
