package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthaguide/sms-ledger/internal/models"
)

func sampleLedger() []models.Transaction {
	return []models.Transaction{
		{Amount: 45000, Direction: models.Credit, Merchant: "Salary", Category: models.CategoryIncome, Date: "2025-11-01"},
		{Amount: 8500, Direction: models.Debit, Merchant: "Swiggy", Category: models.CategoryFood, Date: "2025-11-03"},
		{Amount: 3200, Direction: models.Debit, Merchant: "Uber", Category: models.CategoryTravel, Date: "2025-11-05"},
		{Amount: 5000, Direction: models.Debit, Merchant: "Electricity", Category: models.CategoryBills, Date: "2025-11-07"},
		{Amount: 1500, Direction: models.Debit, Merchant: "Cafe", Category: models.CategoryFood, Date: "2025-11-12"},
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(sampleLedger())

	assert.Equal(t, 45000.0, summary.TotalIncome)
	assert.Equal(t, 18200.0, summary.TotalExpenses)
	assert.Equal(t, 26800.0, summary.Balance)
	assert.Equal(t, map[models.Category]float64{
		models.CategoryFood:   10000,
		models.CategoryTravel: 3200,
		models.CategoryBills:  5000,
	}, summary.CategoryTotals)
}

func TestSummarizeSignInvariant(t *testing.T) {
	// Amounts are unsigned; the sign lives in the direction. Income plus
	// expenses must therefore equal the plain sum of all amounts.
	txs := sampleLedger()
	summary := Summarize(txs)

	var total float64
	for _, tx := range txs {
		total += tx.Amount
	}
	assert.Equal(t, total, summary.TotalIncome+summary.TotalExpenses)
}

func TestSummarizeExcludesCreditFromCategoryTotals(t *testing.T) {
	// A credit carrying a non-Income category (the documented direction vs
	// category inconsistency) still stays out of the spending breakdown.
	summary := Summarize([]models.Transaction{
		{Amount: 5000, Direction: models.Credit, Category: models.CategoryShopping},
		{Amount: 300, Direction: models.Debit, Category: models.CategoryShopping},
	})

	assert.Equal(t, 5000.0, summary.TotalIncome)
	assert.Equal(t, 300.0, summary.CategoryTotals[models.CategoryShopping])
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.Zero(t, summary.TotalIncome)
	assert.Zero(t, summary.TotalExpenses)
	assert.Zero(t, summary.Balance)
	assert.Empty(t, summary.CategoryTotals)
}

func TestSummarizeNegativeBalance(t *testing.T) {
	summary := Summarize([]models.Transaction{
		{Amount: 1000, Direction: models.Credit, Category: models.CategoryIncome},
		{Amount: 2500, Direction: models.Debit, Category: models.CategoryBills},
	})
	assert.Equal(t, -1500.0, summary.Balance)
}
