// Package finance derives summaries and heuristic scores from a transaction
// list. Everything here is a pure function; nothing is cached between calls.
package finance

import (
	"github.com/arthaguide/sms-ledger/internal/models"
)

// Summarize aggregates the full list into income, expenses, balance and
// per-category debit totals. Credits never contribute to CategoryTotals,
// whatever their category.
func Summarize(txs []models.Transaction) models.FinancialSummary {
	summary := models.FinancialSummary{
		CategoryTotals: make(map[models.Category]float64),
	}
	for _, tx := range txs {
		switch tx.Direction {
		case models.Credit:
			summary.TotalIncome += tx.Amount
		case models.Debit:
			summary.TotalExpenses += tx.Amount
			summary.CategoryTotals[tx.Category] += tx.Amount
		}
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpenses
	return summary
}
