package finance

import (
	"github.com/arthaguide/sms-ledger/internal/models"
)

// HealthScore maps the savings rate to a 0-100 score. Zero income returns
// exactly 0 rather than dividing.
func HealthScore(summary models.FinancialSummary) float64 {
	if summary.TotalIncome == 0 {
		return 0
	}
	score := summary.Balance / summary.TotalIncome * 100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
