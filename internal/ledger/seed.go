package ledger

import (
	"github.com/arthaguide/sms-ledger/internal/models"
)

// SeedTransactions is the documented first-run ledger, shown before the user
// has parsed or entered anything of their own.
func SeedTransactions() []models.Transaction {
	return []models.Transaction{
		{Amount: 45000, Direction: models.Credit, Merchant: "Salary", Category: models.CategoryIncome, Date: "2025-11-01"},
		{Amount: 8500, Direction: models.Debit, Merchant: "Swiggy", Category: models.CategoryFood, Date: "2025-11-03"},
		{Amount: 3200, Direction: models.Debit, Merchant: "Uber", Category: models.CategoryTravel, Date: "2025-11-05"},
		{Amount: 5000, Direction: models.Debit, Merchant: "Electricity", Category: models.CategoryBills, Date: "2025-11-07"},
		{Amount: 2800, Direction: models.Debit, Merchant: "Flipkart", Category: models.CategoryShopping, Date: "2025-11-10"},
		{Amount: 1500, Direction: models.Debit, Merchant: "Cafe", Category: models.CategoryFood, Date: "2025-11-12"},
		{Amount: 4200, Direction: models.Debit, Merchant: "Metro", Category: models.CategoryTravel, Date: "2025-11-15"},
	}
}
