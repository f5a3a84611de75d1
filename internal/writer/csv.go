// Package writer renders a transaction list as CSV for export.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/arthaguide/sms-ledger/internal/finance"
	"github.com/arthaguide/sms-ledger/internal/models"
)

// CSVWriter writes transactions to CSV format.
type CSVWriter struct {
	// IncludeSummary prepends income/expense/balance comment rows.
	IncludeSummary bool
}

// WriteToFile writes the list to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, txs []models.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, txs)
}

// Write writes the list in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, txs []models.Transaction) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeSummary {
		summary := finance.Summarize(txs)
		writer.Write([]string{"# Total Income", formatAmount(summary.TotalIncome)})
		writer.Write([]string{"# Total Expenses", formatAmount(summary.TotalExpenses)})
		writer.Write([]string{"# Balance", formatAmount(summary.Balance)})
	}

	header := []string{"Date", "Merchant", "Category", "Type", "Amount", "Raw"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, tx := range txs {
		row := []string{
			tx.Date,
			tx.Merchant,
			string(tx.Category),
			string(tx.Direction),
			formatAmount(tx.Amount),
			tx.RawText,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return writer.Error()
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
