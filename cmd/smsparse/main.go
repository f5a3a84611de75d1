package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthaguide/sms-ledger/internal/sms"
	"github.com/arthaguide/sms-ledger/internal/writer"
)

const version = "1.0.0"

func main() {
	outputFlag := flag.String("output", "", "Output CSV file path (defaults to input filename with .csv extension)")
	summaryFlag := flag.Bool("summary", false, "Include income/expense/balance header rows in CSV")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show usage help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Bank SMS to CSV Converter

Parses free-text bank SMS notifications into structured, categorized
transactions and writes them as CSV.

Usage:
  smsparse [flags] <input.txt> [input2.txt ...]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Convert one SMS dump
  smsparse inbox.txt

  # Custom output path with summary rows
  smsparse --summary --output=transactions.csv inbox.txt

Lines without a recognizable amount (INR / Rs / ₹) are skipped.
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("smsparse v%s\n", version)
		os.Exit(0)
	}

	if *helpFlag || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	parser := sms.NewParser()
	for _, inputPath := range flag.Args() {
		if err := processFile(parser, inputPath, *outputFlag, *summaryFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

func processFile(parser *sms.Parser, inputPath, outputPath string, includeSummary bool) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	fmt.Printf("Processing: %s\n", inputPath)

	report := parser.Parse(string(data))
	fmt.Printf("  Found %d transaction(s) in %d line(s), skipped %d\n",
		len(report.Transactions), report.LinesSubmitted, report.LinesSkipped)

	if len(report.Transactions) == 0 {
		fmt.Println("  Warning: No transactions found. Lines need an amount like 'INR 500.00' or '₹350'.")
	}

	outPath := outputPath
	if outPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outPath = base + ".csv"
	}

	w := &writer.CSVWriter{IncludeSummary: includeSummary}
	if err := w.WriteToFile(outPath, report.Transactions); err != nil {
		return fmt.Errorf("CSV write failed: %w", err)
	}

	fmt.Printf("  Output: %s\n", outPath)
	fmt.Println("  Done.")
	return nil
}
