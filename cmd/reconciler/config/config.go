// Package config builds component configurations from CLI flag values.
package config

import (
	"invoice-reconciliation-service/internal/comparator"
	"invoice-reconciliation-service/internal/normalizer"
	"invoice-reconciliation-service/internal/reporter"

	"github.com/shopspring/decimal"
)

// CreateComparatorConfig creates a comparison configuration from CLI
// overrides.
func CreateComparatorConfig(totalTolerance float64, maxVendorLen int, mapSymbols bool) *comparator.Config {
	config := comparator.DefaultConfig()

	config.TotalTolerance = decimal.NewFromFloat(totalTolerance)
	config.Normalizer = &normalizer.Config{
		MaxVendorLen:       maxVendorLen,
		MapCurrencySymbols: mapSymbols,
	}

	return config
}

// CreateReportConfig creates a report configuration for the specified
// output format.
func CreateReportConfig(format string) *reporter.ReportConfig {
	config := reporter.DefaultReportConfig()

	switch format {
	case "console":
		config.Format = reporter.FormatConsole
		config.IncludeSummary = true
	case "json":
		config.Format = reporter.FormatJSON
	case "csv":
		config.Format = reporter.FormatCSV
		config.CSVHeaders = true
		config.CSVDelimiter = ','
	}

	return config
}
