// Package reporter renders comparison results for presentation.
//
// Supported output formats:
//   - Console: aligned tabular output for terminal display
//   - JSON: structured output for programmatic consumption
//   - CSV: field,invoice,po,status rows for spreadsheet use
package reporter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"invoice-reconciliation-service/internal/models"
)

// OutputFormat selects a report rendition.
type OutputFormat string

const (
	FormatConsole OutputFormat = "console"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
)

// IsValid checks if the output format is supported.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatConsole, FormatJSON, FormatCSV:
		return true
	default:
		return false
	}
}

// ReportConfig holds report generation options.
type ReportConfig struct {
	Format OutputFormat `json:"format"`

	// CSV options
	CSVDelimiter rune `json:"csv_delimiter"`
	CSVHeaders   bool `json:"csv_headers"`

	// Console options
	IncludeSummary bool `json:"include_summary"`
}

// DefaultReportConfig returns the default report configuration.
func DefaultReportConfig() *ReportConfig {
	return &ReportConfig{
		Format:         FormatConsole,
		CSVDelimiter:   ',',
		CSVHeaders:     true,
		IncludeSummary: true,
	}
}

// Validate validates the report configuration.
func (c *ReportConfig) Validate() error {
	if !c.Format.IsValid() {
		return fmt.Errorf("invalid output format: %s", c.Format)
	}
	if c.CSVDelimiter == 0 {
		return fmt.Errorf("csv delimiter cannot be empty")
	}
	return nil
}

// ReportGenerator renders comparison results in the configured format.
type ReportGenerator struct {
	config *ReportConfig
}

// NewReportGenerator creates a report generator, falling back to defaults
// when config is nil.
func NewReportGenerator(config *ReportConfig) (*ReportGenerator, error) {
	if config == nil {
		config = DefaultReportConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid report configuration: %w", err)
	}
	return &ReportGenerator{config: config}, nil
}

// GenerateReport writes the result to the writer in the configured format.
func (rg *ReportGenerator) GenerateReport(result *models.ComparisonResult, writer io.Writer) error {
	if result == nil {
		return fmt.Errorf("comparison result cannot be nil")
	}

	switch rg.config.Format {
	case FormatConsole:
		return rg.generateConsoleReport(result, writer)
	case FormatJSON:
		return rg.generateJSONReport(result, writer)
	case FormatCSV:
		return rg.generateCSVReport(result, writer)
	default:
		return fmt.Errorf("unsupported output format: %s", rg.config.Format)
	}
}

// generateConsoleReport writes a human-readable table.
func (rg *ReportGenerator) generateConsoleReport(result *models.ComparisonResult, writer io.Writer) error {
	if rg.config.IncludeSummary {
		fmt.Fprintf(writer, "FIELD COMPARISON REPORT\n")
		fmt.Fprintf(writer, "Fields compared: %d\n", len(result.Rows))
		fmt.Fprintf(writer, "Mismatches:      %d\n\n", result.Mismatches)
	}

	if result.IsEmpty() {
		fmt.Fprintf(writer, "No comparable fields found.\n")
		return nil
	}

	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tINVOICE\tPO\tSTATUS")
	for _, row := range result.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Field, row.Invoice, row.PO, row.Status)
	}
	return tw.Flush()
}

// generateJSONReport writes the result as indented JSON.
func (rg *ReportGenerator) generateJSONReport(result *models.ComparisonResult, writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// generateCSVReport writes one row per compared field. The header row is
// written even for an empty result so consumers always see the schema.
func (rg *ReportGenerator) generateCSVReport(result *models.ComparisonResult, writer io.Writer) error {
	csvWriter := csv.NewWriter(writer)
	csvWriter.Comma = rg.config.CSVDelimiter
	defer csvWriter.Flush()

	if rg.config.CSVHeaders {
		if err := csvWriter.Write(result.Headers()); err != nil {
			return fmt.Errorf("failed to write CSV headers: %w", err)
		}
	}

	for _, row := range result.Rows {
		record := []string{row.Field, row.Invoice, row.PO, row.Status.String()}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("failed to write comparison row: %w", err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// GetConfiguration returns the current configuration.
func (rg *ReportGenerator) GetConfiguration() *ReportConfig {
	return rg.config
}
