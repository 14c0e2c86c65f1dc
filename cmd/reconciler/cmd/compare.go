package cmd

import (
	"fmt"
	"os"

	"invoice-reconciliation-service/cmd/reconciler/config"
	"invoice-reconciliation-service/internal/comparator"
	"invoice-reconciliation-service/internal/parsers"
	"invoice-reconciliation-service/internal/reporter"
	apperrors "invoice-reconciliation-service/pkg/errors"
	"invoice-reconciliation-service/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flags for the compare command
var (
	invoiceFile    string
	poFile         string
	outputFormat   string
	outputFile     string
	totalTolerance float64
	maxVendorLen   int
	mapSymbols     bool
	failOnMismatch bool
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare an invoice record with a purchase-order record",
	Long: `Compare loads one invoice record and one purchase-order record, each a
flat JSON object of extracted field names to values (the reserved "_raw" key
may carry raw document text for fallback extraction), and reports a
field-by-field comparison.

Examples:
  # Basic comparison with a console table
  reconciler compare --invoice-file invoice.json --po-file po.json

  # CSV output to a file
  reconciler compare -i invoice.json -p po.json -f csv -o result.csv

  # Looser total tolerance, non-zero exit when fields mismatch
  reconciler compare -i invoice.json -p po.json --total-tolerance 0.05 --fail-on-mismatch`,

	PreRunE: validateCompareFlags,
	RunE:    runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	// Required flags
	compareCmd.Flags().StringVarP(&invoiceFile, "invoice-file", "i", "", "path to invoice record JSON file (required)")
	compareCmd.Flags().StringVarP(&poFile, "po-file", "p", "", "path to purchase-order record JSON file (required)")

	// Output flags
	compareCmd.Flags().StringVarP(&outputFormat, "output-format", "f", "console", "output format: console, json, csv")
	compareCmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "output file path (default: stdout)")

	// Comparison flags
	compareCmd.Flags().Float64VarP(&totalTolerance, "total-tolerance", "t", 0.01, "absolute tolerance for total comparison")
	compareCmd.Flags().IntVar(&maxVendorLen, "max-vendor-len", 64, "maximum vendor name length captured from raw text")
	compareCmd.Flags().BoolVar(&mapSymbols, "map-currency-symbols", false, "map currency symbols to ISO codes when no code is present")
	compareCmd.Flags().BoolVar(&failOnMismatch, "fail-on-mismatch", false, "exit non-zero when any field mismatches")

	compareCmd.MarkFlagRequired("invoice-file")
	compareCmd.MarkFlagRequired("po-file")

	viper.BindPFlag("invoice-file", compareCmd.Flags().Lookup("invoice-file"))
	viper.BindPFlag("po-file", compareCmd.Flags().Lookup("po-file"))
	viper.BindPFlag("output-format", compareCmd.Flags().Lookup("output-format"))
	viper.BindPFlag("output-file", compareCmd.Flags().Lookup("output-file"))
	viper.BindPFlag("total-tolerance", compareCmd.Flags().Lookup("total-tolerance"))
	viper.BindPFlag("max-vendor-len", compareCmd.Flags().Lookup("max-vendor-len"))
	viper.BindPFlag("map-currency-symbols", compareCmd.Flags().Lookup("map-currency-symbols"))
	viper.BindPFlag("fail-on-mismatch", compareCmd.Flags().Lookup("fail-on-mismatch"))
}

func validateCompareFlags(cmd *cobra.Command, args []string) error {
	// Viper values win so config files and env vars can override flags
	invoiceFile = viper.GetString("invoice-file")
	poFile = viper.GetString("po-file")
	outputFormat = viper.GetString("output-format")
	outputFile = viper.GetString("output-file")
	totalTolerance = viper.GetFloat64("total-tolerance")
	maxVendorLen = viper.GetInt("max-vendor-len")
	mapSymbols = viper.GetBool("map-currency-symbols")
	failOnMismatch = viper.GetBool("fail-on-mismatch")

	if invoiceFile == "" {
		return fmt.Errorf("invoice-file is required")
	}
	if poFile == "" {
		return fmt.Errorf("po-file is required")
	}

	if err := validateFileExists(invoiceFile, "invoice record file"); err != nil {
		return err
	}
	if err := validateFileExists(poFile, "purchase-order record file"); err != nil {
		return err
	}

	if !reporter.OutputFormat(outputFormat).IsValid() {
		return fmt.Errorf("invalid output format '%s'. Valid formats: console, json, csv", outputFormat)
	}

	if totalTolerance < 0 {
		return fmt.Errorf("total tolerance cannot be negative")
	}
	if maxVendorLen <= 0 {
		return fmt.Errorf("max vendor length must be positive")
	}

	return nil
}

func validateFileExists(filePath, description string) error {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s does not exist: %s", description, filePath)
	}
	if err != nil {
		return fmt.Errorf("error accessing %s: %w", description, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, expected a file: %s", description, filePath)
	}
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	if verbose {
		verboseLogger, err := logger.NewLogger(&logger.Config{
			Level:  logger.DebugLevel,
			Format: logger.TextFormat,
			Output: os.Stderr,
		})
		if err == nil {
			logger.SetGlobalLogger(verboseLogger)
		}
	}
	log := logger.WithComponent("cli")

	invoice, err := parsers.LoadRecordFile(invoiceFile)
	if err != nil {
		return err
	}
	po, err := parsers.LoadRecordFile(poFile)
	if err != nil {
		return err
	}

	compareConfig := config.CreateComparatorConfig(totalTolerance, maxVendorLen, mapSymbols)
	engine, err := comparator.NewEngine(compareConfig)
	if err != nil {
		return apperrors.ConfigError("failed to create comparison engine", err)
	}

	log.WithFields(logger.Fields{
		"invoice_fields": len(invoice),
		"po_fields":      len(po),
	}).Info("comparing records")
	result := engine.Compare(invoice, po)

	reportGenerator, err := reporter.NewReportGenerator(config.CreateReportConfig(outputFormat))
	if err != nil {
		return apperrors.ConfigError("failed to create report generator", err)
	}

	output := os.Stdout
	if outputFile != "" {
		output, err = os.Create(outputFile)
		if err != nil {
			return apperrors.FileError(apperrors.CodeFileUnreadable, outputFile, err).
				WithSuggestion("check that the output directory exists and is writable")
		}
		defer output.Close()
	}

	if err := reportGenerator.GenerateReport(result, output); err != nil {
		return apperrors.Wrap(err, apperrors.CategoryInternal, apperrors.CodeUnexpectedError,
			"failed to generate report")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "\nCompared %d field(s), %d mismatch(es).\n",
			len(result.Rows), result.Mismatches)
		if result.IsEmpty() {
			fmt.Fprintf(os.Stderr, "Extraction produced nothing comparable; check the input records.\n")
		}
	}

	if failOnMismatch && result.HasMismatches() {
		return apperrors.MismatchError(result.Mismatches)
	}

	return nil
}
