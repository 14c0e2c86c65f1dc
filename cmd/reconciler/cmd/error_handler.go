package cmd

import (
	"fmt"
	"os"

	apperrors "invoice-reconciliation-service/pkg/errors"
	"invoice-reconciliation-service/pkg/logger"

	"github.com/spf13/viper"
)

// CLIErrorHandler turns application errors into user-facing messages and
// exit codes.
type CLIErrorHandler struct {
	logger  logger.Logger
	verbose bool
}

// NewCLIErrorHandler creates a new CLI error handler
func NewCLIErrorHandler() *CLIErrorHandler {
	return &CLIErrorHandler{
		logger:  logger.GetGlobalLogger().WithComponent("cli"),
		verbose: viper.GetBool("verbose"),
	}
}

// HandleError prints a user-friendly rendition of err and returns the
// process exit code.
func (h *CLIErrorHandler) HandleError(err error) int {
	if err == nil {
		return 0
	}

	h.logger.WithError(err).Error("command failed")

	if appErr, ok := err.(*apperrors.ReconcilerError); ok {
		return h.handleApplicationError(appErr)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}

func (h *CLIErrorHandler) handleApplicationError(err *apperrors.ReconcilerError) int {
	// Mismatch "failure" is an expected scripting outcome, not a fault
	if err.Code == apperrors.CodeMismatchesFound {
		fmt.Fprintf(os.Stderr, "%s\n", err.Message)
		return err.GetExitCode()
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Message)

	if len(err.Context) > 0 {
		fmt.Fprintf(os.Stderr, "\nContext:\n")
		for key, value := range err.Context {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", key, value)
		}
	}

	if err.Suggestion != "" {
		fmt.Fprintf(os.Stderr, "\nSuggestion: %s\n", err.Suggestion)
	}

	if h.verbose && err.Cause != nil {
		fmt.Fprintf(os.Stderr, "\nUnderlying error: %v\n", err.Cause)
	}

	return err.GetExitCode()
}
