// Package errors defines the categorized application error used by the glue
// layers. The core comparison engine never fails; errors originate only in
// file handling, record parsing, and configuration.
package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCategory groups errors by the subsystem that produced them.
type ErrorCategory string

const (
	CategoryFile          ErrorCategory = "file"
	CategoryParse         ErrorCategory = "parse"
	CategoryConfiguration ErrorCategory = "configuration"
	CategoryComparison    ErrorCategory = "comparison"
	CategoryInternal      ErrorCategory = "internal"
)

// ErrorCode identifies a specific failure within a category.
type ErrorCode string

const (
	// File errors
	CodeFileNotFound   ErrorCode = "file_not_found"
	CodeFilePermission ErrorCode = "file_permission"
	CodeFileUnreadable ErrorCode = "file_unreadable"

	// Parse errors
	CodeInvalidFormat ErrorCode = "invalid_format"
	CodeInvalidData   ErrorCode = "invalid_data"

	// Configuration errors
	CodeInvalidConfig ErrorCode = "invalid_config"

	// Comparison errors
	CodeMismatchesFound ErrorCode = "mismatches_found"

	// Internal errors
	CodeUnexpectedError ErrorCode = "unexpected_error"
)

// ReconcilerError is the application error type: a categorized, coded error
// with an optional remediation suggestion, free-form context, a wrapped
// cause, and a stack trace captured at construction.
type ReconcilerError struct {
	Category   ErrorCategory     `json:"category"`
	Code       ErrorCode         `json:"code"`
	Message    string            `json:"message"`
	Suggestion string            `json:"suggestion,omitempty"`
	Context    Context           `json:"context,omitempty"`
	Cause      error             `json:"-"`
	StackTrace errors.StackTrace `json:"-"`
}

// Context carries additional key-value detail about the error.
type Context map[string]interface{}

// Error implements the error interface.
func (e *ReconcilerError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s (suggestion: %s)", e.Message, e.Suggestion)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *ReconcilerError) Unwrap() error {
	return e.Cause
}

// GetExitCode maps the error category to a process exit code.
func (e *ReconcilerError) GetExitCode() int {
	switch e.Category {
	case CategoryFile:
		return 2
	case CategoryParse:
		return 3
	case CategoryConfiguration:
		return 4
	case CategoryComparison:
		return 5
	case CategoryInternal:
		return 6
	default:
		return 1
	}
}

// WithContext attaches a key-value pair to the error and returns it.
func (e *ReconcilerError) WithContext(key string, value interface{}) *ReconcilerError {
	if e.Context == nil {
		e.Context = make(Context)
	}
	e.Context[key] = value
	return e
}

// WithSuggestion attaches a remediation hint and returns the error.
func (e *ReconcilerError) WithSuggestion(suggestion string) *ReconcilerError {
	e.Suggestion = suggestion
	return e
}

// stackTracer extracts stack traces from github.com/pkg/errors values.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// New creates a ReconcilerError with a fresh stack trace.
func New(category ErrorCategory, code ErrorCode, message string) *ReconcilerError {
	return &ReconcilerError{
		Category:   category,
		Code:       code,
		Message:    message,
		StackTrace: errors.New("").(stackTracer).StackTrace(),
	}
}

// Wrap wraps an existing error with category and code context. Returns nil
// when err is nil.
func Wrap(err error, category ErrorCategory, code ErrorCode, message string) *ReconcilerError {
	if err == nil {
		return nil
	}
	return &ReconcilerError{
		Category:   category,
		Code:       code,
		Message:    message,
		Cause:      err,
		StackTrace: errors.WithStack(err).(stackTracer).StackTrace(),
	}
}

// FileError creates a file-related error with a code-specific message and
// suggestion.
func FileError(code ErrorCode, path string, err error) *ReconcilerError {
	var message, suggestion string
	switch code {
	case CodeFileNotFound:
		message = fmt.Sprintf("file not found: %s", path)
		suggestion = "check that the path is correct and the file exists"
	case CodeFilePermission:
		message = fmt.Sprintf("permission denied accessing file: %s", path)
		suggestion = "check file permissions and ensure you have read access"
	default:
		message = fmt.Sprintf("cannot read file: %s", path)
		suggestion = "verify the file is a readable regular file"
	}
	result := Wrap(err, CategoryFile, code, message)
	if result == nil {
		result = New(CategoryFile, code, message)
	}
	return result.WithSuggestion(suggestion).WithContext("path", path)
}

// ParseError creates a record-parsing error.
func ParseError(code ErrorCode, message string, err error) *ReconcilerError {
	result := Wrap(err, CategoryParse, code, message)
	if result == nil {
		result = New(CategoryParse, code, message)
	}
	return result.WithSuggestion("the record file must hold a single flat JSON object of field names to values")
}

// ConfigError creates a configuration error.
func ConfigError(message string, err error) *ReconcilerError {
	result := Wrap(err, CategoryConfiguration, CodeInvalidConfig, message)
	if result == nil {
		result = New(CategoryConfiguration, CodeInvalidConfig, message)
	}
	return result
}

// MismatchError signals that the comparison found mismatching fields, for
// callers that opt into treating mismatches as failures.
func MismatchError(count int) *ReconcilerError {
	return New(CategoryComparison, CodeMismatchesFound,
		fmt.Sprintf("comparison found %d mismatched field(s)", count))
}

// IsCategory reports whether err is a ReconcilerError of the given category.
func IsCategory(err error, category ErrorCategory) bool {
	appErr, ok := err.(*ReconcilerError)
	return ok && appErr.Category == category
}

// GetExitCode returns the exit code for any error: category-mapped for
// ReconcilerError values, 1 otherwise, 0 for nil.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}
	if appErr, ok := err.(*ReconcilerError); ok {
		return appErr.GetExitCode()
	}
	return 1
}
