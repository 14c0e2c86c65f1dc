package comparator

import (
	"fmt"

	"invoice-reconciliation-service/internal/normalizer"

	"github.com/shopspring/decimal"
)

// Config holds the comparison parameters.
type Config struct {
	// TotalTolerance is the absolute amount difference below which two
	// totals are considered equal. Comparison is strict less-than.
	TotalTolerance decimal.Decimal

	// Normalizer configures the record normalization applied to both
	// sides before comparison.
	Normalizer *normalizer.Config
}

// DefaultConfig returns the default comparison configuration: a one-cent
// total tolerance and default normalization.
func DefaultConfig() *Config {
	return &Config{
		TotalTolerance: decimal.New(1, -2),
		Normalizer:     normalizer.DefaultConfig(),
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.TotalTolerance.IsNegative() {
		return fmt.Errorf("total tolerance cannot be negative, got %s", c.TotalTolerance.String())
	}
	if c.Normalizer == nil {
		return fmt.Errorf("normalizer configuration is required")
	}
	if err := c.Normalizer.Validate(); err != nil {
		return fmt.Errorf("invalid normalizer configuration: %w", err)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Normalizer != nil {
		clone.Normalizer = c.Normalizer.Clone()
	}
	return &clone
}
