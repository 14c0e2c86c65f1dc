package normalizer

import (
	"fmt"
)

// Config holds tunable parameters for record normalization.
type Config struct {
	// MaxVendorLen caps vendor names captured from raw text, in runes.
	MaxVendorLen int

	// MapCurrencySymbols enables the advisory symbol-to-code table as a
	// last resort when no 3-letter currency code appears in the text.
	// Off by default; the reference extraction behavior leaves symbols
	// unmapped.
	MapCurrencySymbols bool
}

// DefaultConfig returns the default normalization configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxVendorLen:       64,
		MapCurrencySymbols: false,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.MaxVendorLen <= 0 {
		return fmt.Errorf("max vendor length must be positive, got %d", c.MaxVendorLen)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
