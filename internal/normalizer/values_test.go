package normalizer

import (
	"strings"
	"testing"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"comma grouped", "1,234.50", "1234.50"},
		{"dollar sign", "$1,200.00", "1200.00"},
		{"currency code", "USD 1,500.00", "1500.00"},
		{"lowercase code", "usd 99.95", "99.95"},
		{"plain integer", "1200", "1200.00"},
		{"one decimal", "12.3", "12.30"},
		{"three decimals rounded", "100.004", "100.00"},
		{"euro symbol stripped", "€50.00", "50.00"},
		{"garbage", "abc", ""},
		{"empty", "", ""},
		{"two decimal points", "1.2.3", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAmount(tt.input); got != tt.expected {
				t.Errorf("NormalizeAmount(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeCompany(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"inc with period", "Acme Inc.", "acme"},
		{"bare name", "ACME", "acme"},
		{"llc with comma", "Baz, LLC", "baz"},
		{"ltd", "Widgets Ltd", "widgets"},
		{"pvt ltd phrase", "Foo Pvt Ltd", "foo"},
		{"private limited phrase", "Bar Private Limited", "bar"},
		{"incorporated", "Zeta Incorporated", "zeta"},
		{"internal whitespace", "  Acme   Corp  ", "acme corp"},
		{"suffix only", "Inc.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCompany(tt.input); got != tt.expected {
				t.Errorf("NormalizeCompany(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeCompany_SuffixEquivalence(t *testing.T) {
	if NormalizeCompany("Acme Inc.") != NormalizeCompany("ACME") {
		t.Errorf("expected %q and %q to normalize equal", "Acme Inc.", "ACME")
	}
}

func TestExtractIDCore(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"prefixed zero padded", "PO-000123456", "123456", true},
		{"prefixed", "INV-000987654", "987654", true},
		{"bare digits", "987654", "987654", true},
		{"lowercase prefix", "inv-000987654", "987654", true},
		{"embedded", "order ref 1234567 attached", "1234567", true},
		{"short junk", "rt", "", false},
		{"five digits", "12345", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractIDCore(tt.input)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("ExtractIDCore(%q) = (%q, %v), want (%q, %v)",
					tt.input, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestValidIdentifier(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"PO-123456", true},
		{"INV-000987654", true},
		{"inv-123456", true},
		{"12345678", true},
		{"123456", true},
		{"rt", false},
		{"PO-12", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidIdentifier(tt.input); got != tt.valid {
				t.Errorf("ValidIdentifier(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestIsVendorLabel(t *testing.T) {
	tests := []struct {
		input string
		label bool
	}{
		{"Seller:", true},
		{"vendor", true},
		{"  VENDOR :  ", true},
		{"seller", true},
		{"Seller: Acme", false},
		{"Acme", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsVendorLabel(tt.input); got != tt.label {
				t.Errorf("IsVendorLabel(%q) = %v, want %v", tt.input, got, tt.label)
			}
		})
	}
}

func TestCollapseSpace(t *testing.T) {
	got := CollapseSpace("  Acme \t  Corp \n Ltd ")
	if got != "Acme Corp Ltd" {
		t.Errorf("CollapseSpace() = %q, want %q", got, "Acme Corp Ltd")
	}
}

func TestCurrencyForSymbol(t *testing.T) {
	tests := []struct {
		symbol string
		code   string
		ok     bool
	}{
		{"$", "USD", true},
		{"€", "EUR", true},
		{"£", "GBP", true},
		{"₹", "INR", true},
		{"¥", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			code, ok := CurrencyForSymbol(tt.symbol)
			if code != tt.code || ok != tt.ok {
				t.Errorf("CurrencyForSymbol(%q) = (%q, %v), want (%q, %v)",
					tt.symbol, code, ok, tt.code, tt.ok)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 100)
	if got := truncate(long, 64); len([]rune(got)) != 64 {
		t.Errorf("truncate() length = %d, want 64", len([]rune(got)))
	}
	if got := truncate("short", 64); got != "short" {
		t.Errorf("truncate() = %q, want %q", got, "short")
	}
}
