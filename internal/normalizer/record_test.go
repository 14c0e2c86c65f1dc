package normalizer

import (
	"strings"
	"testing"

	"invoice-reconciliation-service/internal/models"
)

func TestNormalize_EmptyRecord(t *testing.T) {
	rn := NewRecordNormalizer(nil)

	for _, rec := range []models.RawRecord{nil, {}} {
		result := rn.Normalize(rec)
		if !result.IsComplete() {
			t.Fatalf("Normalize(%v) missing canonical fields: %v", rec, result)
		}
		for _, f := range models.CanonicalFields() {
			if result[f] != "" {
				t.Errorf("Normalize(%v)[%s] = %q, want empty", rec, f, result[f])
			}
		}
	}
}

func TestNormalize_SynonymResolution(t *testing.T) {
	rn := NewRecordNormalizer(nil)

	rec := models.RawRecord{
		"Seller":        "Acme Inc.",
		"Date of Issue": "2024-01-05",
		"Currency":      "USD",
		"Amount Due":    "1,200.00",
		"PO":            "PO-1234567",
	}
	result := rn.Normalize(rec)

	expected := models.CanonicalRecord{
		models.FieldVendor:   "Acme Inc.",
		models.FieldDate:     "2024-01-05",
		models.FieldCurrency: "USD",
		models.FieldTotal:    "1,200.00",
		models.FieldPONumber: "PO-1234567",
	}
	for f, want := range expected {
		if result[f] != want {
			t.Errorf("Normalize()[%s] = %q, want %q", f, result[f], want)
		}
	}
}

func TestNormalize_SynonymPriority(t *testing.T) {
	rn := NewRecordNormalizer(nil)

	// "total" outranks "amount" regardless of map iteration order
	rec := models.RawRecord{
		"amount": "1.00",
		"total":  "2.00",
	}
	result := rn.Normalize(rec)
	if result[models.FieldTotal] != "2.00" {
		t.Errorf("total = %q, want %q", result[models.FieldTotal], "2.00")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	rn := NewRecordNormalizer(nil)

	canonical := models.RawRecord{
		"vendor":    "Acme Inc.",
		"date":      "2024-01-05",
		"currency":  "USD",
		"total":     "1200.00",
		"po_number": "INV-000987654",
	}
	result := rn.Normalize(canonical)

	for k, want := range canonical {
		if got := result[models.Field(k)]; got != want {
			t.Errorf("Normalize()[%s] = %q, want unchanged %q", k, got, want)
		}
	}
}

func TestNormalize_VendorLabelOnlyDiscarded(t *testing.T) {
	rn := NewRecordNormalizer(nil)

	tests := []string{"Seller:", "vendor", "  VENDOR : "}
	for _, junk := range tests {
		t.Run(junk, func(t *testing.T) {
			result := rn.Normalize(models.RawRecord{"vendor": junk})
			if result[models.FieldVendor] != "" {
				t.Errorf("vendor = %q, want empty for label-only value", result[models.FieldVendor])
			}
		})
	}
}

func TestNormalize_JunkIdentifierDiscarded(t *testing.T) {
	rn := NewRecordNormalizer(nil)

	tests := []struct {
		value string
		kept  bool
	}{
		{"rt", false},
		{"PO-12", false},
		{"PO-1234567", true},
		{"12345678", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			result := rn.Normalize(models.RawRecord{"po": tt.value})
			got := result[models.FieldPONumber]
			if tt.kept && got != tt.value {
				t.Errorf("po_number = %q, want %q", got, tt.value)
			}
			if !tt.kept && got != "" {
				t.Errorf("po_number = %q, want empty for junk value", got)
			}
		})
	}
}

func TestNormalize_FallbackDate(t *testing.T) {
	rn := NewRecordNormalizer(nil)

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"slash date", "Invoice issued 12/31/2024 net 30", "12/31/2024"},
		{"iso date", "Date 2024-01-05 follows", "2024-01-05"},
		{"textual month", "Dated January 5, 2024", "January 5, 2024"},
		{"abbreviated month", "due Sep 9, 2023 latest", "Sep 9, 2023"},
		{"numeric wins over textual", "January 5, 2024 then 2/3/2024", "2/3/2024"},
		{"no date", "nothing here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rn.Normalize(models.RawRecord{models.RawTextKey: tt.raw})
			if result[models.FieldDate] != tt.expected {
				t.Errorf("date = %q, want %q", result[models.FieldDate], tt.expected)
			}
		})
	}
}

func TestNormalize_FallbackPONumber(t *testing.T) {
	rn := NewRecordNormalizer(nil)

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"invoice number beats po", "PO # ABC-1234567\nInvoice Number: INV-7654321", "7654321"},
		{"po pattern", "see PO# 9876543 enclosed", "9876543"},
		{"po with prefix", "PO # ZZ-0001234567", "1234567"},
		{"no identifier", "no identifiers at all", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rn.Normalize(models.RawRecord{models.RawTextKey: tt.raw})
			if result[models.FieldPONumber] != tt.expected {
				t.Errorf("po_number = %q, want %q", result[models.FieldPONumber], tt.expected)
			}
		})
	}
}

func TestNormalize_FallbackTotalAndCurrency(t *testing.T) {
	rn := NewRecordNormalizer(nil)

	raw := "Subtotal: 100.00\nTax: 20.00\nTotal: USD 1,320.00"
	result := rn.Normalize(models.RawRecord{models.RawTextKey: raw})

	// last amount wins for total, first coded amount wins for currency
	if result[models.FieldTotal] != "1320.00" {
		t.Errorf("total = %q, want %q", result[models.FieldTotal], "1320.00")
	}
	if result[models.FieldCurrency] != "USD" {
		t.Errorf("currency = %q, want %q", result[models.FieldCurrency], "USD")
	}
}

func TestNormalize_FallbackCurrencyWithoutCode(t *testing.T) {
	rn := NewRecordNormalizer(nil)

	result := rn.Normalize(models.RawRecord{models.RawTextKey: "Total: $ 100.00"})
	if result[models.FieldCurrency] != "" {
		t.Errorf("currency = %q, want empty when only a symbol is present", result[models.FieldCurrency])
	}
	if result[models.FieldTotal] != "100.00" {
		t.Errorf("total = %q, want %q", result[models.FieldTotal], "100.00")
	}
}

func TestNormalize_CurrencySymbolMappingOptIn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MapCurrencySymbols = true
	rn := NewRecordNormalizer(cfg)

	result := rn.Normalize(models.RawRecord{models.RawTextKey: "Amount € 75.00 due"})
	if result[models.FieldCurrency] != "EUR" {
		t.Errorf("currency = %q, want %q with symbol mapping enabled", result[models.FieldCurrency], "EUR")
	}
}

func TestNormalize_FallbackVendorTiers(t *testing.T) {
	rn := NewRecordNormalizer(nil)

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"inline seller", "seller: Acme   Corp\nTotal: 5.00", "Acme Corp"},
		{"inline vendor", "Vendor: Beta Industries\n", "Beta Industries"},
		{"next line after label", "Seller:\nAcme Industries Ltd\nAddress follows", "Acme Industries Ltd"},
		{"generic vendor anywhere", "Remit to Vendor: Zenith Supplies", "Zenith Supplies"},
		{"no vendor", "no names here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rn.Normalize(models.RawRecord{models.RawTextKey: tt.raw})
			if result[models.FieldVendor] != tt.expected {
				t.Errorf("vendor = %q, want %q", result[models.FieldVendor], tt.expected)
			}
		})
	}
}

func TestNormalize_FallbackVendorTruncated(t *testing.T) {
	rn := NewRecordNormalizer(nil)

	long := strings.Repeat("x", 100)
	result := rn.Normalize(models.RawRecord{models.RawTextKey: "seller: " + long})
	if got := len([]rune(result[models.FieldVendor])); got != 64 {
		t.Errorf("vendor length = %d, want 64", got)
	}
}

func TestNormalize_FallbackOnlyFillsEmptyFields(t *testing.T) {
	rn := NewRecordNormalizer(nil)

	rec := models.RawRecord{
		"total":           "999.00",
		models.RawTextKey: "Total: 111.00",
	}
	result := rn.Normalize(rec)
	if result[models.FieldTotal] != "999.00" {
		t.Errorf("total = %q, want structured value to win over raw text", result[models.FieldTotal])
	}
}

func TestNormalize_FallbackIdentifierSanitized(t *testing.T) {
	rn := NewRecordNormalizer(nil)

	// the PO pattern matches an all-letter token with no digit core
	result := rn.Normalize(models.RawRecord{models.RawTextKey: "PO # PENDING"})
	if result[models.FieldPONumber] != "" {
		t.Errorf("po_number = %q, want empty for coreless fallback token", result[models.FieldPONumber])
	}
}

func TestSynonyms(t *testing.T) {
	vendor := Synonyms(models.FieldVendor)
	want := []string{"vendor", "seller", "supplier", "from"}
	if len(vendor) != len(want) {
		t.Fatalf("Synonyms(vendor) = %v, want %v", vendor, want)
	}
	for i := range want {
		if vendor[i] != want[i] {
			t.Errorf("Synonyms(vendor)[%d] = %q, want %q", i, vendor[i], want[i])
		}
	}

	if Synonyms(models.Field("bogus")) != nil {
		t.Error("Synonyms(bogus) should be nil")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		wantError bool
	}{
		{"default", DefaultConfig(), false},
		{"zero vendor length", &Config{MaxVendorLen: 0}, true},
		{"negative vendor length", &Config{MaxVendorLen: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}
