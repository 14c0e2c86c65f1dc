package normalizer

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	spaceRe        = regexp.MustCompile(`\s+`)
	nonAmountRe    = regexp.MustCompile(`[^0-9.]+`)
	companyPunctRe = regexp.MustCompile(`[.,]`)
	legalPhraseRe  = regexp.MustCompile(`\b(pvt|private)\b\s*\b(ltd|limited)\b`)
	legalSuffixRe  = regexp.MustCompile(`\b(incorporated|inc|llc|ltd)\b`)
	vendorLabelRe  = regexp.MustCompile(`(?i)^\s*(vendor|seller)\s*:?\s*$`)

	// Identifier shapes. idCoreRe captures the digit run used for
	// cross-format equivalence; the other two widen the sanity check so a
	// lower-case prefix or a long bare digit run still passes.
	idCoreRe     = regexp.MustCompile(`(?:[A-Z]{2,}-)?([0-9]{6,})`)
	prefixedIDRe = regexp.MustCompile(`(?i)[A-Z]{2,}-[0-9]{6,}`)
	longDigitsRe = regexp.MustCompile(`[0-9]{8,}`)
)

// CollapseSpace folds every whitespace run to a single space and trims.
func CollapseSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// NormalizeAmount canonicalizes a monetary string for equivalence
// comparison: thousands separators and literal USD tokens are stripped, every
// remaining non-numeric character is dropped, and the value is re-rendered
// with exactly two fractional digits. Unparseable input yields "".
func NormalizeAmount(text string) string {
	if text == "" {
		return ""
	}
	s := strings.ReplaceAll(text, ",", "")
	s = strings.ReplaceAll(s, "USD", "")
	s = strings.ReplaceAll(s, "usd", "")
	s = nonAmountRe.ReplaceAllString(s, "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return ""
	}
	return d.StringFixed(2)
}

// NormalizeCompany canonicalizes a company name for equivalence comparison:
// lower-cased, periods and commas stripped, common legal-entity suffixes
// removed, whitespace collapsed. Intentionally shallow; tokens are not
// reordered and abbreviations are not expanded.
func NormalizeCompany(name string) string {
	s := strings.ToLower(CollapseSpace(name))
	s = companyPunctRe.ReplaceAllString(s, "")
	s = legalPhraseRe.ReplaceAllString(s, "")
	s = legalSuffixRe.ReplaceAllString(s, "")
	return CollapseSpace(s)
}

// ExtractIDCore finds the digit-bearing core of a PO/invoice identifier: a
// run of at least six digits, optionally preceded by a letter prefix and
// hyphen. Leading zeros are trimmed from the core so that zero-padded and
// bare renditions of the same identifier compare equal.
func ExtractIDCore(s string) (string, bool) {
	m := idCoreRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	core := strings.TrimLeft(m[1], "0")
	if core == "" {
		core = "0"
	}
	return core, true
}

// ValidIdentifier reports whether a value has a plausible identifier shape:
// a six-digit core (optionally letter-prefixed) or a bare run of eight or
// more digits. Short OCR junk like "rt" fails this check.
func ValidIdentifier(s string) bool {
	return idCoreRe.MatchString(s) || prefixedIDRe.MatchString(s) || longDigitsRe.MatchString(s)
}

// IsVendorLabel reports whether a value is nothing but a "vendor"/"seller"
// label fragment, optionally followed by a colon.
func IsVendorLabel(s string) bool {
	return vendorLabelRe.MatchString(s)
}

// SanitizeVendor discards label-only vendor values. Shared by the record
// normalizer and the comparator's raw-value resolution so the two rule
// copies cannot drift.
func SanitizeVendor(s string) string {
	if IsVendorLabel(s) {
		return ""
	}
	return s
}

// currencySymbols maps common currency symbols to ISO codes. The table is
// advisory: the fallback extractor only consults it when
// Config.MapCurrencySymbols is set.
var currencySymbols = map[string]string{
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
	"₹": "INR",
}

// CurrencyForSymbol returns the ISO currency code for a currency symbol.
func CurrencyForSymbol(sym string) (string, bool) {
	code, ok := currencySymbols[sym]
	return code, ok
}

// firstCurrencySymbol returns the code of the earliest known currency symbol
// occurring in text, or "".
func firstCurrencySymbol(text string) string {
	best := -1
	code := ""
	for sym, c := range currencySymbols {
		if idx := strings.Index(text, sym); idx >= 0 && (best < 0 || idx < best) {
			best = idx
			code = c
		}
	}
	return code
}
