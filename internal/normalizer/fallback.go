package normalizer

import (
	"regexp"
	"strings"

	"invoice-reconciliation-service/internal/models"
)

var (
	// numeric D-M-Y / Y-M-D with - or / separators, 2- or 4-digit years
	dateRe = regexp.MustCompile(`(\b[0-9]{1,2}[-/][0-9]{1,2}[-/][0-9]{2,4}\b|\b[0-9]{4}[-/][0-9]{1,2}[-/][0-9]{1,2}\b)`)
	// textual "Mon[th] D, YYYY", abbreviations accepted
	monthDateRe = regexp.MustCompile(`(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\s+[0-9]{1,2},\s+[0-9]{4}`)
	// optional 3-letter code, optional $, then a comma-grouped or plain
	// amount with two decimals
	moneyRe = regexp.MustCompile(`([A-Z]{3})?\s?\$?\s?([0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]{2})|[0-9]+\.[0-9]{2})`)

	poRe  = regexp.MustCompile(`(?i)PO\s*#?\s*([A-Z0-9-]+)`)
	invRe = regexp.MustCompile(`(?i)Invoice\s*Number[:\s]+([A-Z0-9-]+)`)

	vendorLineRe   = regexp.MustCompile(`(?i)Vendor[:\s]+(.+)`)
	sellerInlineRe = regexp.MustCompile(`(?im)^(seller|vendor)\s*:\s*(.+)$`)
)

// fallbackRule derives one canonical field from the raw-text blob. Rules run
// in table order, only for fields the synonym resolver left empty, and every
// extractor is best-effort: no match means an empty result, never an error.
type fallbackRule struct {
	field   models.Field
	extract func(raw string, cfg *Config) string
}

var fallbackRules = []fallbackRule{
	{models.FieldDate, extractDate},
	{models.FieldPONumber, extractPONumber},
	{models.FieldTotal, extractTotal},
	{models.FieldCurrency, extractCurrency},
	{models.FieldVendor, extractVendor},
}

// extractDate takes the first numeric date anywhere in the text, then the
// first textual month date. No calendrical validation is performed.
func extractDate(raw string, _ *Config) string {
	if m := dateRe.FindString(raw); m != "" {
		return m
	}
	return monthDateRe.FindString(raw)
}

// extractPONumber tries an "Invoice Number: <id>" pattern before a "PO"
// pattern. Invoice-side documents more commonly expose an invoice number, so
// the asymmetry is deliberate. The digit core of the matched identifier is
// kept when present, else the whole matched token.
func extractPONumber(raw string, _ *Config) string {
	m := invRe.FindStringSubmatch(raw)
	if m == nil {
		m = poRe.FindStringSubmatch(raw)
	}
	if m == nil {
		return ""
	}
	id := strings.TrimSpace(m[1])
	if core, ok := ExtractIDCore(id); ok {
		return core
	}
	return id
}

// extractTotal takes the last amount occurrence in the text; totals
// typically trail line items.
func extractTotal(raw string, _ *Config) string {
	matches := moneyRe.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return ""
	}
	return NormalizeAmount(matches[len(matches)-1][2])
}

// extractCurrency takes the first amount occurrence carrying an explicit
// 3-letter currency code. Symbol-to-code mapping is advisory and only
// consulted as a last resort when the config opts in.
func extractCurrency(raw string, cfg *Config) string {
	for _, m := range moneyRe.FindAllStringSubmatch(raw, -1) {
		if m[1] != "" {
			return m[1]
		}
	}
	if cfg.MapCurrencySymbols {
		return firstCurrencySymbol(raw)
	}
	return ""
}

// extractVendor is a three-tier attempt, first match wins: a same-line
// "seller:"/"vendor:" pattern anchored at line start, then the line after a
// bare label line, then a generic "Vendor: <rest>" anywhere. Captures are
// whitespace-collapsed and truncated.
func extractVendor(raw string, cfg *Config) string {
	if m := sellerInlineRe.FindStringSubmatch(raw); m != nil {
		return truncate(CollapseSpace(m[2]), cfg.MaxVendorLen)
	}
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lower := strings.ToLower(strings.TrimRight(line, " \t\r"))
		if !strings.HasPrefix(lower, "seller:") && !strings.HasPrefix(lower, "vendor:") {
			continue
		}
		if i+1 < len(lines) {
			if name := strings.TrimSpace(lines[i+1]); name != "" {
				return truncate(CollapseSpace(name), cfg.MaxVendorLen)
			}
		}
	}
	if m := vendorLineRe.FindStringSubmatch(raw); m != nil {
		return truncate(CollapseSpace(m[1]), cfg.MaxVendorLen)
	}
	return ""
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
