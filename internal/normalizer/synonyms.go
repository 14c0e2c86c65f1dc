package normalizer

import (
	"invoice-reconciliation-service/internal/models"
)

// synonymEntry binds one canonical field to its accepted raw-key spellings,
// highest priority first.
type synonymEntry struct {
	field    models.Field
	synonyms []string
}

// synonymTable is the fixed, hand-maintained schema mapping. Lookup is exact
// case-insensitive key equality only; there is no fuzzy key matching. Order
// matters twice: entries resolve in schema order, and within an entry the
// first synonym present in the record wins.
var synonymTable = []synonymEntry{
	{models.FieldVendor, []string{"vendor", "seller", "supplier", "from"}},
	{models.FieldDate, []string{"date", "date of issue", "invoice date", "date issued"}},
	{models.FieldCurrency, []string{"currency"}},
	{models.FieldTotal, []string{"total", "amount due", "amount", "grand total"}},
	{models.FieldPONumber, []string{"po_number", "po", "po number", "purchase order number", "purchase order", "invoice number", "order number"}},
}

// Synonyms returns the accepted raw-key spellings for a canonical field, in
// priority order. Exposed for tests and for callers that want to audit the
// rule table.
func Synonyms(field models.Field) []string {
	for _, entry := range synonymTable {
		if entry.field == field {
			out := make([]string, len(entry.synonyms))
			copy(out, entry.synonyms)
			return out
		}
	}
	return nil
}

// resolveSynonyms fills canonical fields from a lower-cased key view of the
// raw record. Fields with no matching synonym stay empty for the fallback
// extractor to try.
func resolveSynonyms(lower map[string]string, result models.CanonicalRecord) {
	for _, entry := range synonymTable {
		for _, key := range entry.synonyms {
			if v, ok := lower[key]; ok {
				result[entry.field] = v
				break
			}
		}
	}
}
