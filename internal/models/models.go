package models

import (
	"fmt"
	"strings"
)

// Field identifies one entry of the fixed canonical document schema.
type Field string

const (
	// FieldVendor is the issuing company name
	FieldVendor Field = "vendor"
	// FieldDate is the document issue date
	FieldDate Field = "date"
	// FieldCurrency is the 3-letter currency code
	FieldCurrency Field = "currency"
	// FieldTotal is the document total amount
	FieldTotal Field = "total"
	// FieldPONumber is the purchase-order / invoice identifier
	FieldPONumber Field = "po_number"
)

// RawTextKey is the reserved raw-record key holding the extracted document
// text. It is never treated as a field value; it only feeds regex fallback.
const RawTextKey = "_raw"

// CanonicalFields returns the canonical schema in its fixed order.
func CanonicalFields() []Field {
	return []Field{FieldVendor, FieldDate, FieldCurrency, FieldTotal, FieldPONumber}
}

// String returns the string representation of Field
func (f Field) String() string {
	return string(f)
}

// IsValid checks if the field is part of the canonical schema
func (f Field) IsValid() bool {
	switch f {
	case FieldVendor, FieldDate, FieldCurrency, FieldTotal, FieldPONumber:
		return true
	default:
		return false
	}
}

// RawRecord is the unvalidated string-keyed mapping produced by an external
// extraction step. Keys are free-form and arbitrary-case; an absent key and
// an empty value are equivalent. The engine never mutates a RawRecord.
type RawRecord map[string]string

// IsEmpty reports whether the record carries no entries at all.
func (r RawRecord) IsEmpty() bool {
	return len(r) == 0
}

// RawText returns the reserved raw-text blob, or "" when absent.
func (r RawRecord) RawText() string {
	if r == nil {
		return ""
	}
	return r[RawTextKey]
}

// LowerKeys returns a view of the record with every key lower-cased and
// trimmed. Later duplicates win, mirroring plain map insertion order
// being irrelevant for case-colliding keys.
func (r RawRecord) LowerKeys() map[string]string {
	lower := make(map[string]string, len(r))
	for k, v := range r {
		lower[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return lower
}

// Clone returns a shallow copy of the record.
func (r RawRecord) Clone() RawRecord {
	if r == nil {
		return nil
	}
	out := make(RawRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// CanonicalRecord maps every canonical field to a resolved value. An empty
// string means the field could not be resolved. A well-formed canonical
// record always carries all five keys.
type CanonicalRecord map[Field]string

// NewCanonicalRecord creates a canonical record with every field present
// and unresolved.
func NewCanonicalRecord() CanonicalRecord {
	rec := make(CanonicalRecord, len(CanonicalFields()))
	for _, f := range CanonicalFields() {
		rec[f] = ""
	}
	return rec
}

// IsComplete checks that every canonical field key is present.
func (c CanonicalRecord) IsComplete() bool {
	for _, f := range CanonicalFields() {
		if _, ok := c[f]; !ok {
			return false
		}
	}
	return true
}

// Validate performs basic structural validation on the CanonicalRecord
func (c CanonicalRecord) Validate() error {
	if !c.IsComplete() {
		return fmt.Errorf("canonical record is missing schema fields")
	}
	for f := range c {
		if !f.IsValid() {
			return fmt.Errorf("unknown canonical field: %s", f)
		}
	}
	return nil
}

// MatchStatus classifies one compared field.
type MatchStatus string

const (
	// StatusMatch means both sides are non-empty and equivalent
	StatusMatch MatchStatus = "match"
	// StatusMismatch means both sides are non-empty and not equivalent
	StatusMismatch MatchStatus = "mismatch"
	// StatusMissing means exactly one side is empty, or the sides were incomparable
	StatusMissing MatchStatus = "missing"
)

// String returns the string representation of MatchStatus
func (s MatchStatus) String() string {
	return string(s)
}

// IsValid checks if the match status is valid
func (s MatchStatus) IsValid() bool {
	return s == StatusMatch || s == StatusMismatch || s == StatusMissing
}

// ComparisonRow is one field's side-by-side values and classification.
// The values are the resolved display values, before any comparison
// normalization.
type ComparisonRow struct {
	Field   string      `json:"field"`
	Invoice string      `json:"invoice"`
	PO      string      `json:"po"`
	Status  MatchStatus `json:"status"`
}

// String returns a string representation of the ComparisonRow
func (r ComparisonRow) String() string {
	return fmt.Sprintf("ComparisonRow{Field: %s, Invoice: %q, PO: %q, Status: %s}",
		r.Field, r.Invoice, r.PO, r.Status)
}

// ComparisonResult is the complete tabular outcome of comparing one invoice
// record with one purchase-order record.
type ComparisonResult struct {
	Rows       []ComparisonRow `json:"rows"`
	Mismatches int             `json:"mismatches"`
}

// NewComparisonResult creates an explicitly empty result (zero rows,
// zero mismatches).
func NewComparisonResult() *ComparisonResult {
	return &ComparisonResult{Rows: []ComparisonRow{}}
}

// AddRow appends a row and bumps the mismatch counter when it mismatches.
func (cr *ComparisonResult) AddRow(row ComparisonRow) {
	cr.Rows = append(cr.Rows, row)
	if row.Status == StatusMismatch {
		cr.Mismatches++
	}
}

// IsEmpty reports whether no comparable field produced a row.
func (cr *ComparisonResult) IsEmpty() bool {
	return len(cr.Rows) == 0
}

// HasMismatches reports whether at least one field mismatched.
func (cr *ComparisonResult) HasMismatches() bool {
	return cr.Mismatches > 0
}

// Headers returns the column names of the tabular form.
func (cr *ComparisonResult) Headers() []string {
	return []string{"field", "invoice", "po", "status"}
}
