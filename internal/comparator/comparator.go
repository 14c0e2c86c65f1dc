// Package comparator produces a field-by-field comparison of an invoice
// record against a purchase-order record.
//
// Both records are normalized independently, then every candidate field (the
// canonical schema plus any extra raw keys) is resolved per side, classified
// as match, mismatch, or missing under field-specific semantics, and emitted
// as one comparison row. The comparison is a pure synchronous computation;
// it performs no I/O and an Engine is safe for concurrent use.
package comparator

import (
	"sort"
	"strings"

	"invoice-reconciliation-service/internal/models"
	"invoice-reconciliation-service/internal/normalizer"
	"invoice-reconciliation-service/pkg/logger"

	"github.com/shopspring/decimal"
)

// Engine compares invoice records with purchase-order records.
type Engine struct {
	config     *Config
	normalizer *normalizer.RecordNormalizer
	log        logger.Logger
}

// idAliasFields are the field names compared by identifier core. Extra raw
// keys carrying an identifier under a non-canonical name get the same
// treatment as po_number.
var idAliasFields = map[string]bool{
	models.FieldPONumber.String(): true,
	"invoice number":              true,
	"purchase order number":       true,
	"order number":                true,
}

// NewEngine creates a comparison engine with the given configuration,
// falling back to defaults when nil.
func NewEngine(config *Config) (*Engine, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		config:     config.Clone(),
		normalizer: normalizer.NewRecordNormalizer(config.Normalizer),
		log:        logger.WithComponent("comparator"),
	}, nil
}

// Compare normalizes both records and produces the comparison result. Fields
// empty on both sides are skipped entirely; when nothing is comparable the
// result is explicitly empty with a zero mismatch count. Compare never
// fails.
func (e *Engine) Compare(invoice, po models.RawRecord) *models.ComparisonResult {
	invNorm := e.normalizer.Normalize(invoice)
	poNorm := e.normalizer.Normalize(po)

	result := models.NewComparisonResult()
	for _, field := range candidateFields(invoice, po) {
		iv := resolve(invoice, field, invNorm)
		pv := resolve(po, field, poNorm)
		if iv == "" && pv == "" {
			continue
		}
		result.AddRow(models.ComparisonRow{
			Field:   field,
			Invoice: iv,
			PO:      pv,
			Status:  e.classify(field, iv, pv),
		})
	}

	e.log.WithFields(logger.Fields{
		"fields":     len(result.Rows),
		"mismatches": result.Mismatches,
	}).Debug("comparison complete")
	return result
}

// candidateFields is the canonical schema unioned with every lower-cased,
// non-reserved key of either record, in ascending lexical order.
func candidateFields(invoice, po models.RawRecord) []string {
	set := make(map[string]bool)
	for _, f := range models.CanonicalFields() {
		set[f.String()] = true
	}
	for _, rec := range []models.RawRecord{invoice, po} {
		for k := range rec {
			lk := strings.ToLower(strings.TrimSpace(k))
			if lk != "" && lk != models.RawTextKey {
				set[lk] = true
			}
		}
	}
	fields := make([]string, 0, len(set))
	for f := range set {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// resolve picks one side's display value for a field: the canonical-record
// value when non-empty, else the raw value stored under that exact key,
// subject to the same sanitation rules the record normalizer applies.
func resolve(rec models.RawRecord, field string, norm models.CanonicalRecord) string {
	if v := strings.TrimSpace(norm[models.Field(field)]); v != "" {
		return v
	}
	s := strings.TrimSpace(rec[field])
	if s == "" {
		return ""
	}
	switch field {
	case models.FieldVendor.String():
		return normalizer.SanitizeVendor(s)
	case models.FieldPONumber.String():
		core, ok := normalizer.ExtractIDCore(s)
		if !ok {
			return ""
		}
		return core
	}
	return s
}

// classify applies the field's comparison semantics to two resolved values,
// at least one of which is non-empty.
func (e *Engine) classify(field, iv, pv string) models.MatchStatus {
	if field == models.FieldTotal.String() {
		return e.classifyTotal(iv, pv)
	}

	lv := strings.ToLower(normalizer.CollapseSpace(iv))
	rv := strings.ToLower(normalizer.CollapseSpace(pv))
	if field == models.FieldVendor.String() {
		lv = normalizer.NormalizeCompany(lv)
		rv = normalizer.NormalizeCompany(rv)
	}

	if idAliasFields[field] {
		li, lok := normalizer.ExtractIDCore(iv)
		ri, rok := normalizer.ExtractIDCore(pv)
		if lok && rok {
			if li == ri {
				return models.StatusMatch
			}
			return models.StatusMismatch
		}
		// no core on one side; fall through to plain string equality
	}

	switch {
	case lv == "" || rv == "":
		return models.StatusMissing
	case lv == rv:
		return models.StatusMatch
	default:
		return models.StatusMismatch
	}
}

// classifyTotal compares amounts numerically with the configured absolute
// tolerance. A side that fails amount normalization counts as missing.
func (e *Engine) classifyTotal(iv, pv string) models.MatchStatus {
	ni := normalizer.NormalizeAmount(iv)
	np := normalizer.NormalizeAmount(pv)
	if ni == "" || np == "" {
		return models.StatusMissing
	}
	di, errI := decimal.NewFromString(ni)
	dp, errP := decimal.NewFromString(np)
	if errI != nil || errP != nil {
		return models.StatusMissing
	}
	if di.Sub(dp).Abs().LessThan(e.config.TotalTolerance) {
		return models.StatusMatch
	}
	return models.StatusMismatch
}
