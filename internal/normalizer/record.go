// Package normalizer turns loosely structured document field maps into the
// canonical invoice/PO schema.
//
// Normalization is layered with explicit precedence: structured fields
// resolve through a fixed synonym table first, resolved values pass
// field-specific sanitation, and fields still empty afterwards fall back to
// regex extraction over the record's raw-text blob. Every layer is
// best-effort; malformed input leaves a field unresolved instead of failing.
package normalizer

import (
	"strings"

	"invoice-reconciliation-service/internal/models"
	"invoice-reconciliation-service/pkg/logger"
)

// RecordNormalizer converts raw records into canonical records.
// It is stateless between calls and safe for concurrent use.
type RecordNormalizer struct {
	config *Config
	log    logger.Logger
}

// NewRecordNormalizer creates a record normalizer with the given
// configuration, falling back to defaults when nil.
func NewRecordNormalizer(config *Config) *RecordNormalizer {
	if config == nil {
		config = DefaultConfig()
	}
	return &RecordNormalizer{
		config: config.Clone(),
		log:    logger.WithComponent("normalizer"),
	}
}

// Normalize turns one raw record into a canonical record with every schema
// field present. An empty or nil input yields an all-empty canonical record.
// Normalize never fails.
func (rn *RecordNormalizer) Normalize(rec models.RawRecord) models.CanonicalRecord {
	result := models.NewCanonicalRecord()
	if rec.IsEmpty() {
		return result
	}

	resolveSynonyms(rec.LowerKeys(), result)
	rn.sanitize(result)

	if raw := rec.RawText(); raw != "" {
		for _, rule := range fallbackRules {
			if result[rule.field] != "" {
				continue
			}
			if v := rule.extract(raw, rn.config); v != "" {
				rn.log.WithFields(logger.Fields{
					"field": rule.field.String(),
					"value": v,
				}).Debug("field resolved from raw text")
				result[rule.field] = v
			}
		}
		// sanitation applies regardless of which source produced a value
		rn.sanitize(result)
	}

	return result
}

// sanitize discards resolved values that fail field-specific sanity checks,
// regardless of which source produced them.
func (rn *RecordNormalizer) sanitize(result models.CanonicalRecord) {
	if v := result[models.FieldVendor]; v != "" {
		result[models.FieldVendor] = SanitizeVendor(v)
	}
	if v := result[models.FieldPONumber]; v != "" {
		// OCR extractions often yield short junk tokens; require an
		// identifier-shaped value.
		if !ValidIdentifier(strings.TrimSpace(v)) {
			rn.log.WithField("value", v).Debug("discarding identifier without digit core")
			result[models.FieldPONumber] = ""
		}
	}
}
