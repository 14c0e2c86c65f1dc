// Package parsers loads raw document records from disk. A record file holds
// a single flat JSON object mapping field names to values, as handed over by
// the upstream extraction step; the reserved "_raw" key may carry the
// extracted document text.
package parsers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"invoice-reconciliation-service/internal/models"
	apperrors "invoice-reconciliation-service/pkg/errors"
	"invoice-reconciliation-service/pkg/logger"
)

// LoadRecordFile reads a raw record from a JSON file.
func LoadRecordFile(path string) (models.RawRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, apperrors.FileError(apperrors.CodeFileNotFound, path, err)
		case os.IsPermission(err):
			return nil, apperrors.FileError(apperrors.CodeFilePermission, path, err)
		default:
			return nil, apperrors.FileError(apperrors.CodeFileUnreadable, path, err)
		}
	}
	defer file.Close()

	rec, err := ParseRecord(file)
	if err != nil {
		if appErr, ok := err.(*apperrors.ReconcilerError); ok {
			return nil, appErr.WithContext("path", path)
		}
		return nil, err
	}

	logger.WithComponent("parsers").WithFields(logger.Fields{
		"path":   path,
		"fields": len(rec),
	}).Debug("record loaded")
	return rec, nil
}

// ParseRecord decodes a single JSON object into a raw record.
func ParseRecord(r io.Reader) (models.RawRecord, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var fields map[string]interface{}
	if err := decoder.Decode(&fields); err != nil {
		return nil, apperrors.ParseError(apperrors.CodeInvalidFormat, "record is not a valid JSON object", err)
	}
	return CoerceRecord(fields)
}

// CoerceRecord converts a decoded field map into a raw record. Strings pass
// through unchanged, numbers keep their source rendition, booleans render as
// true/false, and nulls are dropped entirely so they read as absent fields.
// Nested objects and arrays are rejected; the engine works on flat mappings
// only.
func CoerceRecord(fields map[string]interface{}) (models.RawRecord, error) {
	rec := make(models.RawRecord, len(fields))
	for k, v := range fields {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			rec[k] = val
		case json.Number:
			rec[k] = val.String()
		case float64:
			rec[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			rec[k] = strconv.FormatBool(val)
		default:
			return nil, apperrors.ParseError(apperrors.CodeInvalidData,
				fmt.Sprintf("field %q holds a nested %T value", k, v), nil)
		}
	}
	return rec, nil
}
