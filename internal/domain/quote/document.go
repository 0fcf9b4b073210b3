package quote

import (
	"encoding/json"
	"errors"
)

// Persisted document wrapper. Version 1 is the only schema ever shipped; the
// decoder also accepts the pre-wrapper format, a bare key-to-record mapping.
const (
	DocumentType    = "ams_customer_db"
	DocumentVersion = 1
)

// Document is the export/import and storage envelope around a registry.
type Document struct {
	Type      string   `json:"type"`
	Version   int      `json:"version"`
	Customers Registry `json:"customers"`
}

// ErrMalformedDocument reports input that is not parseable at all, as opposed
// to parseable JSON of an unexpected shape (which decodes to an empty
// registry).
var ErrMalformedDocument = errors.New("malformed customer document")

// EncodeDocument wraps the registry in the versioned envelope. Indented the
// same way the browser app wrote its exports, so files stay diffable.
func EncodeDocument(reg Registry) ([]byte, error) {
	doc := Document{Type: DocumentType, Version: DocumentVersion, Customers: reg}
	return json.MarshalIndent(doc, "", "  ")
}

// DecodeDocument parses a registry document: the versioned wrapper, or a bare
// mapping (legacy), or any other valid JSON shape as an empty registry.
// Unparseable input returns ErrMalformedDocument.
func DecodeDocument(data []byte) (Registry, error) {
	if !json.Valid(data) {
		return nil, ErrMalformedDocument
	}

	var probe struct {
		Customers json.RawMessage `json:"customers"`
	}
	if err := json.Unmarshal(data, &probe); err == nil && len(probe.Customers) > 0 {
		var reg Registry
		if err := json.Unmarshal(probe.Customers, &reg); err != nil {
			return nil, ErrMalformedDocument
		}
		return sanitizeRegistry(reg), nil
	}

	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		// valid JSON, wrong shape
		return Registry{}, nil
	}
	return sanitizeRegistry(reg), nil
}

// sanitizeRegistry enforces the storage invariants on decoded data: no
// empty-key records, no nil records, item codes backfilled from the map key.
func sanitizeRegistry(reg Registry) Registry {
	out := make(Registry, len(reg))
	for key, rec := range reg {
		if key == "" || rec == nil {
			continue
		}
		if rec.Items == nil {
			rec.Items = map[string]Line{}
		}
		for code, line := range rec.Items {
			if code == "" {
				delete(rec.Items, code)
				continue
			}
			if line.Code == "" {
				line.Code = code
				rec.Items[code] = line
			}
		}
		out[key] = rec
	}
	return out
}
