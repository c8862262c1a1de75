package storage

import (
	"encoding/json"

	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/jonathan/cv-builder/internal/types"
)

// EncodeSnapshot serializes a Document for the slot.
func EncodeSnapshot(doc types.Document) ([]byte, error) {
	data, err := json.Marshal(doc.Clone())
	if err != nil {
		return nil, &Error{Message: "failed to marshal snapshot", Cause: err}
	}
	return data, nil
}

// DecodeSnapshot treats data as an untyped blob: it is shape-checked against the
// Document schema before being decoded. Any failure returns an error and the caller is
// expected to fall back to the default Document.
func DecodeSnapshot(data []byte) (types.Document, error) {
	if err := schemas.ValidateDocument(data); err != nil {
		return types.Document{}, &Error{Message: "snapshot does not match document schema", Cause: err}
	}

	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.Document{}, &Error{Message: "failed to unmarshal snapshot", Cause: err}
	}

	return doc.Clone(), nil
}
