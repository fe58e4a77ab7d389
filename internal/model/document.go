package model

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Document is an arbitrary JSON value (string, number, boolean, null, array,
// or object) stored as compact JSON text. Every payload and meta blob goes
// through this one codec so the stored form is canonical and lossless.
type Document struct {
	raw json.RawMessage
}

var ErrInvalidDocument = errors.New("invalid JSON document")

// ParseDocument validates b as JSON and compacts it.
func ParseDocument(b []byte) (Document, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return Document{}, ErrInvalidDocument
	}
	if !json.Valid(b) {
		return Document{}, ErrInvalidDocument
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return Document{}, ErrInvalidDocument
	}
	return Document{raw: json.RawMessage(buf.Bytes())}, nil
}

// IsZero reports whether the document holds no value.
func (d Document) IsZero() bool {
	return len(d.raw) == 0
}

// String returns the canonical text form, "null" for an empty document.
func (d Document) String() string {
	if d.IsZero() {
		return "null"
	}
	return string(d.raw)
}

func (d Document) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return d.raw, nil
}

func (d *Document) UnmarshalJSON(b []byte) error {
	parsed, err := ParseDocument(b)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
