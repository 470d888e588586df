package report

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-json-experiment/json/jsontext"
)

// ErrNotArray is returned when a payload is not a JSON array.
var ErrNotArray = errors.New("report payload is not a JSON array")

// IsArray reports whether raw holds a JSON array.
func IsArray(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}

func newDecoder(raw []byte) *jsontext.Decoder {
	return jsontext.NewDecoder(bytes.NewReader(raw), jsontext.AllowDuplicateNames(true))
}

// DecodeRows decodes a JSON array into rows, keeping the field order of
// every object.
func DecodeRows(raw []byte) ([]Row, error) {
	if !IsArray(raw) {
		return nil, ErrNotArray
	}

	dec := newDecoder(raw)
	if _, err := dec.ReadToken(); err != nil {
		return nil, fmt.Errorf("read array start: %w", err)
	}

	rows := []Row{}
	for dec.PeekKind() != ']' {
		elem, err := dec.ReadValue()
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows), err)
		}
		v := ValueOf(bytes.Clone(elem))

		row := Row{Value: v}
		if v.Kind() == KindObject {
			rec, err := decodeRecord(v.raw)
			if err != nil {
				return nil, fmt.Errorf("decode row %d: %w", len(rows), err)
			}
			row.Record = rec
		}
		rows = append(rows, row)
	}
	if _, err := dec.ReadToken(); err != nil {
		return nil, fmt.Errorf("read array end: %w", err)
	}
	return rows, nil
}

func decodeRecord(raw []byte) (*Record, error) {
	dec := newDecoder(raw)
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	if tok.Kind() != '{' {
		return nil, fmt.Errorf("expected object, got %s", tok.Kind())
	}

	rec := NewRecord()
	for dec.PeekKind() != '}' {
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		// tok is only valid until the next decoder call
		name := tok.String()
		val, err := dec.ReadValue()
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		rec.Set(name, ValueOf(bytes.Clone(val)))
	}
	if _, err := dec.ReadToken(); err != nil {
		return nil, err
	}
	return rec, nil
}
