package report

import (
	"bytes"
	"encoding/json"
)

// Record is one report row object: field names mapped to values, iterated
// in the order the names first appeared in the JSON text.
type Record struct {
	keys   []string
	values map[string]Value
}

func NewRecord() *Record {
	return &Record{values: make(map[string]Value)}
}

// Set stores v under key. A key that already exists keeps its position and
// takes the new value.
func (r *Record) Set(key string, v Value) {
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

func (r *Record) Get(key string) (Value, bool) {
	if r == nil {
		return Value{}, false
	}
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the field names in first-seen order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.keys...)
}

func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// MarshalJSON writes the fields in their stored order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(r.values[k].Raw())
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *Record) UnmarshalJSON(b []byte) error {
	rec, err := decodeRecord(b)
	if err != nil {
		return err
	}
	*r = *rec
	return nil
}

// Row is one element of the report payload. Rows that are not JSON objects
// have a nil Record: they contribute no columns and render empty cells.
type Row struct {
	Record *Record
	Value  Value
}

func (r Row) IsObject() bool { return r.Record != nil }

// Cell returns the value stored under key.
func (r Row) Cell(key string) (Value, bool) {
	return r.Record.Get(key)
}

func (r Row) MarshalJSON() ([]byte, error) {
	return r.Value.Raw(), nil
}
