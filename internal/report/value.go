package report

import "bytes"

// Kind tags the JSON type of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	}
	return "unknown"
}

// Value is one JSON value kept as raw text together with its kind.
type Value struct {
	kind Kind
	raw  []byte
}

// Null is the JSON null value.
var Null = Value{kind: KindNull, raw: []byte("null")}

// ValueOf wraps raw JSON text. Leading and trailing whitespace is dropped.
func ValueOf(raw []byte) Value {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Null
	}
	return Value{kind: kindOf(raw[0]), raw: raw}
}

func kindOf(b byte) Kind {
	switch b {
	case 't', 'f':
		return KindBool
	case '"':
		return KindString
	case '{':
		return KindObject
	case '[':
		return KindArray
	case 'n':
		return KindNull
	}
	return KindNumber
}

func (v Value) Kind() Kind { return v.kind }

// Raw returns the JSON text of v.
func (v Value) Raw() []byte {
	if v.raw == nil {
		return Null.raw
	}
	return v.raw
}

func (v Value) MarshalJSON() ([]byte, error) {
	return v.Raw(), nil
}

func (v *Value) UnmarshalJSON(b []byte) error {
	*v = ValueOf(bytes.Clone(b))
	return nil
}
