package report

import (
	"encoding/json"
	"fmt"
	"strings"
)

const hexDigits = "0123456789abcdef"

// stringify re-encodes a JSON value the way JavaScript's JSON.stringify
// prints the result of JSON.parse. Duplicate names keep their last value.
func stringify(v Value) (string, error) {
	var b strings.Builder
	if err := writeValue(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeValue(b *strings.Builder, v Value) error {
	switch v.Kind() {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		b.Write(v.Raw())
	case KindNumber:
		b.WriteString(formatNumber(string(v.Raw())))
	case KindString:
		var s string
		if err := json.Unmarshal(v.Raw(), &s); err != nil {
			return err
		}
		writeQuoted(b, s)
	case KindObject:
		rec, err := decodeRecord(v.Raw())
		if err != nil {
			return err
		}
		b.WriteByte('{')
		for i, k := range rec.Keys() {
			if i > 0 {
				b.WriteByte(',')
			}
			writeQuoted(b, k)
			b.WriteByte(':')
			field, _ := rec.Get(k)
			if err := writeValue(b, field); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	case KindArray:
		dec := newDecoder(v.Raw())
		if _, err := dec.ReadToken(); err != nil {
			return err
		}
		b.WriteByte('[')
		for i := 0; dec.PeekKind() != ']'; i++ {
			elem, err := dec.ReadValue()
			if err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
			if i > 0 {
				b.WriteByte(',')
			}
			// elem is consumed before the next decoder call
			if err := writeValue(b, ValueOf(elem)); err != nil {
				return err
			}
		}
		if _, err := dec.ReadToken(); err != nil {
			return err
		}
		b.WriteByte(']')
	default:
		return fmt.Errorf("unknown value kind %v", v.Kind())
	}
	return nil
}

// writeQuoted escapes only quote, backslash and control characters.
func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[r>>4])
				b.WriteByte(hexDigits[r&0xf])
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}
