package reportapi

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"time"
)

// Params are sent as the query string of a GET or the JSON body of a POST.
type Params map[string]any

// Query encodes p the way browser HTTP clients serialize params: nil values
// are skipped, slices repeat the key with a "[]" suffix, maps and structs
// are JSON encoded, times use RFC 3339 in UTC and everything else its
// default string form.
func (p Params) Query() (url.Values, error) {
	q := url.Values{}
	for k, v := range p {
		if v == nil {
			continue
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				continue
			}
			rv = rv.Elem()
			v = rv.Interface()
		}

		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			if b, ok := v.([]byte); ok {
				q.Add(k, string(b))
				continue
			}
			for i := 0; i < rv.Len(); i++ {
				s, skip, err := queryValue(rv.Index(i).Interface())
				if err != nil {
					return nil, fmt.Errorf("param %s[%d]: %w", k, i, err)
				}
				if !skip {
					q.Add(k+"[]", s)
				}
			}
		default:
			s, skip, err := queryValue(v)
			if err != nil {
				return nil, fmt.Errorf("param %s: %w", k, err)
			}
			if !skip {
				q.Add(k, s)
			}
		}
	}
	return q, nil
}

func queryValue(v any) (string, bool, error) {
	if v == nil {
		return "", true, nil
	}
	switch t := v.(type) {
	case string:
		return t, false, nil
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano), false, nil
	case fmt.Stringer:
		return t.String(), false, nil
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		b, err := json.Marshal(v)
		if err != nil {
			return "", false, err
		}
		return string(b), false, nil
	}
	return fmt.Sprint(v), false, nil
}
