package reportapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// APIError is the normalized form of a failed HTTP exchange: either the
// server answered with a non-2xx status or the request never completed.
type APIError struct {
	// Status is the HTTP status code, 0 when no response was received.
	Status int `json:"status,omitempty"`

	// Message prefers the server's "message" field over the transport text.
	Message string `json:"message"`

	Endpoint string `json:"endpoint"`

	// Data is the server's response body, nil when none was received.
	Data json.RawMessage `json:"error,omitempty"`

	Err error `json:"-"`
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("report api %s: %s", e.Endpoint, e.Message)
	}
	return fmt.Sprintf("report api %s: status %d: %s", e.Endpoint, e.Status, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// statusMessage is the transport text used when the server supplied none.
func statusMessage(code int) string {
	return fmt.Sprintf("Request failed with status code %d", code)
}

// responseData returns body as JSON: JSON bodies verbatim, anything else
// encoded as a JSON string. An empty body yields nil.
func responseData(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}
	if json.Valid(trimmed) {
		return json.RawMessage(bytes.Clone(trimmed))
	}
	enc, err := json.Marshal(string(body))
	if err != nil {
		return nil
	}
	return enc
}

// serverMessage extracts a truthy "message" field from a JSON object body.
// Strings are used verbatim; other truthy values are used as JSON text.
func serverMessage(data json.RawMessage) (string, bool) {
	if len(data) == 0 || data[0] != '{' {
		return "", false
	}
	var body struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil || len(body.Message) == 0 {
		return "", false
	}

	var s string
	if err := json.Unmarshal(body.Message, &s); err == nil {
		return s, s != ""
	}
	switch string(body.Message) {
	case "null", "false", "0":
		return "", false
	}
	var f float64
	if err := json.Unmarshal(body.Message, &f); err == nil && f == 0 {
		return "", false
	}
	return string(body.Message), true
}
