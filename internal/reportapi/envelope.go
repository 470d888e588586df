package reportapi

import "encoding/json"

// Envelope is the uniform wrapper every report API call answers with.
type Envelope[T any] struct {
	Message T     `json:"message"`
	Success *bool `json:"success,omitempty"`
	Status  *int  `json:"status,omitempty"`

	// Raw is the response body exactly as the server sent it.
	Raw json.RawMessage `json:"-"`
}
