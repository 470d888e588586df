package webclient

import "context"

// WebClient sends a single HTTP request. Responses are returned for every
// status code; an error means no response was received.
type WebClient interface {
	Do(ctx context.Context, req *Request) (*Response, error)

	Close() error
}
