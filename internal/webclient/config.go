package webclient

import "time"

// Config holds transport settings.
type Config struct {
	// Timeout bounds a whole request. Zero means no client-side timeout.
	Timeout time.Duration
}
