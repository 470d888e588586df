package reportapi

import (
	"errors"
	"fmt"
	"strings"
)

// Environment keys the configuration is read from.
const (
	EnvUsername = "VITE_USERNAME"
	EnvPassword = "VITE_PASSWORD"
	EnvBaseURL  = "VITE_API_BASE_URL"
)

// ErrIncompleteConfig is returned when a credential or the base URL is missing.
var ErrIncompleteConfig = errors.New("API configuration is incomplete. Check your environment variables")

// Config holds the static credentials and base URL of the report API.
type Config struct {
	Username string
	Password string
	BaseURL  string
}

// Validate reports every missing value at once.
func (c Config) Validate() error {
	var missing []string
	if c.Username == "" {
		missing = append(missing, EnvUsername)
	}
	if c.Password == "" {
		missing = append(missing, EnvPassword)
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		missing = append(missing, EnvBaseURL)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteConfig, strings.Join(missing, ", "))
	}
	return nil
}
