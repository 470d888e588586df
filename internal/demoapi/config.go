package demoapi

// Config holds configuration for the demo report API.
type Config struct {
	// Port is the port on which the demo API listens.
	Port int

	// PathPrefix is where report endpoints are mounted. Point the report
	// client's base URL at http://host:Port + PathPrefix.
	PathPrefix string

	// Username and Password are the Basic Auth credentials accepted.
	Username string
	Password string

	// InitialFixture is the fixture served at startup (default: records).
	InitialFixture Fixture
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Port:           9999,
		PathPrefix:     "/api/method",
		Username:       "demo",
		Password:       "demo",
		InitialFixture: FixtureRecords,
	}
}
