package cli

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// CLIArgs are the command-line arguments of the report view server.
// Zero values mean "use the environment / config default".
type CLIArgs struct {
	// Addr overrides the HTTP listen address.
	Addr string

	// EnvFile is the optional .env file loaded before reading the environment.
	EnvFile string

	// Timeout bounds each upstream request; 0 keeps the transport default
	// of no client-side timeout.
	Timeout time.Duration

	// RawArgs is the original args slice (useful for debugging/tests).
	RawArgs []string
}

// ParseArgs parses a slice of args and returns CLIArgs. Use in tests by passing
// arbitrary slices. The function is deterministic and does not read os.Args.
func ParseArgs(args []string) (*CLIArgs, error) {
	fs := flag.NewFlagSet("reportview", flag.ContinueOnError)
	var (
		addr    = fs.String("addr", "", "HTTP listen address (default $REPORTVIEW_ADDR or :8080)")
		envFile = fs.String("env-file", ".env", "dotenv file to load before reading the environment")
		timeout = fs.Duration("timeout", 0, "upstream request timeout (0 = none)")
	)

	// Ensure Parse doesn't write to stdout/stderr in tests
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if *timeout < 0 {
		return nil, fmt.Errorf("timeout must not be negative, got %s", *timeout)
	}

	return &CLIArgs{
		Addr:    *addr,
		EnvFile: *envFile,
		Timeout: *timeout,
		RawArgs: args,
	}, nil
}
