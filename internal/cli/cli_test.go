package cli_test

import (
	"testing"
	"time"

	"github.com/raysh454/reportview/internal/cli"
)

func TestParseArgs_Defaults(t *testing.T) {
	t.Parallel()
	args, err := cli.ParseArgs(nil)
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if args.Addr != "" {
		t.Errorf("expected empty addr, got %q", args.Addr)
	}
	if args.EnvFile != ".env" {
		t.Errorf("expected .env, got %q", args.EnvFile)
	}
	if args.Timeout != 0 {
		t.Errorf("expected no timeout, got %s", args.Timeout)
	}
}

func TestParseArgs_Overrides(t *testing.T) {
	t.Parallel()
	in := []string{"-addr", ":9090", "-env-file", "prod.env", "-timeout", "5s"}
	args, err := cli.ParseArgs(in)
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if args.Addr != ":9090" || args.EnvFile != "prod.env" || args.Timeout != 5*time.Second {
		t.Errorf("unexpected args: %+v", args)
	}
	if len(args.RawArgs) != len(in) {
		t.Errorf("expected raw args kept, got %v", args.RawArgs)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	t.Parallel()
	tests := map[string][]string{
		"unknown flag":     {"-target", "x"},
		"bad duration":     {"-timeout", "soon"},
		"negative timeout": {"-timeout", "-1s"},
		"positional":       {"extra"},
	}
	for name, in := range tests {
		if _, err := cli.ParseArgs(in); err == nil {
			t.Errorf("%s: expected error for %v", name, in)
		}
	}
}
