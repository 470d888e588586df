package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/raysh454/reportview/internal/cli"
	"github.com/raysh454/reportview/internal/reportapi"
	"github.com/raysh454/reportview/internal/server"
	"github.com/raysh454/reportview/internal/webclient"
)

// EnvAddr overrides the listen address when set.
const EnvAddr = "REPORTVIEW_ADDR"

// Config contains the runtime configuration of every component. It is
// built once at startup and handed down; nothing reads the environment
// after that.
type Config struct {
	ServerCfg server.Config

	// Report API credentials and base URL
	ReportAPICfg reportapi.Config

	// WebClient configuration
	WebClientCfg webclient.Config
}

// DefaultConfig returns a Config populated with development defaults.
// The report API section is left empty: it has no sensible default.
func DefaultConfig() *Config {
	return &Config{
		ServerCfg: server.Config{
			ListenAddr: ":8080",
		},
		WebClientCfg: webclient.Config{
			Timeout: 0,
		},
	}
}

// ConfigFromEnv builds a Config from DefaultConfig and the variables lookup
// returns.
func ConfigFromEnv(lookup func(string) (string, bool)) *Config {
	cfg := DefaultConfig()
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	cfg.ReportAPICfg = reportapi.Config{
		Username: get(reportapi.EnvUsername),
		Password: get(reportapi.EnvPassword),
		BaseURL:  get(reportapi.EnvBaseURL),
	}
	if addr := get(EnvAddr); addr != "" {
		cfg.ServerCfg.ListenAddr = addr
	}
	return cfg
}

// LoadConfig loads args.EnvFile into the process environment (variables
// already set win, a missing file is fine), reads the configuration from
// the environment and applies the CLI overrides.
func LoadConfig(args *cli.CLIArgs) (*Config, error) {
	if args == nil {
		args = &cli.CLIArgs{}
	}

	if args.EnvFile != "" {
		if err := godotenv.Load(args.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading env file %s: %w", args.EnvFile, err)
		}
	}

	cfg := ConfigFromEnv(os.LookupEnv)
	if args.Addr != "" {
		cfg.ServerCfg.ListenAddr = args.Addr
	}
	if args.Timeout > 0 {
		cfg.WebClientCfg.Timeout = args.Timeout
	}
	return cfg, nil
}
