package app_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/raysh454/reportview/internal/app"
	"github.com/raysh454/reportview/internal/cli"
	"github.com/raysh454/reportview/internal/reportapi"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{reportapi.EnvUsername, reportapi.EnvPassword, reportapi.EnvBaseURL, app.EnvAddr} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Parallel()
	env := map[string]string{
		reportapi.EnvUsername: "u",
		reportapi.EnvPassword: "p",
		reportapi.EnvBaseURL:  "https://erp.example.com/api/method",
		app.EnvAddr:           ":9999",
	}
	cfg := app.ConfigFromEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	if cfg.ReportAPICfg.Username != "u" || cfg.ReportAPICfg.Password != "p" {
		t.Errorf("unexpected credentials: %+v", cfg.ReportAPICfg)
	}
	if cfg.ReportAPICfg.BaseURL != "https://erp.example.com/api/method" {
		t.Errorf("unexpected base url %q", cfg.ReportAPICfg.BaseURL)
	}
	if cfg.ServerCfg.ListenAddr != ":9999" {
		t.Errorf("expected addr from env, got %q", cfg.ServerCfg.ListenAddr)
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Parallel()
	cfg := app.ConfigFromEnv(func(string) (string, bool) { return "", false })

	if cfg.ServerCfg.ListenAddr != ":8080" {
		t.Errorf("expected default addr, got %q", cfg.ServerCfg.ListenAddr)
	}
	if cfg.WebClientCfg.Timeout != 0 {
		t.Errorf("expected no timeout, got %s", cfg.WebClientCfg.Timeout)
	}
	if err := cfg.ReportAPICfg.Validate(); err == nil {
		t.Error("expected empty report api config to be invalid")
	}
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "VITE_USERNAME=file-user\nVITE_PASSWORD=file-pass\nVITE_API_BASE_URL=http://localhost:8000/api/method\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(reportapi.EnvUsername, "process-user")

	cfg, err := app.LoadConfig(&cli.CLIArgs{EnvFile: envFile, Addr: ":7000", Timeout: 3 * time.Second})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.ReportAPICfg.Username != "process-user" {
		t.Errorf("process environment should win over env file, got %q", cfg.ReportAPICfg.Username)
	}
	if cfg.ReportAPICfg.Password != "file-pass" {
		t.Errorf("expected password from file, got %q", cfg.ReportAPICfg.Password)
	}
	if cfg.ReportAPICfg.BaseURL != "http://localhost:8000/api/method" {
		t.Errorf("unexpected base url %q", cfg.ReportAPICfg.BaseURL)
	}
	if cfg.ServerCfg.ListenAddr != ":7000" {
		t.Errorf("expected CLI addr, got %q", cfg.ServerCfg.ListenAddr)
	}
	if cfg.WebClientCfg.Timeout != 3*time.Second {
		t.Errorf("expected CLI timeout, got %s", cfg.WebClientCfg.Timeout)
	}
}

func TestLoadConfig_MissingEnvFileIsFine(t *testing.T) {
	clearEnv(t)
	cfg, err := app.LoadConfig(&cli.CLIArgs{EnvFile: filepath.Join(t.TempDir(), "absent.env")})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ReportAPICfg.Username != "" {
		t.Errorf("expected empty username, got %q", cfg.ReportAPICfg.Username)
	}
}
