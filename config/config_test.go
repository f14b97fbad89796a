package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				GitHub:  GitHubConfig{BaseURL: "https://api.github.com"},
				Logging: LoggingConfig{Level: "info", Format: "console"},
			},
			wantErr: false,
		},
		{
			name: "missing base URL",
			cfg: Config{
				Logging: LoggingConfig{Level: "info", Format: "console"},
			},
			wantErr: true,
		},
		{
			name: "invalid logging level",
			cfg: Config{
				GitHub:  GitHubConfig{BaseURL: "https://api.github.com"},
				Logging: LoggingConfig{Level: "loud", Format: "console"},
			},
			wantErr: true,
		},
		{
			name: "invalid logging format",
			cfg: Config{
				GitHub:  GitHubConfig{BaseURL: "https://api.github.com"},
				Logging: LoggingConfig{Level: "info", Format: "xml"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
github:
  base_url: http://localhost:8080
  oauth_token: abc
safety:
  dry_run: false
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.GitHub.BaseURL != "http://localhost:8080" {
		t.Errorf("base_url = %q", cfg.GitHub.BaseURL)
	}
	if cfg.GitHub.OAuthToken != "abc" {
		t.Errorf("oauth_token = %q", cfg.GitHub.OAuthToken)
	}
	if cfg.Safety.DryRun {
		t.Error("dry_run should be false")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	// Unset fields fall back to defaults.
	if cfg.GitHub.Accept != "application/vnd.github.v3+json" {
		t.Errorf("accept = %q", cfg.GitHub.Accept)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadDefaults(t *testing.T) {
	// Run from an empty directory so no stray config.yaml is picked up.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) }) //nolint:errcheck
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.GitHub.BaseURL != "https://api.github.com" {
		t.Errorf("base_url = %q", cfg.GitHub.BaseURL)
	}
	if !cfg.Safety.DryRun {
		t.Error("dry_run should default to true")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("level = %q", cfg.Logging.Level)
	}
}
