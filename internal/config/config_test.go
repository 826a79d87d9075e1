package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Error("exists = true for a missing file")
	}
	defaults := Default()
	if cfg.Logging.Format != defaults.Logging.Format || cfg.Logging.Level != defaults.Logging.Level {
		t.Errorf("logging = %+v, want defaults %+v", cfg.Logging, defaults.Logging)
	}
	if cfg.Notifications.RequestTimeout != defaults.Notifications.RequestTimeout {
		t.Errorf("notifications timeout = %d, want %d",
			cfg.Notifications.RequestTimeout, defaults.Notifications.RequestTimeout)
	}
	if strings.Contains(cfg.Paths.DataDir, "~") {
		t.Errorf("data dir %q was not expanded", cfg.Paths.DataDir)
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[paths]
data_dir = "/var/lib/listpub"
blob_dir = "/var/lib/listpub/blobs"

[notifications]
endpoint = "https://subscriptions.example/api/publication"
request_timeout = 30

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Error("exists = false for a present file")
	}
	if cfg.Paths.DataDir != "/var/lib/listpub" {
		t.Errorf("data dir = %q", cfg.Paths.DataDir)
	}
	if cfg.Notifications.Endpoint != "https://subscriptions.example/api/publication" {
		t.Errorf("notifications endpoint = %q", cfg.Notifications.Endpoint)
	}
	if cfg.Notifications.RequestTimeout != 30 {
		t.Errorf("notifications timeout = %d, want 30", cfg.Notifications.RequestTimeout)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	// Fields the file omits keep their defaults.
	if cfg.Paths.LogDir == "" {
		t.Error("log dir lost its default")
	}
	if cfg.Authorization.RequestTimeout != Default().Authorization.RequestTimeout {
		t.Errorf("authorization timeout = %d", cfg.Authorization.RequestTimeout)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("paths = {{"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, err := Load(path); err == nil {
		t.Fatal("Load accepted malformed TOML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "json format", mutate: func(c *Config) { c.Logging.Format = "json" }},
		{name: "empty format", mutate: func(c *Config) { c.Logging.Format = "" }},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "empty data dir",
			mutate:  func(c *Config) { c.Paths.DataDir = "  " },
			wantErr: true,
		},
		{
			name:    "empty blob dir",
			mutate:  func(c *Config) { c.Paths.BlobDir = "" },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWriteSampleIsLoadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	cfg, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Error("sample config not detected")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("sample config invalid: %v", err)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.BlobDir = filepath.Join(base, "data", "blobs")
	cfg.Paths.LogDir = ""

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.BlobDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("stat %s: %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~/listpub", filepath.Join(home, "listpub")},
		{"~", home},
		{"/absolute/path", "/absolute/path"},
		{"  /trimmed  ", "/trimmed"},
		{"", ""},
	}
	for _, tt := range tests {
		got, err := expandPath(tt.in)
		if err != nil {
			t.Errorf("expandPath(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("expandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
