// Package testsupport provides shared fixtures for package tests: configs
// seeded with per-test temp directories, stores registered for cleanup, and
// file generation helpers.
package testsupport

import (
	"path/filepath"
	"testing"

	"listpub/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.BlobDir = filepath.Join(base, "blobs")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Notifications.Endpoint = ""
	cfg.Authorization.Endpoint = ""

	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return cfg
}

// WithNotificationsEndpoint points the test config at a notification
// receiver, usually an httptest server.
func WithNotificationsEndpoint(endpoint string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Notifications.Endpoint = endpoint
	}
}

// WithAuthorizationEndpoint points the test config at an account service,
// usually an httptest server.
func WithAuthorizationEndpoint(endpoint string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Authorization.Endpoint = endpoint
	}
}
