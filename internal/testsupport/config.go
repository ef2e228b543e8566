package testsupport

import (
	"path/filepath"
	"testing"

	"olistcheck/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config whose data directory is a unique temp path.
// The data directory itself is not created.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Report.Color = config.ColorNever

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithLogDir sets the log directory on the test config.
func WithLogDir(dir string) ConfigOption {
	return func(c *config.Config) {
		c.Paths.LogDir = dir
	}
}

// WithSamplePrefix overrides the placeholder filename prefix.
func WithSamplePrefix(prefix string) ConfigOption {
	return func(c *config.Config) {
		c.Samples.Prefix = prefix
	}
}
