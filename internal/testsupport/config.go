package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"multitube/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Storage defaults to the memory backend without default groups.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Storage.Backend = config.BackendMemory
	cfgVal.Storage.SeedDefaults = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithBackend selects the storage backend on the test config.
func WithBackend(backend string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Storage.Backend = backend
	}
}

// WithSeedDefaults toggles the built-in groups offered on first run.
func WithSeedDefaults(seed bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Storage.SeedDefaults = seed
	}
}

// WithConfigFile writes the config as TOML under the temp dir and stores the
// file path in *path.
func WithConfigFile(path *string) ConfigOption {
	return func(b *configBuilder) {
		target := filepath.Join(b.baseDir, "config.toml")
		data, err := config.Marshal(b.cfg)
		if err != nil {
			b.t.Fatalf("marshal config: %v", err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			b.t.Fatalf("write config: %v", err)
		}
		*path = target
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}
