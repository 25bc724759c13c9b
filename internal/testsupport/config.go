package testsupport

import (
	"path/filepath"
	"testing"

	"podsight/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LibraryDir = filepath.Join(base, "library")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Assessment.Enabled = false

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithAssessment enables the external assessment service pointed at endpoint.
func WithAssessment(endpoint string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Assessment.Enabled = true
		cfg.Assessment.Endpoint = endpoint
	}
}

// WithStages overrides the stage toggles on the test config.
func WithStages(stages config.Stages) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Stages = stages
	}
}
