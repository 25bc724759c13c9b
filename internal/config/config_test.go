package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[analysis]
summary_sentences = 5
max_findings = 10

[assessment]
enabled = false

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Error("expected config file to be found")
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Analysis.SummarySentences != 5 {
		t.Errorf("summary_sentences = %d, want 5", cfg.Analysis.SummarySentences)
	}
	if cfg.Analysis.MaxFindings != 10 {
		t.Errorf("max_findings = %d, want 10", cfg.Analysis.MaxFindings)
	}
	if cfg.Assessment.Enabled {
		t.Error("assessment should be disabled")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want debug", cfg.Logging.Level)
	}
	// Untouched defaults survive the overlay.
	if cfg.Analysis.MaxTopics != defaultMaxTopics {
		t.Errorf("max_topics = %d, want default %d", cfg.Analysis.MaxTopics, defaultMaxTopics)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Error("file should not exist")
	}
	if cfg.Analysis.MaxTags != defaultMaxTags {
		t.Errorf("max_tags = %d, want default", cfg.Analysis.MaxTags)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			"zero summary sentences",
			func(c *Config) { c.Analysis.SummarySentences = 0 },
			"analysis.summary_sentences",
		},
		{
			"weight above one",
			func(c *Config) { c.Weights.WeakFloor = 1.5 },
			"weights.weak_floor",
		},
		{
			"bad log format",
			func(c *Config) { c.Logging.Format = "xml" },
			"logging.format",
		},
		{
			"assessment without endpoint",
			func(c *Config) { c.Assessment.Endpoint = "" },
			"assessment.endpoint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			if err := cfg.normalize(); err != nil {
				t.Fatal(err)
			}
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestNormalizeTrimsEndpoint(t *testing.T) {
	cfg := Default()
	cfg.Assessment.Endpoint = " http://localhost:11434/ "
	if err := cfg.normalize(); err != nil {
		t.Fatal(err)
	}
	if cfg.Assessment.Endpoint != "http://localhost:11434" {
		t.Errorf("endpoint = %q", cfg.Assessment.Endpoint)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if err := CreateSample(path); err == nil {
		t.Error("second CreateSample should fail on existing file")
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !exists {
		t.Error("sample config should exist")
	}
	if cfg.Analysis.SummarySentences != defaultSummarySentences {
		t.Errorf("sample should carry defaults, got %d", cfg.Analysis.SummarySentences)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/data")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "data") {
		t.Errorf("ExpandPath(~/data) = %q", got)
	}
}
