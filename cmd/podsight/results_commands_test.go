package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func analyzeSample(t *testing.T, env *cliTestEnv) string {
	t.Helper()
	path := writeTranscript(t, env.baseDir, "episode.txt", sampleTranscript)
	out, _, err := runCLI(t, []string{"analyze", path}, env.configPath)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	idx := strings.LastIndex(out, "Saved as ")
	if idx < 0 {
		t.Fatalf("expected save confirmation in %q", out)
	}
	label := strings.TrimSpace(out[idx+len("Saved as "):])
	if label == "" {
		t.Fatal("empty label in save confirmation")
	}
	return label
}

func TestResultsListAndShow(t *testing.T) {
	env := setupCLITestEnv(t)
	label := analyzeSample(t, env)

	out, _, err := runCLI(t, []string{"results", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("results list: %v", err)
	}
	requireContains(t, out, label)
	requireContains(t, out, "episode.txt")

	out, _, err = runCLI(t, []string{"results", "show", label}, env.configPath)
	if err != nil {
		t.Fatalf("results show: %v", err)
	}
	requireContains(t, out, "Label:   "+label)
	requireContains(t, out, "== Summary ==")
}

func TestResultsShowMissing(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"results", "show", "analysis_19990101_000000"}, env.configPath); err == nil {
		t.Fatal("expected error for unknown label")
	}
}

func TestResultsExport(t *testing.T) {
	env := setupCLITestEnv(t)
	label := analyzeSample(t, env)

	target := filepath.Join(env.baseDir, "export", "analysis.json")
	out, _, err := runCLI(t, []string{"results", "export", label, "--output", target}, env.configPath)
	if err != nil {
		t.Fatalf("results export: %v", err)
	}
	requireContains(t, out, target)

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	requireContains(t, string(data), `"validation_metadata"`)
}
