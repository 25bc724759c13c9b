package main

import (
	"strings"
	"testing"
)

const sampleTranscript = "This tutorial will teach you how to build software step by step. " +
	"You should always write tests before shipping code. " +
	"Machine learning models need training data to perform well. " +
	"Remember to keep your functions small and focused. " +
	"We will explain the key concepts with practical examples."

func TestAnalyzeTranscriptFile(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeTranscript(t, env.baseDir, "episode.txt", sampleTranscript)

	out, _, err := runCLI(t, []string{"analyze", path}, env.configPath)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	requireContains(t, out, "== Summary ==")
	requireContains(t, out, "== Research ==")
	requireContains(t, out, "== Validation ==")
	requireContains(t, out, "Saved as analysis_")
}

func TestAnalyzeNoSave(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeTranscript(t, env.baseDir, "episode.txt", sampleTranscript)

	out, _, err := runCLI(t, []string{"analyze", "--no-save", path}, env.configPath)
	if err != nil {
		t.Fatalf("analyze --no-save: %v", err)
	}
	if strings.Contains(out, "Saved as") {
		t.Fatalf("expected no save confirmation, got %q", out)
	}

	out, _, err = runCLI(t, []string{"results", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("results list: %v", err)
	}
	requireContains(t, out, "No analyses stored yet")
}

func TestAnalyzeJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeTranscript(t, env.baseDir, "episode.txt", sampleTranscript)

	out, _, err := runCLI(t, []string{"analyze", "--json", "--no-save", path}, env.configPath)
	if err != nil {
		t.Fatalf("analyze --json: %v", err)
	}
	requireContains(t, out, `"summary"`)
	requireContains(t, out, `"validation_metadata"`)
}

func TestAnalyzeSkipStages(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeTranscript(t, env.baseDir, "episode.txt", sampleTranscript)

	out, _, err := runCLI(t, []string{"analyze", "--no-save", "--skip", "research,validation", path}, env.configPath)
	if err != nil {
		t.Fatalf("analyze --skip: %v", err)
	}
	requireContains(t, out, "== Summary ==")
	if strings.Contains(out, "== Research ==") || strings.Contains(out, "== Validation ==") {
		t.Fatalf("skipped sections rendered: %q", out)
	}

	if _, _, err := runCLI(t, []string{"analyze", "--no-save", "--skip", "nonsense", path}, env.configPath); err == nil {
		t.Fatal("expected error for unknown stage name")
	}
}

func TestAnalyzeMissingFile(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"analyze", "/does/not/exist.txt"}, env.configPath); err == nil {
		t.Fatal("expected error for missing input")
	}
}
