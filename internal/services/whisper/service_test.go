package whisper

import (
	"context"
	"errors"
	"testing"
)

func TestParseErrorMarker(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"plain text", "Hello world transcript.", true},
		{"error marker", "[Transcription error: model failed to load]", false},
		{"marker with padding", "  [Transcription error: no audio stream]  ", false},
		{"bracketed but not marker", "[music playing] then speech", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Parse(tc.raw)
			if result.IsOk() != tc.ok {
				t.Errorf("IsOk() = %v, want %v", result.IsOk(), tc.ok)
			}
		})
	}
}

func TestMarkerRoundTrip(t *testing.T) {
	original := Errf("no audio stream")
	parsed := Parse(original.Marker())
	if parsed.IsOk() {
		t.Fatal("expected error result")
	}
	if parsed.Detail != "no audio stream" {
		t.Errorf("detail = %q", parsed.Detail)
	}
}

func TestTranscribeWithRunner(t *testing.T) {
	svc := NewService(Config{Model: "base"}, nil)
	var gotName string
	var gotArgs []string
	svc.WithCommandRunner(func(_ context.Context, name string, args ...string) (string, error) {
		gotName = name
		gotArgs = args
		return "The transcript text.\n", nil
	})

	result := svc.Transcribe(context.Background(), "/tmp/episode.wav")
	if !result.IsOk() {
		t.Fatalf("unexpected failure: %q", result.Detail)
	}
	if result.Text != "The transcript text." {
		t.Errorf("text = %q", result.Text)
	}
	if gotName != DefaultBinary {
		t.Errorf("binary = %q", gotName)
	}
	if len(gotArgs) == 0 || gotArgs[0] != "/tmp/episode.wav" {
		t.Errorf("args = %v", gotArgs)
	}
}

func TestTranscribeRunnerFailure(t *testing.T) {
	svc := NewService(Config{}, nil)
	svc.WithCommandRunner(func(_ context.Context, _ string, _ ...string) (string, error) {
		return "", errors.New("exit status 1")
	})
	result := svc.Transcribe(context.Background(), "/tmp/episode.wav")
	if result.IsOk() {
		t.Fatal("expected failure result")
	}
	if result.Detail == "" {
		t.Error("detail missing")
	}
}

func TestTranscribeEmptySource(t *testing.T) {
	svc := NewService(Config{}, nil)
	if result := svc.Transcribe(context.Background(), " "); result.IsOk() {
		t.Fatal("expected failure for empty source")
	}
}

func TestEngineCacheReuse(t *testing.T) {
	cache := NewEngineCache()
	svc := NewService(Config{Model: "base"}, cache)
	svc.WithCommandRunner(func(_ context.Context, _ string, _ ...string) (string, error) {
		return "text", nil
	})

	for i := 0; i < 3; i++ {
		svc.Transcribe(context.Background(), "/tmp/a.wav")
	}
	if cache.Len() != 1 {
		t.Fatalf("engine count = %d, want 1", cache.Len())
	}
	engine := cache.Acquire(Config{Model: "base"}.withDefaults().cacheKey())
	if engine.Loads != 4 {
		t.Errorf("loads = %d, want 4", engine.Loads)
	}

	other := NewService(Config{Model: "large"}, cache)
	other.WithCommandRunner(func(_ context.Context, _ string, _ ...string) (string, error) {
		return "text", nil
	})
	other.Transcribe(context.Background(), "/tmp/a.wav")
	if cache.Len() != 2 {
		t.Errorf("engine count = %d, want 2", cache.Len())
	}
}
