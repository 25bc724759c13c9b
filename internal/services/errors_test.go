package services

import (
	"context"
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	inner := errors.New("boom")
	err := Wrap(ErrExternalTool, "summary", "score", "scoring failed", inner)
	if !errors.Is(err, ErrExternalTool) {
		t.Error("wrapped error should match marker")
	}
	if !errors.Is(err, inner) {
		t.Error("wrapped error should match inner error")
	}
	want := "external tool error: summary: score: scoring failed: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapDefaults(t *testing.T) {
	err := Wrap(nil, "", "", "", nil)
	if !errors.Is(err, ErrTransient) {
		t.Error("nil marker should default to ErrTransient")
	}
	if err.Error() != "transient failure: service failure" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestFatal(t *testing.T) {
	if !Fatal(Wrap(ErrConfiguration, "pipeline", "load", "bad config", nil)) {
		t.Error("configuration errors are fatal")
	}
	if Fatal(Wrap(ErrTimeout, "validation", "assess", "slow", nil)) {
		t.Error("timeouts are not fatal")
	}
}

func TestStageContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := StageFromContext(ctx); ok {
		t.Error("empty context should have no stage")
	}
	ctx = WithStage(ctx, "research")
	if stage, ok := StageFromContext(ctx); !ok || stage != "research" {
		t.Errorf("StageFromContext() = %q, %v", stage, ok)
	}
	ctx = WithRunID(ctx, "abc-123")
	if id, ok := RunIDFromContext(ctx); !ok || id != "abc-123" {
		t.Errorf("RunIDFromContext() = %q, %v", id, ok)
	}
}
