package results_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"podsight/internal/analysis"
	"podsight/internal/services"
	"podsight/internal/testsupport"
)

func sampleResult() *analysis.Result {
	return &analysis.Result{
		Source:        "episode-42.wav",
		Transcription: "The training loop updates model weights after every batch.",
		Summary: &analysis.SummarySection{
			Text:         "The training loop updates model weights after every batch.",
			KeyTakeaways: []string{"The training loop updates model weights after every batch."},
			CharCount:    58,
		},
		Categorization: &analysis.CategorizationSection{
			Categories:      []analysis.Category{{Name: "Technology", Confidence: 100}},
			Tags:            []string{"training"},
			PrimaryCategory: "Technology",
		},
	}
}

func TestSaveAndGet(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	createdAt := time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC)
	record, err := store.Save(ctx, "episode-42.wav", sampleResult(), createdAt)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if record.ID == "" {
		t.Fatal("expected record ID to be assigned")
	}
	if record.Label != "analysis_20240504_120000" {
		t.Fatalf("label = %q", record.Label)
	}

	byID, err := store.Get(ctx, record.ID)
	if err != nil {
		t.Fatalf("Get by ID failed: %v", err)
	}
	if byID.Payload.Transcription != sampleResult().Transcription {
		t.Fatalf("payload round-trip mismatch: %#v", byID.Payload)
	}

	byLabel, err := store.Get(ctx, record.Label)
	if err != nil {
		t.Fatalf("Get by label failed: %v", err)
	}
	if byLabel.ID != record.ID {
		t.Fatalf("label lookup returned %q, want %q", byLabel.ID, record.ID)
	}
}

func TestSaveSameSecondLabels(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	createdAt := time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC)
	first, err := store.Save(ctx, "a.wav", sampleResult(), createdAt)
	if err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	second, err := store.Save(ctx, "b.wav", sampleResult(), createdAt)
	if err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	if first.Label == second.Label {
		t.Fatalf("labels collided: %q", first.Label)
	}
	if !strings.HasPrefix(second.Label, "analysis_20240504_120000") {
		t.Fatalf("suffixed label = %q", second.Label)
	}
}

func TestGetMissing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	_, err := store.Get(context.Background(), "analysis_19990101_000000")
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	base := time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if _, err := store.Save(ctx, "ep.wav", sampleResult(), base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("Save %d failed: %v", i, err)
		}
	}

	records, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("record count = %d, want 3", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].CreatedAt.After(records[i-1].CreatedAt) {
			t.Fatalf("records not newest first: %v then %v", records[i-1].CreatedAt, records[i].CreatedAt)
		}
	}

	limited, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List with limit failed: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("limited count = %d, want 2", len(limited))
	}
}
