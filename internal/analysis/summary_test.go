package analysis

import (
	"reflect"
	"strings"
	"testing"
)

func TestSummarizeShortTranscript(t *testing.T) {
	s := NewSummarizer(3, 5, 50)
	section := s.Summarize("Too short to analyze.")
	if section.Text != SummaryUnavailable {
		t.Errorf("text = %q, want unavailable marker", section.Text)
	}
	if len(section.KeyTakeaways) != 0 {
		t.Errorf("takeaways = %v, want empty", section.KeyTakeaways)
	}
}

func TestSummarizeFewSentencesPassthrough(t *testing.T) {
	s := NewSummarizer(3, 5, 50)
	text := "This tutorial will teach you to build a neural network using machine learning algorithms. We will explain key concepts step by step."
	section := s.Summarize(text)
	if section.Text != text {
		t.Errorf("expected passthrough, got %q", section.Text)
	}
	if n := len(section.KeyTakeaways); n < 1 || n > 5 {
		t.Errorf("takeaway count = %d, want 1..5", n)
	}
}

func TestSummarizeSelectsFrequentSentences(t *testing.T) {
	text := "The network processes input signals through layers. Each network layer transforms the signal further. Training the network adjusts every layer weight. Bananas taste wonderful during summer afternoons. The network output layer produces the final signal."
	s := NewSummarizer(3, 5, 50)
	section := s.Summarize(text)

	if strings.Contains(section.Text, "Bananas") {
		t.Errorf("low-relevance sentence survived scoring: %q", section.Text)
	}
	if got := len(strings.Split(section.Text, ". ")); got != 3 {
		t.Errorf("summary sentence count = %d, want 3", got)
	}
	if section.CharCount != len(text) {
		t.Errorf("char count = %d, want cleaned transcript length %d", section.CharCount, len(text))
	}
}

func TestSummarizeCharCountReportsTranscriptLength(t *testing.T) {
	s := NewSummarizer(3, 5, 50)

	short := "Too short to analyze."
	if got := s.Summarize(short).CharCount; got != len(short) {
		t.Errorf("short path char count = %d, want %d", got, len(short))
	}

	passthrough := "Alpha systems handle the routing. Beta systems manage the persistence tier."
	if got := s.Summarize(passthrough).CharCount; got != len(passthrough) {
		t.Errorf("passthrough char count = %d, want %d", got, len(passthrough))
	}
}

func TestSummarizePreservesSentenceOrder(t *testing.T) {
	text := "Alpha systems handle the initial request routing. Beta systems manage the request persistence tier. Gamma systems deliver the request response payload. Delta systems archive every request permanently."
	s := NewSummarizer(3, 5, 50)
	section := s.Summarize(text)

	positions := make([]int, 0, 3)
	for _, marker := range []string{"Alpha", "Beta", "Gamma", "Delta"} {
		if idx := strings.Index(section.Text, marker); idx >= 0 {
			positions = append(positions, idx)
		}
	}
	for i := 1; i < len(positions); i++ {
		if positions[i] < positions[i-1] {
			t.Fatalf("summary sentences out of original order: %q", section.Text)
		}
	}
}

func TestSummarizeDeterministic(t *testing.T) {
	text := strings.Repeat("The training loop updates model weights after every batch. Validation checks the model accuracy against held out data. ", 3)
	s := NewSummarizer(3, 5, 50)
	first := s.Summarize(text)
	second := s.Summarize(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("summaries differ between runs")
	}
}

func TestTakeawayCountCapped(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("You should always remember to build reliable systems with careful design. ")
	}
	s := NewSummarizer(3, 5, 50)
	section := s.Summarize(b.String())
	if len(section.KeyTakeaways) > 5 {
		t.Errorf("takeaway count = %d, want <= 5", len(section.KeyTakeaways))
	}
}
