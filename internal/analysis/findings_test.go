package analysis

import (
	"strings"
	"testing"
)

func TestSynthesizeFindingsNonEmpty(t *testing.T) {
	topics := ExtractTopics(tutorialTranscript, 8)
	findings := SynthesizeFindings(tutorialTranscript, topics, 8)
	if len(findings) == 0 {
		t.Fatal("no findings synthesized")
	}
	if len(findings) > 8 {
		t.Errorf("finding count = %d, want <= 8", len(findings))
	}
}

func TestSynthesizeFindingsNoDuplicates(t *testing.T) {
	text := strings.Repeat("The caching layer improves request latency across every service. ", 4)
	topics := ExtractTopics(text, 8)
	findings := SynthesizeFindings(text, topics, 8)

	seen := make(map[string]bool)
	for _, f := range findings {
		if seen[f] {
			t.Errorf("duplicate finding %q", f)
		}
		seen[f] = true
	}
}

func TestSynthesizeFindingsBackfill(t *testing.T) {
	// Topics with no sentence evidence force the generic backfill pass.
	text := "Completely unrelated prose about gardens and weather patterns today."
	topics := []Topic{
		{Phrase: "quantum computing", Confidence: 0.9},
		{Phrase: "distributed ledgers", Confidence: 0.8},
		{Phrase: "protein folding", Confidence: 0.7},
		{Phrase: "carbon capture", Confidence: 0.6},
	}
	findings := SynthesizeFindings(text, topics, 8)
	if len(findings) < 3 {
		t.Fatalf("finding count = %d, want >= 3 after backfill", len(findings))
	}
	backfilled := 0
	for _, f := range findings {
		if strings.HasPrefix(f, "Focus: ") && strings.Contains(f, "confidence") {
			backfilled++
		}
	}
	if backfilled == 0 {
		t.Errorf("expected backfill findings, got %v", findings)
	}
}

func TestSynthesizeFindingsEmptyInputs(t *testing.T) {
	if got := SynthesizeFindings("", nil, 8); len(got) != 0 {
		t.Errorf("findings for empty input = %v", got)
	}
	if got := SynthesizeFindings("short.", []Topic{{Phrase: "anything", Confidence: 0.5}}, 8); len(got) != 0 {
		t.Errorf("findings with no usable sentences = %v", got)
	}
}

func TestSynthesizeStatementPatternClause(t *testing.T) {
	got := synthesizeStatement("caching", "The caching layer improves request latency across every service")
	if !strings.HasPrefix(got, "Caching ") {
		t.Errorf("statement = %q, want topic-prefixed rewrite", got)
	}
	if !strings.Contains(got, "improves") {
		t.Errorf("statement %q lost the pattern clause", got)
	}
}

func TestSynthesizeStatementLongSentenceExcerpt(t *testing.T) {
	long := "The caching layer improves request latency across every downstream service by holding the most recently used responses in memory until eviction"
	got := synthesizeStatement("caching", long)
	if !strings.HasPrefix(got, "Caching: ") {
		t.Errorf("statement = %q, want excerpt form for long sentence", got)
	}
	if len(got) > len("Caching: ")+excerptLimit+3 {
		t.Errorf("excerpt not truncated: %q", got)
	}
}

func TestFindEvidencePrefersUnusedSentences(t *testing.T) {
	sentences := []string{
		"The scheduler assigns work to every available machine node",
		"A separate scheduler thread rebalances machine workloads hourly",
	}
	used := map[string]bool{}
	first := findEvidence("scheduler", sentences, used)
	used[prefixKey(first)] = true
	second := findEvidence("scheduler", sentences, used)
	if first == second {
		t.Errorf("evidence reused while unused sentence available: %q", first)
	}
}

func prefixKey(sentence string) string {
	return strings.Join(strings.Fields(strings.ToLower(sentence)), " ")
}
