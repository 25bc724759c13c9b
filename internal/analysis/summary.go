package analysis

import (
	"sort"
	"strings"

	"podsight/internal/textutil"
)

const minSentenceChars = 20

// actionWords flag imperative or advisory sentences during takeaway scoring.
var actionWords = []string{
	"should", "must", "need", "important", "key", "remember",
	"always", "never", "build", "create", "use", "ensure", "avoid", "learn",
	"design", "develop", "understand", "implement", "apply", "prevent",
	"have to",
}

// Summarizer produces the extractive summary section. The zero value is not
// usable; construct with NewSummarizer.
type Summarizer struct {
	MaxSentences  int
	TakeawayCount int
	MinChars      int
}

// NewSummarizer returns a summarizer with the given sentence and takeaway
// limits. Non-positive values fall back to defaults.
func NewSummarizer(maxSentences, takeawayCount, minChars int) Summarizer {
	if maxSentences <= 0 {
		maxSentences = 3
	}
	if takeawayCount <= 0 {
		takeawayCount = 5
	}
	if minChars <= 0 {
		minChars = 50
	}
	return Summarizer{MaxSentences: maxSentences, TakeawayCount: takeawayCount, MinChars: minChars}
}

type scoredSentence struct {
	text     string
	score    float64
	position int
}

// Summarize cleans the transcript, scores its sentences by word frequency,
// and returns the top sentences in original order plus key takeaways.
// Transcripts shorter than MinChars yield the unavailable marker; this is a
// normal outcome, not an error.
func (s Summarizer) Summarize(raw string) SummarySection {
	text := textutil.NormalizeTranscript(raw)
	if len(text) < s.MinChars {
		return SummarySection{Text: SummaryUnavailable, KeyTakeaways: []string{}, CharCount: len(text)}
	}

	sentences := textutil.SplitSentences(text, minSentenceChars)
	if len(sentences) <= s.MaxSentences {
		return SummarySection{
			Text:         text,
			KeyTakeaways: s.extractTakeaways(text, sentences),
			CharCount:    len(text),
		}
	}

	freq := wordFrequencies(text)
	topWords := topFrequentWords(freq, 5)

	scored := make([]scoredSentence, len(sentences))
	for i, sentence := range sentences {
		scored[i] = scoredSentence{text: sentence, score: scoreSentence(sentence, freq, topWords), position: i}
	}
	picked := append([]scoredSentence(nil), scored...)
	sort.SliceStable(picked, func(i, j int) bool { return picked[i].score > picked[j].score })
	picked = picked[:s.MaxSentences]
	sort.Slice(picked, func(i, j int) bool { return picked[i].position < picked[j].position })

	parts := make([]string, len(picked))
	for i, p := range picked {
		parts[i] = p.text
	}
	summary := textutil.JoinSentences(parts)

	return SummarySection{
		Text:         summary,
		KeyTakeaways: s.extractTakeaways(text, sentences),
		CharCount:    len(text),
	}
}

// extractTakeaways picks sentences most relevant to the transcript's
// recurring phrases, favoring sentences containing action words. Sentences
// are returned in original order.
func (s Summarizer) extractTakeaways(text string, sentences []string) []string {
	if len(sentences) == 0 {
		return []string{}
	}

	phrases := ExtractKeyPhrases(text).Ranked(10)

	scored := make([]scoredSentence, 0, len(sentences))
	for i, sentence := range sentences {
		if len(sentence) <= 15 {
			continue
		}
		lower := strings.ToLower(sentence)
		var score float64
		for _, p := range phrases {
			if strings.Contains(lower, strings.ToLower(p.Text)) {
				score += float64(p.Count)
			}
		}
		for _, w := range actionWords {
			if strings.Contains(lower, w) {
				score += 3
			}
		}
		scored = append(scored, scoredSentence{text: sentence, score: score, position: i})
	}
	if len(scored) == 0 {
		return []string{}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	// Positive-scored sentences first, backfilled from the remaining
	// best-scored ones when fewer than TakeawayCount survive.
	selected := make([]scoredSentence, 0, s.TakeawayCount)
	for _, cand := range scored {
		if cand.score <= 0 || len(selected) == s.TakeawayCount {
			break
		}
		selected = append(selected, cand)
	}
	for _, cand := range scored {
		if len(selected) == s.TakeawayCount {
			break
		}
		if cand.score <= 0 {
			selected = append(selected, cand)
		}
	}

	sort.Slice(selected, func(i, j int) bool { return selected[i].position < selected[j].position })

	takeaways := make([]string, 0, len(selected))
	seen := make(map[string]bool)
	for _, cand := range selected {
		key := strings.ToLower(cand.text)
		if seen[key] {
			continue
		}
		seen[key] = true
		takeaways = append(takeaways, ensureTerminated(cand.text))
	}
	return takeaways
}

func wordFrequencies(text string) map[string]int {
	freq := make(map[string]int)
	for _, w := range textutil.Words(text) {
		if stopWords[w] || len(w) <= 3 {
			continue
		}
		freq[w]++
	}
	return freq
}

func topFrequentWords(freq map[string]int, n int) map[string]bool {
	type wc struct {
		word  string
		count int
	}
	ranked := make([]wc, 0, len(freq))
	for w, c := range freq {
		ranked = append(ranked, wc{word: w, count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].word < ranked[j].word
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	top := make(map[string]bool, len(ranked))
	for _, r := range ranked {
		top[r.word] = true
	}
	return top
}

func scoreSentence(sentence string, freq map[string]int, topWords map[string]bool) float64 {
	var score float64
	words := textutil.Words(sentence)
	for _, w := range words {
		score += float64(freq[w])
		if topWords[w] {
			score += 2 * float64(freq[w])
		}
	}
	score += 0.5 * float64(len(words))
	return score
}

func ensureTerminated(sentence string) string {
	trimmed := strings.TrimSpace(sentence)
	if trimmed == "" {
		return trimmed
	}
	switch trimmed[len(trimmed)-1] {
	case '.', '!', '?':
		return trimmed
	}
	return trimmed + "."
}

// Capitalize upper-cases the first byte of a finding or excerpt.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
