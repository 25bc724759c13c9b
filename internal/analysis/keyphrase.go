package analysis

import (
	"regexp"
	"sort"
	"strings"

	"podsight/internal/textutil"
)

// stopWords are ignored during frequency analysis. The set skews toward
// spoken-language transcripts (contractions, discourse markers).
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true,
	"would": true, "could": true, "should": true, "may": true, "might": true,
	"must": true, "can": true, "you": true, "your": true,
	"i": true, "me": true, "my": true, "we": true, "our": true, "he": true,
	"she": true, "it": true, "this": true, "that": true, "these": true,
	"those": true, "from": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "at": true, "on": true, "as": true,
	"just": true, "so": true, "like": true, "right": true,
	"it's": true, "that's": true, "it'll": true, "you'll": true,
}

// properNounPattern matches capitalized multi-word runs ("Machine Learning",
// "New York City").
var properNounPattern = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b`)

// PhraseCount pairs a candidate phrase with its occurrence count.
type PhraseCount struct {
	Text  string
	Count int
}

// KeyPhrases holds the candidate classes shared by the summary and research
// stages: recurring n-grams, high-frequency single words, and capitalized
// proper-noun phrases.
type KeyPhrases struct {
	Phrases     []PhraseCount // bigrams/trigrams occurring at least twice, by count desc
	Words       []PhraseCount // single words longer than four characters, by count desc
	ProperNouns []string      // multi-word capitalized phrases, first-seen order
}

// ExtractKeyPhrases analyzes normalized text and returns the candidate
// phrase classes. All ordering uses count-descending with an alphabetical
// tie-break so extraction is deterministic.
func ExtractKeyPhrases(text string) KeyPhrases {
	words := textutil.Words(text)

	wordFreq := make(map[string]int)
	for _, w := range words {
		if stopWords[w] || len(w) <= 4 {
			continue
		}
		wordFreq[w]++
	}

	ngramFreq := make(map[string]int)
	countNgram := func(parts []string) {
		for _, p := range parts {
			if stopWords[p] || len(p) <= 3 {
				return
			}
		}
		ngramFreq[strings.Join(parts, " ")]++
	}
	for i := 0; i+1 < len(words); i++ {
		countNgram(words[i : i+2])
		if i+2 < len(words) {
			countNgram(words[i : i+3])
		}
	}

	kp := KeyPhrases{
		Phrases: rankCounts(ngramFreq, 2),
		Words:   rankCounts(wordFreq, 1),
	}

	seen := make(map[string]bool)
	for _, m := range properNounPattern.FindAllString(text, -1) {
		key := strings.ToLower(m)
		if seen[key] {
			continue
		}
		seen[key] = true
		kp.ProperNouns = append(kp.ProperNouns, m)
	}
	return kp
}

// Ranked merges the candidate classes into a single deduplicated ranking.
// Multi-word phrases count double so recurring n-grams outrank the single
// words they contain.
func (kp KeyPhrases) Ranked(limit int) []PhraseCount {
	merged := make([]PhraseCount, 0, len(kp.Phrases)+len(kp.Words))
	seen := make(map[string]bool)
	for _, p := range kp.Phrases {
		key := strings.ToLower(p.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, PhraseCount{Text: p.Text, Count: p.Count * 2})
	}
	for _, w := range kp.Words {
		key := strings.ToLower(w.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, w)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Count != merged[j].Count {
			return merged[i].Count > merged[j].Count
		}
		return merged[i].Text < merged[j].Text
	})
	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

func rankCounts(freq map[string]int, minCount int) []PhraseCount {
	out := make([]PhraseCount, 0, len(freq))
	for text, count := range freq {
		if count < minCount {
			continue
		}
		out = append(out, PhraseCount{Text: text, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Text < out[j].Text
	})
	return out
}
