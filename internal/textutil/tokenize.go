package textutil

import "strings"

// wordPunct is the punctuation trimmed from word edges during extraction.
const wordPunct = ",.!?()[]{}:;\"'"

// TrimWordPunct strips leading and trailing punctuation from a single word.
func TrimWordPunct(word string) string {
	return strings.Trim(word, wordPunct)
}

// Words splits text on whitespace and returns lowercase words with edge
// punctuation trimmed. Empty words are dropped; no length filtering is
// applied so callers can choose their own thresholds.
func Words(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		word := TrimWordPunct(field)
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return words
}

// WordOverlap counts how many unique words the two slices share.
func WordOverlap(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(a))
	for _, w := range a {
		seen[w] = struct{}{}
	}
	matched := make(map[string]struct{})
	for _, w := range b {
		if _, ok := seen[w]; ok {
			matched[w] = struct{}{}
		}
	}
	return len(matched)
}
