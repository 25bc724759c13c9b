package textutil

import "strings"

// Slug converts a phrase to a lowercase hyphenated tag token.
// Interior whitespace becomes single hyphens; edge punctuation is trimmed.
func Slug(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return ""
	}
	fields := strings.Fields(value)
	for i, f := range fields {
		fields[i] = TrimWordPunct(f)
	}
	return strings.Trim(strings.Join(fields, "-"), "-")
}

// NormalizedPrefix lowercases and whitespace-collapses text, then truncates
// to at most n characters. Used as a cheap identity key for deduplication of
// near-identical sentences.
func NormalizedPrefix(text string, n int) string {
	collapsed := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	if len(collapsed) > n {
		return collapsed[:n]
	}
	return collapsed
}
