package textutil

import (
	"regexp"
	"strings"
)

var (
	fillerPattern     = regexp.MustCompile(`(?i)\b(um|uh|hmm|like|you know|basically|literally)\b`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	spaceBeforePunct  = regexp.MustCompile(`\s+([.,!?])`)
	repeatedPeriods   = regexp.MustCompile(`\.+`)
	repeatedExclaims  = regexp.MustCompile(`!+`)
)

// NormalizeTranscript cleans raw speech-to-text output: filler words are
// removed at word boundaries, whitespace runs collapse to single spaces,
// stray spaces before punctuation are dropped, and repeated terminal
// punctuation collapses to one character. Empty input yields empty output.
func NormalizeTranscript(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	text = fillerPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	text = repeatedPeriods.ReplaceAllString(text, ".")
	text = repeatedExclaims.ReplaceAllString(text, "!")
	return strings.TrimSpace(text)
}

// CountFillers counts filler-word occurrences in raw text. Useful for
// quality metrics computed over the unnormalized transcript.
func CountFillers(text string) int {
	return len(fillerPattern.FindAllString(text, -1))
}
