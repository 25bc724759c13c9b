package textutil

import "strings"

// SplitSentences splits text on terminal punctuation ('.', '!', '?') and
// returns trimmed sentences longer than minChars. The terminal character is
// not retained; callers re-join with ". " when reassembling summary text.
func SplitSentences(text string, minChars int) []string {
	if text == "" {
		return nil
	}
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if len(s) <= minChars {
			continue
		}
		sentences = append(sentences, s)
	}
	return sentences
}

// JoinSentences reassembles sentences into prose with a trailing period.
func JoinSentences(sentences []string) string {
	if len(sentences) == 0 {
		return ""
	}
	return strings.Join(sentences, ". ") + "."
}
