package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"podsight/internal/textutil"
)

const (
	evidencePrefixLen = 80
	excerptLimit      = 100
	longSentenceChars = 120
	minFindings       = 3
)

var titleCaser = cases.Title(language.English)

// findingPatterns are scanned in order; the first group whose trigger appears
// in the supporting sentence decides how the finding is phrased.
var findingPatterns = []struct {
	triggers []string
}{
	{[]string{"enables", "enable", "allows", "allow", "lets", "helps"}},
	{[]string{"requires", "require", "needs", "need", "must"}},
	{[]string{"improves", "improve", "enhances", "enhance", "better", "optimize"}},
	{[]string{"creates", "create", "builds", "build", "makes", "make", "generate"}},
	{[]string{"solves", "solve", "fixes", "fix", "addresses", "address"}},
	{[]string{"learn", "teaches", "teach", "explains", "explain", "understand"}},
	{[]string{"risk", "danger", "warning", "careful", "avoid", "problem"}},
	{[]string{"performance", "faster", "fast", "slow", "speed", "efficient"}},
	{[]string{"security", "secure", "vulnerability", "attack", "encrypt"}},
}

// SynthesizeFindings turns ranked topics into evidence-grounded statements.
// Each topic is matched to a supporting sentence, preferring sentences not
// already used as evidence, then phrased through the pattern groups. Fewer
// than three findings triggers a generic backfill pass over leftover topics.
func SynthesizeFindings(text string, topics []Topic, maxFindings int) []string {
	if maxFindings <= 0 {
		maxFindings = 8
	}
	sentences := textutil.SplitSentences(textutil.NormalizeTranscript(text), minSentenceChars)
	if len(sentences) == 0 || len(topics) == 0 {
		return []string{}
	}

	findings := make([]string, 0, maxFindings)
	findingSet := make(map[string]bool)
	usedEvidence := make(map[string]bool)
	covered := make(map[string]bool)

	addFinding := func(topic, statement string) bool {
		if statement == "" || findingSet[statement] {
			return false
		}
		findingSet[statement] = true
		findings = append(findings, statement)
		covered[topic] = true
		return true
	}

	bound := maxFindings
	if bound > len(topics) {
		bound = len(topics)
	}
	for _, topic := range topics[:bound] {
		if len(findings) == maxFindings {
			break
		}
		evidence := findEvidence(topic.Phrase, sentences, usedEvidence)
		if evidence == "" {
			continue
		}
		usedEvidence[textutil.NormalizedPrefix(evidence, evidencePrefixLen)] = true
		addFinding(topic.Phrase, synthesizeStatement(topic.Phrase, evidence))
	}

	// Backfill guarantees a minimum finding count when the pattern pass came
	// up short; topics already represented are skipped.
	if len(findings) < minFindings {
		for _, topic := range topics {
			if len(findings) >= minFindings || len(findings) == maxFindings {
				break
			}
			if covered[topic.Phrase] {
				continue
			}
			pct := int(math.Round(topic.Confidence * 100))
			addFinding(topic.Phrase, fmt.Sprintf("Focus: %s - confidence %d%%", titleCaser.String(topic.Phrase), pct))
		}
	}
	return findings
}

// findEvidence locates the sentence best supporting a topic. Direct word
// matches win, longest first; otherwise the sentence sharing the most tokens
// with the topic is used. Used sentences are avoided when an unused
// alternative exists.
func findEvidence(topic string, sentences []string, used map[string]bool) string {
	topicWords := significantWords(topic)
	if len(topicWords) == 0 {
		return ""
	}

	var direct []string
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		if strings.Contains(lower, topic) {
			direct = append(direct, sentence)
			continue
		}
		for _, w := range topicWords {
			if strings.Contains(lower, w) {
				direct = append(direct, sentence)
				break
			}
		}
	}
	if len(direct) > 0 {
		sort.SliceStable(direct, func(i, j int) bool { return len(direct[i]) > len(direct[j]) })
		for _, sentence := range direct {
			if !used[textutil.NormalizedPrefix(sentence, evidencePrefixLen)] {
				return sentence
			}
		}
		return direct[0]
	}

	var best string
	bestOverlap := 0
	for _, sentence := range sentences {
		if used[textutil.NormalizedPrefix(sentence, evidencePrefixLen)] {
			continue
		}
		overlap := textutil.WordOverlap(topicWords, textutil.Words(sentence))
		if overlap > bestOverlap {
			bestOverlap = overlap
			best = sentence
		}
	}
	return best
}

// synthesizeStatement phrases a finding from its supporting sentence. Short
// sentences matching a pattern are rewritten around the topic; long ones and
// pattern misses fall back to a clause or a truncated excerpt.
func synthesizeStatement(topic, evidence string) string {
	titled := titleCaser.String(topic)
	lower := strings.ToLower(evidence)

	for _, pattern := range findingPatterns {
		idx := -1
		for _, trigger := range pattern.triggers {
			if pos := indexOfWord(lower, trigger); pos >= 0 {
				idx = pos
				break
			}
		}
		if idx < 0 {
			continue
		}
		if len(evidence) > longSentenceChars {
			return titled + ": " + truncateExcerpt(evidence)
		}
		clause := strings.TrimSpace(evidence[idx:])
		return titled + " " + strings.ToLower(clause[:1]) + clause[1:]
	}

	if clause := nonTopicClause(evidence, significantWords(topic)); clause != "" {
		return titled + ": " + capitalizeFirst(clause)
	}
	return titled + ": " + truncateExcerpt(evidence)
}

// nonTopicClause returns the first comma-separated clause of the sentence
// that does not mention the topic, giving the finding new information beyond
// the topic phrase itself.
func nonTopicClause(sentence string, topicWords []string) string {
	clauses := strings.Split(sentence, ",")
	if len(clauses) < 2 {
		return ""
	}
	for _, clause := range clauses {
		clause = strings.TrimSpace(clause)
		if len(clause) < 15 {
			continue
		}
		lower := strings.ToLower(clause)
		mentions := false
		for _, w := range topicWords {
			if strings.Contains(lower, w) {
				mentions = true
				break
			}
		}
		if !mentions {
			return clause
		}
	}
	return ""
}

func truncateExcerpt(sentence string) string {
	trimmed := strings.TrimSpace(sentence)
	if len(trimmed) <= excerptLimit {
		return capitalizeFirst(trimmed)
	}
	cut := trimmed[:excerptLimit]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return capitalizeFirst(cut) + "..."
}

func significantWords(phrase string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(phrase)) {
		if len(w) > 3 && !stopWords[w] {
			words = append(words, w)
		}
	}
	return words
}

// indexOfWord finds a whole-word occurrence of needle in lower-cased text.
func indexOfWord(lowerText, needle string) int {
	start := 0
	for {
		idx := strings.Index(lowerText[start:], needle)
		if idx < 0 {
			return -1
		}
		idx += start
		end := idx + len(needle)
		beforeOK := idx == 0 || !isWordByte(lowerText[idx-1])
		afterOK := end == len(lowerText) || !isWordByte(lowerText[end])
		if beforeOK && afterOK {
			return idx
		}
		start = end
	}
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
