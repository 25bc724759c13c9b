package analysis

import (
	"regexp"
	"strings"

	"podsight/internal/textutil"
)

var hashtagPattern = regexp.MustCompile(`#(\w+)`)

// maxTopicTags bounds how many research topics contribute tags.
const maxTopicTags = 5

// ExtractTags collects tag candidates in a fixed priority order: explicit
// hashtags, proper-noun phrases, taxonomy keywords found in the text,
// research topics and domains, and the leading words of the first takeaways.
// Tags are lower-cased, longer than two characters, deduplicated in
// insertion order, and capped at maxTags.
func ExtractTags(text string, research *ResearchSection, summary *SummarySection, maxTags int) []string {
	if maxTags <= 0 {
		maxTags = 12
	}
	tags := make([]string, 0, maxTags)
	seen := make(map[string]bool)
	add := func(candidate string) {
		tag := strings.ToLower(strings.TrimSpace(candidate))
		if len(tag) <= 2 || seen[tag] {
			return
		}
		seen[tag] = true
		if len(tags) < maxTags {
			tags = append(tags, tag)
		}
	}

	for _, m := range hashtagPattern.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, phrase := range properNounPattern.FindAllString(text, -1) {
		add(textutil.Slug(phrase))
	}

	lower := strings.ToLower(text)
	for _, name := range categoryOrder {
		for _, kw := range categoryKeywords[name] {
			if keywordPresent(lower, kw) {
				add(textutil.Slug(kw))
			}
		}
	}

	if research != nil {
		// Only the strongest topics become tags so later sources still fit.
		topics := research.TopicsExtracted
		if len(topics) > maxTopicTags {
			topics = topics[:maxTopicTags]
		}
		for _, topic := range topics {
			add(textutil.Slug(topic.Phrase))
		}
		for _, area := range research.ResearchAreas {
			add(textutil.Slug(area))
		}
	}

	if summary != nil {
		takeaways := summary.KeyTakeaways
		if len(takeaways) > 3 {
			takeaways = takeaways[:3]
		}
		for _, takeaway := range takeaways {
			if fields := strings.Fields(takeaway); len(fields) > 0 {
				add(textutil.TrimWordPunct(fields[0]))
			}
		}
	}

	return tags
}
