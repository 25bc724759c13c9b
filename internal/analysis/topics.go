package analysis

import (
	"sort"
	"strings"

	"podsight/internal/textutil"
)

// defaultResearchArea is returned when no domain accumulates enough
// keyword evidence.
const defaultResearchArea = "General Knowledge"

// researchDomains is the fixed, ordered domain list. Qualifying domains are
// reported in this order, not by hit count.
var researchDomains = []struct {
	name     string
	keywords []string
}{
	{"Machine Learning", []string{"machine learning", "neural", "model", "training", "algorithm", "dataset", "deep learning", "ai"}},
	{"Data Science", []string{"data", "statistics", "analysis", "visualization", "analytics", "metrics"}},
	{"Software Engineering", []string{"code", "programming", "software", "developer", "testing", "architecture", "api"}},
	{"Web Technology", []string{"web", "javascript", "frontend", "backend", "html", "css", "browser"}},
	{"Product Development", []string{"product", "feature", "roadmap", "design", "prototype", "launch"}},
	{"Research & Innovation", []string{"research", "study", "experiment", "innovation", "discovery", "hypothesis"}},
	{"Business & Strategy", []string{"business", "strategy", "market", "revenue", "customer", "growth", "startup"}},
}

const maxResearchAreas = 4

// ExtractTopics converts key-phrase candidates into ranked topics. The
// transcript is cleaned first so filler vocabulary never ranks, and phrase
// density is measured against the cleaned length. Multi-word phrase
// confidence scales with occurrence density; single words and proper nouns
// use fixed confidences so recurring vocabulary outranks rare phrases.
func ExtractTopics(text string, limit int) []Topic {
	if limit <= 0 {
		limit = 8
	}
	text = textutil.NormalizeTranscript(text)
	kp := ExtractKeyPhrases(text)
	textLen := len(text)
	if textLen == 0 {
		return []Topic{}
	}

	topics := make([]Topic, 0, len(kp.Phrases)+len(kp.Words)+len(kp.ProperNouns))
	seen := make(map[string]bool)
	add := func(phrase string, confidence float64) {
		normalized := strings.ToLower(strings.TrimSpace(phrase))
		if normalized == "" || seen[normalized] {
			return
		}
		seen[normalized] = true
		topics = append(topics, Topic{Phrase: normalized, Confidence: confidence})
	}

	for _, p := range kp.Phrases {
		conf := float64(p.Count) / float64(textLen)
		if conf > 1.0 {
			conf = 1.0
		}
		add(p.Text, conf*0.9)
	}
	for _, w := range kp.Words {
		add(w.Text, 0.75)
	}
	for _, pn := range kp.ProperNouns {
		add(pn, 0.70)
	}

	sort.SliceStable(topics, func(i, j int) bool {
		if topics[i].Confidence != topics[j].Confidence {
			return topics[i].Confidence > topics[j].Confidence
		}
		return topics[i].Phrase < topics[j].Phrase
	})
	if len(topics) > limit {
		topics = topics[:limit]
	}
	return topics
}

// IdentifyResearchAreas reports which subject domains the transcript covers.
// A domain qualifies when at least two of its keywords appear; the result is
// ordered by the fixed domain list and capped at four entries.
func IdentifyResearchAreas(text string) []string {
	lower := strings.ToLower(textutil.NormalizeTranscript(text))
	areas := make([]string, 0, maxResearchAreas)
	for _, domain := range researchDomains {
		hits := 0
		for _, kw := range domain.keywords {
			if keywordPresent(lower, kw) {
				hits++
			}
		}
		if hits >= 2 {
			areas = append(areas, domain.name)
			if len(areas) == maxResearchAreas {
				break
			}
		}
	}
	if len(areas) == 0 {
		return []string{defaultResearchArea}
	}
	return areas
}

// keywordPresent matches multi-word keywords by substring and single words
// on word boundaries so "ai" does not match inside "maintain".
func keywordPresent(lowerText, keyword string) bool {
	if strings.Contains(keyword, " ") {
		return strings.Contains(lowerText, keyword)
	}
	for _, w := range strings.Fields(lowerText) {
		if textutil.TrimWordPunct(w) == keyword {
			return true
		}
	}
	return false
}
