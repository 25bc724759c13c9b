package analysis

import (
	"math"
	"sort"
	"strings"

	"podsight/internal/textutil"
)

const (
	keywordCountCap       = 3
	weakKeywordMinimum    = 3
	techBoostTechnology   = 40
	techBoostScience      = 30
	techBoostEducational  = 25
	businessBoost         = 40
	businessBoostEdu      = 20
	indicatorBoost        = 25
	takeawayBoostEdu      = 30
	takeawayBoostMinCount = 3
	fallbackCategoryScore = 20
)

// CategoryWeights are the suppression multipliers and the post-filter
// threshold. They are named and overridable because the defaults are tuned
// constants, not derived values.
type CategoryWeights struct {
	TechSuppression     float64
	BusinessSuppression float64
	WeakFloor           float64
}

// DefaultCategoryWeights returns the tuned defaults.
func DefaultCategoryWeights() CategoryWeights {
	return CategoryWeights{TechSuppression: 0.3, BusinessSuppression: 0.2, WeakFloor: 0.15}
}

// CategoryScorer assigns taxonomy categories to a transcript using keyword
// evidence plus contextual adjustments from the research and summary stages.
type CategoryScorer struct {
	Weights       CategoryWeights
	TopCategories int
}

// NewCategoryScorer constructs a scorer; non-positive topCategories falls
// back to five.
func NewCategoryScorer(weights CategoryWeights, topCategories int) CategoryScorer {
	if weights == (CategoryWeights{}) {
		weights = DefaultCategoryWeights()
	}
	if topCategories <= 0 {
		topCategories = 5
	}
	return CategoryScorer{Weights: weights, TopCategories: topCategories}
}

// Score produces the ranked category list. Research and summary context are
// optional; without them only the keyword pass runs. Suppression is applied
// before the low-score post-filter, so a suppressed weak category can drop
// below the floor and be removed.
func (c CategoryScorer) Score(text string, research *ResearchSection, summary *SummarySection) []Category {
	lower := strings.ToLower(textutil.NormalizeTranscript(text))

	scores := make(map[string]float64)
	for _, name := range categoryOrder {
		matched := 0
		var score float64
		for _, kw := range categoryKeywords[name] {
			if !keywordPresent(lower, kw) {
				continue
			}
			matched++
			count := strings.Count(lower, kw)
			if count > keywordCountCap {
				count = keywordCountCap
			}
			score += float64(count)
		}
		minimum := 1
		if weakCategories[name] {
			minimum = weakKeywordMinimum
		}
		if matched >= minimum {
			scores[name] = score
		}
	}

	c.applyDomainContext(scores, research)
	applyTopicIndicators(scores, research)
	if summary != nil && len(summary.KeyTakeaways) >= takeawayBoostMinCount {
		scores["Educational"] += takeawayBoostEdu
	}

	// Post-filter: weak categories far below the leader are noise.
	if maxScore := maxCategoryScore(scores); maxScore > 0 {
		floor := maxScore * c.Weights.WeakFloor
		for name := range weakCategories {
			if score, ok := scores[name]; ok && score < floor {
				delete(scores, name)
			}
		}
	}

	if len(scores) == 0 {
		scores["Educational"] = fallbackCategoryScore
	}

	maxScore := maxCategoryScore(scores)
	if maxScore == 0 {
		maxScore = 1
	}
	categories := make([]Category, 0, len(scores))
	for _, name := range categoryOrder {
		score, ok := scores[name]
		if !ok {
			continue
		}
		confidence := int(math.Round(100 * score / maxScore))
		if confidence > 100 {
			confidence = 100
		}
		if confidence < 0 {
			confidence = 0
		}
		categories = append(categories, Category{Name: name, Confidence: confidence})
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Confidence > categories[j].Confidence
	})
	if len(categories) > c.TopCategories {
		categories = categories[:c.TopCategories]
	}
	return categories
}

// applyDomainContext adjusts scores based on the primary research area:
// technical domains shrink lifestyle-adjacent categories and boost the
// technical ones, the business domain does the same for its set.
func (c CategoryScorer) applyDomainContext(scores map[string]float64, research *ResearchSection) {
	if research == nil || len(research.ResearchAreas) == 0 {
		return
	}
	primary := research.ResearchAreas[0]
	switch {
	case techDomains[primary]:
		for _, name := range techSuppressed {
			if score, ok := scores[name]; ok {
				scores[name] = score * c.Weights.TechSuppression
			}
		}
		scores["Technology"] += techBoostTechnology
		scores["Science"] += techBoostScience
		scores["Educational"] += techBoostEducational
	case primary == businessDomain:
		for _, name := range businessSuppressed {
			if score, ok := scores[name]; ok {
				scores[name] = score * c.Weights.BusinessSuppression
			}
		}
		scores["Business"] += businessBoost
		scores["Educational"] += businessBoostEdu
	}
}

func applyTopicIndicators(scores map[string]float64, research *ResearchSection) {
	if research == nil || len(research.TopicsExtracted) == 0 {
		return
	}
	var joined strings.Builder
	for _, topic := range research.TopicsExtracted {
		joined.WriteString(strings.ToLower(topic.Phrase))
		joined.WriteByte(' ')
	}
	combined := joined.String()

	buckets := []struct {
		indicators []string
		category   string
	}{
		{techIndicators, "Technology"},
		{scienceIndicators, "Science"},
		{businessIndicators, "Business"},
	}
	for _, bucket := range buckets {
		hits := 0
		for _, word := range bucket.indicators {
			if keywordPresent(combined, word) {
				hits++
			}
		}
		if hits >= 2 {
			scores[bucket.category] += indicatorBoost
		}
	}
}

func maxCategoryScore(scores map[string]float64) float64 {
	var max float64
	for _, score := range scores {
		if score > max {
			max = score
		}
	}
	return max
}
