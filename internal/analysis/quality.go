package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"podsight/internal/textutil"
)

// Assessor is the optional external language-model collaborator. Both
// methods are best-effort: an unreachable service degrades the validation
// metadata, never the pipeline.
type Assessor interface {
	Available(ctx context.Context) bool
	Assess(ctx context.Context, prompt string) (string, error)
}

// Validator scores each pipeline section against deterministic quality
// rules. A nil Assessor disables external assessments entirely.
type Validator struct {
	Assessor Assessor
	Model    string
	Now      func() time.Time
}

// NewValidator builds a validator; the clock defaults to time.Now.
func NewValidator(assessor Assessor, model string) Validator {
	return Validator{Assessor: assessor, Model: model, Now: time.Now}
}

// Validate scores every populated section of the result. The validated flag
// is false only when an assessor is configured but unreachable at the start
// of validation; low individual scores never clear it.
func (v Validator) Validate(ctx context.Context, result *Result) ValidationSection {
	now := time.Now
	if v.Now != nil {
		now = v.Now
	}
	section := ValidationSection{
		Validated: true,
		Timestamp: now().UTC().Format(time.RFC3339),
		Model:     v.Model,
	}

	assessorUp := false
	if v.Assessor != nil {
		assessorUp = v.Assessor.Available(ctx)
		if !assessorUp {
			section.Validated = false
			section.Reason = "assessment service unreachable"
		}
	}

	if result.Transcription != "" {
		sv := v.validateTranscription(result.Transcription)
		v.maybeAssess(ctx, assessorUp, &sv, "transcription", result.Transcription)
		section.Transcription = &sv
	}
	if result.Summary != nil {
		sv := v.validateSummary(result.Summary)
		v.maybeAssess(ctx, assessorUp, &sv, "summary", result.Summary.Text)
		section.Summary = &sv
	}
	if result.Research != nil {
		sv := v.validateResearch(result.Research)
		v.maybeAssess(ctx, assessorUp, &sv, "research", strings.Join(result.Research.Findings, "\n"))
		section.Research = &sv
	}
	if result.Categorization != nil {
		sv := v.validateCategorization(result.Categorization)
		v.maybeAssess(ctx, assessorUp, &sv, "categorization", result.Categorization.PrimaryCategory)
		section.Categorization = &sv
	}
	return section
}

func (v Validator) validateTranscription(text string) SectionValidation {
	sv := newSectionValidation()
	chars := len(text)
	words := len(strings.Fields(text))
	sv.Metrics["char_count"] = chars
	sv.Metrics["word_count"] = words

	if chars < 100 {
		sv.deduct(30, "transcription shorter than 100 characters")
	}
	if chars > 50000 {
		sv.deduct(10, "transcription longer than 50000 characters")
	}
	if words > 0 {
		fillers := textutil.CountFillers(text)
		sv.Metrics["filler_count"] = fillers
		if float64(fillers)/float64(words) > 0.05 {
			sv.deduct(5, "filler words exceed 5% of word count")
		}
	}
	return sv
}

func (v Validator) validateSummary(summary *SummarySection) SectionValidation {
	sv := newSectionValidation()
	sv.Metrics["char_count"] = len(summary.Text)
	sv.Metrics["takeaway_count"] = len(summary.KeyTakeaways)

	if len(summary.Text) < 50 {
		sv.deduct(30, "summary shorter than 50 characters")
	}
	if len(summary.KeyTakeaways) == 0 {
		sv.deduct(20, "no key takeaways extracted")
	}
	if len(summary.KeyTakeaways) > 10 {
		sv.deduct(10, "more than 10 key takeaways")
	}
	return sv
}

func (v Validator) validateResearch(research *ResearchSection) SectionValidation {
	sv := newSectionValidation()
	sv.Metrics["finding_count"] = len(research.Findings)
	sv.Metrics["topic_count"] = len(research.TopicsExtracted)
	sv.Metrics["area_count"] = len(research.ResearchAreas)

	if len(research.Findings) == 0 {
		sv.deduct(25, "no findings synthesized")
	}
	if len(research.Findings) > 15 {
		sv.deduct(10, "more than 15 findings")
	}
	if len(research.ResearchAreas) == 0 {
		sv.deduct(15, "no research areas identified")
	}
	return sv
}

func (v Validator) validateCategorization(categorization *CategorizationSection) SectionValidation {
	sv := newSectionValidation()
	sv.Metrics["category_count"] = len(categorization.Categories)
	sv.Metrics["tag_count"] = len(categorization.Tags)

	if len(categorization.Categories) == 0 {
		sv.deduct(30, "no categories assigned")
	}
	if categorization.PrimaryCategory == "" {
		sv.deduct(25, "no primary category")
	} else if conf, ok := primaryConfidence(categorization); ok && conf < 30 {
		sv.deduct(20, "primary category confidence below 30")
	}
	return sv
}

func (v Validator) maybeAssess(ctx context.Context, up bool, sv *SectionValidation, section, content string) {
	if v.Assessor == nil || !up || content == "" {
		return
	}
	prompt := fmt.Sprintf("In one sentence, assess the quality of this %s output:\n\n%s", section, content)
	assessment, err := v.Assessor.Assess(ctx, prompt)
	if err != nil {
		return
	}
	sv.Assessment = strings.TrimSpace(assessment)
}

func primaryConfidence(categorization *CategorizationSection) (int, bool) {
	for _, cat := range categorization.Categories {
		if cat.Name == categorization.PrimaryCategory {
			return cat.Confidence, true
		}
	}
	return 0, false
}

func newSectionValidation() SectionValidation {
	return SectionValidation{QualityScore: 100, Issues: []string{}, Metrics: make(map[string]int)}
}

func (sv *SectionValidation) deduct(points int, issue string) {
	sv.QualityScore -= points
	if sv.QualityScore < 0 {
		sv.QualityScore = 0
	}
	sv.Issues = append(sv.Issues, issue)
}
