package analysis

// Topic is a ranked phrase candidate with confidence in [0, 1]. Phrases are
// case-normalized and deduplicated.
type Topic struct {
	Phrase     string  `json:"phrase"`
	Confidence float64 `json:"confidence"`
}

// Category is one taxonomy label with confidence in [0, 100].
type Category struct {
	Name       string `json:"name"`
	Confidence int    `json:"confidence"`
}

// SummarySection holds the extractive summary stage output. CharCount is
// always the cleaned transcript length, regardless of which summarization
// path produced the text.
type SummarySection struct {
	Text         string   `json:"summary"`
	KeyTakeaways []string `json:"key_takeaways"`
	CharCount    int      `json:"char_count"`
	Error        string   `json:"error,omitempty"`
}

// ResearchSection holds ranked topics, synthesized findings, and the
// identified research domains.
type ResearchSection struct {
	Findings        []string `json:"findings"`
	TopicsExtracted []Topic  `json:"topics_extracted"`
	ResearchAreas   []string `json:"research_areas"`
	Error           string   `json:"error,omitempty"`
}

// CategorizationSection holds the multi-label classification output. The
// category list is sorted descending by confidence; PrimaryCategory is the
// first entry's name, or empty when no categories were assigned.
type CategorizationSection struct {
	Categories      []Category `json:"categories"`
	Tags            []string   `json:"tags"`
	PrimaryCategory string     `json:"primary_category"`
	Error           string     `json:"error,omitempty"`
}

// SectionValidation is the rule-based quality score for one result section.
type SectionValidation struct {
	QualityScore int            `json:"quality_score"`
	Issues       []string       `json:"issues"`
	Metrics      map[string]int `json:"metrics,omitempty"`
	Assessment   string         `json:"assessment,omitempty"`
}

// ValidationSection aggregates per-section quality validation. Validated is
// false only when an external assessment service was configured but
// unreachable at validation start; low rule scores never flip it.
type ValidationSection struct {
	Validated      bool               `json:"validated"`
	Timestamp      string             `json:"validation_timestamp"`
	Model          string             `json:"model_used,omitempty"`
	Reason         string             `json:"reason,omitempty"`
	Transcription  *SectionValidation `json:"transcription,omitempty"`
	Summary        *SectionValidation `json:"summary,omitempty"`
	Research       *SectionValidation `json:"research,omitempty"`
	Categorization *SectionValidation `json:"categorization,omitempty"`
	Error          string             `json:"error,omitempty"`
}

// ImpactSection is a placeholder stage output kept for result-shape
// compatibility; both lists are always empty.
type ImpactSection struct {
	AffectedProjects   []string `json:"affected_projects"`
	ActionableInsights []string `json:"actionable_insights"`
}

// RunOptions echoes the effective analysis limits into the persisted
// document so a stored result can be interpreted without the config that
// produced it.
type RunOptions struct {
	SummarySentences int `json:"summary_sentences"`
	KeyTakeaways     int `json:"key_takeaways"`
	MaxTopics        int `json:"max_topics"`
	MaxFindings      int `json:"max_findings"`
	MaxTags          int `json:"max_tags"`
	TopCategories    int `json:"top_categories"`
}

// Result aggregates all stage outputs for one pipeline run. Field presence
// mirrors which stages were enabled; disabled stages leave their section
// nil. The orchestrator owns the value until it is persisted, after which it
// is immutable.
type Result struct {
	Source             string                 `json:"source,omitempty"`
	Options            *RunOptions            `json:"options,omitempty"`
	Transcription      string                 `json:"transcription,omitempty"`
	TranscriptionError string                 `json:"transcription_error,omitempty"`
	Summary            *SummarySection        `json:"summary,omitempty"`
	Research           *ResearchSection       `json:"research,omitempty"`
	Categorization     *CategorizationSection `json:"categorization,omitempty"`
	Validation         *ValidationSection     `json:"validation_metadata,omitempty"`
	Impact             *ImpactSection         `json:"impact,omitempty"`
}

// SummaryUnavailable is the marker returned when the transcript is too short
// to summarize. This is a normal outcome, not an error.
const SummaryUnavailable = "[Summary unavailable - transcription too short]"
