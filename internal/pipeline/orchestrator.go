package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"podsight/internal/analysis"
	"podsight/internal/config"
	"podsight/internal/logging"
	"podsight/internal/results"
	"podsight/internal/services"
	"podsight/internal/services/whisper"
)

// Transcriber produces transcripts from audio files.
type Transcriber interface {
	Transcribe(ctx context.Context, source string) whisper.TranscriptResult
}

// Orchestrator runs the full analysis pipeline and persists the result.
type Orchestrator struct {
	cfg         *config.Config
	logger      *slog.Logger
	store       *results.Store
	transcriber Transcriber
	assessor    analysis.Assessor
	engineCache *whisper.EngineCache
	now         func() time.Time
}

// Option customizes the orchestrator.
type Option func(*Orchestrator)

// WithTranscriber supplies the speech-to-text collaborator used by
// AnalyzeFile.
func WithTranscriber(t Transcriber) Option {
	return func(o *Orchestrator) { o.transcriber = t }
}

// WithAssessor supplies the optional external quality assessor.
func WithAssessor(a analysis.Assessor) Option {
	return func(o *Orchestrator) { o.assessor = a }
}

// WithClock overrides the persistence timestamp source (for testing).
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// New builds an orchestrator. The store may be nil, in which case results
// are returned without being persisted.
func New(cfg *config.Config, logger *slog.Logger, store *results.Store, opts ...Option) (*Orchestrator, error) {
	if cfg == nil {
		return nil, services.Wrap(services.ErrConfiguration, "pipeline", "new", "configuration required", nil)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	o := &Orchestrator{
		cfg:         cfg,
		logger:      logger,
		store:       store,
		engineCache: whisper.NewEngineCache(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.transcriber == nil {
		svc := whisper.NewService(whisper.Config{
			Binary:   cfg.Whisper.Binary,
			Model:    cfg.Whisper.Model,
			Language: cfg.Whisper.Language,
		}, o.engineCache)
		o.transcriber = svc
	}
	return o, nil
}

// AnalyzeFile transcribes an audio file and analyzes the transcript. An
// engine failure is recorded on the result and the remaining stages run
// against empty input.
func (o *Orchestrator) AnalyzeFile(ctx context.Context, path string) (*analysis.Result, *results.Record, error) {
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	result := &analysis.Result{Source: path}

	if o.cfg.Stages.Transcription {
		stageCtx := services.WithStage(ctx, "transcription")
		logger := logging.WithContext(stageCtx, o.logger)
		logger.Info("stage started", logging.String(logging.FieldEventType, "stage_start"))

		tr := o.transcriber.Transcribe(stageCtx, path)
		if tr.IsOk() {
			result.Transcription = tr.Text
			logger.Info("stage completed",
				logging.String(logging.FieldEventType, "stage_complete"),
				logging.Int("transcript_chars", len(tr.Text)))
		} else {
			result.TranscriptionError = tr.Detail
			logger.Error("stage failed",
				logging.String(logging.FieldEventType, "stage_failure"),
				logging.String("error_message", tr.Detail))
		}
	}

	return o.analyze(ctx, result)
}

// AnalyzeText analyzes an existing transcript. The source labels the run in
// the persisted library.
func (o *Orchestrator) AnalyzeText(ctx context.Context, source, transcript string) (*analysis.Result, *results.Record, error) {
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	result := &analysis.Result{Source: source, Transcription: transcript}
	return o.analyze(ctx, result)
}

func (o *Orchestrator) analyze(ctx context.Context, result *analysis.Result) (*analysis.Result, *results.Record, error) {
	transcript := result.Transcription
	result.Options = &analysis.RunOptions{
		SummarySentences: o.cfg.Analysis.SummarySentences,
		KeyTakeaways:     o.cfg.Analysis.KeyTakeaways,
		MaxTopics:        o.cfg.Analysis.MaxTopics,
		MaxFindings:      o.cfg.Analysis.MaxFindings,
		MaxTags:          o.cfg.Analysis.MaxTags,
		TopCategories:    o.cfg.Analysis.TopCategories,
	}

	if o.cfg.Stages.Summary {
		o.runStage(ctx, "summary", func() {
			summarizer := analysis.NewSummarizer(
				o.cfg.Analysis.SummarySentences,
				o.cfg.Analysis.KeyTakeaways,
				o.cfg.Analysis.MinTranscriptChars,
			)
			section := summarizer.Summarize(transcript)
			result.Summary = &section
		}, func(detail string) {
			result.Summary = &analysis.SummarySection{KeyTakeaways: []string{}, Error: detail}
		})
	}

	if o.cfg.Stages.Research {
		o.runStage(ctx, "research", func() {
			topics := analysis.ExtractTopics(transcript, o.cfg.Analysis.MaxTopics)
			result.Research = &analysis.ResearchSection{
				Findings:        analysis.SynthesizeFindings(transcript, topics, o.cfg.Analysis.MaxFindings),
				TopicsExtracted: topics,
				ResearchAreas:   analysis.IdentifyResearchAreas(transcript),
			}
		}, func(detail string) {
			result.Research = &analysis.ResearchSection{
				Findings:        []string{},
				TopicsExtracted: []analysis.Topic{},
				ResearchAreas:   []string{},
				Error:           detail,
			}
		})
	}

	if o.cfg.Stages.Categorization {
		o.runStage(ctx, "categorization", func() {
			scorer := analysis.NewCategoryScorer(analysis.CategoryWeights{
				TechSuppression:     o.cfg.Weights.TechSuppression,
				BusinessSuppression: o.cfg.Weights.BusinessSuppression,
				WeakFloor:           o.cfg.Weights.WeakFloor,
			}, o.cfg.Analysis.TopCategories)

			categories := scorer.Score(transcript, result.Research, result.Summary)
			section := &analysis.CategorizationSection{
				Categories: categories,
				Tags:       analysis.ExtractTags(transcript, result.Research, result.Summary, o.cfg.Analysis.MaxTags),
			}
			if len(categories) > 0 {
				section.PrimaryCategory = categories[0].Name
			}
			result.Categorization = section
		}, func(detail string) {
			result.Categorization = &analysis.CategorizationSection{
				Categories: []analysis.Category{},
				Tags:       []string{},
				Error:      detail,
			}
		})
	}

	if o.cfg.Stages.Validation {
		o.runStage(ctx, "validation", func() {
			validator := analysis.Validator{Assessor: o.assessor, Now: o.now}
			if o.assessor != nil {
				validator.Model = o.cfg.Assessment.Model
			}
			section := validator.Validate(ctx, result)
			result.Validation = &section
		}, func(detail string) {
			result.Validation = &analysis.ValidationSection{Error: detail}
		})
	}

	if o.cfg.Stages.Impact {
		result.Impact = &analysis.ImpactSection{
			AffectedProjects:   []string{},
			ActionableInsights: []string{},
		}
	}

	if o.store == nil {
		return result, nil, nil
	}
	record, err := o.store.Save(ctx, result.Source, result, o.now())
	if err != nil {
		return result, nil, fmt.Errorf("persist analysis: %w", err)
	}
	o.logger.Info("analysis persisted",
		logging.String(logging.FieldEventType, "analysis_persisted"),
		logging.String("label", record.Label),
		logging.String("source", record.Source))
	return result, record, nil
}

// runStage executes one stage with panic and error isolation. A failure is
// logged and handed to fallback so the result stays well-formed for the
// stages that follow.
func (o *Orchestrator) runStage(ctx context.Context, name string, fn func(), fallback func(detail string)) {
	stageCtx := services.WithStage(ctx, name)
	logger := logging.WithContext(stageCtx, o.logger)
	logger.Info("stage started", logging.String(logging.FieldEventType, "stage_start"))

	detail := func() (detail string) {
		defer func() {
			if r := recover(); r != nil {
				detail = fmt.Sprintf("stage panic: %v", r)
			}
		}()
		fn()
		return ""
	}()

	if detail != "" {
		logger.Error("stage failed",
			logging.String(logging.FieldEventType, "stage_failure"),
			logging.String("error_message", detail))
		fallback(detail)
		return
	}
	logger.Info("stage completed", logging.String(logging.FieldEventType, "stage_complete"))
}
