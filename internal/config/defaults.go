package config

const (
	defaultLibraryDir = "~/.local/share/podsight/library"
	defaultLogDir     = "~/.local/share/podsight/logs"

	defaultSummarySentences   = 3
	defaultKeyTakeaways       = 5
	defaultMaxTopics          = 8
	defaultMaxFindings        = 8
	defaultMaxTags            = 12
	defaultTopCategories      = 5
	defaultMinTranscriptChars = 50

	defaultTechSuppression     = 0.3
	defaultBusinessSuppression = 0.2
	defaultWeakFloor           = 0.15

	defaultAssessmentEndpoint       = "http://localhost:11434"
	defaultAssessmentModel          = "mistral"
	defaultAssessmentTimeoutSeconds = 5

	defaultWhisperBinary = "whisper"
	defaultWhisperModel  = "base"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			LogDir:     defaultLogDir,
		},
		Stages: Stages{
			Transcription:  true,
			Summary:        true,
			Research:       true,
			Categorization: true,
			Validation:     true,
			Impact:         true,
		},
		Analysis: Analysis{
			SummarySentences:   defaultSummarySentences,
			KeyTakeaways:       defaultKeyTakeaways,
			MaxTopics:          defaultMaxTopics,
			MaxFindings:        defaultMaxFindings,
			MaxTags:            defaultMaxTags,
			TopCategories:      defaultTopCategories,
			MinTranscriptChars: defaultMinTranscriptChars,
		},
		Weights: Weights{
			TechSuppression:     defaultTechSuppression,
			BusinessSuppression: defaultBusinessSuppression,
			WeakFloor:           defaultWeakFloor,
		},
		Assessment: Assessment{
			Enabled:        true,
			Endpoint:       defaultAssessmentEndpoint,
			Model:          defaultAssessmentModel,
			TimeoutSeconds: defaultAssessmentTimeoutSeconds,
		},
		Whisper: Whisper{
			Binary:   defaultWhisperBinary,
			Model:    defaultWhisperModel,
			Language: "en",
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
