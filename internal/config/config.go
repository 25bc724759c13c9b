package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	LibraryDir string `toml:"library_dir"`
	LogDir     string `toml:"log_dir"`
}

// Stages toggles individual pipeline stages. Disabled stages are omitted
// from the result rather than replaced with errors.
type Stages struct {
	Transcription  bool `toml:"transcription"`
	Summary        bool `toml:"summary"`
	Research       bool `toml:"research"`
	Categorization bool `toml:"categorization"`
	Validation     bool `toml:"validation"`
	Impact         bool `toml:"impact"`
}

// Analysis contains the heuristic limits for the content stages.
type Analysis struct {
	// SummarySentences is the number of top-scored sentences in the summary.
	SummarySentences int `toml:"summary_sentences"`
	// KeyTakeaways is the number of takeaway sentences to extract.
	KeyTakeaways int `toml:"key_takeaways"`
	// MaxTopics bounds the ranked topic list.
	MaxTopics int `toml:"max_topics"`
	// MaxFindings bounds the synthesized findings list.
	MaxFindings int `toml:"max_findings"`
	// MaxTags bounds the tag list.
	MaxTags int `toml:"max_tags"`
	// TopCategories bounds the returned category list.
	TopCategories int `toml:"top_categories"`
	// MinTranscriptChars is the length below which summarization
	// short-circuits with the unavailable marker.
	MinTranscriptChars int `toml:"min_transcript_chars"`
}

// Weights contains the context-sensitive category scoring weights. They are
// exposed so the suppression behavior is an explicit, tunable contract.
type Weights struct {
	// TechSuppression multiplies weak-category scores when the primary
	// research domain is technical.
	TechSuppression float64 `toml:"tech_suppression"`
	// BusinessSuppression multiplies weak-category scores when the primary
	// research domain is business.
	BusinessSuppression float64 `toml:"business_suppression"`
	// WeakFloor removes weak categories scoring below this fraction of the
	// maximum score. Applied after suppression.
	WeakFloor float64 `toml:"weak_floor"`
}

// Assessment contains settings for the optional local language-model
// endpoint that enriches validation sections. Its absence never fails the
// pipeline.
type Assessment struct {
	Enabled        bool   `toml:"enabled"`
	Endpoint       string `toml:"endpoint"`
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Whisper contains settings for the external speech-to-text engine used
// when analyzing media files rather than prepared transcripts.
type Whisper struct {
	Binary   string `toml:"binary"`
	Model    string `toml:"model"`
	Language string `toml:"language"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for podsight.
//
// Configuration sections by subsystem:
//   - Paths: results library and log directories
//   - Stages: per-stage enable toggles
//   - Analysis: heuristic limits (sentence counts, topic/finding/tag caps)
//   - Weights: category suppression and post-filter weights
//   - Assessment: optional local language-model enrichment
//   - Whisper: external speech-to-text engine
//   - Logging: log format and level
type Config struct {
	Paths      Paths      `toml:"paths"`
	Stages     Stages     `toml:"stages"`
	Analysis   Analysis   `toml:"analysis"`
	Weights    Weights    `toml:"weights"`
	Assessment Assessment `toml:"assessment"`
	Whisper    Whisper    `toml:"whisper"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/podsight/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The boolean reports
// whether a file was found at the resolved path.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err = os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("podsight.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	var err error
	if c.Paths.LibraryDir, err = expandPath(c.Paths.LibraryDir); err != nil {
		return fmt.Errorf("paths.library_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}

	c.Assessment.Endpoint = strings.TrimRight(strings.TrimSpace(c.Assessment.Endpoint), "/")
	if c.Assessment.Endpoint == "" {
		c.Assessment.Endpoint = defaultAssessmentEndpoint
	}
	if c.Assessment.Model == "" {
		c.Assessment.Model = defaultAssessmentModel
	}
	if c.Assessment.TimeoutSeconds <= 0 {
		c.Assessment.TimeoutSeconds = defaultAssessmentTimeoutSeconds
	}

	c.Whisper.Binary = strings.TrimSpace(c.Whisper.Binary)
	if c.Whisper.Binary == "" {
		c.Whisper.Binary = defaultWhisperBinary
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = defaultWhisperModel
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

// EnsureDirectories creates the directories the pipeline writes to.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.LibraryDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// CreateSample writes the embedded sample configuration to path.
func CreateSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file already exists at %s", expanded)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
