package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateWeights(); err != nil {
		return err
	}
	if err := c.validateAssessment(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.LibraryDir == "" {
		return errors.New("paths.library_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	positive := map[string]int{
		"analysis.summary_sentences": c.Analysis.SummarySentences,
		"analysis.key_takeaways":     c.Analysis.KeyTakeaways,
		"analysis.max_topics":        c.Analysis.MaxTopics,
		"analysis.max_findings":      c.Analysis.MaxFindings,
		"analysis.max_tags":          c.Analysis.MaxTags,
		"analysis.top_categories":    c.Analysis.TopCategories,
	}
	for name, value := range positive {
		if value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, value)
		}
	}
	if c.Analysis.MinTranscriptChars < 0 {
		return fmt.Errorf("analysis.min_transcript_chars must not be negative, got %d", c.Analysis.MinTranscriptChars)
	}
	return nil
}

func (c *Config) validateWeights() error {
	fractions := map[string]float64{
		"weights.tech_suppression":     c.Weights.TechSuppression,
		"weights.business_suppression": c.Weights.BusinessSuppression,
		"weights.weak_floor":           c.Weights.WeakFloor,
	}
	for name, value := range fractions {
		if value < 0 || value > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %g", name, value)
		}
	}
	return nil
}

func (c *Config) validateAssessment() error {
	if !c.Assessment.Enabled {
		return nil
	}
	if c.Assessment.Endpoint == "" {
		return errors.New("assessment.endpoint must be set when assessment.enabled is true")
	}
	if c.Assessment.TimeoutSeconds <= 0 {
		return errors.New("assessment.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
