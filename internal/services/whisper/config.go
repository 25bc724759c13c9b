package whisper

import "strings"

const (
	// DefaultBinary is the transcription command looked up on PATH.
	DefaultBinary = "whisper"
	// DefaultModel balances speed and accuracy for spoken-content audio.
	DefaultModel = "base"
	// DefaultLanguage lets the engine auto-detect when empty.
	DefaultLanguage = ""
)

// Config captures the engine invocation settings.
type Config struct {
	Binary   string
	Model    string
	Language string
}

func (c Config) withDefaults() Config {
	if strings.TrimSpace(c.Binary) == "" {
		c.Binary = DefaultBinary
	}
	if strings.TrimSpace(c.Model) == "" {
		c.Model = DefaultModel
	}
	return c
}

// cacheKey identifies an engine load; two configs with the same key share a
// warmed engine handle.
func (c Config) cacheKey() string {
	return c.Binary + "|" + c.Model + "|" + c.Language
}
