package whisper

import (
	"fmt"
	"regexp"
	"strings"
)

// ResultKind tags a TranscriptResult as usable text or an engine failure.
type ResultKind int

const (
	// KindOk indicates usable transcript text.
	KindOk ResultKind = iota
	// KindErr indicates the engine failed; Detail carries the reason.
	KindErr
)

// TranscriptResult is the tagged outcome of a transcription attempt.
type TranscriptResult struct {
	Kind   ResultKind
	Text   string
	Detail string
}

// Ok builds a successful result.
func Ok(text string) TranscriptResult {
	return TranscriptResult{Kind: KindOk, Text: text}
}

// Errf builds a failed result with a formatted detail message.
func Errf(format string, args ...any) TranscriptResult {
	return TranscriptResult{Kind: KindErr, Detail: fmt.Sprintf(format, args...)}
}

// IsOk reports whether the result carries usable text.
func (r TranscriptResult) IsOk() bool {
	return r.Kind == KindOk
}

// Marker renders the failure as the legacy bracketed error string.
func (r TranscriptResult) Marker() string {
	if r.IsOk() {
		return r.Text
	}
	return fmt.Sprintf("[Transcription error: %s]", r.Detail)
}

var errorMarkerPattern = regexp.MustCompile(`^\[Transcription error:\s*(.*)\]$`)

// Parse converts raw engine output into a tagged result. Text enclosed in
// the recognizable error-marker pattern becomes a failure; everything else
// is treated as transcript text.
func Parse(raw string) TranscriptResult {
	trimmed := strings.TrimSpace(raw)
	if m := errorMarkerPattern.FindStringSubmatch(trimmed); m != nil {
		return Errf("%s", m[1])
	}
	return Ok(trimmed)
}
