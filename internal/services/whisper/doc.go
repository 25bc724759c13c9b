// Package whisper wraps the external speech-to-text engine that produces
// transcripts from audio files.
//
// Engine output is surfaced as a tagged TranscriptResult rather than a raw
// string, so downstream stages branch on the tag instead of matching
// bracketed error markers. Loaded engine handles are cached per
// configuration behind a mutex so repeated runs skip warm-up.
package whisper
