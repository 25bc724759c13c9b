// Package config loads, normalizes, and validates podsight configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the pipeline and CLI recognize: stage toggles, analysis limits, category
// scoring weights, the optional assessment endpoint, the speech-to-text
// engine, and logging/output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
