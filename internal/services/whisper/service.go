package whisper

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// Engine is a warmed external-engine handle. The zero Loads value never
// occurs; Acquire counts every checkout so tests can assert reuse.
type Engine struct {
	Key   string
	Loads int
}

// EngineCache shares loaded engine handles between runs. Safe for concurrent
// use; the orchestrator owns one instance and passes it by reference.
type EngineCache struct {
	mu      sync.Mutex
	engines map[string]*Engine
}

// NewEngineCache returns an empty cache.
func NewEngineCache() *EngineCache {
	return &EngineCache{engines: make(map[string]*Engine)}
}

// Acquire returns the handle for key, creating it on first use.
func (c *EngineCache) Acquire(key string) *Engine {
	c.mu.Lock()
	defer c.mu.Unlock()
	engine, ok := c.engines[key]
	if !ok {
		engine = &Engine{Key: key}
		c.engines[key] = engine
	}
	engine.Loads++
	return engine
}

// Len reports how many distinct engines are loaded.
func (c *EngineCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.engines)
}

// Service invokes the speech-to-text engine.
type Service struct {
	cfg           Config
	cache         *EngineCache
	commandRunner func(ctx context.Context, name string, args ...string) (string, error)
}

// NewService creates a transcription service. A nil cache disables engine
// handle reuse without changing behavior.
func NewService(cfg Config, cache *EngineCache) *Service {
	return &Service{cfg: cfg.withDefaults(), cache: cache}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) (string, error)) {
	s.commandRunner = runner
}

// Model returns the configured model name for logging.
func (s *Service) Model() string {
	return s.cfg.Model
}

// Transcribe runs the engine against an audio file. Failures are returned as
// tagged results, never as errors: a missing file or failed process is
// absent-but-non-fatal input for the downstream stages.
func (s *Service) Transcribe(ctx context.Context, source string) TranscriptResult {
	if strings.TrimSpace(source) == "" {
		return Errf("source path required")
	}
	if s.commandRunner == nil {
		if _, err := os.Stat(source); err != nil {
			return Errf("audio file not accessible: %v", err)
		}
	}
	if s.cache != nil {
		s.cache.Acquire(s.cfg.cacheKey())
	}

	args := s.buildArgs(source)
	output, err := s.run(ctx, s.cfg.Binary, args...)
	if err != nil {
		return Errf("%v", err)
	}
	return Parse(output)
}

func (s *Service) buildArgs(source string) []string {
	args := []string{source, "--model", s.cfg.Model, "--output_format", "txt", "--fp16", "False"}
	if s.cfg.Language != "" {
		args = append(args, "--language", s.cfg.Language)
	}
	return args
}

func (s *Service) run(ctx context.Context, name string, args ...string) (string, error) {
	if s.commandRunner != nil {
		return s.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return string(output), nil
}
