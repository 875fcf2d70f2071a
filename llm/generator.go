// Package llm provides the text-generation capability consumed by the
// planning agents. Callers receive a TextGenerator chosen at construction
// time and must not care whether it is backed by a live model or by the
// canned fallback; both may return free text or loose JSON, and callers are
// expected to tolerate malformed output.
package llm

import (
	"context"

	"go.uber.org/zap"

	"github.com/voyago/tripcost/config"
)

// GenerateRequest is a single text-generation call.
type GenerateRequest struct {
	// Prompt is the user-level prompt.
	Prompt string
	// SystemMessage optionally sets the system role content.
	SystemMessage string
	// ForceJSON asks the backend for a JSON object response. Backends may
	// ignore it; callers still need to parse defensively.
	ForceJSON bool
	// MaxTokens caps completion length. Zero uses the backend default.
	MaxTokens int
	// Temperature controls sampling. Negative uses the backend default.
	Temperature float64
}

// TextGenerator produces text for a prompt.
type TextGenerator interface {
	// Generate returns the completion text for the request.
	Generate(ctx context.Context, req *GenerateRequest) (string, error)
	// Name identifies the backend.
	Name() string
}

// NewFromConfig selects a TextGenerator from configuration: an
// OpenAI-compatible backend when an API key is present, the canned fallback
// otherwise. Calling code never learns which one it got.
func NewFromConfig(cfg config.LLMConfig, logger *zap.Logger) TextGenerator {
	if cfg.APIKey == "" {
		logger.Info("no llm api key configured, using fallback generator")
		return NewFallbackGenerator()
	}
	return NewOpenAIGenerator(cfg, logger)
}
