package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/voyago/tripcost/config"
	"github.com/voyago/tripcost/types"
)

// OpenAIGenerator calls an OpenAI-compatible chat completions endpoint.
type OpenAIGenerator struct {
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	client      *http.Client
	limiter     *rate.Limiter
	logger      *zap.Logger
}

// NewOpenAIGenerator builds a generator from LLM configuration.
func NewOpenAIGenerator(cfg config.LLMConfig, logger *zap.Logger) *OpenAIGenerator {
	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return &OpenAIGenerator{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		client:      &http.Client{Timeout: cfg.Timeout},
		limiter:     limiter,
		logger:      logger.With(zap.String("component", "llm"), zap.String("backend", "openai")),
	}
}

// Name implements TextGenerator.
func (g *OpenAIGenerator) Name() string { return "openai" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	MaxTokens      int            `json:"max_tokens,omitempty"`
	Temperature    float64        `json:"temperature,omitempty"`
	ResponseFormat map[string]any `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Generate implements TextGenerator.
func (g *OpenAIGenerator) Generate(ctx context.Context, req *GenerateRequest) (string, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return "", types.NewError(types.ErrRateLimited, "llm rate limiter wait aborted").WithCause(err)
		}
	}

	body := chatRequest{
		Model:       g.model,
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	}
	if req.MaxTokens > 0 {
		body.MaxTokens = req.MaxTokens
	}
	if req.Temperature >= 0 {
		body.Temperature = req.Temperature
	}
	if req.SystemMessage != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "system", Content: req.SystemMessage})
	}
	body.Messages = append(body.Messages, chatMessage{Role: "user", Content: req.Prompt})
	if req.ForceJSON {
		body.ResponseFormat = map[string]any{"type": "json_object"}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", types.NewError(types.ErrUpstreamTimeout, "llm request timed out").WithCause(err).WithRetryable(true)
		}
		return "", types.NewError(types.ErrUpstreamError, "llm request failed").WithCause(err).WithRetryable(true)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", types.NewError(types.ErrUpstreamError, "read llm response").WithCause(err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", types.NewError(types.ErrRateLimited, "llm backend rate limited").WithHTTPStatus(resp.StatusCode).WithRetryable(true)
	}
	if resp.StatusCode != http.StatusOK {
		g.logger.Warn("llm backend returned non-200",
			zap.Int("status", resp.StatusCode),
			zap.Int("body_bytes", len(raw)),
		)
		return "", types.NewError(types.ErrUpstreamError,
			fmt.Sprintf("llm backend status %d", resp.StatusCode)).WithHTTPStatus(resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", types.NewError(types.ErrUpstreamError, "malformed llm response").WithCause(err)
	}
	if parsed.Error != nil {
		return "", types.NewError(types.ErrUpstreamError, parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", types.NewError(types.ErrUpstreamError, "empty llm response")
	}

	return parsed.Choices[0].Message.Content, nil
}
