package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/voyago/tripcost/config"
	"github.com/voyago/tripcost/types"
)

func testLLMConfig(url string) config.LLMConfig {
	return config.LLMConfig{
		BaseURL:     url,
		APIKey:      "test-key",
		Model:       "test-model",
		Timeout:     5 * time.Second,
		MaxTokens:   256,
		Temperature: 0.5,
	}
}

func TestOpenAIGeneratorGenerate(t *testing.T) {
	var captured chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"mood\":\"calm\"}"}}]}`))
	}))
	defer srv.Close()

	g := NewOpenAIGenerator(testLLMConfig(srv.URL), zap.NewNop())
	out, err := g.Generate(context.Background(), &GenerateRequest{
		Prompt:        "analyze this trip",
		SystemMessage: "you are a travel analyst",
		ForceJSON:     true,
		Temperature:   -1,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "calm")

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, map[string]any{"type": "json_object"}, captured.ResponseFormat)
	// Negative request temperature keeps the configured default.
	assert.InDelta(t, 0.5, captured.Temperature, 1e-9)
}

func TestOpenAIGeneratorUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewOpenAIGenerator(testLLMConfig(srv.URL), zap.NewNop())
	_, err := g.Generate(context.Background(), &GenerateRequest{Prompt: "hi"})
	require.Error(t, err)
	assert.Equal(t, types.ErrUpstreamError, types.GetErrorCode(err))
}

func TestOpenAIGeneratorRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewOpenAIGenerator(testLLMConfig(srv.URL), zap.NewNop())
	_, err := g.Generate(context.Background(), &GenerateRequest{Prompt: "hi"})
	require.Error(t, err)
	assert.Equal(t, types.ErrRateLimited, types.GetErrorCode(err))
}

func TestFallbackGenerator(t *testing.T) {
	g := NewFallbackGenerator()

	out, err := g.Generate(context.Background(), &GenerateRequest{Prompt: "hi", ForceJSON: true})
	require.NoError(t, err)
	parsed, ok := ExtractJSON(out)
	require.True(t, ok)
	assert.Empty(t, parsed)

	out, err = g.Generate(context.Background(), &GenerateRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestNewFromConfigSelection(t *testing.T) {
	logger := zap.NewNop()

	g := NewFromConfig(config.LLMConfig{}, logger)
	assert.Equal(t, "fallback", g.Name())

	g = NewFromConfig(config.LLMConfig{APIKey: "k", BaseURL: "http://localhost"}, logger)
	assert.Equal(t, "openai", g.Name())
}
