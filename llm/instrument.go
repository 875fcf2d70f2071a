package llm

import (
	"context"
	"time"
)

// Recorder receives text-generation call observations. The metrics collector
// satisfies it.
type Recorder interface {
	RecordLLMRequest(backend string, success bool, seconds float64)
}

// instrumented decorates a TextGenerator with call metrics.
type instrumented struct {
	inner   TextGenerator
	metrics Recorder
}

// NewInstrumented wraps a generator with metrics recording. A nil recorder
// returns the generator unchanged.
func NewInstrumented(inner TextGenerator, metrics Recorder) TextGenerator {
	if metrics == nil {
		return inner
	}
	return &instrumented{inner: inner, metrics: metrics}
}

func (g *instrumented) Generate(ctx context.Context, req *GenerateRequest) (string, error) {
	start := time.Now()
	out, err := g.inner.Generate(ctx, req)
	g.metrics.RecordLLMRequest(g.inner.Name(), err == nil, time.Since(start).Seconds())
	return out, err
}

func (g *instrumented) Name() string { return g.inner.Name() }
