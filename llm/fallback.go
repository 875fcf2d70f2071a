package llm

import "context"

// FallbackGenerator is the canned generator used when no live backend is
// configured. It returns fixed responses so that agents exercise their
// heuristic defaults deterministically.
type FallbackGenerator struct{}

// NewFallbackGenerator creates the canned generator.
func NewFallbackGenerator() *FallbackGenerator {
	return &FallbackGenerator{}
}

// Name implements TextGenerator.
func (g *FallbackGenerator) Name() string { return "fallback" }

// Generate implements TextGenerator. JSON requests get an empty object so
// callers drop into their heuristic paths; free-text requests get a short
// canned notice.
func (g *FallbackGenerator) Generate(ctx context.Context, req *GenerateRequest) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}
	if req.ForceJSON {
		return "{}", nil
	}
	return "No live text-generation backend is configured.", nil
}
