package agent

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/voyago/tripcost/llm"
	"github.com/voyago/tripcost/types"
)

// vibeProfiles are the heuristic fallback when the generator returns nothing
// usable. Keys mirror the JSON shape requested from the model.
var vibeProfiles = map[types.Vibe]map[string]any{
	types.VibeRomantic: {
		"mood": "romantic", "pace": "relaxed",
		"keywords": []string{"intimate", "scenic", "couples"},
	},
	types.VibeAdventure: {
		"mood": "energetic", "pace": "fast",
		"keywords": []string{"outdoors", "adrenaline", "exploration"},
	},
	types.VibeBeach: {
		"mood": "laid-back", "pace": "slow",
		"keywords": []string{"coast", "sun", "water sports"},
	},
	types.VibeCultural: {
		"mood": "curious", "pace": "moderate",
		"keywords": []string{"history", "museums", "local cuisine"},
	},
	types.VibeLuxury: {
		"mood": "indulgent", "pace": "relaxed",
		"keywords": []string{"fine dining", "premium stays", "exclusive"},
	},
	types.VibeBudget: {
		"mood": "practical", "pace": "moderate",
		"keywords": []string{"value", "street food", "free attractions"},
	},
	types.VibeFamily: {
		"mood": "playful", "pace": "moderate",
		"keywords": []string{"kid-friendly", "safe", "group activities"},
	},
	types.VibeNightlife: {
		"mood": "vibrant", "pace": "late",
		"keywords": []string{"bars", "music", "night markets"},
	},
}

// EmotionalAnalysisAgent derives a travel-mood profile from the request vibe,
// asking the text generator first and falling back to the static profile when
// the output is not parseable.
type EmotionalAnalysisAgent struct {
	gen    llm.TextGenerator
	logger *zap.Logger
}

// NewEmotionalAnalysisAgent creates the vibe-analysis agent.
func NewEmotionalAnalysisAgent(gen llm.TextGenerator, logger *zap.Logger) *EmotionalAnalysisAgent {
	return &EmotionalAnalysisAgent{
		gen:    gen,
		logger: logger.With(zap.String("agent", NameEmotionalAnalysis)),
	}
}

// Name implements Agent.
func (a *EmotionalAnalysisAgent) Name() string { return NameEmotionalAnalysis }

// Process implements Agent.
func (a *EmotionalAnalysisAgent) Process(ctx context.Context, req *types.TravelRequest, _ *Context) (map[string]any, error) {
	prompt := fmt.Sprintf(
		`Analyze the travel mood for a %q trip to %s for %d travelers. `+
			`Respond with a JSON object with keys "mood" (string), "pace" (string), `+
			`and "keywords" (array of strings).`,
		req.Vibe, req.Destination, req.Travelers,
	)

	analysis := a.fallbackProfile(req.Vibe)

	out, err := a.gen.Generate(ctx, &llm.GenerateRequest{
		Prompt:        prompt,
		SystemMessage: "You are a travel mood analyst. Reply with JSON only.",
		ForceJSON:     true,
		Temperature:   -1,
	})
	if err != nil {
		// Generator failures degrade to the static profile; the stage still
		// succeeds with usable data.
		a.logger.Warn("generation failed, using vibe profile", zap.Error(err))
		return map[string]any{"emotional_analysis": analysis}, nil
	}

	if parsed, ok := llm.ExtractJSON(out); ok {
		if mood, ok := parsed["mood"].(string); ok && mood != "" {
			analysis["mood"] = mood
		}
		if pace, ok := parsed["pace"].(string); ok && pace != "" {
			analysis["pace"] = pace
		}
		if kw := llm.StringSlice(parsed["keywords"]); len(kw) > 0 {
			analysis["keywords"] = kw
		}
	} else {
		a.logger.Debug("unparseable generator output, using vibe profile")
	}

	return map[string]any{"emotional_analysis": analysis}, nil
}

// fallbackProfile returns a fresh copy of the static profile for a vibe.
func (a *EmotionalAnalysisAgent) fallbackProfile(v types.Vibe) map[string]any {
	profile, ok := vibeProfiles[v]
	if !ok {
		profile = map[string]any{
			"mood": "balanced", "pace": "moderate",
			"keywords": []string{"sightseeing", "local food"},
		}
	}
	out := make(map[string]any, len(profile)+1)
	for k, val := range profile {
		out[k] = val
	}
	out["vibe"] = string(v)
	return out
}
