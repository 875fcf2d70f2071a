package agent

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/voyago/tripcost/llm"
	"github.com/voyago/tripcost/search"
	"github.com/voyago/tripcost/types"
)

// fallbackTips are the canned recommendations per vibe, used when the
// generator output is missing or unparseable.
var fallbackTips = map[types.Vibe][]string{
	types.VibeRomantic:  {"Book a sunset-view dinner early in the trip", "Pick one hotel splurge night over several small upgrades"},
	types.VibeAdventure: {"Book guided activities for the first days, leave the rest flexible", "Pack for weather swings; refunds on outdoor activities are rare"},
	types.VibeBeach:     {"Reserve beachfront stays well ahead in peak months", "Plan indoor options for one likely rain day"},
	types.VibeCultural:  {"Buy museum passes online to skip queues", "Schedule one free day for unplanned discoveries"},
	types.VibeLuxury:    {"Book signature restaurants before arrival", "Use hotel concierges for hard-to-get reservations"},
	types.VibeBudget:    {"Travel shoulder season for the same trip at lower cost", "Favor lunch menus over dinner at the same restaurants"},
	types.VibeFamily:    {"Alternate big outings with low-key days", "Book accommodation with a kitchen to cut food costs"},
	types.VibeNightlife: {"Stay central to avoid late-night transport costs", "Keep mornings free; plan activities from midday"},
}

// RecommendationAgent produces traveler recommendations and a day-by-day
// itinerary. Recommendations come from the text generator with a canned
// fallback; the itinerary is built from the activity pool.
type RecommendationAgent struct {
	gen    llm.TextGenerator
	search search.Service
	logger *zap.Logger
}

// NewRecommendationAgent creates the recommendation agent.
func NewRecommendationAgent(gen llm.TextGenerator, svc search.Service, logger *zap.Logger) *RecommendationAgent {
	return &RecommendationAgent{
		gen:    gen,
		search: svc,
		logger: logger.With(zap.String("agent", NameRecommendation)),
	}
}

// Name implements Agent.
func (a *RecommendationAgent) Name() string { return NameRecommendation }

// Process implements Agent.
func (a *RecommendationAgent) Process(ctx context.Context, req *types.TravelRequest, pctx *Context) (map[string]any, error) {
	days := req.Days()

	pool, err := a.search.SearchActivities(ctx, &search.ActivityQuery{
		Destination: req.Destination,
		Vibe:        req.Vibe,
		Days:        days,
	})
	if err != nil || len(pool) == 0 {
		if err != nil {
			a.logger.Warn("activity search failed, using generic pool", zap.Error(err))
		}
		pool = []string{"city highlights tour", "local food tasting", "free exploration"}
	}

	itinerary := buildItinerary(req, pctx, pool, days)
	recs := a.recommendations(ctx, req)

	return map[string]any{
		"recommendations": recs,
		"itinerary":       itinerary,
	}, nil
}

// recommendations asks the generator for trip advice, degrading to the
// canned tips for the vibe.
func (a *RecommendationAgent) recommendations(ctx context.Context, req *types.TravelRequest) []string {
	prompt := fmt.Sprintf(
		`Give 3 short practical recommendations for a %q trip from %s to %s with %d travelers. `+
			`Respond with a JSON object with key "recommendations" (array of strings).`,
		req.Vibe, req.Origin, req.Destination, req.Travelers,
	)

	out, err := a.gen.Generate(ctx, &llm.GenerateRequest{
		Prompt:        prompt,
		SystemMessage: "You are a travel advisor. Reply with JSON only.",
		ForceJSON:     true,
		Temperature:   -1,
	})
	if err == nil {
		if parsed, ok := llm.ExtractJSON(out); ok {
			if recs := llm.StringSlice(parsed["recommendations"]); len(recs) > 0 {
				return recs
			}
		}
	} else {
		a.logger.Warn("generation failed, using canned recommendations", zap.Error(err))
	}

	if tips, ok := fallbackTips[req.Vibe]; ok {
		return tips
	}
	return []string{"Book flights and accommodation early for better prices"}
}

// buildItinerary spreads the activity pool across the trip days. Arrival and
// departure days get a lighter plan.
func buildItinerary(req *types.TravelRequest, pctx *Context, pool []string, days int) []types.ItineraryDay {
	dailySpend := 0.0
	if spend := pctx.CostBreakdown.Activities + pctx.CostBreakdown.Food; spend > 0 && days > 0 {
		dailySpend = round2(spend / float64(days))
	}

	itinerary := make([]types.ItineraryDay, 0, days)
	for i := 0; i < days; i++ {
		day := types.ItineraryDay{
			Day:           i + 1,
			Date:          req.StartDate.AddDays(i),
			EstimatedCost: dailySpend,
		}
		switch {
		case i == 0:
			day.Title = "Arrival and settling in"
			day.Activities = []string{"check in", "neighbourhood walk", pool[0]}
		case i == days-1:
			day.Title = "Departure day"
			day.Activities = []string{"last-minute shopping", "departure"}
		default:
			day.Title = fmt.Sprintf("Exploring %s", req.Destination)
			day.Activities = []string{pool[i%len(pool)], pool[(i+1)%len(pool)]}
		}
		itinerary = append(itinerary, day)
	}
	return itinerary
}
