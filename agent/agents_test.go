package agent

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/voyago/tripcost/geo"
	"github.com/voyago/tripcost/llm"
	"github.com/voyago/tripcost/pricing"
	"github.com/voyago/tripcost/search"
	"github.com/voyago/tripcost/strategy"
	"github.com/voyago/tripcost/types"
)

// scriptedGenerator returns a fixed completion.
type scriptedGenerator struct {
	output string
	err    error
}

func (g *scriptedGenerator) Generate(context.Context, *llm.GenerateRequest) (string, error) {
	return g.output, g.err
}

func (g *scriptedGenerator) Name() string { return "scripted" }

func newSearchService() *search.HeuristicService {
	logger := zap.NewNop()
	return search.NewHeuristicService(pricing.NewService(logger), geo.NewResolver(logger), "USD", logger)
}

func TestEmotionalAnalysisParsesGeneratorOutput(t *testing.T) {
	gen := &scriptedGenerator{output: `{"mood":"serene","pace":"slow","keywords":["coast","calm"]}`}
	a := NewEmotionalAnalysisAgent(gen, zap.NewNop())

	payload, err := a.Process(context.Background(), testRequest(), &Context{})
	require.NoError(t, err)

	analysis, ok := payload["emotional_analysis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "serene", analysis["mood"])
	assert.Equal(t, []string{"coast", "calm"}, analysis["keywords"])
	assert.Equal(t, "beach", analysis["vibe"])
}

func TestEmotionalAnalysisFallsBackOnGarbage(t *testing.T) {
	for _, gen := range []*scriptedGenerator{
		{output: "not json at all"},
		{err: fmt.Errorf("backend down")},
	} {
		a := NewEmotionalAnalysisAgent(gen, zap.NewNop())
		payload, err := a.Process(context.Background(), testRequest(), &Context{})
		require.NoError(t, err)

		analysis := payload["emotional_analysis"].(map[string]any)
		assert.Equal(t, "laid-back", analysis["mood"])
	}
}

func TestFlightSearchAgent(t *testing.T) {
	a := NewFlightSearchAgent(newSearchService(), zap.NewNop())
	req := &types.TravelRequest{
		Origin: "Tokyo", Destination: "New York",
		StartDate:  types.NewDate(2026, time.July, 10),
		ReturnDate: types.NewDate(2026, time.July, 20),
		Travelers:  2, Vibe: types.VibeAdventure,
	}
	pctx := &Context{OriginCode: "TYO", DestinationCode: "NYC", DistanceKM: 10850}

	payload, err := a.Process(context.Background(), req, pctx)
	require.NoError(t, err)

	flights, ok := payload["flights"].([]types.FlightOption)
	require.True(t, ok)
	assert.Len(t, flights, 3)
}

func TestHotelSearchAgent(t *testing.T) {
	a := NewHotelSearchAgent(newSearchService(), zap.NewNop())

	payload, err := a.Process(context.Background(), testRequest(), &Context{})
	require.NoError(t, err)

	hotels, ok := payload["hotels"].([]types.HotelOption)
	require.True(t, ok)
	assert.NotEmpty(t, hotels)
}

func TestTransportationAgent(t *testing.T) {
	logger := zap.NewNop()
	tiers := pricing.NewService(logger)
	strategies := strategy.NewCache(time.Hour, tiers, nil, logger)
	a := NewTransportationAgent(strategies, tiers, logger)

	pctx := &Context{DestinationCountry: "Sri Lanka", IsDomestic: true, DistanceKM: 105}
	payload, err := a.Process(context.Background(), testRequest(), pctx)
	require.NoError(t, err)

	transport, ok := payload["transportation"].(map[string]any)
	require.True(t, ok)
	assert.Greater(t, transport["daily_cost_estimate"].(float64), 0.0)

	// Ground-practical leg leads with ground modes.
	modes := transport["preferred_modes"].([]string)
	require.NotEmpty(t, modes)
	assert.NotEqual(t, "flight", modes[0])
}

func TestCostEstimationSumsCategories(t *testing.T) {
	a := NewCostEstimationAgent(pricing.NewService(zap.NewNop()), zap.NewNop())

	pctx := &Context{
		DestinationCountry: "Sri Lanka",
		Flights:            []types.FlightOption{{Price: 300}, {Price: 220}},
		Hotels:             []types.HotelOption{{TotalPrice: 480}, {TotalPrice: 900}},
		Transportation:     map[string]any{"total_cost_estimate": 140.0},
	}

	payload, err := a.Process(context.Background(), testRequest(), pctx)
	require.NoError(t, err)

	breakdown := payload["cost_breakdown"].(types.CostBreakdown)
	// Cheapest flight for 2 travelers round trip, cheapest hotel stay total.
	assert.InDelta(t, 880, breakdown.Flights, 1e-9)
	assert.InDelta(t, 480, breakdown.Accommodation, 1e-9)
	assert.InDelta(t, 140, breakdown.Transportation, 1e-9)
	assert.Greater(t, breakdown.Food, 0.0)
	assert.Greater(t, breakdown.Activities, 0.0)
	assert.Greater(t, breakdown.Miscellaneous, 0.0)
}

func TestCostEstimationMissingUpstreamSlots(t *testing.T) {
	a := NewCostEstimationAgent(pricing.NewService(zap.NewNop()), zap.NewNop())

	payload, err := a.Process(context.Background(), testRequest(), &Context{DestinationCountry: "Sri Lanka"})
	require.NoError(t, err)

	breakdown := payload["cost_breakdown"].(types.CostBreakdown)
	assert.Zero(t, breakdown.Flights)
	assert.Zero(t, breakdown.Accommodation)
	assert.Zero(t, breakdown.Transportation)
	assert.Greater(t, breakdown.Total(), 0.0)
}

func TestCostEstimationPriceTrends(t *testing.T) {
	a := NewCostEstimationAgent(pricing.NewService(zap.NewNop()), zap.NewNop())
	req := testRequest()
	req.IncludePriceTrends = true

	payload, err := a.Process(context.Background(), req, &Context{DestinationCountry: "Sri Lanka"})
	require.NoError(t, err)

	trends, ok := payload["price_trends"].(map[string]float64)
	require.True(t, ok)
	assert.Len(t, trends, 12)
	assert.Greater(t, trends["July"], trends["February"])
}

func TestRecommendationAgent(t *testing.T) {
	gen := &scriptedGenerator{output: `{"recommendations":["Go early","Pack light"]}`}
	a := NewRecommendationAgent(gen, newSearchService(), zap.NewNop())

	req := testRequest()
	payload, err := a.Process(context.Background(), req, &Context{
		CostBreakdown: types.CostBreakdown{Activities: 100, Food: 150},
	})
	require.NoError(t, err)

	recs := payload["recommendations"].([]string)
	assert.Equal(t, []string{"Go early", "Pack light"}, recs)

	itinerary := payload["itinerary"].([]types.ItineraryDay)
	require.Len(t, itinerary, req.Days())
	assert.Equal(t, 1, itinerary[0].Day)
	assert.Equal(t, "Arrival and settling in", itinerary[0].Title)
	assert.Equal(t, "Departure day", itinerary[len(itinerary)-1].Title)
	assert.Equal(t, req.StartDate, itinerary[0].Date)
}

func TestRecommendationFallbackTips(t *testing.T) {
	a := NewRecommendationAgent(&scriptedGenerator{err: fmt.Errorf("down")}, newSearchService(), zap.NewNop())

	payload, err := a.Process(context.Background(), testRequest(), &Context{})
	require.NoError(t, err)

	recs := payload["recommendations"].([]string)
	assert.Equal(t, fallbackTips[types.VibeBeach], recs)
}
