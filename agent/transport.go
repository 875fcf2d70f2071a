package agent

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/voyago/tripcost/pricing"
	"github.com/voyago/tripcost/strategy"
	"github.com/voyago/tripcost/types"
)

// TransportationAgent recommends ground-transport modes at the destination
// and estimates local transport spend. It reads the classifier's distance and
// the per-country strategy; it performs no network calls.
type TransportationAgent struct {
	strategies *strategy.Cache
	tiers      *pricing.Service
	logger     *zap.Logger
}

// NewTransportationAgent creates the transportation agent.
func NewTransportationAgent(strategies *strategy.Cache, tiers *pricing.Service, logger *zap.Logger) *TransportationAgent {
	return &TransportationAgent{
		strategies: strategies,
		tiers:      tiers,
		logger:     logger.With(zap.String("agent", NameTransportation)),
	}
}

// Name implements Agent.
func (a *TransportationAgent) Name() string { return NameTransportation }

// Process implements Agent.
func (a *TransportationAgent) Process(ctx context.Context, req *types.TravelRequest, pctx *Context) (map[string]any, error) {
	s := a.strategies.GetStrategy(ctx, pctx.DestinationCountry)
	tier := a.tiers.GetCountryTier(pctx.DestinationCountry)

	days := req.Days()
	dailyCost := math.Round(pricing.BaseDailyTransport*tier.CostMultiplier*float64(req.Travelers)*100) / 100

	modes := s.PreferredTransport
	if pctx.IsDomestic && pctx.DistanceKM > 0 && pctx.DistanceKM <= s.MaxGroundDistanceKM {
		// Intercity leg is ground-practical; lead with ground modes.
		modes = groundFirst(modes)
	}

	transport := map[string]any{
		"preferred_modes":        modes,
		"max_ground_distance_km": s.MaxGroundDistanceKM,
		"size_category":          s.SizeCategory,
		"infrastructure_score":   s.InfrastructureScore,
		"daily_cost_estimate":    dailyCost,
		"total_cost_estimate":    math.Round(dailyCost*float64(days)*100) / 100,
	}

	a.logger.Debug("transportation assessed",
		zap.String("country", pctx.DestinationCountry),
		zap.Float64("daily_cost", dailyCost),
	)
	return map[string]any{"transportation": transport}, nil
}

// groundFirst reorders modes so non-flight options come first, preserving
// their relative order.
func groundFirst(modes []string) []string {
	out := make([]string, 0, len(modes))
	var flights []string
	for _, m := range modes {
		if m == "flight" {
			flights = append(flights, m)
			continue
		}
		out = append(out, m)
	}
	return append(out, flights...)
}
