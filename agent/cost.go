package agent

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/voyago/tripcost/pricing"
	"github.com/voyago/tripcost/types"
)

// CostEstimationAgent aggregates upstream search results and the pricing
// heuristics into the six-category cost breakdown. Stages that failed
// upstream leave their category at zero; the estimate is always produced.
type CostEstimationAgent struct {
	tiers  *pricing.Service
	logger *zap.Logger
}

// NewCostEstimationAgent creates the cost estimation agent.
func NewCostEstimationAgent(tiers *pricing.Service, logger *zap.Logger) *CostEstimationAgent {
	return &CostEstimationAgent{
		tiers:  tiers,
		logger: logger.With(zap.String("agent", NameCostEstimation)),
	}
}

// Name implements Agent.
func (a *CostEstimationAgent) Name() string { return NameCostEstimation }

// Process implements Agent.
func (a *CostEstimationAgent) Process(_ context.Context, req *types.TravelRequest, pctx *Context) (map[string]any, error) {
	tier := a.tiers.GetCountryTier(pctx.DestinationCountry)
	vibe := a.tiers.VibeMultiplier(req.Vibe)
	seasonal := a.tiers.SeasonalMultiplier(req.StartDate.Month())

	days := float64(req.Days())
	travelers := float64(req.Travelers)
	daily := tier.CostMultiplier * vibe * days * travelers

	breakdown := types.CostBreakdown{
		Flights:        cheapestFlightTotal(pctx.Flights, req.Travelers),
		Accommodation:  cheapestHotelTotal(pctx.Hotels),
		Transportation: transportTotal(pctx.Transportation),
		Activities:     round2(pricing.BaseDailyActivities * daily),
		Food:           round2(pricing.BaseDailyFood * daily),
		Miscellaneous:  round2(pricing.BaseDailyMisc * daily),
	}

	payload := map[string]any{"cost_breakdown": breakdown}

	if req.IncludePriceTrends {
		payload["price_trends"] = a.priceTrends(breakdown.Total(), seasonal)
	}

	a.logger.Debug("cost estimated",
		zap.Float64("total", breakdown.Total()),
		zap.String("country", pctx.DestinationCountry),
	)
	return payload, nil
}

// priceTrends projects the trip total across calendar months by rescaling
// the seasonal component.
func (a *CostEstimationAgent) priceTrends(total, tripSeasonal float64) map[string]float64 {
	trends := make(map[string]float64, 12)
	for m := time.January; m <= time.December; m++ {
		projected := total / tripSeasonal * a.tiers.SeasonalMultiplier(m)
		trends[m.String()] = round2(projected)
	}
	return trends
}

// cheapestFlightTotal prices the cheapest option for all travelers, both
// directions. Zero when flight search was skipped or returned nothing.
func cheapestFlightTotal(flights []types.FlightOption, travelers int) float64 {
	if len(flights) == 0 {
		return 0
	}
	cheapest := flights[0].Price
	for _, f := range flights[1:] {
		if f.Price < cheapest {
			cheapest = f.Price
		}
	}
	return round2(cheapest * float64(travelers) * 2)
}

// cheapestHotelTotal returns the cheapest hotel's stay total. The total
// already covers all nights and rooms.
func cheapestHotelTotal(hotels []types.HotelOption) float64 {
	if len(hotels) == 0 {
		return 0
	}
	cheapest := hotels[0].TotalPrice
	for _, h := range hotels[1:] {
		if h.TotalPrice < cheapest {
			cheapest = h.TotalPrice
		}
	}
	return cheapest
}

// transportTotal pulls the transportation stage's estimate, zero when that
// stage failed.
func transportTotal(transport map[string]any) float64 {
	if transport == nil {
		return 0
	}
	if v, ok := transport["total_cost_estimate"].(float64); ok {
		return v
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
