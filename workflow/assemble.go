package workflow

import (
	"time"

	"github.com/google/uuid"

	"github.com/voyago/tripcost/types"
)

// AssembleResponse converts the final planning state into the immutable
// public response. It performs no I/O and cannot fail: missing slots become
// their documented defaults (empty lists, zeroed breakdown) so partial
// failures reach the caller as a degraded response, never an error.
func AssembleResponse(state *PlanningState, currency string) *types.TravelResponse {
	req := state.Request

	resp := &types.TravelResponse{
		RequestID:   uuid.NewString(),
		Origin:      req.Origin,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		ReturnDate:  req.ReturnDate,
		Travelers:   req.Travelers,
		Vibe:        req.Vibe,

		Flights:        append([]types.FlightOption{}, state.Flights...),
		Hotels:         append([]types.HotelOption{}, state.Hotels...),
		Itinerary:      append([]types.ItineraryDay{}, state.Itinerary...),
		CostBreakdown:  state.CostBreakdown,
		TotalCost:      state.CostBreakdown.Total(),
		Currency:       currency,
		Season:         state.SeasonRecommendation,
		Recommendation: append([]string{}, state.Recommendations...),

		IsDomesticTravel: state.IsDomesticTravel,
		TravelDistanceKM: state.TravelDistanceKM,

		Errors:      append([]string{}, state.Errors...),
		GeneratedAt: time.Now().UTC(),
	}

	if len(state.EmotionalAnalysis) > 0 {
		resp.VibeAnalysis = copyMap(state.EmotionalAnalysis)
	}
	if len(state.Transportation) > 0 {
		resp.Transportation = copyMap(state.Transportation)
	}
	if len(state.PriceTrends) > 0 {
		trends := make(map[string]float64, len(state.PriceTrends))
		for k, v := range state.PriceTrends {
			trends[k] = v
		}
		resp.PriceTrends = trends
	}

	if len(resp.Errors) == 0 {
		resp.Errors = nil
	}
	return resp
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
