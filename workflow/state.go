// Package workflow is the orchestration core: it classifies the travel type,
// drives the fixed agent pipeline over a shared planning state, and
// assembles the final response. One request owns one state and one graph
// run; nothing here is shared across requests.
package workflow

import (
	"github.com/voyago/tripcost/agent"
	"github.com/voyago/tripcost/types"
)

// PlanningState is the single mutable record threaded through the graph. It
// is created fresh per request, mutated only by graph steps, and discarded
// once the response is assembled. It is not safe for concurrent use and is
// never given to more than one graph run.
type PlanningState struct {
	// Request is the validated input. Stages only read it.
	Request *types.TravelRequest

	// Routing decisions written by the classifier.
	OriginCode         string
	DestinationCode    string
	OriginCountry      string
	DestinationCountry string
	SkipFlightSearch   bool
	IsDomesticTravel   bool
	TravelDistanceKM   float64

	// Per-stage output slots. A failed stage leaves its slot at the zero
	// default.
	EmotionalAnalysis    map[string]any
	Flights              []types.FlightOption
	Hotels               []types.HotelOption
	Transportation       map[string]any
	CostBreakdown        types.CostBreakdown
	Itinerary            []types.ItineraryDay
	Recommendations      []string
	SeasonRecommendation types.SeasonRecommendation
	PriceTrends          map[string]float64

	// Errors is the append-only list of stage-failure messages.
	Errors []string
	// CompletedAgents is the append-only list of stages that succeeded.
	CompletedAgents []string
}

// NewPlanningState creates the state for one request with all slots at their
// defaults.
func NewPlanningState(req *types.TravelRequest) *PlanningState {
	return &PlanningState{Request: req}
}

// AddError records a stage failure. The graph continues; the message
// surfaces in the final response.
func (s *PlanningState) AddError(stage, msg string) {
	s.Errors = append(s.Errors, stage+": "+msg)
}

// MarkCompleted records a successfully finished stage.
func (s *PlanningState) MarkCompleted(stage string) {
	s.CompletedAgents = append(s.CompletedAgents, stage)
}

// Completed reports whether the named stage finished successfully.
func (s *PlanningState) Completed(stage string) bool {
	for _, name := range s.CompletedAgents {
		if name == stage {
			return true
		}
	}
	return false
}

// agentContext snapshots the state into the read-only view agents receive.
func (s *PlanningState) agentContext() *agent.Context {
	return &agent.Context{
		OriginCode:         s.OriginCode,
		DestinationCode:    s.DestinationCode,
		OriginCountry:      s.OriginCountry,
		DestinationCountry: s.DestinationCountry,
		SkipFlightSearch:   s.SkipFlightSearch,
		IsDomestic:         s.IsDomesticTravel,
		DistanceKM:         s.TravelDistanceKM,
		EmotionalAnalysis:  s.EmotionalAnalysis,
		Flights:            s.Flights,
		Hotels:             s.Hotels,
		Transportation:     s.Transportation,
		CostBreakdown:      s.CostBreakdown,
		PriceTrends:        s.PriceTrends,
	}
}
