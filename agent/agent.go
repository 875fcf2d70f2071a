// Package agent contains the planning agents and the execution wrapper that
// runs them. Every stage of the orchestration graph is one Agent; the Runner
// gives all of them identical timeout, panic, and error containment so the
// graph can treat an LLM call, an HTTP search, and a pure computation the
// same way.
package agent

import (
	"context"

	"github.com/voyago/tripcost/types"
)

// Agent names double as graph step names and timeout-override keys.
const (
	NameEmotionalAnalysis = "emotional_analysis"
	NameFlightSearch      = "flight_search"
	NameHotelSearch       = "hotel_search"
	NameTransportation    = "transportation"
	NameCostEstimation    = "cost_estimation"
	NameRecommendation    = "recommendation"
)

// Context is a read-only snapshot of upstream stage outputs, assembled by the
// graph before each agent runs. Agents must not mutate it; the graph owns the
// planning state.
type Context struct {
	OriginCode         string
	DestinationCode    string
	OriginCountry      string
	DestinationCountry string

	SkipFlightSearch bool
	IsDomestic       bool
	DistanceKM       float64

	EmotionalAnalysis map[string]any
	Flights           []types.FlightOption
	Hotels            []types.HotelOption
	Transportation    map[string]any
	CostBreakdown     types.CostBreakdown
	PriceTrends       map[string]float64
}

// Agent is one unit of planning work. Process returns a payload map whose
// keys the graph writes into the matching planning-state slots. A payload
// carrying a non-empty "error" value is converted to a failure by the Runner
// even when err is nil.
type Agent interface {
	Name() string
	Process(ctx context.Context, req *types.TravelRequest, pctx *Context) (map[string]any, error)
}

// Result is the uniform envelope produced by the Runner for every agent
// invocation. Exactly one of Data and Error is populated; ProcessingTime is
// wall-clock seconds from invocation to completion regardless of outcome.
type Result struct {
	AgentName      string         `json:"agent_name"`
	Success        bool           `json:"success"`
	Data           map[string]any `json:"data,omitempty"`
	Error          string         `json:"error,omitempty"`
	ProcessingTime float64        `json:"processing_time"`
}
