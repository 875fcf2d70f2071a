package workflow

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/voyago/tripcost/agent"
	"github.com/voyago/tripcost/types"
)

// StepFinalize is the terminal graph step.
const StepFinalize = "finalize"

// StageRecorder receives per-stage execution observations. The metrics
// collector satisfies it; a nil recorder disables recording.
type StageRecorder interface {
	RecordStageExecution(stage string, success bool)
	ObserveStageDuration(stage string, seconds float64)
}

// Agents bundles the six pipeline agents in graph order.
type Agents struct {
	EmotionalAnalysis agent.Agent
	FlightSearch      agent.Agent
	HotelSearch       agent.Agent
	Transportation    agent.Agent
	CostEstimation    agent.Agent
	Recommendation    agent.Agent
}

// Graph is the fixed orchestration pipeline:
//
//	classify_travel_type → emotional_analysis → [flight_search] →
//	hotel_search → transportation → cost_estimation → recommendation →
//	finalize
//
// The only conditional edge skips flight_search when the classifier decided
// ground transport suffices. Steps run strictly in order; a failed stage is
// recorded in the state and the pipeline continues with degraded data.
// A Graph is stateless and shared across requests; each run gets its own
// PlanningState.
type Graph struct {
	classifier *Classifier
	runner     *agent.Runner
	agents     Agents
	metrics    StageRecorder
	tracer     trace.Tracer
	logger     *zap.Logger
}

// NewGraph wires the pipeline. metrics may be nil.
func NewGraph(classifier *Classifier, runner *agent.Runner, agents Agents, metrics StageRecorder, logger *zap.Logger) *Graph {
	return &Graph{
		classifier: classifier,
		runner:     runner,
		agents:     agents,
		metrics:    metrics,
		tracer:     otel.Tracer("tripcost/workflow"),
		logger:     logger.With(zap.String("component", "graph")),
	}
}

// Run executes the full pipeline over the state. It never returns an error;
// every failure mode ends up in state.Errors and the caller assembles
// whatever estimate survived.
func (g *Graph) Run(ctx context.Context, state *PlanningState) {
	g.runClassify(ctx, state)

	g.runStage(ctx, state, g.agents.EmotionalAnalysis, applyEmotionalAnalysis)

	if state.SkipFlightSearch {
		g.logger.Debug("flight search skipped",
			zap.Float64("distance_km", state.TravelDistanceKM))
	} else {
		g.runStage(ctx, state, g.agents.FlightSearch, applyFlights)
	}

	g.runStage(ctx, state, g.agents.HotelSearch, applyHotels)
	g.runStage(ctx, state, g.agents.Transportation, applyTransportation)
	g.runStage(ctx, state, g.agents.CostEstimation, applyCostEstimation)
	g.runStage(ctx, state, g.agents.Recommendation, applyRecommendation)

	g.finalize(ctx, state)
}

func (g *Graph) runClassify(ctx context.Context, state *PlanningState) {
	ctx, span := g.tracer.Start(ctx, StepClassify)
	defer span.End()

	start := time.Now()
	g.classifier.Classify(ctx, state)
	g.observe(StepClassify, state.Completed(StepClassify), time.Since(start))

	span.SetAttributes(
		attribute.Bool("travel.is_domestic", state.IsDomesticTravel),
		attribute.Bool("travel.skip_flight_search", state.SkipFlightSearch),
		attribute.Float64("travel.distance_km", state.TravelDistanceKM),
	)
}

// runStage executes one agent through the wrapper and applies its payload.
func (g *Graph) runStage(ctx context.Context, state *PlanningState, a agent.Agent, apply func(*PlanningState, map[string]any)) {
	name := "unknown"
	if a != nil {
		name = a.Name()
	}

	ctx, span := g.tracer.Start(ctx, name)
	defer span.End()

	res := g.runner.Run(ctx, a, state.Request, state.agentContext())
	g.observe(name, res.Success, time.Duration(res.ProcessingTime*float64(time.Second)))

	span.SetAttributes(
		attribute.Bool("stage.success", res.Success),
		attribute.Float64("stage.processing_time_s", res.ProcessingTime),
	)

	if !res.Success {
		state.AddError(name, res.Error)
		return
	}
	apply(state, res.Data)
	state.MarkCompleted(name)
}

// finalize derives the season recommendation from already-gathered data. It
// is pure and cannot fail.
func (g *Graph) finalize(ctx context.Context, state *PlanningState) {
	_, span := g.tracer.Start(ctx, StepFinalize)
	defer span.End()

	start := time.Now()
	req := state.Request
	state.SeasonRecommendation = GetSeasonRecommendation(req.Vibe, req.Destination, req.StartDate)
	state.MarkCompleted(StepFinalize)
	g.observe(StepFinalize, true, time.Since(start))
}

func (g *Graph) observe(stage string, success bool, elapsed time.Duration) {
	if g.metrics == nil {
		return
	}
	g.metrics.RecordStageExecution(stage, success)
	g.metrics.ObserveStageDuration(stage, elapsed.Seconds())
}

// The apply functions write a successful stage's payload into its state
// slots. Values of unexpected types are ignored, leaving the slot at its
// default; the assembly step substitutes documented defaults for anything
// missing.

func applyEmotionalAnalysis(state *PlanningState, data map[string]any) {
	if v, ok := data["emotional_analysis"].(map[string]any); ok {
		state.EmotionalAnalysis = v
	}
}

func applyFlights(state *PlanningState, data map[string]any) {
	if v, ok := data["flights"].([]types.FlightOption); ok {
		state.Flights = v
	}
}

func applyHotels(state *PlanningState, data map[string]any) {
	if v, ok := data["hotels"].([]types.HotelOption); ok {
		state.Hotels = v
	}
}

func applyTransportation(state *PlanningState, data map[string]any) {
	if v, ok := data["transportation"].(map[string]any); ok {
		state.Transportation = v
	}
}

func applyCostEstimation(state *PlanningState, data map[string]any) {
	if v, ok := data["cost_breakdown"].(types.CostBreakdown); ok {
		state.CostBreakdown = v
	}
	if v, ok := data["price_trends"].(map[string]float64); ok {
		state.PriceTrends = v
	}
}

func applyRecommendation(state *PlanningState, data map[string]any) {
	if v, ok := data["recommendations"].([]string); ok {
		state.Recommendations = v
	}
	if v, ok := data["itinerary"].([]types.ItineraryDay); ok {
		state.Itinerary = v
	}
}
