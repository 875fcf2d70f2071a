package workflow

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/voyago/tripcost/geo"
	"github.com/voyago/tripcost/strategy"
)

// StepClassify is the graph's first step name.
const StepClassify = "classify_travel_type"

// PlaceResolver is the slice of geo.Resolver the classifier depends on.
type PlaceResolver interface {
	ResolveAirport(placeName string) string
	ResolveCountry(placeName string) string
	Distance(origin, destination string) (float64, error)
}

// StrategyProvider yields per-country transportation strategies. The
// strategy.Cache satisfies it.
type StrategyProvider interface {
	GetStrategy(ctx context.Context, country string) strategy.TransportationStrategy
}

// Classifier decides, once per request, whether the trip is domestic and
// whether flight search should run. Its branch outcomes determine which
// downstream stages execute, so the fail-open defaults here are load-bearing:
// when a place or distance cannot be resolved, the classifier includes flight
// search rather than guessing that ground transport suffices.
type Classifier struct {
	resolver   PlaceResolver
	strategies StrategyProvider
	logger     *zap.Logger
}

// NewClassifier creates the travel-type classifier.
func NewClassifier(resolver PlaceResolver, strategies StrategyProvider, logger *zap.Logger) *Classifier {
	return &Classifier{
		resolver:   resolver,
		strategies: strategies,
		logger:     logger.With(zap.String("component", "classifier")),
	}
}

// Classify writes the routing decision into the state. It never fails the
// graph: any internal panic is contained and defaults to "include flight
// search, not domestic", with the error recorded in the state.
func (c *Classifier) Classify(ctx context.Context, state *PlanningState) {
	defer func() {
		if rec := recover(); rec != nil {
			state.SkipFlightSearch = false
			state.IsDomesticTravel = false
			state.AddError(StepClassify, fmt.Sprintf("classification failed: %v", rec))
			c.logger.Error("classifier panicked, failing open", zap.Any("panic", rec))
		}
	}()

	req := state.Request
	state.OriginCode = c.resolver.ResolveAirport(req.Origin)
	state.DestinationCode = c.resolver.ResolveAirport(req.Destination)
	state.OriginCountry = c.resolver.ResolveCountry(req.Origin)
	state.DestinationCountry = c.resolver.ResolveCountry(req.Destination)

	defer func() {
		c.logger.Debug("travel type classified",
			zap.String("origin_code", state.OriginCode),
			zap.String("destination_code", state.DestinationCode),
			zap.Bool("is_domestic", state.IsDomesticTravel),
			zap.Bool("skip_flight_search", state.SkipFlightSearch),
			zap.Float64("distance_km", state.TravelDistanceKM),
		)
	}()

	// Same resolved code: domestic, no flights, nothing else to check.
	if state.OriginCode != geo.UnknownCode && state.OriginCode == state.DestinationCode {
		state.IsDomesticTravel = true
		state.SkipFlightSearch = true
		state.TravelDistanceKM = 0
		state.MarkCompleted(StepClassify)
		return
	}

	// Either side unresolved: fail open toward flight search.
	if state.OriginCode == geo.UnknownCode || state.DestinationCode == geo.UnknownCode {
		state.SkipFlightSearch = false
		state.IsDomesticTravel = false
		state.MarkCompleted(StepClassify)
		return
	}

	distance, err := c.resolver.Distance(req.Origin, req.Destination)
	if err == nil {
		state.TravelDistanceKM = distance
	}

	sameCountry := state.OriginCountry != "" &&
		strings.EqualFold(state.OriginCountry, state.DestinationCountry)

	if !sameCountry {
		state.IsDomesticTravel = false
		state.SkipFlightSearch = false
		state.MarkCompleted(StepClassify)
		return
	}

	state.IsDomesticTravel = true
	if err != nil {
		// Domestic but distance unknown: include flights rather than assume
		// ground transport reaches.
		state.SkipFlightSearch = false
		state.AddError(StepClassify, fmt.Sprintf("distance unavailable: %v", err))
		state.MarkCompleted(StepClassify)
		return
	}

	s := c.strategies.GetStrategy(ctx, state.DestinationCountry)
	state.SkipFlightSearch = distance <= s.MaxGroundDistanceKM
	state.MarkCompleted(StepClassify)
}
