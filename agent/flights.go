package agent

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/voyago/tripcost/search"
	"github.com/voyago/tripcost/types"
)

// FlightSearchAgent queries flight inventory for the outbound leg. It only
// runs when the classifier decided flights are needed; the graph handles the
// conditional edge.
type FlightSearchAgent struct {
	search search.Service
	logger *zap.Logger
}

// NewFlightSearchAgent creates the flight search agent.
func NewFlightSearchAgent(svc search.Service, logger *zap.Logger) *FlightSearchAgent {
	return &FlightSearchAgent{
		search: svc,
		logger: logger.With(zap.String("agent", NameFlightSearch)),
	}
}

// Name implements Agent.
func (a *FlightSearchAgent) Name() string { return NameFlightSearch }

// Process implements Agent.
func (a *FlightSearchAgent) Process(ctx context.Context, req *types.TravelRequest, pctx *Context) (map[string]any, error) {
	q := &search.FlightQuery{
		Origin:          req.Origin,
		Destination:     req.Destination,
		OriginCode:      pctx.OriginCode,
		DestinationCode: pctx.DestinationCode,
		Date:            req.StartDate,
		Travelers:       req.Travelers,
		DistanceKM:      pctx.DistanceKM,
	}

	options, err := a.search.SearchFlights(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}

	a.logger.Debug("flight search completed",
		zap.String("origin", pctx.OriginCode),
		zap.String("destination", pctx.DestinationCode),
		zap.Int("options", len(options)),
	)
	return map[string]any{"flights": options}, nil
}
