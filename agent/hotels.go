package agent

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/voyago/tripcost/search"
	"github.com/voyago/tripcost/types"
)

// HotelSearchAgent queries hotel inventory for the whole stay.
type HotelSearchAgent struct {
	search search.Service
	logger *zap.Logger
}

// NewHotelSearchAgent creates the hotel search agent.
func NewHotelSearchAgent(svc search.Service, logger *zap.Logger) *HotelSearchAgent {
	return &HotelSearchAgent{
		search: svc,
		logger: logger.With(zap.String("agent", NameHotelSearch)),
	}
}

// Name implements Agent.
func (a *HotelSearchAgent) Name() string { return NameHotelSearch }

// Process implements Agent.
func (a *HotelSearchAgent) Process(ctx context.Context, req *types.TravelRequest, _ *Context) (map[string]any, error) {
	q := &search.HotelQuery{
		Destination: req.Destination,
		CheckIn:     req.StartDate,
		CheckOut:    req.ReturnDate,
		Travelers:   req.Travelers,
		Vibe:        req.Vibe,
	}

	options, err := a.search.SearchHotels(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("hotel search failed: %w", err)
	}

	a.logger.Debug("hotel search completed",
		zap.String("destination", req.Destination),
		zap.Int("options", len(options)),
	)
	return map[string]any{"hotels": options}, nil
}
