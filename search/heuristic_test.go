package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/voyago/tripcost/geo"
	"github.com/voyago/tripcost/pricing"
	"github.com/voyago/tripcost/types"
)

func newHeuristic(t *testing.T) *HeuristicService {
	t.Helper()
	logger := zap.NewNop()
	return NewHeuristicService(pricing.NewService(logger), geo.NewResolver(logger), "USD", logger)
}

func TestSearchFlightsDeterministic(t *testing.T) {
	svc := newHeuristic(t)
	ctx := context.Background()

	q := &FlightQuery{
		Origin:          "Tokyo",
		Destination:     "New York",
		OriginCode:      "TYO",
		DestinationCode: "NYC",
		Date:            types.NewDate(2026, time.July, 10),
		Travelers:       2,
		DistanceKM:      10850,
	}

	first, err := svc.SearchFlights(ctx, q)
	require.NoError(t, err)
	require.Len(t, first, 3)

	second, err := svc.SearchFlights(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	for _, opt := range first {
		assert.Equal(t, "TYO", opt.DepartureCode)
		assert.Equal(t, "NYC", opt.ArrivalCode)
		assert.Greater(t, opt.Price, 0.0)
		assert.Greater(t, opt.DurationHours, 10.0)
		assert.Equal(t, "USD", opt.Currency)
	}

	// Budget option is cheapest and has a stop; premium is the priciest.
	assert.Less(t, first[0].Price, first[1].Price)
	assert.Less(t, first[1].Price, first[2].Price)
	assert.Equal(t, 1, first[0].Stops)
	assert.Equal(t, 0, first[2].Stops)
}

func TestSearchFlightsRequiresDistance(t *testing.T) {
	svc := newHeuristic(t)
	_, err := svc.SearchFlights(context.Background(), &FlightQuery{
		OriginCode:      "TYO",
		DestinationCode: "NYC",
		Date:            types.NewDate(2026, time.July, 10),
	})
	require.Error(t, err)
	assert.Equal(t, types.ErrInvalidRequest, types.GetErrorCode(err))
}

func TestSearchFlightsSeasonalPricing(t *testing.T) {
	svc := newHeuristic(t)
	ctx := context.Background()

	base := &FlightQuery{
		Origin: "Paris", Destination: "Tokyo",
		OriginCode: "PAR", DestinationCode: "TYO",
		DistanceKM: 9700,
	}

	july := *base
	july.Date = types.NewDate(2026, time.July, 1)
	february := *base
	february.Date = types.NewDate(2026, time.February, 1)

	peak, err := svc.SearchFlights(ctx, &july)
	require.NoError(t, err)
	shoulder, err := svc.SearchFlights(ctx, &february)
	require.NoError(t, err)

	assert.Greater(t, peak[1].Price, shoulder[1].Price)
}

func TestSearchHotels(t *testing.T) {
	svc := newHeuristic(t)
	ctx := context.Background()

	q := &HotelQuery{
		Destination: "Colombo",
		CheckIn:     types.NewDate(2026, time.March, 10),
		CheckOut:    types.NewDate(2026, time.March, 14),
		Travelers:   2,
		Vibe:        types.VibeBeach,
	}

	options, err := svc.SearchHotels(ctx, q)
	require.NoError(t, err)
	require.Len(t, options, 3)

	for _, opt := range options {
		assert.Contains(t, opt.Name, "Colombo")
		assert.Equal(t, "Beachfront", opt.Area)
		// 4 nights, one room for two travelers.
		assert.InDelta(t, opt.PricePerNight*4, opt.TotalPrice, 0.05)
	}
	assert.Less(t, options[0].PricePerNight, options[2].PricePerNight)
}

func TestSearchHotelsZeroNights(t *testing.T) {
	svc := newHeuristic(t)
	day := types.NewDate(2026, time.March, 10)
	_, err := svc.SearchHotels(context.Background(), &HotelQuery{
		Destination: "Colombo", CheckIn: day, CheckOut: day, Travelers: 1,
	})
	require.Error(t, err)
}

func TestSearchActivitiesByVibe(t *testing.T) {
	svc := newHeuristic(t)
	ctx := context.Background()

	adventure, err := svc.SearchActivities(ctx, &ActivityQuery{Destination: "Queenstown", Vibe: types.VibeAdventure})
	require.NoError(t, err)
	assert.Contains(t, adventure, "guided hike")

	fallback, err := svc.SearchActivities(ctx, &ActivityQuery{Destination: "Anywhere", Vibe: types.Vibe("unknown")})
	require.NoError(t, err)
	assert.NotEmpty(t, fallback)
}

func TestSearchCancelledContext(t *testing.T) {
	svc := newHeuristic(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.SearchFlights(ctx, &FlightQuery{DistanceKM: 100, Date: types.NewDate(2026, time.May, 1)})
	assert.ErrorIs(t, err, context.Canceled)
}
