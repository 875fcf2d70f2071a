// Package search provides flight, hotel, and activity search for the
// planning agents. The Service interface stands in for third-party search
// APIs; the built-in provider derives offers from pricing heuristics, and a
// caching decorator keeps repeated queries off the backend.
package search

import (
	"context"

	"github.com/voyago/tripcost/types"
)

// FlightQuery parametrizes a flight search.
type FlightQuery struct {
	Origin          string     `json:"origin"`
	Destination     string     `json:"destination"`
	OriginCode      string     `json:"origin_code"`
	DestinationCode string     `json:"destination_code"`
	Date            types.Date `json:"date"`
	Travelers       int        `json:"travelers"`
	DistanceKM      float64    `json:"distance_km"`
}

// HotelQuery parametrizes a hotel search.
type HotelQuery struct {
	Destination string     `json:"destination"`
	CheckIn     types.Date `json:"check_in"`
	CheckOut    types.Date `json:"check_out"`
	Travelers   int        `json:"travelers"`
	Vibe        types.Vibe `json:"vibe"`
}

// ActivityQuery parametrizes an activity search.
type ActivityQuery struct {
	Destination string     `json:"destination"`
	Vibe        types.Vibe `json:"vibe"`
	Days        int        `json:"days"`
}

// Service searches travel inventory. Implementations either return results
// or an error; an empty slice is a valid "nothing found" answer.
type Service interface {
	SearchFlights(ctx context.Context, q *FlightQuery) ([]types.FlightOption, error)
	SearchHotels(ctx context.Context, q *HotelQuery) ([]types.HotelOption, error)
	SearchActivities(ctx context.Context, q *ActivityQuery) ([]string, error)
}
