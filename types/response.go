package types

import "time"

// FlightOption is a single flight search result.
type FlightOption struct {
	Airline       string  `json:"airline"`
	FlightNumber  string  `json:"flight_number"`
	DepartureCode string  `json:"departure_code"`
	ArrivalCode   string  `json:"arrival_code"`
	DurationHours float64 `json:"duration_hours"`
	Stops         int     `json:"stops"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
}

// HotelOption is a single hotel search result.
type HotelOption struct {
	Name          string   `json:"name"`
	Area          string   `json:"area"`
	Rating        float64  `json:"rating"`
	PricePerNight float64  `json:"price_per_night"`
	TotalPrice    float64  `json:"total_price"`
	Currency      string   `json:"currency"`
	Amenities     []string `json:"amenities,omitempty"`
}

// ItineraryDay is one planned day of the trip.
type ItineraryDay struct {
	Day           int      `json:"day"`
	Date          Date     `json:"date"`
	Title         string   `json:"title"`
	Activities    []string `json:"activities"`
	EstimatedCost float64  `json:"estimated_cost"`
}

// CostBreakdown splits the trip estimate into the six cost categories.
// Stages that fail leave their category at zero.
type CostBreakdown struct {
	Flights        float64 `json:"flights"`
	Accommodation  float64 `json:"accommodation"`
	Transportation float64 `json:"transportation"`
	Activities     float64 `json:"activities"`
	Food           float64 `json:"food"`
	Miscellaneous  float64 `json:"miscellaneous"`
}

// Total returns the arithmetic sum of the six categories.
func (c CostBreakdown) Total() float64 {
	return c.Flights + c.Accommodation + c.Transportation +
		c.Activities + c.Food + c.Miscellaneous
}

// SeasonRecommendation compares the trip's season against the vibe's
// known optimal seasons.
type SeasonRecommendation struct {
	TripSeason     string   `json:"trip_season"`
	OptimalSeasons []string `json:"optimal_seasons"`
	IsOptimal      bool     `json:"is_optimal"`
	Note           string   `json:"note,omitempty"`
}

// TravelResponse is the immutable result of one planning run. It is
// assembled from the final planning state and performs no further I/O.
type TravelResponse struct {
	RequestID   string `json:"request_id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	StartDate   Date   `json:"start_date"`
	ReturnDate  Date   `json:"return_date"`
	Travelers   int    `json:"travelers"`
	Vibe        Vibe   `json:"vibe"`

	Flights        []FlightOption       `json:"flights"`
	Hotels         []HotelOption        `json:"hotels"`
	Itinerary      []ItineraryDay       `json:"itinerary"`
	CostBreakdown  CostBreakdown        `json:"cost_breakdown"`
	TotalCost      float64              `json:"total_cost"`
	Currency       string               `json:"currency"`
	Season         SeasonRecommendation `json:"season_recommendation"`
	Recommendation []string             `json:"recommendations"`
	VibeAnalysis   map[string]any       `json:"vibe_analysis,omitempty"`
	PriceTrends    map[string]float64   `json:"price_trends,omitempty"`
	Transportation map[string]any       `json:"transportation,omitempty"`

	IsDomesticTravel bool    `json:"is_domestic_travel"`
	TravelDistanceKM float64 `json:"travel_distance_km"`

	Errors      []string  `json:"errors,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}
