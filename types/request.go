package types

import (
	"fmt"
	"strings"
)

// Vibe is an enumerated travel-style preference. It biases cost heuristics,
// hotel selection, and activity recommendations.
type Vibe string

const (
	VibeRomantic  Vibe = "romantic"
	VibeAdventure Vibe = "adventure"
	VibeBeach     Vibe = "beach"
	VibeCultural  Vibe = "cultural"
	VibeLuxury    Vibe = "luxury"
	VibeBudget    Vibe = "budget"
	VibeFamily    Vibe = "family"
	VibeNightlife Vibe = "nightlife"
)

// Vibes lists all valid travel vibes.
var Vibes = []Vibe{
	VibeRomantic, VibeAdventure, VibeBeach, VibeCultural,
	VibeLuxury, VibeBudget, VibeFamily, VibeNightlife,
}

// Valid reports whether v is one of the known vibes.
func (v Vibe) Valid() bool {
	for _, known := range Vibes {
		if v == known {
			return true
		}
	}
	return false
}

// ParseVibe normalizes and validates a vibe string.
func ParseVibe(s string) (Vibe, error) {
	v := Vibe(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", NewError(ErrInvalidVibe, fmt.Sprintf("unknown vibe %q", s))
	}
	return v, nil
}

// MaxTravelers bounds the traveler count a single request may carry.
const MaxTravelers = 50

// TravelRequest is the validated input to the planner. It is immutable once
// constructed; stages only ever read it.
type TravelRequest struct {
	Origin             string   `json:"origin"`
	Destination        string   `json:"destination"`
	StartDate          Date     `json:"start_date"`
	ReturnDate         Date     `json:"return_date"`
	Travelers          int      `json:"travelers"`
	Budget             *float64 `json:"budget,omitempty"`
	Vibe               Vibe     `json:"vibe"`
	IncludePriceTrends bool     `json:"include_price_trends,omitempty"`
}

// Validate checks the request shape. It returns a validation Error (fail
// closed) before any stage or external call is attempted.
func (r *TravelRequest) Validate() error {
	if strings.TrimSpace(r.Origin) == "" {
		return NewError(ErrInvalidRequest, "origin is required").WithHTTPStatus(400)
	}
	if strings.TrimSpace(r.Destination) == "" {
		return NewError(ErrInvalidRequest, "destination is required").WithHTTPStatus(400)
	}
	if r.StartDate.IsZero() || r.ReturnDate.IsZero() {
		return NewError(ErrInvalidRequest, "start_date and return_date are required").WithHTTPStatus(400)
	}
	if !r.ReturnDate.After(r.StartDate) {
		return NewError(ErrInvalidRequest, "return_date must be strictly after start_date").WithHTTPStatus(400)
	}
	if r.Travelers < 1 || r.Travelers > MaxTravelers {
		return NewError(ErrInvalidRequest,
			fmt.Sprintf("travelers must be between 1 and %d, got %d", MaxTravelers, r.Travelers)).WithHTTPStatus(400)
	}
	if r.Budget != nil && *r.Budget < 0 {
		return NewError(ErrInvalidRequest, "budget must be non-negative").WithHTTPStatus(400)
	}
	if !r.Vibe.Valid() {
		return NewError(ErrInvalidVibe, fmt.Sprintf("unknown vibe %q", string(r.Vibe))).WithHTTPStatus(400)
	}
	return nil
}

// Nights returns the number of hotel nights covered by the trip.
func (r *TravelRequest) Nights() int {
	n := r.StartDate.DaysUntil(r.ReturnDate)
	if n < 1 {
		return 1
	}
	return n
}

// Days returns the number of trip days, inclusive of the return day.
func (r *TravelRequest) Days() int {
	return r.Nights() + 1
}
