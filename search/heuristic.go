package search

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/voyago/tripcost/geo"
	"github.com/voyago/tripcost/pricing"
	"github.com/voyago/tripcost/types"
)

// airlinesByRegion picks plausible carrier names for generated offers.
var airlinesByRegion = map[string][]string{
	"North America":   {"Meridian Air", "Coastal Jet", "TransPacific"},
	"Western Europe":  {"EuroWing", "Atlantic Blue", "Skyline Europe"},
	"Southern Europe": {"Mediterraneo", "EuroWing", "Aegean Star"},
	"East Asia":       {"Orient Pacific", "Sakura Air", "Harbour Jet"},
	"Southeast Asia":  {"Monsoon Air", "Island Hopper", "Orient Pacific"},
	"South Asia":      {"Monsoon Air", "Spice Route", "Island Hopper"},
	"Middle East":     {"Desert Falcon", "Gulf Crown", "Oasis Air"},
	"Oceania":         {"Southern Cross", "Coral Air", "TransPacific"},
	"South America":   {"Andes Sky", "Coastal Jet", "Pampas Air"},
}

var defaultAirlines = []string{"Global Connect", "Horizon Air", "Meridian Air"}

// HeuristicService generates deterministic search results from the pricing
// heuristics. The same query always yields the same offers, which keeps cost
// estimates stable across retries and makes caching safe.
type HeuristicService struct {
	tiers    *pricing.Service
	resolver *geo.Resolver
	currency string
	logger   *zap.Logger
}

// NewHeuristicService creates the built-in offer generator.
func NewHeuristicService(tiers *pricing.Service, resolver *geo.Resolver, currency string, logger *zap.Logger) *HeuristicService {
	return &HeuristicService{
		tiers:    tiers,
		resolver: resolver,
		currency: currency,
		logger:   logger.With(zap.String("component", "search")),
	}
}

// routeSeed hashes a route so flight numbers and small price offsets are
// stable per route rather than random.
func routeSeed(parts ...string) uint32 {
	h := fnv.New32a()
	for _, p := range parts {
		_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(p))))
		_, _ = h.Write([]byte{'|'})
	}
	return h.Sum32()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SearchFlights generates three flight options priced from the base fare,
// the route distance, the destination's cost tier, and the travel month.
func (s *HeuristicService) SearchFlights(ctx context.Context, q *FlightQuery) ([]types.FlightOption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if q.DistanceKM <= 0 {
		return nil, types.NewError(types.ErrInvalidRequest, "flight search requires a positive route distance")
	}

	country := s.resolver.ResolveCountry(q.Destination)
	tier := s.tiers.GetCountryTier(country)
	seasonal := s.tiers.SeasonalMultiplier(q.Date.Month())

	base := (pricing.BaseFlightFare + q.DistanceKM*pricing.FlightPerKM) * tier.CostMultiplier * seasonal
	seed := routeSeed(q.OriginCode, q.DestinationCode)
	airlines := defaultAirlines
	if list, ok := airlinesByRegion[tier.Region]; ok {
		airlines = list
	}

	variants := []struct {
		factor float64
		stops  int
	}{
		{0.82, 1},
		{1.0, 0},
		{1.35, 0},
	}

	options := make([]types.FlightOption, 0, len(variants))
	for i, v := range variants {
		// Cruise ~800 km/h plus taxi time, layovers add about 90 minutes.
		duration := q.DistanceKM/800 + 0.75 + float64(v.stops)*1.5
		options = append(options, types.FlightOption{
			Airline:       airlines[i%len(airlines)],
			FlightNumber:  fmt.Sprintf("%s%d", initials(airlines[i%len(airlines)]), 100+(seed+uint32(i)*37)%900),
			DepartureCode: q.OriginCode,
			ArrivalCode:   q.DestinationCode,
			DurationHours: round2(duration),
			Stops:         v.stops,
			Price:         round2(base * v.factor),
			Currency:      s.currency,
		})
	}

	s.logger.Debug("flight offers generated",
		zap.String("origin", q.OriginCode),
		zap.String("destination", q.DestinationCode),
		zap.Int("count", len(options)),
	)
	return options, nil
}

func initials(airline string) string {
	var b strings.Builder
	for _, word := range strings.Fields(airline) {
		b.WriteByte(word[0])
	}
	return strings.ToUpper(b.String())
}

// hotelVariants shape the generated hotel spread from budget to upscale.
var hotelVariants = []struct {
	suffix    string
	factor    float64
	rating    float64
	amenities []string
}{
	{"Guesthouse", 0.6, 3.9, []string{"wifi", "breakfast"}},
	{"Boutique Hotel", 1.0, 4.3, []string{"wifi", "breakfast", "pool"}},
	{"Grand Resort", 1.7, 4.7, []string{"wifi", "breakfast", "pool", "spa"}},
}

// areaForVibe places the generated hotels in a neighbourhood matching the
// travel style.
func areaForVibe(v types.Vibe) string {
	switch v {
	case types.VibeBeach, types.VibeRomantic:
		return "Beachfront"
	case types.VibeCultural:
		return "Old Town"
	case types.VibeNightlife:
		return "Entertainment District"
	case types.VibeBudget:
		return "Near Station"
	default:
		return "City Centre"
	}
}

// SearchHotels generates three hotel options. Per-night prices come from the
// base rate scaled by the destination tier, the vibe, and the season; total
// price covers all nights and one room per two travelers.
func (s *HeuristicService) SearchHotels(ctx context.Context, q *HotelQuery) ([]types.HotelOption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	nights := q.CheckIn.DaysUntil(q.CheckOut)
	if nights <= 0 {
		return nil, types.NewError(types.ErrInvalidRequest, "hotel search requires at least one night")
	}

	country := s.resolver.ResolveCountry(q.Destination)
	tier := s.tiers.GetCountryTier(country)
	perNightBase := pricing.BaseHotelNight * tier.CostMultiplier *
		s.tiers.VibeMultiplier(q.Vibe) * s.tiers.SeasonalMultiplier(q.CheckIn.Month())

	rooms := (q.Travelers + 1) / 2
	if rooms < 1 {
		rooms = 1
	}

	options := make([]types.HotelOption, 0, len(hotelVariants))
	for _, v := range hotelVariants {
		perNight := round2(perNightBase * v.factor)
		options = append(options, types.HotelOption{
			Name:          fmt.Sprintf("%s %s", displayName(q.Destination), v.suffix),
			Area:          areaForVibe(q.Vibe),
			Rating:        v.rating,
			PricePerNight: perNight,
			TotalPrice:    round2(perNight * float64(nights) * float64(rooms)),
			Currency:      s.currency,
			Amenities:     v.amenities,
		})
	}
	return options, nil
}

func displayName(place string) string {
	fields := strings.Fields(strings.TrimSpace(place))
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + strings.ToLower(f[1:])
	}
	return strings.Join(fields, " ")
}

// activitiesByVibe are the seed activity pools for itinerary generation.
var activitiesByVibe = map[types.Vibe][]string{
	types.VibeRomantic:  {"sunset dinner cruise", "couples spa afternoon", "old town evening walk", "wine tasting"},
	types.VibeAdventure: {"guided hike", "kayaking trip", "zip-line canopy tour", "mountain bike rental"},
	types.VibeBeach:     {"beach day with snorkeling", "surf lesson", "sunset sailing", "coastal walk"},
	types.VibeCultural:  {"museum circuit", "guided heritage walk", "local cooking class", "temple and market tour"},
	types.VibeLuxury:    {"private city tour", "fine dining tasting menu", "spa day", "helicopter sightseeing"},
	types.VibeBudget:    {"free walking tour", "street food crawl", "public park picnic", "local market visit"},
	types.VibeFamily:    {"aquarium visit", "theme park day", "zoo and gardens", "interactive science museum"},
	types.VibeNightlife: {"rooftop bar circuit", "live music venue", "night market food tour", "late-night river cruise"},
}

var defaultActivities = []string{"city highlights tour", "local food tasting", "day trip to nearby sights", "evening stroll"}

// SearchActivities returns a vibe-matched activity pool for the destination.
func (s *HeuristicService) SearchActivities(ctx context.Context, q *ActivityQuery) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pool, ok := activitiesByVibe[q.Vibe]
	if !ok {
		pool = defaultActivities
	}

	out := make([]string, len(pool))
	copy(out, pool)
	return out, nil
}
