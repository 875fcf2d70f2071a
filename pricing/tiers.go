// Package pricing is the single source of cost heuristics: country cost
// tiers, infrastructure scores, seasonal multipliers, and vibe weightings.
// Every estimator consumes this package instead of carrying its own tables,
// so the heuristics cannot drift apart.
package pricing

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/voyago/tripcost/geo"
	"github.com/voyago/tripcost/types"
)

// Tier describes a country's cost and infrastructure profile.
type Tier struct {
	// CostMultiplier scales base daily costs. 1.0 is the global baseline.
	CostMultiplier float64 `json:"cost_multiplier"`
	// InfrastructureScore estimates ground-transport quality in [0, 1].
	InfrastructureScore float64 `json:"infrastructure_score"`
	// Region is the broad geographic region used for fallbacks.
	Region string `json:"region"`
}

// Per-country tier assignments. Countries not listed fall back to a regional
// estimate, then to the global default.
var (
	tier1 = []string{
		"united states", "united kingdom", "japan", "switzerland", "singapore",
		"australia", "new zealand", "united arab emirates", "canada",
		"netherlands", "france", "germany",
	}
	tier2 = []string{
		"italy", "spain", "portugal", "greece", "south korea", "china",
		"brazil", "argentina", "mexico", "south africa", "malaysia",
	}
	tier3 = []string{
		"thailand", "india", "sri lanka", "indonesia", "peru", "egypt",
		"kenya", "morocco",
	}
)

var tierProfiles = map[int]Tier{
	1: {CostMultiplier: 1.45, InfrastructureScore: 0.9},
	2: {CostMultiplier: 1.0, InfrastructureScore: 0.7},
	3: {CostMultiplier: 0.55, InfrastructureScore: 0.45},
}

// regionDefaults provides a fallback tier estimate for countries outside the
// explicit assignments.
var regionDefaults = map[string]Tier{
	"North America":   {CostMultiplier: 1.3, InfrastructureScore: 0.85},
	"Western Europe":  {CostMultiplier: 1.35, InfrastructureScore: 0.88},
	"Southern Europe": {CostMultiplier: 1.0, InfrastructureScore: 0.72},
	"East Asia":       {CostMultiplier: 1.1, InfrastructureScore: 0.8},
	"Southeast Asia":  {CostMultiplier: 0.6, InfrastructureScore: 0.5},
	"South Asia":      {CostMultiplier: 0.5, InfrastructureScore: 0.4},
	"Middle East":     {CostMultiplier: 1.1, InfrastructureScore: 0.75},
	"Oceania":         {CostMultiplier: 1.3, InfrastructureScore: 0.8},
	"South America":   {CostMultiplier: 0.75, InfrastructureScore: 0.55},
	"North Africa":    {CostMultiplier: 0.6, InfrastructureScore: 0.45},
	"East Africa":     {CostMultiplier: 0.55, InfrastructureScore: 0.35},
	"Southern Africa": {CostMultiplier: 0.7, InfrastructureScore: 0.55},
}

// defaultTier is the global fallback when nothing else matches.
var defaultTier = Tier{CostMultiplier: 1.0, InfrastructureScore: 0.5, Region: "Unknown"}

// Service exposes the consolidated pricing heuristics.
type Service struct {
	logger *zap.Logger
}

// NewService creates the pricing lookup service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger.With(zap.String("component", "pricing"))}
}

// GetCountryTier resolves a country's cost tier. Lookup order: explicit tier
// assignment, regional default, global default. It never fails; unknown
// countries get the conservative global baseline.
func (s *Service) GetCountryTier(country string) Tier {
	key := strings.ToLower(strings.TrimSpace(country))
	if key == "" {
		return defaultTier
	}

	region := ""
	if info, ok := geo.LookupCountry(key); ok {
		region = info.Region
	}

	for tierNum, members := range map[int][]string{1: tier1, 2: tier2, 3: tier3} {
		for _, member := range members {
			if member == key {
				t := tierProfiles[tierNum]
				t.Region = region
				return t
			}
		}
	}

	if region != "" {
		if t, ok := regionDefaults[region]; ok {
			t.Region = region
			s.logger.Debug("country tier resolved via regional fallback",
				zap.String("country", country),
				zap.String("region", region),
			)
			return t
		}
	}

	s.logger.Debug("country tier unknown, using global default", zap.String("country", country))
	return defaultTier
}

// seasonalByMonth approximates northern-hemisphere demand pricing: peak
// summer and December holidays cost more, shoulder months less.
var seasonalByMonth = map[time.Month]float64{
	time.January:   0.9,
	time.February:  0.9,
	time.March:     0.95,
	time.April:     1.0,
	time.May:       1.05,
	time.June:      1.2,
	time.July:      1.3,
	time.August:    1.3,
	time.September: 1.05,
	time.October:   0.95,
	time.November:  0.9,
	time.December:  1.25,
}

// SeasonalMultiplier returns the demand multiplier for a travel month.
func (s *Service) SeasonalMultiplier(month time.Month) float64 {
	if m, ok := seasonalByMonth[month]; ok {
		return m
	}
	return 1.0
}

// vibeMultipliers bias daily spend by travel style.
var vibeMultipliers = map[types.Vibe]float64{
	types.VibeLuxury:    1.9,
	types.VibeRomantic:  1.3,
	types.VibeNightlife: 1.25,
	types.VibeFamily:    1.1,
	types.VibeCultural:  1.0,
	types.VibeBeach:     1.0,
	types.VibeAdventure: 0.95,
	types.VibeBudget:    0.6,
}

// VibeMultiplier returns the spend multiplier for a travel vibe.
func (s *Service) VibeMultiplier(v types.Vibe) float64 {
	if m, ok := vibeMultipliers[v]; ok {
		return m
	}
	return 1.0
}

// Base daily costs per traveler in USD at multiplier 1.0.
const (
	BaseDailyFood       = 45.0
	BaseDailyActivities = 35.0
	BaseDailyMisc       = 18.0
	BaseDailyTransport  = 14.0
	BaseHotelNight      = 95.0
	BaseFlightFare      = 70.0
	FlightPerKM         = 0.105
)
