// Package strategy derives per-country transportation strategies: how far
// ground transport is practical within a country, and which modes to prefer.
// Strategies are cached with a TTL because the inputs (country area,
// infrastructure quality) change on a far slower timescale than requests.
package strategy

import (
	"fmt"
	"math"
	"time"

	"github.com/voyago/tripcost/geo"
	"github.com/voyago/tripcost/pricing"
	"github.com/voyago/tripcost/types"
)

// Bounds for the derived ground-distance threshold.
const (
	MinGroundDistanceKM = 50.0
	MaxGroundDistanceKM = 800.0
)

// TransportationStrategy describes practical transportation within a country.
type TransportationStrategy struct {
	// MaxGroundDistanceKM is the largest distance considered practical for
	// non-air travel inside the country.
	MaxGroundDistanceKM float64 `json:"max_ground_distance_km"`
	// PreferredTransport orders transport modes from most to least preferred.
	PreferredTransport []string `json:"preferred_transport"`
	// SizeCategory is small, medium, large, or unknown.
	SizeCategory string `json:"size_category"`
	// InfrastructureScore estimates ground-transport quality in [0, 1].
	InfrastructureScore float64 `json:"infrastructure_score"`
	// ComputedAt records when the strategy was derived.
	ComputedAt time.Time `json:"computed_at"`
}

// DefaultStrategy is the conservative fallback used when country info cannot
// be computed: a 300 km threshold with flight-first preference. Callers of
// the classifier are never blocked by a strategy failure.
func DefaultStrategy() TransportationStrategy {
	return TransportationStrategy{
		MaxGroundDistanceKM: 300,
		PreferredTransport:  []string{"flight", "train", "bus"},
		SizeCategory:        "unknown",
		InfrastructureScore: 0.5,
		ComputedAt:          time.Now(),
	}
}

// sizeCategory buckets a country by land area.
func sizeCategory(areaKM2 float64) (name string, scale float64) {
	switch {
	case areaKM2 < 100_000:
		return "small", 0.85
	case areaKM2 < 1_500_000:
		return "medium", 0.55
	default:
		return "large", 0.3
	}
}

// derive computes a country's strategy from its geography and
// infrastructure. The threshold is a bounded fraction of the estimated
// country diameter: dense, well-connected countries support longer ground
// legs, sparse ones less.
func derive(country string, tiers *pricing.Service) (TransportationStrategy, error) {
	info, ok := geo.LookupCountry(country)
	if !ok {
		return TransportationStrategy{}, types.NewError(types.ErrUnresolvable,
			fmt.Sprintf("no country info for %q", country))
	}
	if info.AreaKM2 <= 0 {
		return TransportationStrategy{}, types.NewError(types.ErrInternalError,
			fmt.Sprintf("country %q has non-positive area", country))
	}

	// Estimated diameter assuming a roughly circular landmass.
	diameterKM := 2 * math.Sqrt(info.AreaKM2/math.Pi)

	size, scale := sizeCategory(info.AreaKM2)

	// Population density nudges the threshold: dense countries tend to have
	// viable rail corridors, sparse ones do not.
	density := info.Population / info.AreaKM2
	densityFactor := 1.0
	switch {
	case density > 200:
		densityFactor = 1.15
	case density < 15:
		densityFactor = 0.8
	}

	infra := tiers.GetCountryTier(country).InfrastructureScore
	infraFactor := 0.6 + 0.6*infra

	threshold := diameterKM * scale * densityFactor * infraFactor
	threshold = math.Max(MinGroundDistanceKM, math.Min(MaxGroundDistanceKM, threshold))

	return TransportationStrategy{
		MaxGroundDistanceKM: threshold,
		PreferredTransport:  preferredModes(threshold, infra),
		SizeCategory:        size,
		InfrastructureScore: infra,
		ComputedAt:          time.Now(),
	}, nil
}

// preferredModes orders transport modes from the threshold and
// infrastructure quality.
func preferredModes(thresholdKM, infra float64) []string {
	switch {
	case infra >= 0.75:
		return []string{"train", "car", "bus"}
	case infra >= 0.5:
		if thresholdKM >= 400 {
			return []string{"car", "train", "flight"}
		}
		return []string{"car", "bus", "train"}
	default:
		if thresholdKM >= 300 {
			return []string{"bus", "car", "flight"}
		}
		return []string{"bus", "car", "train"}
	}
}
