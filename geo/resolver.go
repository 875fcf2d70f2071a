package geo

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

// UnknownCode is the sentinel returned when a place cannot be resolved to an
// airport or region code. The classifier treats it as "fail open": flight
// search is included when resolution is uncertain.
const UnknownCode = "UNKNOWN"

// Resolver resolves place names to airport codes, countries, and
// coordinates. Lookups are memoized process-wide; the memo caches are safe
// for concurrent use by multiple in-flight requests.
type Resolver struct {
	mu           sync.RWMutex
	airportCache map[string]string
	countryCache map[string]string
	logger       *zap.Logger
}

// NewResolver creates a resolver backed by the built-in gazetteer.
func NewResolver(logger *zap.Logger) *Resolver {
	return &Resolver{
		airportCache: make(map[string]string),
		countryCache: make(map[string]string),
		logger:       logger.With(zap.String("component", "geo_resolver")),
	}
}

// normalizeKey lowercases and trims a place name for cache keying.
func normalizeKey(place string) string {
	return strings.ToLower(strings.Join(strings.Fields(place), " "))
}

// ResolveAirport returns the airport/region code serving the place, or
// UnknownCode when the place is not in the gazetteer.
func (r *Resolver) ResolveAirport(placeName string) string {
	key := normalizeKey(placeName)
	if key == "" {
		return UnknownCode
	}

	r.mu.RLock()
	code, ok := r.airportCache[key]
	r.mu.RUnlock()
	if ok {
		return code
	}

	code = UnknownCode
	if p, found := gazetteer[key]; found {
		code = p.Airport
	} else {
		r.logger.Debug("airport resolution miss", zap.String("place", placeName))
	}

	r.mu.Lock()
	r.airportCache[key] = code
	r.mu.Unlock()
	return code
}

// ResolveCountry returns the country for the place, or "" when unknown.
func (r *Resolver) ResolveCountry(placeName string) string {
	key := normalizeKey(placeName)
	if key == "" {
		return ""
	}

	r.mu.RLock()
	country, ok := r.countryCache[key]
	r.mu.RUnlock()
	if ok {
		return country
	}

	country = ""
	if p, found := gazetteer[key]; found {
		country = p.Country
	}

	r.mu.Lock()
	r.countryCache[key] = country
	r.mu.Unlock()
	return country
}

// coordinates returns the lat/lon for a place and whether it is known.
func (r *Resolver) coordinates(placeName string) (lat, lon float64, ok bool) {
	p, found := gazetteer[normalizeKey(placeName)]
	if !found {
		return 0, 0, false
	}
	return p.Lat, p.Lon, true
}
