package geo

import (
	"fmt"
	"math"

	"github.com/voyago/tripcost/types"
)

// earthRadiusKM is the mean Earth radius.
const earthRadiusKM = 6371.0

// haversineKM computes the great-circle distance between two coordinates.
func haversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}

// Distance returns the great-circle distance in kilometers between two
// places. It returns an error when either place cannot be resolved; callers
// fail open on that error rather than aborting.
func (r *Resolver) Distance(origin, destination string) (float64, error) {
	lat1, lon1, ok := r.coordinates(origin)
	if !ok {
		return 0, types.NewError(types.ErrUnresolvable, fmt.Sprintf("unknown place %q", origin))
	}
	lat2, lon2, ok := r.coordinates(destination)
	if !ok {
		return 0, types.NewError(types.ErrUnresolvable, fmt.Sprintf("unknown place %q", destination))
	}
	return haversineKM(lat1, lon1, lat2, lon2), nil
}
