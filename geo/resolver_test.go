package geo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/voyago/tripcost/types"
)

func TestResolveAirport(t *testing.T) {
	r := NewResolver(zap.NewNop())

	assert.Equal(t, "TYO", r.ResolveAirport("Tokyo"))
	assert.Equal(t, "NYC", r.ResolveAirport("  new   YORK "))
	// Cities without their own international airport share the serving code.
	assert.Equal(t, "CMB", r.ResolveAirport("Galle"))
	assert.Equal(t, "CMB", r.ResolveAirport("Colombo"))
	assert.Equal(t, UnknownCode, r.ResolveAirport("Atlantis"))
	assert.Equal(t, UnknownCode, r.ResolveAirport(""))
}

func TestResolveCountry(t *testing.T) {
	r := NewResolver(zap.NewNop())

	assert.Equal(t, "Sri Lanka", r.ResolveCountry("galle"))
	assert.Equal(t, "Japan", r.ResolveCountry("Kyoto"))
	assert.Equal(t, "", r.ResolveCountry("Atlantis"))
}

func TestDistance(t *testing.T) {
	r := NewResolver(zap.NewNop())

	// Tokyo–New York is roughly 10,800 km great-circle.
	d, err := r.Distance("Tokyo", "New York")
	require.NoError(t, err)
	assert.InDelta(t, 10850, d, 300)

	// Galle–Colombo is around 100 km.
	d, err = r.Distance("Galle", "Colombo")
	require.NoError(t, err)
	assert.InDelta(t, 105, d, 25)

	// Same place is zero.
	d, err = r.Distance("Paris", "Paris")
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = r.Distance("Atlantis", "Paris")
	require.Error(t, err)
	assert.Equal(t, types.ErrUnresolvable, types.GetErrorCode(err))
}

func TestResolverConcurrentAccess(t *testing.T) {
	r := NewResolver(zap.NewNop())
	places := []string{"Tokyo", "Paris", "Galle", "Atlantis", "Sydney", "Cairo"}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, p := range places {
				_ = r.ResolveAirport(p)
				_ = r.ResolveCountry(p)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, "TYO", r.ResolveAirport("Tokyo"))
}

func TestLookupCountry(t *testing.T) {
	info, ok := LookupCountry("Sri Lanka")
	require.True(t, ok)
	assert.Equal(t, "South Asia", info.Region)
	assert.Greater(t, info.AreaKM2, 0.0)

	_, ok = LookupCountry("Wakanda")
	assert.False(t, ok)
}
