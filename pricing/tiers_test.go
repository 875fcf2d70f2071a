package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/voyago/tripcost/types"
)

func TestGetCountryTier(t *testing.T) {
	s := NewService(zap.NewNop())

	japan := s.GetCountryTier("Japan")
	assert.InDelta(t, 1.45, japan.CostMultiplier, 1e-9)
	assert.Equal(t, "East Asia", japan.Region)

	sriLanka := s.GetCountryTier("sri lanka")
	assert.InDelta(t, 0.55, sriLanka.CostMultiplier, 1e-9)
	assert.Less(t, sriLanka.InfrastructureScore, japan.InfrastructureScore)

	// Unknown country falls back to the global default.
	unknown := s.GetCountryTier("Wakanda")
	assert.InDelta(t, 1.0, unknown.CostMultiplier, 1e-9)
	assert.Equal(t, "Unknown", unknown.Region)

	// Empty input gets the default, not a panic.
	assert.Equal(t, unknown.CostMultiplier, s.GetCountryTier("").CostMultiplier)
}

func TestSeasonalMultiplier(t *testing.T) {
	s := NewService(zap.NewNop())

	assert.Greater(t, s.SeasonalMultiplier(time.July), s.SeasonalMultiplier(time.November))
	assert.Greater(t, s.SeasonalMultiplier(time.December), 1.0)
	assert.Less(t, s.SeasonalMultiplier(time.February), 1.0)
}

func TestVibeMultiplier(t *testing.T) {
	s := NewService(zap.NewNop())

	assert.Greater(t, s.VibeMultiplier(types.VibeLuxury), s.VibeMultiplier(types.VibeCultural))
	assert.Less(t, s.VibeMultiplier(types.VibeBudget), 1.0)
	assert.Equal(t, 1.0, s.VibeMultiplier(types.Vibe("unheard-of")))
}
