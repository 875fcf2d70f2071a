package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T) (*Manager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	m, err := NewManager(Config{Addr: mr.Addr(), DefaultTTL: time.Minute}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m, mr
}

func TestManagerGetSet(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	_, err := m.Get(ctx, "missing")
	assert.True(t, IsCacheMiss(err))

	require.NoError(t, m.Set(ctx, "k", "v", 0))
	val, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}

func TestManagerJSONRoundTrip(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	type payload struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	require.NoError(t, m.SetJSON(ctx, "hotel", payload{Name: "Seaside Inn", Price: 120}, time.Minute))

	var got payload
	require.NoError(t, m.GetJSON(ctx, "hotel", &got))
	assert.Equal(t, "Seaside Inn", got.Name)
	assert.InDelta(t, 120, got.Price, 1e-9)
}

func TestManagerTTLExpiry(t *testing.T) {
	m, mr := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", "v", 10*time.Second))
	mr.FastForward(11 * time.Second)

	_, err := m.Get(ctx, "k")
	assert.True(t, IsCacheMiss(err))
}

func TestManagerDelete(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", "v", 0))
	require.NoError(t, m.Delete(ctx, "k"))
	_, err := m.Get(ctx, "k")
	assert.True(t, IsCacheMiss(err))

	// Deleting nothing is a no-op.
	require.NoError(t, m.Delete(ctx))
}

func TestManagerClosed(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	_, err := m.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, IsCacheMiss(err))
	assert.Error(t, m.Set(context.Background(), "k", "v", 0))
	assert.Error(t, m.Ping(context.Background()))
}
