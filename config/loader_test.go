package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().WithConfigPath("/nonexistent/config.yaml").Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Planner.StrategyTTL)
}

func TestLoadFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
server:
  addr: ":9090"
planner:
  stage_timeout: 10s
  currency: EUR
llm:
  model: test-model
redis:
  addr: "localhost:6379"
  ttl: 5m
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := NewLoader().WithConfigPath(path).Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Planner.StageTimeout)
	assert.Equal(t, "EUR", cfg.Planner.Currency)
	assert.Equal(t, "test-model", cfg.LLM.Model)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	// Untouched sections keep defaults.
	assert.Equal(t, 24*time.Hour, cfg.Planner.StrategyTTL)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("TRIPCOST_SERVER_ADDR", ":7070")
	t.Setenv("TRIPCOST_PLANNER_STAGE_TIMEOUT", "5s")
	t.Setenv("TRIPCOST_LLM_TEMPERATURE", "0.2")
	t.Setenv("TRIPCOST_TELEMETRY_ENABLED", "false")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Planner.StageTimeout)
	assert.InDelta(t, 0.2, cfg.LLM.Temperature, 1e-9)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Planner.StageTimeout = 0
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.LLM.Temperature = 3
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.OTLPEndpoint = ""
	require.Error(t, cfg.Validate())
}

func TestTimeoutFor(t *testing.T) {
	p := PlannerConfig{
		StageTimeout:  30 * time.Second,
		AgentTimeouts: map[string]time.Duration{"emotional_analysis": 45 * time.Second},
	}
	assert.Equal(t, 45*time.Second, p.TimeoutFor("emotional_analysis"))
	assert.Equal(t, 30*time.Second, p.TimeoutFor("cost_estimation"))
}
