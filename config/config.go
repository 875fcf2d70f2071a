// Package config provides unified configuration loading for tripcost.
// Precedence: defaults → YAML file → environment variables.
//
// Usage:
//
//	cfg, err := config.NewLoader().
//	    WithConfigPath("config.yaml").
//	    WithEnvPrefix("TRIPCOST").
//	    Load()
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the complete tripcost configuration.
type Config struct {
	// Server holds the HTTP server configuration.
	Server ServerConfig `yaml:"server" env:"SERVER"`

	// Planner holds orchestration graph settings.
	Planner PlannerConfig `yaml:"planner" env:"PLANNER"`

	// LLM holds text-generation backend settings.
	LLM LLMConfig `yaml:"llm" env:"LLM"`

	// Redis holds the search-result cache settings.
	Redis RedisConfig `yaml:"redis" env:"REDIS"`

	// Log holds logging settings.
	Log LogConfig `yaml:"log" env:"LOG"`

	// Telemetry holds tracing settings.
	Telemetry TelemetryConfig `yaml:"telemetry" env:"TELEMETRY"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr" env:"ADDR"`
	// ReadTimeout bounds request reads.
	ReadTimeout time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT"`
	// WriteTimeout bounds response writes.
	WriteTimeout time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT"`
	// IdleTimeout bounds idle keep-alive connections.
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

// PlannerConfig holds orchestration graph settings.
type PlannerConfig struct {
	// StageTimeout is the default per-agent execution budget.
	StageTimeout time.Duration `yaml:"stage_timeout" env:"STAGE_TIMEOUT"`
	// AgentTimeouts overrides StageTimeout for individual agents by name.
	// LLM-heavy stages typically get a larger budget than pure computations.
	AgentTimeouts map[string]time.Duration `yaml:"agent_timeouts" env:"-"`
	// StrategyTTL is the lifetime of a cached country transportation strategy.
	StrategyTTL time.Duration `yaml:"strategy_ttl" env:"STRATEGY_TTL"`
	// Currency is the currency code attached to all estimates.
	Currency string `yaml:"currency" env:"CURRENCY"`
}

// TimeoutFor resolves the execution budget for the named agent.
func (p PlannerConfig) TimeoutFor(agent string) time.Duration {
	if d, ok := p.AgentTimeouts[agent]; ok && d > 0 {
		return d
	}
	return p.StageTimeout
}

// LLMConfig holds text-generation backend settings. When APIKey is empty the
// planner falls back to the canned generator.
type LLMConfig struct {
	// BaseURL is the OpenAI-compatible endpoint base URL.
	BaseURL string `yaml:"base_url" env:"BASE_URL"`
	// APIKey authenticates against the backend. Empty selects the fallback.
	APIKey string `yaml:"api_key" env:"API_KEY"`
	// Model is the model identifier to request.
	Model string `yaml:"model" env:"MODEL"`
	// Timeout bounds a single generation call.
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT"`
	// MaxTokens caps completion length.
	MaxTokens int `yaml:"max_tokens" env:"MAX_TOKENS"`
	// Temperature controls sampling.
	Temperature float64 `yaml:"temperature" env:"TEMPERATURE"`
	// RequestsPerSecond limits the client-side call rate. Zero disables.
	RequestsPerSecond float64 `yaml:"requests_per_second" env:"REQUESTS_PER_SECOND"`
}

// RedisConfig holds the search-result cache settings. When Addr is empty the
// cache layer is skipped and searches always go to the backend.
type RedisConfig struct {
	// Addr is the redis address, e.g. "localhost:6379".
	Addr string `yaml:"addr" env:"ADDR"`
	// Password authenticates against redis.
	Password string `yaml:"password" env:"PASSWORD"`
	// DB selects the redis database number.
	DB int `yaml:"db" env:"DB"`
	// PoolSize is the connection pool size.
	PoolSize int `yaml:"pool_size" env:"POOL_SIZE"`
	// TTL is the lifetime of a cached search result.
	TTL time.Duration `yaml:"ttl" env:"TTL"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" env:"LEVEL"`
	// Format is json or console.
	Format string `yaml:"format" env:"FORMAT"`
	// EnableCaller annotates entries with caller information.
	EnableCaller bool `yaml:"enable_caller" env:"ENABLE_CALLER"`
}

// TelemetryConfig holds tracing settings.
type TelemetryConfig struct {
	// Enabled turns OTLP trace export on.
	Enabled bool `yaml:"enabled" env:"ENABLED"`
	// OTLPEndpoint is the OTLP gRPC collector endpoint.
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"OTLP_ENDPOINT"`
	// ServiceName identifies this service in traces.
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`
	// SampleRate is the trace sampling ratio in [0, 1].
	SampleRate float64 `yaml:"sample_rate" env:"SAMPLE_RATE"`
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	var errs []string

	if c.Planner.StageTimeout <= 0 {
		errs = append(errs, "planner.stage_timeout must be positive")
	}
	if c.Planner.StrategyTTL <= 0 {
		errs = append(errs, "planner.strategy_ttl must be positive")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		errs = append(errs, "llm.temperature must be between 0 and 2")
	}
	if c.Telemetry.Enabled && c.Telemetry.OTLPEndpoint == "" {
		errs = append(errs, "telemetry.otlp_endpoint required when telemetry is enabled")
	}
	if c.Telemetry.SampleRate < 0 || c.Telemetry.SampleRate > 1 {
		errs = append(errs, "telemetry.sample_rate must be between 0 and 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors: %s", strings.Join(errs, "; "))
	}
	return nil
}
