package config

import "time"

// DefaultConfig returns the baseline configuration. YAML files and
// environment variables override these values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Planner: PlannerConfig{
			StageTimeout: 30 * time.Second,
			AgentTimeouts: map[string]time.Duration{
				// LLM-backed stages get a larger budget than pure computations.
				"emotional_analysis": 45 * time.Second,
				"recommendation":     45 * time.Second,
			},
			StrategyTTL: 24 * time.Hour,
			Currency:    "USD",
		},
		LLM: LLMConfig{
			BaseURL:           "https://api.openai.com/v1",
			Model:             "gpt-4o-mini",
			Timeout:           40 * time.Second,
			MaxTokens:         1024,
			Temperature:       0.7,
			RequestsPerSecond: 2,
		},
		Redis: RedisConfig{
			Addr:     "",
			DB:       0,
			PoolSize: 10,
			TTL:      15 * time.Minute,
		},
		Log: LogConfig{
			Level:        "info",
			Format:       "json",
			EnableCaller: false,
		},
		Telemetry: TelemetryConfig{
			Enabled:     false,
			ServiceName: "tripcost",
			SampleRate:  1.0,
		},
	}
}
