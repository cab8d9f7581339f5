package config

// Config holds runtime configuration for the server.
// It is read once at startup and treated as immutable afterwards.
type Config struct {
	Port        string
	Upstream    UpstreamConfig
	CORSOrigins []string
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Upstream:    loadUpstream(),
		CORSOrigins: listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		Metrics:     loadMetrics(),
	}
}
