package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "UPSTREAM_PROVIDER"
	envBaseURL         = "API_BASE_URL"
	envAPIKey          = "API_FOOTBALL_KEY"
	envAPIKeyFallback  = "API_KEY"
	envSeason          = "FOOTBALL_SEASON"
	envUpstreamTimeout = "UPSTREAM_TIMEOUT"
	envMaxRetries      = "UPSTREAM_MAX_RETRIES"
	envCORSOrigins     = "CORS_ALLOWED_ORIGINS"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "5000"
	defaultProvider = "apifootball"
	defaultBaseURL  = "https://v3.football.api-sports.io"
	defaultSeason   = 2024
	// The server sizes its write timeout from this and UPSTREAM_MAX_RETRIES.
	defaultUpstreamTimeout = 10 * Duration(time.Second)
	defaultCORSOrigins     = "*"
	defaultMetricsPort     = "9090"
	defaultServiceName     = "goalmind-backend"
)
