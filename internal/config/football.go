package config

import "strings"

// UpstreamConfig controls how we talk to the football statistics API.
type UpstreamConfig struct {
	Provider   string
	BaseURL    string
	APIKey     string
	Season     int
	Timeout    Duration
	MaxRetries int
}

// HasCredential reports whether an API key was configured.
func (c UpstreamConfig) HasCredential() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		Provider: strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		BaseURL:  envOrDefault(envBaseURL, defaultBaseURL),
		// The key has no default; an unset key must never be papered over.
		APIKey:     envOrDefault(envAPIKey, envOrDefault(envAPIKeyFallback, "")),
		Season:     intEnvOrDefault(envSeason, defaultSeason),
		Timeout:    durationEnvOrDefault(envUpstreamTimeout, defaultUpstreamTimeout),
		MaxRetries: nonNegativeIntEnvOrDefault(envMaxRetries, 0),
	}
}
