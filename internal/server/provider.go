package server

import (
	"log/slog"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/config"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/upstream"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/upstream/apifootball"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/upstream/fixture"
)

const (
	providerAPIFootball = "apifootball"
	providerFixture     = "fixture"
)

func selectFetcher(cfg config.Config, logger *slog.Logger) upstream.Fetcher {
	switch cfg.Upstream.Provider {
	case providerFixture:
		return fixture.New()
	case providerAPIFootball, "":
		return newAPIFootballClient(cfg)
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to apifootball", slog.String("provider", cfg.Upstream.Provider))
		}
		return newAPIFootballClient(cfg)
	}
}

func newAPIFootballClient(cfg config.Config) *apifootball.Client {
	return apifootball.NewClient(apifootball.Config{
		BaseURL: cfg.Upstream.BaseURL,
		APIKey:  cfg.Upstream.APIKey,
		Timeout: cfg.Upstream.Timeout,
	})
}

// readiness reports whether the configured upstream can be called at all.
func readiness(cfg config.Config) func() error {
	return func() error {
		if cfg.Upstream.Provider == providerFixture || cfg.Upstream.HasCredential() {
			return nil
		}
		return upstream.ErrMissingCredential
	}
}
