package server

import (
	"log/slog"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/config"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/metrics"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/upstream"
)

// fetcherFactory assembles the upstream fetcher with shared decorators.
type fetcherFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newFetcherFactory(logger *slog.Logger, metrics *metrics.Recorder) fetcherFactory {
	return fetcherFactory{logger: logger, metrics: metrics}
}

func (f fetcherFactory) build(cfg config.Config) upstream.Fetcher {
	return f.wrap(cfg, selectFetcher(cfg, f.logger))
}

// wrap instruments every attempt, then layers the opt-in retry on top.
func (f fetcherFactory) wrap(cfg config.Config, base upstream.Fetcher) upstream.Fetcher {
	name := normalizeProviderName(cfg.Upstream.Provider, base)
	instrumented := upstream.NewInstrumentedFetcher(base, name, f.metrics, f.logger)
	return upstream.NewRetryingFetcher(instrumented, name, f.logger, cfg.Upstream.MaxRetries, 0)
}
