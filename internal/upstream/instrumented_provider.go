package upstream

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/logging"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/metrics"
)

// instrumentedFetcher records metrics and logs for every upstream attempt.
type instrumentedFetcher struct {
	inner    Fetcher
	provider string
	metrics  *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewInstrumentedFetcher wraps inner so each call is timed, counted and logged.
func NewInstrumentedFetcher(inner Fetcher, provider string, recorder *metrics.Recorder, logger *slog.Logger) Fetcher {
	return &instrumentedFetcher{
		inner:    inner,
		provider: provider,
		metrics:  recorder,
		logger:   logger,
		now:      time.Now,
	}
}

func (f *instrumentedFetcher) Fetch(ctx context.Context, path string, params url.Values) (Payload, error) {
	if f == nil || f.inner == nil {
		return nil, ErrProviderUnavailable
	}

	start := f.now()
	payload, err := f.inner.Fetch(ctx, path, params)
	elapsed := f.now().Sub(start)

	f.metrics.RecordUpstreamAttempt(f.provider, path, elapsed, err)
	if rl, ok := AsRateLimitError(err); ok {
		f.metrics.RecordRateLimit(f.provider, rl.RetryAfter)
		logWithProvider(ctx, f.logger, slog.LevelWarn, f.provider, "upstream rate limited",
			logging.FieldUpstream, path,
			"retry_after", rl.RetryAfter.String(),
			"remaining", rl.Remaining,
		)
		return nil, err
	}
	if err != nil {
		logWithProvider(ctx, f.logger, slog.LevelWarn, f.provider, "upstream fetch failed",
			logging.FieldUpstream, path,
			logging.FieldDurationMS, elapsed.Milliseconds(),
			logging.FieldError, err,
		)
		return nil, err
	}

	logWithProvider(ctx, f.logger, slog.LevelDebug, f.provider, "upstream fetch ok",
		logging.FieldUpstream, path,
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return payload, nil
}
