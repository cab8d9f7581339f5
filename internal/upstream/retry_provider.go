package upstream

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/logging"
)

const (
	defaultInitialBackoff = 200 * time.Millisecond
	defaultMaxBackoff     = 2 * time.Second
	backoffJitter         = 0.5
)

// MaxWait bounds how long a fetch decorated with maxRetries can take when every
// attempt runs into attemptTimeout and every pause is the longest jittered backoff.
func MaxWait(attemptTimeout time.Duration, maxRetries int) time.Duration {
	if maxRetries < 0 {
		maxRetries = 0
	}
	longestPause := time.Duration(float64(defaultMaxBackoff) * (1 + backoffJitter))
	return attemptTimeout*time.Duration(maxRetries+1) + longestPause*time.Duration(maxRetries)
}

// retryingFetcher wraps a Fetcher with bounded exponential backoff.
type retryingFetcher struct {
	inner      Fetcher
	provider   string
	logger     *slog.Logger
	maxRetries int
	newBackOff func() backoff.BackOff
}

// NewRetryingFetcher wraps inner with up to maxRetries additional attempts.
// With maxRetries <= 0 inner is returned unchanged, so a request makes exactly one upstream call.
func NewRetryingFetcher(inner Fetcher, provider string, logger *slog.Logger, maxRetries int, initial time.Duration) Fetcher {
	if maxRetries <= 0 {
		return inner
	}
	if initial <= 0 {
		initial = defaultInitialBackoff
	}
	return &retryingFetcher{
		inner:      inner,
		provider:   provider,
		logger:     logger,
		maxRetries: maxRetries,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxInterval = defaultMaxBackoff
			b.RandomizationFactor = backoffJitter
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (r *retryingFetcher) Fetch(ctx context.Context, path string, params url.Values) (Payload, error) {
	if r == nil || r.inner == nil {
		return nil, ErrProviderUnavailable
	}

	attempt := 0
	op := func() (Payload, error) {
		attempt++
		payload, err := r.inner.Fetch(ctx, path, params)
		if err != nil && !retryable(err) {
			return nil, backoff.Permanent(err)
		}
		return payload, err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(r.newBackOff(), uint64(r.maxRetries)), ctx)
	notify := func(err error, delay time.Duration) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.provider, "upstream fetch retry",
			logging.FieldUpstream, path,
			logging.FieldAttempt, attempt,
			"max_retries", r.maxRetries,
			"delay", delay.String(),
			logging.FieldError, err,
		)
	}

	payload, err := backoff.RetryNotifyWithData(op, policy, notify)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// retryable reports whether another attempt could succeed. Rate limits,
// missing credentials, malformed payloads and 4xx answers are final.
func retryable(err error) bool {
	switch {
	case errors.Is(err, ErrMissingCredential),
		errors.Is(err, ErrProviderUnavailable),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}
	if _, ok := AsRateLimitError(err); ok {
		return false
	}
	if _, ok := AsShapeError(err); ok {
		return false
	}
	if st, ok := AsStatusError(err); ok {
		return st.Temporary()
	}
	return true
}
