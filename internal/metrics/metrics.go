package metrics

import (
	"sync"
	"time"
)

type upstreamStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls and
// mirrors them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu          sync.Mutex
	stats       map[string]*upstreamStats
	rejections  map[string]int
	emptyResult map[string]int
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:       make(map[string]*upstreamStats),
		rejections:  make(map[string]int),
		emptyResult: make(map[string]int),
		otel:        otel,
	}
}

// RecordUpstreamAttempt increments counters for an upstream call and stores the last observed latency.
func (r *Recorder) RecordUpstreamAttempt(provider, path string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamAttempt(provider, path, duration, err)
	}
}

// RecordRateLimit tracks that an upstream response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordValidationFailure counts a request rejected before any upstream call.
func (r *Recorder) RecordValidationFailure(endpoint string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.rejections[endpoint]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordEndpointEvent(r.otel.validationFailures, endpoint)
	}
}

// RecordEmptyResult counts a successful upstream call that produced zero items.
func (r *Recorder) RecordEmptyResult(endpoint string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.emptyResult[endpoint]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordEndpointEvent(r.otel.emptyResults, endpoint)
	}
}

// UpstreamCalls returns the total attempts recorded for a provider.
func (r *Recorder) UpstreamCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// UpstreamErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) UpstreamErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// ValidationFailures returns how many requests to endpoint were rejected before reaching upstream.
func (r *Recorder) ValidationFailures(endpoint string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rejections[endpoint]
}

// EmptyResults returns how many requests to endpoint produced zero items.
func (r *Recorder) EmptyResults(endpoint string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.emptyResult[endpoint]
}

// Snapshot is a copy of the current stats for a provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

func (r *Recorder) ensureStatsLocked(provider string) *upstreamStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &upstreamStats{}
		r.stats[provider] = stats
	}
	return stats
}
