package testutil

import (
	"context"
	"net/url"
	"sync"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/upstream"
)

// FetchCall records one call made to a FakeFetcher.
type FetchCall struct {
	Path   string
	Params url.Values
}

// FakeFetcher counts calls and answers from Respond, or with Payload/Err when Respond is nil.
// It is safe for concurrent use.
type FakeFetcher struct {
	Payload upstream.Payload
	Err     error
	Respond func(path string, params url.Values) (upstream.Payload, error)

	mu    sync.Mutex
	calls []FetchCall
}

func (f *FakeFetcher) Fetch(ctx context.Context, path string, params url.Values) (upstream.Payload, error) {
	f.mu.Lock()
	f.calls = append(f.calls, FetchCall{Path: path, Params: cloneValues(params)})
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.Respond != nil {
		return f.Respond(path, params)
	}
	if f.Err != nil {
		return nil, f.Err
	}
	return ClonePayload(f.Payload), nil
}

// Calls returns the number of Fetch invocations.
func (f *FakeFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// LastCall returns the most recent call, or false when none was made.
func (f *FakeFetcher) LastCall() (FetchCall, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return FetchCall{}, false
	}
	return f.calls[len(f.calls)-1], true
}

// BlockingFetcher waits for its context to end and returns the context error.
type BlockingFetcher struct {
	Started chan struct{}
}

func (b *BlockingFetcher) Fetch(ctx context.Context, path string, params url.Values) (upstream.Payload, error) {
	_ = path
	_ = params
	if b.Started != nil {
		select {
		case <-b.Started:
		default:
			close(b.Started)
		}
	}
	<-ctx.Done()
	return nil, ctx.Err()
}

// ClonePayload copies the top level of p so callers may add keys without sharing state.
func ClonePayload(p upstream.Payload) upstream.Payload {
	if p == nil {
		return nil
	}
	out := make(upstream.Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

func cloneValues(v url.Values) url.Values {
	if v == nil {
		return nil
	}
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
