package upstream

import (
	"context"
	"net/url"
)

// ResultField is the envelope key that carries the upstream result.
const ResultField = "response"

// Payload is a decoded upstream envelope. Numbers are kept as json.Number so
// passthrough responses re-encode exactly as received.
type Payload map[string]any

// Result returns the value under the result field. ok is false when the
// field is absent or null.
func (p Payload) Result() (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p[ResultField]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Fetcher performs one GET against the upstream API.
// path is relative to the configured base URL (for example "/teams").
type Fetcher interface {
	Fetch(ctx context.Context, path string, params url.Values) (Payload, error)
}

// FetcherFunc adapts a function into a Fetcher.
type FetcherFunc func(ctx context.Context, path string, params url.Values) (Payload, error)

func (f FetcherFunc) Fetch(ctx context.Context, path string, params url.Values) (Payload, error) {
	return f(ctx, path, params)
}
