package server

import (
	"fmt"
	"strings"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/upstream"
)

type namedFetcher interface {
	Name() string
}

// normalizeProviderName returns a lower-cased provider name for metrics and logs.
// The configured name wins; otherwise the fetcher names itself or falls back to its type.
func normalizeProviderName(raw string, fetcher upstream.Fetcher) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	if named, ok := fetcher.(namedFetcher); ok && named.Name() != "" {
		return strings.ToLower(named.Name())
	}
	if fetcher != nil {
		return strings.ToLower(fmt.Sprintf("%T", fetcher))
	}
	return "provider"
}
