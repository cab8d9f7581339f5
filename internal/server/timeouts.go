package server

import (
	"time"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/config"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/upstream"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/upstream/apifootball"
)

const (
	readTimeout     = 10 * time.Second
	idleTimeout     = 60 * time.Second
	minWriteTimeout = 15 * time.Second
	// responseMargin is left between the request deadline and the write timeout
	// for encoding and flushing the error body.
	responseMargin = 2 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// requestBudget is the longest an API request may wait on the upstream,
// covering every attempt and retry pause the configuration allows.
func requestBudget(cfg config.Config) time.Duration {
	attempt := cfg.Upstream.Timeout
	if attempt <= 0 {
		attempt = apifootball.DefaultTimeout
	}
	return upstream.MaxWait(attempt, cfg.Upstream.MaxRetries)
}

// writeTimeoutFor keeps the server write timeout above the request budget.
func writeTimeoutFor(budget time.Duration) time.Duration {
	if wt := budget + responseMargin; wt > minWriteTimeout {
		return wt
	}
	return minWriteTimeout
}
