package apifootball

import "time"

const (
	providerName   = "apifootball"
	defaultBaseURL = "https://v3.football.api-sports.io"
	// DefaultTimeout bounds one upstream attempt when no timeout is configured.
	DefaultTimeout     = 10 * time.Second
	defaultHTTPTimeout = DefaultTimeout
	maxBodyBytes       = 6 << 20
	maxErrorBodyBytes  = 512

	// credentialHeader carries the API key. The key never goes in the query string.
	credentialHeader = "x-apisports-key"
	remainingHeader  = "x-ratelimit-requests-remaining"
	retryAfterHeader = "Retry-After"

	errorsField = "errors"
)

// Envelope error keys API-Sports uses when a quota is exhausted.
var rateLimitErrorKeys = map[string]struct{}{
	"rateLimit": {},
	"requests":  {},
}
