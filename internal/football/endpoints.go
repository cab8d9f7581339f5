package football

// Endpoint names used in logs and metrics.
const (
	EndpointTeams     = "teams"
	EndpointStats     = "stats"
	EndpointFixtures  = "fixtures"
	EndpointLive      = "live"
	EndpointStandings = "standings"
)

// Upstream API paths.
const (
	pathTeams      = "/teams"
	pathStatistics = "/teams/statistics"
	pathFixtures   = "/fixtures"
	pathStandings  = "/standings"
)

const (
	fixtureWindowDays = 14
	standingsLimit    = 10
)

// Informational messages attached to empty passthrough results.
const (
	msgNoTeams    = "No teams found for this league and season"
	msgNoStats    = "No statistics found for this team"
	msgNoFixtures = "No upcoming fixtures found in next 2 weeks"
	msgNoLive     = "No live matches at the moment"
)

// MessageField is the top-level key carrying the empty-result message.
const MessageField = "message"

// fetchFailures maps each endpoint to its client-facing failure summary.
var fetchFailures = map[string]string{
	EndpointTeams:     "Failed to fetch teams",
	EndpointStats:     "Failed to fetch stats",
	EndpointFixtures:  "Failed to fetch fixtures",
	EndpointLive:      "Failed to fetch live matches",
	EndpointStandings: "Failed to fetch standings",
}
