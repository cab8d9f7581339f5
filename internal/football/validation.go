package football

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	paramLeague = "league"
	paramTeam   = "team"

	msgLeagueRequired        = "League ID is required"
	msgLeagueInvalid         = "League ID must be a positive integer"
	msgTeamAndLeagueRequired = "Team and league are required"
	msgTeamInvalid           = "Team ID must be a positive integer"
)

// requireLeague returns the league id or a ValidationError.
func requireLeague(endpoint string, params url.Values) (string, error) {
	raw := strings.TrimSpace(params.Get(paramLeague))
	if raw == "" {
		return "", &ValidationError{Endpoint: endpoint, Field: paramLeague, Message: msgLeagueRequired}
	}
	id, ok := positiveID(raw)
	if !ok {
		return "", &ValidationError{Endpoint: endpoint, Field: paramLeague, Message: msgLeagueInvalid}
	}
	return id, nil
}

// requireTeamAndLeague returns both ids; a missing one reports the combined message.
func requireTeamAndLeague(endpoint string, params url.Values) (team, league string, err error) {
	rawTeam := strings.TrimSpace(params.Get(paramTeam))
	rawLeague := strings.TrimSpace(params.Get(paramLeague))
	if rawTeam == "" || rawLeague == "" {
		field := paramTeam
		if rawTeam != "" {
			field = paramLeague
		}
		return "", "", &ValidationError{Endpoint: endpoint, Field: field, Message: msgTeamAndLeagueRequired}
	}
	team, ok := positiveID(rawTeam)
	if !ok {
		return "", "", &ValidationError{Endpoint: endpoint, Field: paramTeam, Message: msgTeamInvalid}
	}
	league, ok = positiveID(rawLeague)
	if !ok {
		return "", "", &ValidationError{Endpoint: endpoint, Field: paramLeague, Message: msgLeagueInvalid}
	}
	return team, league, nil
}

// optionalTeam returns the team id when present. An empty value means no filter.
func optionalTeam(endpoint string, params url.Values) (string, error) {
	raw := strings.TrimSpace(params.Get(paramTeam))
	if raw == "" {
		return "", nil
	}
	id, ok := positiveID(raw)
	if !ok {
		return "", &ValidationError{Endpoint: endpoint, Field: paramTeam, Message: msgTeamInvalid}
	}
	return id, nil
}

// positiveID accepts decimal integers above zero and returns their canonical form.
func positiveID(raw string) (string, bool) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return "", false
	}
	return strconv.FormatUint(n, 10), true
}
