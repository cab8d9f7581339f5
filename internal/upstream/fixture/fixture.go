package fixture

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/upstream"
)

const providerName = "fixture"

type club struct {
	id   int
	name string
	code string
	city string
}

var clubs = []club{
	{id: 42, name: "Arsenal", code: "ARS", city: "London"},
	{id: 50, name: "Manchester City", code: "MAC", city: "Manchester"},
	{id: 40, name: "Liverpool", code: "LIV", city: "Liverpool"},
	{id: 66, name: "Aston Villa", code: "AST", city: "Birmingham"},
	{id: 47, name: "Tottenham", code: "TOT", city: "London"},
	{id: 49, name: "Chelsea", code: "CHE", city: "London"},
	{id: 34, name: "Newcastle", code: "NEW", city: "Newcastle upon Tyne"},
	{id: 33, name: "Manchester United", code: "MUN", city: "Manchester"},
	{id: 48, name: "West Ham", code: "WES", city: "London"},
	{id: 52, name: "Crystal Palace", code: "CRY", city: "London"},
	{id: 51, name: "Brighton", code: "BRI", city: "Brighton"},
	{id: 35, name: "Bournemouth", code: "BOU", city: "Bournemouth"},
}

// Provider returns canned API-Football envelopes useful for local runs without a key.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return providerName
}

// Fetch returns a fresh envelope for path. Unknown paths answer like a 404 from upstream.
func (p *Provider) Fetch(ctx context.Context, path string, params url.Values) (upstream.Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var response any
	switch path {
	case "/teams":
		response = p.teams()
	case "/teams/statistics":
		response = p.statistics(params)
	case "/fixtures":
		if params.Get("live") != "" {
			response = p.live()
		} else {
			response = p.fixtures(params)
		}
	case "/standings":
		response = p.standings(params)
	default:
		return nil, &upstream.StatusError{
			Provider:   providerName,
			Path:       path,
			StatusCode: http.StatusNotFound,
			Message:    "unknown endpoint",
		}
	}

	return envelope(path, params, response), nil
}

func envelope(path string, params url.Values, response any) upstream.Payload {
	echoed := map[string]any{}
	for k := range params {
		echoed[k] = params.Get(k)
	}
	results := 1
	if items, ok := response.([]any); ok {
		results = len(items)
	}
	return upstream.Payload{
		"get":                path[1:],
		"parameters":         echoed,
		"errors":             []any{},
		"results":            results,
		"paging":             map[string]any{"current": 1, "total": 1},
		upstream.ResultField: response,
	}
}

func teamObject(c club) map[string]any {
	return map[string]any{
		"id":   c.id,
		"name": c.name,
		"code": c.code,
		"logo": fmt.Sprintf("https://media.api-sports.io/football/teams/%d.png", c.id),
	}
}

func (p *Provider) teams() []any {
	out := make([]any, 0, len(clubs))
	for _, c := range clubs {
		out = append(out, map[string]any{
			"team":  teamObject(c),
			"venue": map[string]any{"city": c.city},
		})
	}
	return out
}

func (p *Provider) statistics(params url.Values) map[string]any {
	team := clubs[0]
	for _, c := range clubs {
		if fmt.Sprint(c.id) == params.Get("team") {
			team = c
		}
	}
	return map[string]any{
		"league": map[string]any{"id": params.Get("league"), "season": params.Get("season")},
		"team":   teamObject(team),
		"form":   "WWDLW",
		"fixtures": map[string]any{
			"played": map[string]any{"home": 19, "away": 19, "total": 38},
			"wins":   map[string]any{"home": 15, "away": 13, "total": 28},
			"draws":  map[string]any{"home": 2, "away": 3, "total": 5},
			"loses":  map[string]any{"home": 2, "away": 3, "total": 5},
		},
		"goals": map[string]any{
			"for":     map[string]any{"total": map[string]any{"home": 48, "away": 43, "total": 91}},
			"against": map[string]any{"total": map[string]any{"home": 16, "away": 13, "total": 29}},
		},
	}
}

func (p *Provider) fixtures(params url.Values) []any {
	start := p.now().UTC().Truncate(24 * time.Hour)
	if from, err := time.Parse("2006-01-02", params.Get("from")); err == nil {
		start = from
	}
	out := make([]any, 0, len(clubs)/2)
	for i := 0; i+1 < len(clubs); i += 2 {
		kickoff := start.AddDate(0, 0, i).Add(15 * time.Hour)
		out = append(out, fixtureObject(1000+i, kickoff, clubs[i], clubs[i+1], "NS", nil))
	}
	return out
}

func (p *Provider) live() []any {
	kickoff := p.now().UTC().Add(-35 * time.Minute)
	return []any{
		fixtureObject(2001, kickoff, clubs[2], clubs[7], "1H", map[string]any{"home": 1, "away": 0}),
	}
}

func fixtureObject(id int, kickoff time.Time, home, away club, status string, goals map[string]any) map[string]any {
	if goals == nil {
		goals = map[string]any{"home": nil, "away": nil}
	}
	return map[string]any{
		"fixture": map[string]any{
			"id":     id,
			"date":   kickoff.Format(time.RFC3339),
			"status": map[string]any{"short": status},
		},
		"teams": map[string]any{
			"home": teamObject(home),
			"away": teamObject(away),
		},
		"goals": goals,
	}
}

func (p *Provider) standings(params url.Values) []any {
	table := make([]any, 0, len(clubs))
	for i, c := range clubs {
		table = append(table, map[string]any{
			"rank":      i + 1,
			"team":      teamObject(c),
			"points":    90 - i*4,
			"goalsDiff": 60 - i*6,
		})
	}
	return []any{
		map[string]any{
			"league": map[string]any{
				"id":        params.Get("league"),
				"season":    params.Get("season"),
				"standings": []any{table},
			},
		},
	}
}
