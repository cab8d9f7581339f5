package testutil

import (
	"fmt"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/upstream"
)

// Envelope wraps response in an API-Football style envelope.
func Envelope(response any) upstream.Payload {
	results := 1
	if items, ok := response.([]any); ok {
		results = len(items)
	}
	return upstream.Payload{
		"get":                "test",
		"parameters":         map[string]any{},
		"errors":             []any{},
		"results":            results,
		"paging":             map[string]any{"current": 1, "total": 1},
		upstream.ResultField: response,
	}
}

// SampleTeams returns n team entries shaped like the /teams result.
func SampleTeams(n int) []any {
	out := make([]any, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, map[string]any{
			"team": map[string]any{"id": i, "name": fmt.Sprintf("Team %d", i)},
		})
	}
	return out
}

// SampleStandingsEnvelope returns a /standings envelope whose first table holds n ranked rows.
func SampleStandingsEnvelope(n int) upstream.Payload {
	table := make([]any, 0, n)
	for i := 1; i <= n; i++ {
		table = append(table, map[string]any{
			"rank": i,
			"team": map[string]any{"id": 100 + i, "name": fmt.Sprintf("Club %d", i)},
		})
	}
	return Envelope([]any{
		map[string]any{
			"league": map[string]any{"id": 39, "standings": []any{table}},
		},
	})
}
