package football

import (
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/upstream"
)

// passthrough checks the result field and reports whether it holds zero items.
// Arrays and objects are accepted; anything else is a shape failure.
func passthrough(path string, payload upstream.Payload) (empty bool, err error) {
	result, ok := payload.Result()
	if !ok {
		return false, &upstream.ShapeError{Path: path, Reason: "response field is missing or null"}
	}
	switch v := result.(type) {
	case []any:
		return len(v) == 0, nil
	case map[string]any:
		return len(v) == 0, nil
	default:
		return false, &upstream.ShapeError{Path: path, Reason: "response field is neither an array nor an object"}
	}
}

// projectStandings returns the first limit rows of response[0].league.standings[0].
// An empty response or an empty standings list yields an empty slice.
func projectStandings(path string, payload upstream.Payload, limit int) ([]any, error) {
	result, ok := payload.Result()
	if !ok {
		return nil, &upstream.ShapeError{Path: path, Reason: "response field is missing or null"}
	}
	items, ok := result.([]any)
	if !ok {
		return nil, &upstream.ShapeError{Path: path, Reason: "response field is not an array"}
	}
	if len(items) == 0 {
		return []any{}, nil
	}

	entry, ok := items[0].(map[string]any)
	if !ok {
		return nil, &upstream.ShapeError{Path: path, Reason: "response[0] is not an object"}
	}
	league, ok := entry["league"].(map[string]any)
	if !ok {
		return nil, &upstream.ShapeError{Path: path, Reason: "response[0].league is missing"}
	}
	groups, ok := league["standings"].([]any)
	if !ok {
		return nil, &upstream.ShapeError{Path: path, Reason: "response[0].league.standings is missing"}
	}
	if len(groups) == 0 {
		return []any{}, nil
	}
	table, ok := groups[0].([]any)
	if !ok {
		return nil, &upstream.ShapeError{Path: path, Reason: "response[0].league.standings[0] is not an array"}
	}

	if len(table) > limit {
		table = table[:limit]
	}
	out := make([]any, len(table))
	copy(out, table)
	return out, nil
}
