package apifootball

import (
	"fmt"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// json keeps numbers as json.Number so payloads round-trip without float rounding.
var json = jsoniter.Config{
	EscapeHTML:             true,
	UseNumber:              true,
	ValidateJsonRawMessage: true,
}.Froze()

// envelopeErrors flattens the envelope's errors field. API-Sports sends an
// empty array when there are none and an object keyed by error kind otherwise.
// rateLimited is true when any key marks an exhausted quota.
func envelopeErrors(raw any) (messages []string, rateLimited bool) {
	switch v := raw.(type) {
	case nil:
		return nil, false
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if _, ok := rateLimitErrorKeys[k]; ok {
				rateLimited = true
			}
			messages = append(messages, fmt.Sprintf("%s: %v", k, v[k]))
		}
	case []any:
		for _, item := range v {
			messages = append(messages, fmt.Sprint(item))
		}
	case string:
		if strings.TrimSpace(v) != "" {
			messages = append(messages, v)
		}
	}
	return messages, rateLimited
}
