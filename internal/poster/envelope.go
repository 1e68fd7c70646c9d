package poster

import "encoding/json"

// The vendor wraps list results in several envelope shapes depending on the
// method: a top-level "response" array, a "response" object with a nested
// "transactions" array, a bare "transactions" array, or a "data" array.

// FirstArray decodes a raw vendor body and returns the first array found
// among the known envelope shapes. Non-object array elements are dropped.
func FirstArray(raw json.RawMessage) ([]map[string]any, bool) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, false
	}

	root, ok := doc.(map[string]any)
	if !ok {
		// A bare top-level array is also accepted.
		if arr, ok := doc.([]any); ok {
			return objectElements(arr), true
		}
		return nil, false
	}

	candidates := []any{
		root["response"],
		nested(root, "response", "transactions"),
		root["transactions"],
		root["data"],
	}

	for _, c := range candidates {
		if arr, ok := c.([]any); ok {
			return objectElements(arr), true
		}
	}
	return nil, false
}

func nested(root map[string]any, outer, inner string) any {
	obj, ok := root[outer].(map[string]any)
	if !ok {
		return nil
	}
	return obj[inner]
}

func objectElements(arr []any) []map[string]any {
	out := make([]map[string]any, 0, len(arr))
	for _, el := range arr {
		if m, ok := el.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
