package chartservice

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Argument extraction helpers. Handlers decode their explicit argument
// structs from the normalized map with these; absent keys yield zero
// values (required keys were already enforced by the normalizer).

func str(m map[string]any, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func strOr(m map[string]any, key, def string) string {
	if s := str(m, key); s != "" {
		return s
	}
	return def
}

func intVal(m map[string]any, key string, def int) int {
	if v, ok := m[key]; ok {
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		case json.Number:
			i, _ := n.Int64()
			return int(i)
		}
	}
	return def
}

func strSlice(m map[string]any, key string) []string {
	v, ok := m[key]
	if !ok {
		return nil
	}
	switch s := v.(type) {
	case []any:
		result := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	case []string:
		return s
	}
	return nil
}

func mapSlice(m map[string]any, key string) []map[string]any {
	v, ok := m[key]
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	result := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if entry, ok := item.(map[string]any); ok {
			result = append(result, entry)
		}
	}
	return result
}

func dataset(m map[string]any) *Dataset {
	if d, ok := m["data"].(*Dataset); ok {
		return d
	}
	return nil
}

// samples extracts the data argument as a flat numeric series, accepting
// either a scalar list or a single-column dataset.
func samples(m map[string]any) ([]float64, error) {
	switch v := m["data"].(type) {
	case []any:
		out := make([]float64, len(v))
		for i, item := range v {
			f, err := toFloat(item)
			if err != nil {
				return nil, fmt.Errorf("sample %d: %w", i, err)
			}
			out[i] = f
		}
		return out, nil
	case *Dataset:
		if v.Len() == 0 {
			return nil, fmt.Errorf("data contains no rows")
		}
		for field := range v.Rows()[0] {
			return v.Floats(field)
		}
		return nil, fmt.Errorf("data rows have no fields")
	default:
		return nil, fmt.Errorf("data must be a list of numbers")
	}
}
