package chartservice

import (
	json "github.com/goccy/go-json"
)

// WordCount is one entry of a word-frequency input.
type WordCount struct {
	Word string  `json:"word"`
	Freq float64 `json:"freq"`
}

// normalize coerces raw tool arguments into their canonical forms and
// enforces the handler's declared required-field set. It is the only
// validation layer: handlers assume their inputs are well-formed after
// this pipeline. Steps run in order and fail fast; the caller converts
// the returned ValidationError into a failure envelope without ever
// invoking the handler.
func normalize(args map[string]any, required []string) (map[string]any, *ValidationError) {
	out := make(map[string]any, len(args))
	for k, v := range args {
		out[k] = v
	}

	if v, ok := out["data"]; ok && v != nil {
		parsed := v
		if s, isStr := v.(string); isStr {
			var decoded any
			if err := json.Unmarshal([]byte(s), &decoded); err != nil {
				return nil, dataParseErr(err)
			}
			parsed = decoded
		}
		if list, isList := parsed.([]any); isList {
			out["data"] = tabulate(list)
		} else {
			out["data"] = parsed
		}
	}

	if v, ok := out["words"]; ok && v != nil {
		switch w := v.(type) {
		case string:
			var words []WordCount
			if err := json.Unmarshal([]byte(w), &words); err != nil {
				return nil, wordDataParseErr(err)
			}
			out["words"] = words
		case []any:
			words, err := decodeWords(w)
			if err != nil {
				return nil, wordDataParseErr(err)
			}
			out["words"] = words
		}
	}

	for _, field := range required {
		v, ok := out[field]
		if !ok {
			return nil, missingParamErr(field)
		}
		if v == nil {
			return nil, emptyParamErr(field)
		}
		switch t := v.(type) {
		case *Dataset:
			if t.Len() == 0 {
				return nil, emptyDatasetErr(field)
			}
		case []any:
			if len(t) == 0 {
				return nil, emptyDatasetErr(field)
			}
		case []WordCount:
			if len(t) == 0 {
				return nil, emptyDatasetErr(field)
			}
		}
	}

	return out, nil
}

// tabulate converts a record list into a Dataset. A list of scalars
// (histogram samples) is kept as-is for the handler to coerce.
func tabulate(list []any) any {
	records := make([]Record, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return list
		}
		records = append(records, Record(m))
	}
	return NewDataset(records)
}

func decodeWords(list []any) ([]WordCount, error) {
	// Round-trip through JSON so list-of-maps and list-of-structs both
	// decode the same way.
	raw, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	var words []WordCount
	if err := json.Unmarshal(raw, &words); err != nil {
		return nil, err
	}
	return words, nil
}
