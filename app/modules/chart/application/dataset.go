package chartservice

import (
	"fmt"
	"strconv"
)

// Record is one row of tabular input, field name to scalar.
type Record map[string]any

// Dataset is the canonical tabular form of a tool call's data argument:
// an ordered sequence of records. It is built once per call by the
// normalizer and owned by the single handler invocation it was built
// for.
type Dataset struct {
	rows []Record
}

// NewDataset wraps rows without copying.
func NewDataset(rows []Record) *Dataset {
	return &Dataset{rows: rows}
}

// Len reports the number of rows.
func (d *Dataset) Len() int { return len(d.rows) }

// Rows returns the underlying records in order.
func (d *Dataset) Rows() []Record { return d.rows }

// Strings extracts a column as display strings, preserving row order.
func (d *Dataset) Strings(field string) []string {
	out := make([]string, len(d.rows))
	for i, row := range d.rows {
		switch v := row[field].(type) {
		case string:
			out[i] = v
		case float64:
			out[i] = strconv.FormatFloat(v, 'f', -1, 64)
		case nil:
			out[i] = ""
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}

// Floats extracts a column as float64 values, coercing JSON numbers and
// numeric strings. It fails on the first value that is not numeric.
func (d *Dataset) Floats(field string) ([]float64, error) {
	out := make([]float64, len(d.rows))
	for i, row := range d.rows {
		f, err := toFloat(row[field])
		if err != nil {
			return nil, fmt.Errorf("field '%s' row %d: %w", field, i, err)
		}
		out[i] = f
	}
	return out, nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not numeric", n)
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("value is null")
	default:
		return 0, fmt.Errorf("value %v is not numeric", v)
	}
}
