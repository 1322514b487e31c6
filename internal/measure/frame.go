package measure

import "fmt"

// Row is one unit of observation: a named set of numeric values. Indicator
// columns such as treatment flags are encoded as 0 or 1.
type Row map[string]float64

// Frame is an in-memory table of observations.
type Frame []Row

// Column extracts a single column as a slice, failing when any row lacks
// the key.
func (f Frame) Column(name string) ([]float64, error) {
	out := make([]float64, len(f))
	for i, row := range f {
		v, ok := row[name]
		if !ok {
			return nil, fmt.Errorf("row %d is missing required column %q", i, name)
		}
		out[i] = v
	}
	return out, nil
}

// RequireColumns verifies that every row carries all the named columns.
func (f Frame) RequireColumns(names ...string) error {
	for i, row := range f {
		for _, name := range names {
			if _, ok := row[name]; !ok {
				return fmt.Errorf("row %d is missing required column %q", i, name)
			}
		}
	}
	return nil
}
