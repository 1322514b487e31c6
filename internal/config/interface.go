package config

import "context"

// Loader is the interface for a format-specific configuration loader. Load
// reads a configuration file, merges defaults, validates the result, and
// returns the format-agnostic model.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}
