package config

import "context"

// Loader is the interface for a format-specific batch loader.
type Loader interface {
	// Load reads every batch file reachable from paths and translates the
	// calculations it finds into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
