package registry

import (
	"fmt"
	"log/slog"
)

// RegisterOperation registers a Go function under an operation name. A name
// can only be registered once.
func (r *Registry) RegisterOperation(name string, op Operation) {
	if name == "" {
		panic("operation name must not be empty")
	}
	if op == nil {
		panic(fmt.Sprintf("operation '%s' registered with a nil function", name))
	}
	if _, exists := r.operations[name]; exists {
		panic(fmt.Sprintf("operation with name '%s' already registered", name))
	}
	slog.Debug("Registering operation.", "name", name)
	r.operations[name] = op
}
